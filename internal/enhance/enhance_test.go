package enhance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestFetchImageNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/poster.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchImageSuccess(t *testing.T) {
	body := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	blob, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/poster.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", blob.MIMEType) // parameters stripped
	assert.Equal(t, body, blob.Data)
}

func TestFetchImageMissingContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := FetchImage(context.Background(), srv.Client(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestExtractImageEmptyResponse(t *testing.T) {
	_, err := extractImage(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestExtractImageTextOnlyResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "no can do"}}},
		}},
	}
	_, err := extractImage(resp)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestExtractImageInlineData(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1, 2}}},
			}},
		}},
	}
	blob, err := extractImage(resp)
	require.NoError(t, err)
	assert.Equal(t, "image/png", blob.MIMEType)
	assert.Equal(t, []byte{1, 2}, blob.Data)
}

func TestBlobDataURIRoundTrip(t *testing.T) {
	orig := Blob{MIMEType: "image/jpeg", Data: []byte("poster bytes")}
	uri := orig.DataURI()
	assert.Contains(t, uri, "data:image/jpeg;base64,")

	parsed, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)
}

func TestParseDataURIMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"http://example.com/x.png",
		"data:image/png",
		"data:image/png;hex,ff",
		"data:image/png;base64,@@@",
	} {
		_, err := ParseDataURI(s)
		assert.Error(t, err, "input %q", s)
	}
}
