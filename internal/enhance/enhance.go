// Package enhance generates AI-enhanced movie posters. The adapter fetches
// the existing poster over HTTP, sends it together with the movie
// description to an image-capable Gemini model, and returns the generated
// image. Exactly one upstream call per invocation: no retries, no streaming.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrFetch is returned when the source poster cannot be retrieved.
var ErrFetch = errors.New("poster fetch failed")

// ErrGeneration is returned when the model call fails or completes without
// an image payload.
var ErrGeneration = errors.New("poster generation failed")

// instruction is the fixed prompt sent with every enhancement request.
const instruction = "Given the existing movie poster, and this movie description: %s, suggest changes to the poster image to enhance it. Output the enhanced movie poster."

// PosterEnhancer is the contract the movie service depends on.
type PosterEnhancer interface {
	Enhance(ctx context.Context, description, imageURL string) (Blob, error)
}

// GeminiEnhancer implements PosterEnhancer using the Gemini API.
type GeminiEnhancer struct {
	client *genai.Client
	model  string
	http   *http.Client
	logger *zap.Logger
}

// NewGeminiEnhancer constructs an enhancer for the given API key and model.
func NewGeminiEnhancer(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiEnhancer, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiEnhancer{
		client: client,
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}, nil
}

// Enhance fetches the poster at imageURL and asks the model for an enhanced
// version. Failures wrap ErrFetch or ErrGeneration so callers can translate
// them without inspecting upstream errors.
func (e *GeminiEnhancer) Enhance(ctx context.Context, description, imageURL string) (Blob, error) {
	src, err := FetchImage(ctx, e.http, imageURL)
	if err != nil {
		return Blob{}, err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(src.Data, src.MIMEType),
		genai.NewPartFromText(fmt.Sprintf(instruction, description)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		e.logger.Warn("poster generation call failed", zap.Error(err))
		return Blob{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return extractImage(resp)
}

// FetchImage retrieves an image over HTTP and wraps it in a Blob. A non-2xx
// response or a missing content type wraps ErrFetch.
func FetchImage(ctx context.Context, client *http.Client, url string) (Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Blob{}, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}
	mime := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if mime == "" {
		return Blob{}, fmt.Errorf("%w: response has no content type", ErrFetch)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return Blob{MIMEType: mime, Data: data}, nil
}

// extractImage pulls the first inline image out of a model response. A
// response without one wraps ErrGeneration.
func extractImage(resp *genai.GenerateContentResponse) (Blob, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Blob{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
			}
		}
	}
	return Blob{}, fmt.Errorf("%w: no image returned", ErrGeneration)
}
