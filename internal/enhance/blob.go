package enhance

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Blob is a self-describing image payload: a MIME type plus the raw bytes.
// It travels over the API as a data URI so clients can render it directly.
type Blob struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the blob as data:<mimetype>;base64,<payload>.
func (b Blob) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", b.MIMEType, base64.StdEncoding.EncodeToString(b.Data))
}

// ParseDataURI decodes a data:<mimetype>;base64,<payload> string back into
// a Blob.
func ParseDataURI(s string) (Blob, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return Blob{}, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Blob{}, fmt.Errorf("malformed data URI")
	}
	mime, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return Blob{}, fmt.Errorf("unsupported data URI encoding")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Blob{}, fmt.Errorf("decode data URI payload: %w", err)
	}
	return Blob{MIMEType: mime, Data: data}, nil
}
