// Package translate provides best-effort machine translation of project
// descriptions via the unauthenticated Google Translate web endpoint.
//
// The endpoint needs no API key, which also means no SLA: callers must
// treat every failure as "post the original text untranslated".
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrTranslateFailed wraps every transport or decoding failure.
var ErrTranslateFailed = errors.New("translation failed")

// maxResponseSize bounds the response body read.
const maxResponseSize = 1 << 20

// endpointBase is swapped out in tests.
var endpointBase = "https://translate.googleapis.com"

// Client calls the translation endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with a short timeout; translation is a
// nice-to-have on the critical posting path.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Translate renders text into the target language (BCP 47 code, e.g. "ja").
// The source language is auto-detected. Empty input translates to empty
// output without a network call.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	query := url.Values{
		"client": {"gtx"},
		"sl":     {"auto"},
		"tl":     {target},
		"dt":     {"t"},
		"q":      {text},
	}
	endpoint := endpointBase + "/translate_a/single?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslateFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslateFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %s", ErrTranslateFailed, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslateFailed, err)
	}

	return decodeSegments(body)
}

// decodeSegments joins the translated sentence segments out of the
// endpoint's nested-array response: [[["<ja>","<src>",...],...],...].
// gjson copes with the shape far more gracefully than struct decoding.
func decodeSegments(body []byte) (string, error) {
	segments := gjson.GetBytes(body, "0")
	if !segments.IsArray() {
		return "", fmt.Errorf("%w: unexpected response shape", ErrTranslateFailed)
	}

	var sb strings.Builder
	for _, seg := range segments.Array() {
		sb.WriteString(seg.Get("0").String())
	}

	out := sb.String()
	if out == "" {
		return "", fmt.Errorf("%w: empty translation", ErrTranslateFailed)
	}
	return out, nil
}
