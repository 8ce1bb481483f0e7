// Package qrcode builds URLs for the external code-image service. The
// core only constructs the request value; it never fetches or validates
// the rendered image.
package qrcode

import (
	"fmt"
	"net/url"
)

const (
	DefaultBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize    = 300
)

type Generator struct {
	baseURL string
	size    int
}

func New(baseURL string, size int) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if size <= 0 {
		size = DefaultSize
	}

	return &Generator{baseURL: baseURL, size: size}
}

// ImageURL returns a URL that renders a scannable image encoding the
// payload.
func (g *Generator) ImageURL(payload string) string {
	v := url.Values{}
	v.Set("size", fmt.Sprintf("%dx%d", g.size, g.size))
	v.Set("data", payload)

	return g.baseURL + "?" + v.Encode()
}
