// Package paste uploads scripts to a hastebin-compatible paste service.
package paste

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ErrRejected is returned when the service refuses the document, which in
// practice means it is over the size limit.
var ErrRejected = errors.New("Script is too long for hastebin to handle. Please try again with a less detailed image.")

type Client struct {
	BaseURL string
	Timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Timeout: timeout}
}

// Upload stores text and returns the document key.
func (c *Client) Upload(text string) (string, error) {
	a := fiber.Post(c.BaseURL + "/documents")
	a.ContentType("text/plain")
	a.BodyString(text)
	if c.Timeout > 0 {
		a.Timeout(c.Timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return "", errors.Wrap(errs[0], "uploading script")
	}
	if code < 200 || code > 299 {
		return "", errors.Wrapf(ErrRejected, "paste service returned %d", code)
	}
	var doc struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", errors.Wrap(err, "decoding paste response")
	}
	if doc.Key == "" {
		return "", errors.New("paste service returned no key")
	}
	return doc.Key, nil
}
