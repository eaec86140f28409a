// Package profile resolves player names to their dashed UUIDs.
package profile

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	mapart "github.com/AK1089/minecraftMapArt"
)

var ErrNoUsername = errors.New("no username")

type Client struct {
	BaseURL string
	Timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Timeout: timeout}
}

// Lookup returns the dashed UUID of username.
func (c *Client) Lookup(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrNoUsername
	}
	a := fiber.Get(c.BaseURL + "/users/profiles/minecraft/" + url.PathEscape(username))
	if c.Timeout > 0 {
		a.Timeout(c.Timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return "", errors.Wrapf(errs[0], "looking up %s", username)
	}
	if code != fiber.StatusOK {
		return "", errors.Errorf("looking up %s: status %d", username, code)
	}
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return "", errors.Wrapf(err, "decoding profile for %s", username)
	}
	if len(p.ID) != 32 {
		return "", errors.Errorf("looking up %s: unexpected id %q", username, p.ID)
	}
	return mapart.FormatUUID(p.ID), nil
}

// UUID is Lookup with failures replaced by mapart.PlaceholderUUID.
func (c *Client) UUID(username string) string {
	id, err := c.Lookup(username)
	if err != nil {
		if !errors.Is(err, ErrNoUsername) {
			slog.Warn("profile lookup failed", "username", username, "error", err)
		}
		return mapart.PlaceholderUUID
	}
	return id
}
