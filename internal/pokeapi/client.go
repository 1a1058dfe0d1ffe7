package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/five82/pokedex/internal/errors"
)

// Fetcher looks up a single creature by name or id.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchCreature(ctx context.Context, token string) (*Creature, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokeAPI HTTP catalog.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokedex/0.1"
)

// NewClient builds a Client rooted at baseURL. Requests carry no client-side
// timeout; callers cancel through the context.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized catalog root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// NormalizeToken trims and lower-cases a raw search string.
func NormalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// FetchCreature retrieves /pokemon/{token}. Blank tokens are rejected without
// issuing a request.
func (c *Client) FetchCreature(ctx context.Context, token string) (*Creature, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	token = NormalizeToken(token)
	if token == "" {
		return nil, errors.InvalidArgument("pokemon name or id required")
	}

	var payload Pokemon
	if err := c.get(ctx, c.baseURL.JoinPath("pokemon", url.PathEscape(token)), &payload); err != nil {
		return nil, err
	}
	creature, err := payload.Creature()
	if err != nil {
		return nil, errors.Wrap(err, "decode response").WithMeta("token", token)
	}
	return creature, nil
}

func (c *Client) get(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("api %s returned status %d", reqURL.Path, resp.StatusCode).
			WithMeta("status", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.Unavailablef("api %s returned status %d", reqURL.Path, resp.StatusCode).
			WithMeta("status", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
