package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pokedex/internal/errors"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "pokeapi.co", u.Host)
	assert.Equal(t, "/api/v2", u.Path)

	u, err = parseBaseURL("http://example.com:1234/api/v2/?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234/api/v2", u.String())

	u, err = parseBaseURL("  mirror.local/api  ")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.local/api", u.String())

	_, err = parseBaseURL("http://")
	assert.Error(t, err)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "pikachu", NormalizeToken("  PiKaChU \t"))
	assert.Equal(t, "25", NormalizeToken("25"))
	assert.Equal(t, "", NormalizeToken("   "))
}

func catalogServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	fixture, err := os.ReadFile("testdata/pikachu.json")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "pokedex/") {
			http.Error(w, "bad agent", http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/api/v2/pokemon/pikachu", "/api/v2/pokemon/25":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(fixture)
		case "/api/v2/pokemon/garbled":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/v2/pokemon/partial":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 7, "name": "squirtle", "types": []}`))
		case "/api/v2/pokemon/boom":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchCreatureDecodesPayload(t *testing.T) {
	t.Parallel()

	server := catalogServer(t, nil)
	c, err := NewClient(server.URL + "/api/v2/")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	for _, token := range []string{"pikachu", "  PIKACHU ", "25"} {
		creature, err := c.FetchCreature(ctx, token)
		require.NoError(t, err, token)
		assert.Equal(t, 25, creature.ID)
		assert.Equal(t, "pikachu", creature.Name)
		assert.Equal(t, []string{"electric"}, creature.Types)
		assert.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png", creature.ImageURL)
		assert.Equal(t, 35, creature.Stat("hp"))
		assert.Equal(t, 90, creature.Stat("speed"))
	}
}

func TestClient_BlankTokenIssuesNoRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := catalogServer(t, &hits)
	c, err := NewClient(server.URL + "/api/v2")
	require.NoError(t, err)

	_, err = c.FetchCreature(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Zero(t, hits.Load())
}

func TestClient_FailuresAreCoded(t *testing.T) {
	t.Parallel()

	server := catalogServer(t, nil)
	c, err := NewClient(server.URL + "/api/v2")
	require.NoError(t, err)

	tests := []struct {
		token   string
		code    errors.Code
		message string
	}{
		{"missingno", errors.CodeNotFound, "returned status 404"},
		{"boom", errors.CodeUnavailable, "returned status 500"},
		{"garbled", errors.CodeInternal, "decode response"},
		{"partial", errors.CodeInternal, "has no types"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			creature, err := c.FetchCreature(context.Background(), tt.token)
			require.Error(t, err)
			assert.Nil(t, creature)
			assert.Equal(t, tt.code, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.FetchCreature(context.Background(), "pikachu")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestClient_EscapesTokenAsSingleSegment(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, _ = c.FetchCreature(context.Background(), "Mr. Mime/../x")
	assert.Equal(t, "/pokemon/mr.%20mime%2F..%2Fx", gotPath)
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.FetchCreature(context.Background(), "pikachu")
	assert.Error(t, err)
}
