package figma

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := Config{Token: "secret", BaseURL: srv.URL}
	for _, m := range mutate {
		m(&config)
	}
	c, err := NewClient(config)
	require.NoError(t, err)
	return c
}

func TestNewClient_MissingToken(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "token", cfgErr.Field)
}

func TestNewClient_UnknownAuthScheme(t *testing.T) {
	_, err := NewClient(Config{Token: "x", AuthScheme: "basic"})
	require.Error(t, err)
}

func TestFetchDocument(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/abc123", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
		_, _ = io.WriteString(w, `{
			"name": "Portfolio",
			"lastModified": "2026-10-01T10:00:00Z",
			"version": "42",
			"document": {"id": "0:0", "name": "Document", "type": "DOCUMENT",
				"children": [{"id": "0:1", "name": "Page 1", "type": "CANVAS"}]}
		}`)
	})

	doc, err := c.FetchDocument(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", doc.Key)
	assert.Equal(t, "Portfolio", doc.Name)
	assert.Equal(t, "42", doc.Version)
	assert.Equal(t, NodeDocument, doc.Root.Type)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, NodeCanvas, doc.Root.Children[0].Type)
}

func TestFetchDocument_MissingFileKey(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	_, err := c.FetchDocument(context.Background(), "")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Zero(t, calls.Load(), "no request may be sent without a file key")
}

func TestBearerAuth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Figma-Token"))
		_, _ = io.WriteString(w, `{"name":"x","document":{"id":"0:0","name":"d","type":"DOCUMENT"}}`)
	}, func(cfg *Config) { cfg.AuthScheme = AuthBearer })

	_, err := c.FetchDocument(context.Background(), "k")
	require.NoError(t, err)
}

func TestFetchNodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/k/nodes", r.URL.Path)
		assert.Equal(t, "1:2,9:9", r.URL.Query().Get("ids"))
		_, _ = io.WriteString(w, `{
			"name": "Portfolio",
			"nodes": {
				"1:2": {"document": {
					"id": "1:2", "name": "Accent Swatch", "type": "RECTANGLE",
					"fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0, "a": 1}}],
					"absoluteBoundingBox": {"x": 0, "y": 0, "width": 100, "height": 50}
				}},
				"9:9": null
			}
		}`)
	})

	nodes, err := c.FetchNodes(context.Background(), "k", []string{"1:2", "9:9"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	node := nodes["1:2"]
	assert.Equal(t, NodeRectangle, node.Type)
	require.Len(t, node.Fills, 1)
	assert.Equal(t, PaintSolid, node.Fills[0].Type)
	w, h, ok := node.Size()
	assert.True(t, ok)
	assert.InDelta(t, 100, w, 0.001)
	assert.InDelta(t, 50, h, 0.001)
}

func TestFetchNodes_NoIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("unexpected request")
	})

	nodes, err := c.FetchNodes(context.Background(), "k", nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestFetchImages_CachesURLs(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/images/k", r.URL.Path)
		assert.Equal(t, "svg", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("scale"))
		_, _ = io.WriteString(w, `{"err": null, "images": {"1:2": "https://cdn/1-2.svg", "3:4": null}}`)
	})

	ctx := context.Background()
	images, err := c.FetchImages(ctx, "k", []string{"1:2", "3:4"}, "svg", 2)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/1-2.svg", images["1:2"])
	assert.Equal(t, "", images["3:4"])

	// 1:2 is cached; 3:4 failed to render and is asked for again.
	_, err = c.FetchImages(ctx, "k", []string{"1:2"}, "svg", 2)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	_, err = c.FetchImages(ctx, "k", []string{"3:4"}, "svg", 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCreateDocumentAndSubmitNodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		switch r.URL.Path {
		case "/files":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Generated", body["name"])
			_, _ = io.WriteString(w, `{"key": "new-key", "name": "Generated"}`)
		case "/files/new-key/nodes":
			var body struct {
				Nodes []Node `json:"nodes"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Nodes, 1)
			assert.Equal(t, "Frame", body.Nodes[0].Name)
			_, _ = io.WriteString(w, `{"ok": true}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	created, err := c.CreateDocument(ctx, "Generated")
	require.NoError(t, err)
	assert.Equal(t, "new-key", created.Key)

	raw, err := c.SubmitNodes(ctx, created.Key, []Node{{Name: "Frame", Type: NodeFrame}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"status": 401, "err": "Invalid token"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, "Invalid token", authErr.Detail)
			},
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			body:   `{"status": 403, "err": "File not shared"}`,
			check: func(t *testing.T, err error) {
				var permErr *PermissionError
				require.ErrorAs(t, err, &permErr)
				assert.Contains(t, err.Error(), "File not shared")
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			body:   `upstream down`,
			check: func(t *testing.T, err error) {
				var tErr *TransportError
				require.ErrorAs(t, err, &tErr)
				assert.Equal(t, http.StatusBadGateway, tErr.StatusCode)
				assert.Equal(t, "upstream down", tErr.Detail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.FetchDocument(context.Background(), "k")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c, err := NewClient(Config{Token: "t", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.FetchNodes(context.Background(), "k", []string{"1:1"})
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, tErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}
