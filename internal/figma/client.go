// Package figma is a small client for the Figma REST API covering the calls
// figsync needs: reading files and nodes, exporting images, creating files and
// submitting nodes.
package figma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultBaseURL is the public Figma API endpoint.
const DefaultBaseURL = "https://api.figma.com/v1"

// Auth schemes for the access token.
const (
	AuthToken  = "token"  // personal access token, X-Figma-Token header
	AuthBearer = "bearer" // OAuth token, Authorization: Bearer header
)

// Config holds client configuration
type Config struct {
	Token          string        // Personal access token or OAuth token (required)
	BaseURL        string        // Default: https://api.figma.com/v1
	Timeout        time.Duration // Per-request timeout (default: 10s)
	AuthScheme     string        // "token" (default) or "bearer"
	ImageCacheSize int           // Cached image URLs (default: 256, negative disables)
	ImageCacheTTL  time.Duration // Image URL lifetime in cache (default: 1h)
	HTTPClient     *http.Client  // Optional transport override
	Logger         *slog.Logger
}

// Client talks to the Figma REST API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	authScheme string
	http       *http.Client
	images     *expirable.LRU[string, string]
	log        *slog.Logger
}

// NewClient validates config and builds a Client. A missing token fails here,
// before any request is made.
func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.Token) == "" {
		return nil, &ConfigError{Field: "token"}
	}

	scheme := config.AuthScheme
	switch scheme {
	case "":
		scheme = AuthToken
	case AuthToken, AuthBearer:
	default:
		return nil, fmt.Errorf("figma: unknown auth scheme %q", scheme)
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    baseURL,
		token:      config.Token,
		authScheme: scheme,
		http:       httpClient,
		log:        logger,
	}

	size := config.ImageCacheSize
	if size == 0 {
		size = 256
	}
	if size > 0 {
		ttl := config.ImageCacheTTL
		if ttl <= 0 {
			ttl = time.Hour
		}
		c.images = expirable.NewLRU[string, string](size, nil, ttl)
	}

	return c, nil
}

// FetchDocument returns a whole file: metadata plus the document tree.
func (c *Client) FetchDocument(ctx context.Context, fileKey string) (*Document, error) {
	if fileKey == "" {
		return nil, &ConfigError{Field: "file key"}
	}

	var doc Document
	if err := c.do(ctx, "fetch document", http.MethodGet, "/files/"+url.PathEscape(fileKey), nil, nil, &doc); err != nil {
		return nil, err
	}
	doc.Key = fileKey
	return &doc, nil
}

// FetchNodes returns the requested nodes keyed by id. Ids Figma does not know
// are absent from the result.
func (c *Client) FetchNodes(ctx context.Context, fileKey string, ids []string) (map[string]Node, error) {
	if fileKey == "" {
		return nil, &ConfigError{Field: "file key"}
	}
	if len(ids) == 0 {
		return map[string]Node{}, nil
	}

	query := url.Values{"ids": {strings.Join(ids, ",")}}
	var resp nodesResponse
	if err := c.do(ctx, "fetch nodes", http.MethodGet, "/files/"+url.PathEscape(fileKey)+"/nodes", query, nil, &resp); err != nil {
		return nil, err
	}

	nodes := make(map[string]Node, len(resp.Nodes))
	for id, data := range resp.Nodes {
		if data == nil {
			c.log.Debug("figma: node not found", "file", fileKey, "id", id)
			continue
		}
		nodes[id] = data.Document
	}
	return nodes, nil
}

// FetchImages returns rendered image URLs for the given nodes. Nodes Figma
// could not render map to "". Format is one of jpg, png, svg, pdf; scale is
// between 0.01 and 4.
func (c *Client) FetchImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error) {
	if fileKey == "" {
		return nil, &ConfigError{Field: "file key"}
	}
	if format == "" {
		format = "png"
	}
	if scale <= 0 {
		scale = 1
	}
	scaleStr := strconv.FormatFloat(scale, 'f', -1, 64)

	result := make(map[string]string, len(ids))
	var missing []string
	for _, id := range ids {
		if c.images != nil {
			if u, ok := c.images.Get(imageKey(fileKey, id, format, scaleStr)); ok {
				result[id] = u
				continue
			}
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return result, nil
	}

	query := url.Values{
		"ids":    {strings.Join(missing, ",")},
		"format": {format},
		"scale":  {scaleStr},
	}
	var resp imagesResponse
	if err := c.do(ctx, "fetch images", http.MethodGet, "/images/"+url.PathEscape(fileKey), query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Err != "" {
		return nil, &TransportError{Op: "fetch images", StatusCode: http.StatusOK, Detail: resp.Err}
	}

	for _, id := range missing {
		u := resp.Images[id]
		if u == nil {
			result[id] = ""
			continue
		}
		result[id] = *u
		if c.images != nil {
			c.images.Add(imageKey(fileKey, id, format, scaleStr), *u)
		}
	}
	return result, nil
}

// CreateDocument creates a new file with the given name.
func (c *Client) CreateDocument(ctx context.Context, name string) (*CreatedDocument, error) {
	var created CreatedDocument
	if err := c.do(ctx, "create document", http.MethodPost, "/files", nil, map[string]string{"name": name}, &created); err != nil {
		return nil, err
	}
	if created.Key == "" {
		return nil, &TransportError{Op: "create document", StatusCode: http.StatusOK, Detail: "response carried no file key"}
	}
	return &created, nil
}

// SubmitNodes writes node-creation payloads under the file's root. The raw
// response body is returned as-is.
func (c *Client) SubmitNodes(ctx context.Context, fileKey string, nodes []Node) (json.RawMessage, error) {
	if fileKey == "" {
		return nil, &ConfigError{Field: "file key"}
	}

	var raw json.RawMessage
	body := map[string][]Node{"nodes": nodes}
	if err := c.do(ctx, "submit nodes", http.MethodPost, "/files/"+url.PathEscape(fileKey)+"/nodes", nil, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// do performs one request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("figma: %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authScheme == AuthBearer {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.Header.Set("X-Figma-Token", c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	c.log.Debug("figma: request", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp.StatusCode, errorDetail(data))
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Detail: "malformed response body", Err: err}
	}
	return nil
}

// errorDetail pulls the human-readable message out of an error body.
func errorDetail(data []byte) string {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil {
		if er.Err != "" {
			return er.Err
		}
		if er.Message != "" {
			return er.Message
		}
	}
	detail := strings.TrimSpace(string(data))
	if len(detail) > 200 {
		detail = detail[:197] + "..."
	}
	return detail
}

func imageKey(fileKey, id, format, scale string) string {
	return fileKey + "|" + id + "|" + format + "|" + scale
}
