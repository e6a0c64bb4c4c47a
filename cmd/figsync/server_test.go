package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figsync"
	"github.com/yacobolo/figsync/internal/figma"
)

// stubRemote serves one black swatch node.
type stubRemote struct {
	mu     sync.Mutex
	docErr error
}

func (s *stubRemote) FetchDocument(_ context.Context, fileKey string) (*figma.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docErr != nil {
		return nil, s.docErr
	}
	return &figma.Document{Key: fileKey, Name: "Portfolio", Version: "7"}, nil
}

func (s *stubRemote) FetchNodes(context.Context, string, []string) (map[string]figma.Node, error) {
	return map[string]figma.Node{
		"7:1": {
			ID:    "7:1",
			Name:  "accent1",
			Type:  figma.NodeRectangle,
			Fills: []figma.Paint{{Type: figma.PaintSolid, Color: &figma.Color{A: 1}}},
		},
	}, nil
}

func (s *stubRemote) FetchImages(context.Context, string, []string, string, float64) (map[string]string, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRemote) CreateDocument(context.Context, string) (*figma.CreatedDocument, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRemote) SubmitNodes(context.Context, string, []figma.Node) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func newTestServer(t *testing.T, remote *stubRemote) (*httptest.Server, *figsync.Controller) {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := figsync.NewController(remote, figsync.SyncConfig{FileKey: "AbC123", WatchedNodes: []string{"7:1"}},
		figsync.WithLogger(quiet))
	require.NoError(t, err)

	srv := httptest.NewServer(newStatusRouter(c, quiet))
	t.Cleanup(srv.Close)
	return srv, c
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestStatusServer_BeforeFirstSync(t *testing.T) {
	srv, _ := newTestServer(t, &stubRemote{})

	var status figsync.Status
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/status", &status))
	assert.False(t, status.Running)
	assert.Zero(t, status.Stats.Ticks)

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/results/latest", &body))
	assert.Contains(t, body["error"], "no sync")

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/snapshot", &body))
}

func TestStatusServer_ManualSync(t *testing.T) {
	srv, c := newTestServer(t, &stubRemote{})

	resp, err := http.Post(srv.URL+"/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result figsync.SyncResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result.ID, 26)
	assert.Equal(t, "7", result.DocumentVersion)

	var latest figsync.SyncResult
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/results/latest", &latest))
	assert.Equal(t, result.ID, latest.ID)

	var status figsync.Status
	getJSON(t, srv.URL+"/status", &status)
	assert.Equal(t, int64(1), status.Stats.Ticks)
	assert.Nil(t, status.Snapshot)

	var snapshot figsync.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/snapshot", &snapshot))
	assert.Equal(t, "figma", snapshot.Source)
	assert.Equal(t, c.Snapshot().Colors, snapshot.Colors)
}

func TestStatusServer_FailedSync(t *testing.T) {
	srv, _ := newTestServer(t, &stubRemote{docErr: &figma.TransportError{Op: "fetch document", StatusCode: 500, Detail: "down"}})

	resp, err := http.Post(srv.URL+"/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var result figsync.SyncResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "fetch document")
}

func TestStatusServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, &stubRemote{})

	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}
