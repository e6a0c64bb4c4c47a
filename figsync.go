// Package figsync keeps a portfolio's design tokens and a Figma file in step.
//
// It extracts a token snapshot from the local design source, lays the
// snapshot out as Figma nodes and pushes them, and polls a set of Figma nodes
// to detect values designers changed.
//
// # Extraction
//
// Load the built-in design table overlaid with local token files:
//
//	src, warnings, err := figsync.LoadSource(figsync.SourceConfig{
//		SourceDir: "styles",
//		Includes:  []string{"**/*.tokens.yaml", "**/*.css"},
//	})
//	snapshot := figsync.Extract(src)
//
// # Push
//
//	client, _ := figma.NewClient(figma.Config{Token: os.Getenv("FIGMA_ACCESS_TOKEN")})
//	result, err := figsync.Push(ctx, client, snapshot, figsync.PushOptions{})
//
// # Sync
//
//	c, err := figsync.NewController(client, figsync.SyncConfig{
//		FileKey:      "AbC123",
//		WatchedNodes: []string{"1:23", "1:24"},
//		Interval:     30 * time.Second,
//	})
//	first, err := c.Start(ctx)
//	defer c.Stop()
//
// # CLI Tool
//
//	go install github.com/yacobolo/figsync/cmd/figsync@latest
package figsync

import (
	"time"

	core "github.com/yacobolo/figsync/internal/figsync"
)

// Public types are defined in internal/figsync.
type (
	Snapshot     = core.Snapshot
	Source       = core.Source
	ColorToken   = core.ColorToken
	SyncConfig   = core.SyncConfig
	SyncResult   = core.SyncResult
	DesignChange = core.DesignChange
	StyleUpdate  = core.StyleUpdate
	StyleWriter  = core.StyleWriter
	Controller   = core.Controller
	Remote       = core.Remote
	Option       = core.Option
	Status       = core.Status
	Stats        = core.Stats
	PushDocument = core.PushDocument

	StyleWriterFunc = core.StyleWriterFunc
)

// Controller options
var (
	WithLogger        = core.WithLogger
	WithClock         = core.WithClock
	WithBaseline      = core.WithBaseline
	WithStyleWriter   = core.WithStyleWriter
	WithResultHandler = core.WithResultHandler
)

// ErrAlreadyRunning is returned by Start on a running controller.
var ErrAlreadyRunning = core.ErrAlreadyRunning

// Extract captures src as a snapshot stamped with the current time.
func Extract(src Source) *Snapshot {
	return core.ExtractSnapshot(src, time.Now())
}

// NewController returns a stopped sync controller polling remote.
func NewController(remote Remote, cfg SyncConfig, opts ...Option) (*Controller, error) {
	return core.NewController(remote, cfg, opts...)
}
