package figsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yacobolo/figsync/internal/figma"
)

// DefaultInterval is the tick period used when SyncConfig.Interval is zero.
const DefaultInterval = 30 * time.Second

// ErrAlreadyRunning is returned by Start on a running controller.
var ErrAlreadyRunning = errors.New("figsync: controller already running")

// Remote is the subset of the Figma API figsync talks to. *figma.Client
// implements it.
type Remote interface {
	FetchDocument(ctx context.Context, fileKey string) (*figma.Document, error)
	FetchNodes(ctx context.Context, fileKey string, ids []string) (map[string]figma.Node, error)
	FetchImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error)
	CreateDocument(ctx context.Context, name string) (*figma.CreatedDocument, error)
	SubmitNodes(ctx context.Context, fileKey string, nodes []figma.Node) (json.RawMessage, error)
}

var _ Remote = (*figma.Client)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithBaseline seeds the snapshot the first tick is diffed against. Without
// a baseline the first tick only records what Figma holds.
func WithBaseline(s *Snapshot) Option {
	return func(c *Controller) { c.snapshot = s.Clone() }
}

// WithStyleWriter sets the writer auto-applied updates are passed to.
func WithStyleWriter(w StyleWriter) Option {
	return func(c *Controller) { c.writer = w }
}

// WithResultHandler registers a callback run after every completed tick.
func WithResultHandler(fn func(SyncResult)) Option {
	return func(c *Controller) { c.onResult = fn }
}

// Status is a point-in-time view of a controller
type Status struct {
	Running  bool      `json:"running"`
	LastSync time.Time `json:"lastSync"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Stats    Stats     `json:"stats"`
}

// Stats are cumulative tick counters
type Stats struct {
	Ticks   int64 `json:"ticks"`
	Skipped int64 `json:"skipped"`
	Failed  int64 `json:"failed"`
	Changes int64 `json:"changes"`
	Applied int64 `json:"applied"`
}

// Controller polls Figma on a fixed interval and diffs what it finds against
// the last known snapshot. It is safe for concurrent use.
type Controller struct {
	remote   Remote
	cfg      SyncConfig
	lookup   Lookup
	log      *slog.Logger
	now      func() time.Time
	writer   StyleWriter
	onResult func(SyncResult)

	mu       sync.RWMutex
	snapshot *Snapshot
	lastSync time.Time
	latest   *SyncResult
	running  bool
	stop     chan struct{}
	done     chan struct{}

	inFlight atomic.Bool

	ticks   atomic.Int64
	skipped atomic.Int64
	failed  atomic.Int64
	changes atomic.Int64
	applied atomic.Int64
}

// NewController validates cfg and returns a stopped controller.
func NewController(remote Remote, cfg SyncConfig, opts ...Option) (*Controller, error) {
	if remote == nil {
		return nil, errors.New("figsync: nil remote")
	}
	if cfg.FileKey == "" {
		return nil, &figma.ConfigError{Field: "file key"}
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("figsync: negative sync interval %s", cfg.Interval)
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	cfg.WatchedNodes = append([]string(nil), cfg.WatchedNodes...)

	done := make(chan struct{})
	close(done)

	c := &Controller{
		remote: remote,
		cfg:    cfg,
		lookup: NewLookup(cfg.Selectors, cfg.Components),
		log:    slog.Default(),
		now:    time.Now,
		done:   done,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the controller's configuration.
func (c *Controller) Config() SyncConfig { return c.cfg }

// Start runs one tick synchronously, returns its result, and keeps ticking
// every Interval until Stop is called or ctx is cancelled.
func (c *Controller) Start(ctx context.Context) (SyncResult, error) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return SyncResult{}, ErrAlreadyRunning
	}
	c.running = true
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done
	c.mu.Unlock()

	c.log.Info("figsync: started", "file_key", c.cfg.FileKey, "interval", c.cfg.Interval,
		"nodes", len(c.cfg.WatchedNodes), "auto_apply", c.cfg.AutoApply)

	first := c.Sync(ctx)
	go c.loop(ctx, stop, done)
	return first, nil
}

func (c *Controller) loop(ctx context.Context, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if c.stop == stop {
				c.running = false
			}
			c.mu.Unlock()
			c.log.Info("figsync: stopped", "reason", ctx.Err())
			return
		case <-stop:
			c.log.Info("figsync: stopped")
			return
		case <-ticker.C:
			select {
			case <-stop:
				c.log.Info("figsync: stopped")
				return
			default:
			}
			c.Sync(ctx)
		}
	}
}

// Stop prevents further ticks. A tick in flight runs to completion. Calling
// Stop on a stopped controller does nothing.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stop)
}

// Done is closed once the polling goroutine has exited. It is closed
// for a controller that was never started.
func (c *Controller) Done() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done
}

// Running reports whether the controller is ticking.
func (c *Controller) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// Snapshot returns a copy of the current snapshot, or nil before the first
// successful tick when no baseline was given.
func (c *Controller) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Clone()
}

// LastResult returns the most recent completed tick.
func (c *Controller) LastResult() (SyncResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.latest == nil {
		return SyncResult{}, false
	}
	return *c.latest, true
}

// Stats returns the current counters.
func (c *Controller) Stats() Stats {
	return Stats{
		Ticks:   c.ticks.Load(),
		Skipped: c.skipped.Load(),
		Failed:  c.failed.Load(),
		Changes: c.changes.Load(),
		Applied: c.applied.Load(),
	}
}

// Status returns a consistent copy of the controller state.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		Running:  c.running,
		LastSync: c.lastSync,
		Snapshot: c.snapshot.Clone(),
		Stats:    c.Stats(),
	}
}

// Sync runs one tick. Ticks never overlap: a call made while another tick
// is in flight returns at once with Skipped set. Fetch failures are reported
// in the result's Errors and leave the snapshot untouched.
func (c *Controller) Sync(ctx context.Context) SyncResult {
	result := SyncResult{
		ID:        ulid.Make().String(),
		Timestamp: c.now().UTC(),
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		c.skipped.Add(1)
		result.Skipped = true
		c.log.Debug("figsync: tick skipped, another is in flight")
		return result
	}
	defer c.inFlight.Store(false)

	c.ticks.Add(1)
	start := time.Now()

	doc, err := c.remote.FetchDocument(ctx, c.cfg.FileKey)
	if err != nil {
		return c.fail(result, fmt.Errorf("fetch document: %w", err))
	}
	result.DocumentVersion = doc.Version

	nodes, err := c.remote.FetchNodes(ctx, c.cfg.FileKey, c.cfg.WatchedNodes)
	if err != nil {
		return c.fail(result, fmt.Errorf("fetch nodes: %w", err))
	}

	partial := ExtractTokensFromRemote(nodes)

	c.mu.RLock()
	old := c.snapshot
	c.mu.RUnlock()

	if old != nil {
		result.Changes = Diff(old, partial, c.lookup)
	}

	if c.cfg.AutoApply && len(result.Changes) > 0 {
		applied, updates, errs := Apply(result.Changes, c.lookup, c.writer)
		result.AppliedChanges = applied
		result.Updates = updates
		for _, e := range errs {
			result.Errors = append(result.Errors, e.Error())
			c.log.Warn("figsync: apply failed", "error", e)
		}
	}

	next := overlaySnapshot(old, partial, result.Timestamp)

	c.mu.Lock()
	c.snapshot = next
	c.lastSync = result.Timestamp
	c.latest = &result
	c.mu.Unlock()

	c.changes.Add(int64(len(result.Changes)))
	c.applied.Add(int64(len(result.AppliedChanges)))

	c.log.Info("figsync: tick complete",
		"id", result.ID,
		"version", result.DocumentVersion,
		"nodes", len(nodes),
		"changes", len(result.Changes),
		"applied", len(result.AppliedChanges),
		"duration", time.Since(start))

	c.emit(result)
	return result
}

func (c *Controller) fail(result SyncResult, err error) SyncResult {
	c.failed.Add(1)
	result.Errors = append(result.Errors, err.Error())
	c.log.Warn("figsync: tick failed", "id", result.ID, "error", err)

	c.mu.Lock()
	c.latest = &result
	c.mu.Unlock()

	c.emit(result)
	return result
}

func (c *Controller) emit(result SyncResult) {
	if c.onResult != nil {
		c.onResult(result)
	}
}

// overlaySnapshot returns old with its color, typography and spacing
// collections replaced by the ones read from Figma. Animations and
// components have no remote counterpart and are carried over.
func overlaySnapshot(old *Snapshot, partial PartialSnapshot, at time.Time) *Snapshot {
	next := &Snapshot{Version: DefaultVersion}
	if old != nil {
		next = old.Clone()
	}
	next.Colors = append([]ColorToken(nil), partial.Colors...)
	next.Typography = append([]TypographyToken(nil), partial.Typography...)
	next.Spacing = append([]SpacingToken(nil), partial.Spacing...)
	next.ExtractedAt = at
	next.Source = SourceFigma
	return next
}
