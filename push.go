package figsync

import (
	"context"
	"encoding/json"
	"fmt"

	core "github.com/yacobolo/figsync/internal/figsync"
)

// Push stages
const (
	StageCreate = "create"
	StageSubmit = "submit"
)

// PushOptions configures Push
type PushOptions struct {
	FileKey      string // Target file; empty creates a new document
	DocumentName string // Name of the created document (default: core.DefaultDocumentName)
}

// PushResult describes a completed push
type PushResult struct {
	FileKey  string          `json:"fileKey"`
	Created  bool            `json:"created"`
	Nodes    int             `json:"nodes"`
	Response json.RawMessage `json:"response,omitempty"`
}

// PushError reports the stage a push failed at. Nothing is rolled back: a
// document created before a failed submit stays in Figma.
type PushError struct {
	Stage   string // "create" or "submit"
	FileKey string // Target file, empty when creation failed
	Err     error
}

func (e *PushError) Error() string {
	if e.FileKey != "" {
		return fmt.Sprintf("push %s (file %s): %v", e.Stage, e.FileKey, e.Err)
	}
	return fmt.Sprintf("push %s: %v", e.Stage, e.Err)
}

func (e *PushError) Unwrap() error { return e.Err }

// Push lays snapshot out as Figma nodes and submits them. Without a file key
// a new document is created first.
func Push(ctx context.Context, remote Remote, snapshot *Snapshot, opts PushOptions) (*PushResult, error) {
	doc := core.BuildPushDocument(snapshot)
	result := &PushResult{FileKey: opts.FileKey, Nodes: len(doc.Nodes)}

	if result.FileKey == "" {
		name := opts.DocumentName
		if name == "" {
			name = doc.Name
		}
		created, err := remote.CreateDocument(ctx, name)
		if err != nil {
			return nil, &PushError{Stage: StageCreate, Err: err}
		}
		result.FileKey = created.Key
		result.Created = true
	}

	resp, err := remote.SubmitNodes(ctx, result.FileKey, doc.Nodes)
	if err != nil {
		return nil, &PushError{Stage: StageSubmit, FileKey: result.FileKey, Err: err}
	}
	result.Response = resp
	return result, nil
}
