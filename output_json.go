package figsync

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the JSON export schema of one sync tick
type JSONOutput struct {
	Version   string         `json:"version"`
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Changes   []DesignChange `json:"changes"`
	Updates   []StyleUpdate  `json:"updates"`
	Errors    []string       `json:"errors"`
}

// JSONSummary contains tick counts
type JSONSummary struct {
	Changes         int    `json:"changes"`
	Applied         int    `json:"applied"`
	Errors          int    `json:"errors"`
	Skipped         bool   `json:"skipped"`
	DocumentVersion string `json:"document_version,omitempty"`
}

// WriteJSON writes the sync result as indented JSON
func WriteJSON(w io.Writer, result SyncResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// WriteSnapshotJSON writes a snapshot as indented JSON
func WriteSnapshotJSON(w io.Writer, snapshot *Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}

func buildJSONOutput(result SyncResult) JSONOutput {
	changes := result.Changes
	if changes == nil {
		changes = []DesignChange{}
	}
	updates := result.Updates
	if updates == nil {
		updates = []StyleUpdate{}
	}
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		ID:        result.ID,
		Timestamp: result.Timestamp.Format(time.RFC3339),
		Summary: JSONSummary{
			Changes:         len(result.Changes),
			Applied:         len(result.AppliedChanges),
			Errors:          len(result.Errors),
			Skipped:         result.Skipped,
			DocumentVersion: result.DocumentVersion,
		},
		Changes: changes,
		Updates: updates,
		Errors:  errs,
	}
}
