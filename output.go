package figsync

import (
	"fmt"
	"io"
	"os"

	core "github.com/yacobolo/figsync/internal/figsync"
)

// OutputFormat selects how sync results are written
type OutputFormat string

// Output formats
const (
	OutputText OutputFormat = "text" // Change lines and summary
	OutputJSON OutputFormat = "json" // One JSON document per tick
	OutputCSS  OutputFormat = "css"  // Applied style updates as CSS rules
)

// DetermineOutputFormat selects the output format from the requested name.
// Quiet and unknown names fall back to text.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputText
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	case "css":
		return OutputCSS
	default:
		return OutputText
	}
}

// WriteOutput writes one sync result in the given format.
func WriteOutput(w io.Writer, result SyncResult, format OutputFormat, forceColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	case OutputCSS:
		// Errors go to stderr so stdout stays valid CSS.
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "figsync: %s\n", e)
		}
		return core.WriteStyleRules(w, result.Updates)

	default:
		reporter := core.NewReporter(w, forceColors, true)
		reporter.PrintResult(result)
		return nil
	}
}

// WriteSnapshot writes a snapshot as JSON or as a human-readable listing.
func WriteSnapshot(w io.Writer, snapshot *Snapshot, format OutputFormat, forceColors bool) error {
	if format == OutputJSON {
		return WriteSnapshotJSON(w, snapshot)
	}
	core.NewVerboseReporter(w, core.ShouldUseColors(forceColors)).PrintSnapshot(snapshot)
	return nil
}

// WriteStyleRules writes style updates as CSS rule blocks.
func WriteStyleRules(w io.Writer, updates []StyleUpdate) error {
	return core.WriteStyleRules(w, updates)
}
