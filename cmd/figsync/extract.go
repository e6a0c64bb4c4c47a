package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figsync"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the local design token snapshot",
	Long: `Load the built-in design table, overlay the token files selected by
source.dir and source.include, and print the resulting snapshot.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.String("source", ".", "Directory token file patterns are relative to")
	f.StringSlice("include", nil, "Glob patterns for token files (*.yaml, *.css)")
	f.String("output-format", "text", "Output format: text|json")
}

func runExtract(_ *cobra.Command, _ []string) error {
	snapshot, err := localSnapshot()
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}
	format := figsync.DetermineOutputFormat(getString("sync.output-format", "text"), false)
	return figsync.WriteSnapshot(os.Stdout, snapshot, format, getBool("color", false))
}

// localSnapshot extracts the configured local token source. Unreadable
// token files are logged and skipped.
func localSnapshot() (*figsync.Snapshot, error) {
	src, warnings, err := figsync.LoadSource(buildSourceConfig())
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn("figsync: token source", "warning", w)
	}
	return figsync.Extract(src), nil
}
