package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figsync"
	"github.com/yacobolo/figsync/internal/figma"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the local design tokens to Figma",
	Long: `Lay the local token snapshot out as a design frame and a color palette
frame and submit them to Figma. Without a file key a new document is created.`,
	RunE: runPush,
}

func init() {
	f := pushCmd.Flags()
	f.String("source", ".", "Directory token file patterns are relative to")
	f.StringSlice("include", nil, "Glob patterns for token files (*.yaml, *.css)")
	f.String("name", "", "Name of the created document")
}

func runPush(cmd *cobra.Command, _ []string) error {
	snapshot, err := localSnapshot()
	if err != nil {
		return err
	}

	client, err := figma.NewClient(buildClientConfig())
	if err != nil {
		return err
	}

	result, err := figsync.Push(cmd.Context(), client, snapshot, buildPushOptions())
	if err != nil {
		return err
	}

	if !getBool("quiet", false) {
		verb := "Updated"
		if result.Created {
			verb = "Created"
		}
		fmt.Fprintf(os.Stdout, "%s file %s (%d frames, %d colors)\n",
			verb, result.FileKey, result.Nodes, len(snapshot.Colors))
	}
	return nil
}
