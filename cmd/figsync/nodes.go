package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figsync/internal/figma"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes [name]",
	Short: "List document nodes whose name contains a search term",
	Long: `Search the Figma document tree for nodes whose name contains the given
term (case-insensitive) and print their ids, for use with sync --nodes.
Without a term every node is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNodes,
}

func runNodes(cmd *cobra.Command, args []string) error {
	client, err := figma.NewClient(buildClientConfig())
	if err != nil {
		return err
	}

	doc, err := client.FetchDocument(cmd.Context(), fileKey())
	if err != nil {
		return err
	}

	term := ""
	if len(args) > 0 {
		term = args[0]
	}
	matches := figma.FindNodes(doc.Root, term)

	if getBool("quiet", false) {
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, n := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Type, n.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d nodes in %q (version %s)\n", len(matches), doc.Name, doc.Version)
	return nil
}
