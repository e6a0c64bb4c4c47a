package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figsync/internal/figma"
)

var imagesCmd = &cobra.Command{
	Use:   "images <node>...",
	Short: "Print rendered image URLs for Figma nodes",
	Long: `Ask Figma to render the given nodes and print the image URLs. Nodes may
be given as ids or as Figma URLs carrying a node-id parameter.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImages,
}

func init() {
	f := imagesCmd.Flags()
	f.String("format", "png", "Image format: jpg|png|svg|pdf")
	f.Float64("scale", 1, "Image scale (0.01 to 4)")
}

func runImages(cmd *cobra.Command, args []string) error {
	client, err := figma.NewClient(buildClientConfig())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	scale, _ := cmd.Flags().GetFloat64("scale")

	urls, err := client.FetchImages(cmd.Context(), fileKey(), nodeIDs(args), format, scale)
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}
	ids := make([]string, 0, len(urls))
	for id := range urls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		u := urls[id]
		if u == "" {
			u = "(not rendered)"
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", id, u)
	}
	return nil
}
