package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .figsync.yaml config file",
	Long: `Create a .figsync.yaml configuration file in the current directory.
The access token is best left to $FIGMA_ACCESS_TOKEN.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o600); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# figsync configuration
# Env overrides: FIGSYNC_FILE_KEY, FIGSYNC_SYNC_INTERVAL, ...
# The token falls back to $FIGMA_ACCESS_TOKEN.

file-key: ""              # key or figma.com/file URL; empty creates a file on push
auth-scheme: token        # token | bearer
timeout: 10s
verbose: false

# Local token files overlaid on the built-in design table
source:
  dir: .
  include:
    - "design/**/*.tokens.yaml"
    - "styles/**/*.css"

push:
  name: "Portfolio - Generated from Code"

sync:
  interval: 30s
  nodes: []               # node ids, see: figsync nodes <name>
  auto-apply: false
  apply-to: ""            # CSS file receiving applied updates
  listen: ""              # e.g. :8080 for GET /status
  output-format: text     # text | json | css
  selectors: {}           # token -> extra selectors
  components: {}          # token -> extra components
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
