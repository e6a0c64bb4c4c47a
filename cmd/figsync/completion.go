package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for figsync commands and flags.

  source <(figsync completion bash)
  figsync completion zsh > "${fpath[1]}/_figsync"`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		descriptions, _ := cmd.Flags().GetBool("descriptions")
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, descriptions)
		case "zsh":
			if descriptions {
				return rootCmd.GenZshCompletion(out)
			}
			return rootCmd.GenZshCompletionNoDesc(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, descriptions)
		case "powershell":
			if descriptions {
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			}
			return rootCmd.GenPowerShellCompletion(out)
		}
		return nil
	},
}

func init() {
	completionCmd.Flags().Bool("descriptions", true, "Include flag and command descriptions")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
