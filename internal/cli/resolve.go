package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/scopekey/internal/config"
	"github.com/dshills/scopekey/internal/dashscope"
	"github.com/dshills/scopekey/internal/prompt"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve credentials and endpoints, prompting for any missing values",
	Long: `Resolve loads the persisted configuration, prompts for anything missing
(API key with hidden input, region as a yes/no question), persists the merged
result, and publishes it into the process environment. It never fails; an
incomplete configuration is reported as a warning and exit code 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := &config.Resolver{
			Store:    config.NewStore(config.DefaultPath()),
			Prompter: prompt.NewConsole(),
			Native:   dashscope.Native,
		}
		resolved := resolver.Resolve()

		renderSummary(os.Stdout, config.Summarize())

		if !resolved.Complete() {
			exitCode = ExitIncomplete
		}
		return nil
	},
}
