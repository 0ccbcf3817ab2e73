package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/scopekey/internal/dashscope"
)

var embedCmd = &cobra.Command{
	Use:   "embed <text>",
	Short: "Embed a text and print the vector head (connectivity check)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dashscope.NewFromEnv()
		if err != nil {
			exitCode = ExitIncomplete
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}

		vec, err := client.EmbedOne(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("embedding text: %w", err)
		}

		head := vec
		if len(head) > 8 {
			head = head[:8]
		}
		fmt.Fprintf(os.Stdout, "model: %s\ndimensions: %d\nhead: %v\n",
			client.EmbeddingModel(), len(vec), head)
		return nil
	},
}
