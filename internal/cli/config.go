package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dshills/scopekey/internal/config"
	"github.com/dshills/scopekey/internal/mask"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the persisted configuration store",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the store contents with the API key masked",
	Run: func(cmd *cobra.Command, args []string) {
		store := config.NewStore(config.DefaultPath())
		values := store.Load()
		if len(values) == 0 {
			fmt.Fprintf(os.Stdout, "Store %s is empty.\n", store.Path)
			return
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := values[k]
			if k == config.KeyAPIKey {
				v = mask.Key(v)
			}
			fmt.Fprintf(os.Stdout, "%-32s: %s\n", k, v)
		}
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the store path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, config.DefaultPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
