package filespect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filespect/filespect/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List recognized file types",
		Run: func(_ *cobra.Command, _ []string) {
			for _, c := range types.Categories() {
				fmt.Printf("%-12s %s\n", string(c), c.Label())
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
