package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) collectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "Show the stored collections and their sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			colls := c.service.Collections()
			if len(colls) == 0 {
				fmt.Fprintln(c.out, "No collections stored yet.")
				return nil
			}

			total := 0
			for _, coll := range colls {
				fmt.Fprintf(c.out, "- %s: %d entries\n", coll.Name, len(coll.Items))
				total += len(coll.Items)
			}
			fmt.Fprintf(c.out, "Total: %d entries\n", total)

			return nil
		},
	}
}
