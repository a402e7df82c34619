package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole store as indented JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return c.service.Export(c.out)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", output, err)
			}
			defer f.Close()

			if err := c.service.Export(f); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Exported store to %q.\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
