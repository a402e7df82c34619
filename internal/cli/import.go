package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lwenger/vocatrain/internal/importer"
	"github.com/lwenger/vocatrain/internal/service"
)

func (c *CLI) importCommand() *cobra.Command {
	var (
		name      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.docx>",
		Short: "Import word pairs from a Word document",
		Long: "Import word pairs from a .docx file containing either a two-column\n" +
			"table (German left, French right; the first row may carry headers)\n" +
			"or lines of the form \"deutsch ; français\". Duplicates are removed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			hint := name
			if hint == "" {
				base := filepath.Base(path)
				hint = strings.TrimSuffix(base, filepath.Ext(base))
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", path, err)
			}

			coll, err := c.service.ImportDocument(cmd.Context(), data, hint, overwrite)
			switch {
			case errors.Is(err, importer.ErrEmpty):
				fmt.Fprintln(c.out, "No word pairs were recognized in the document; nothing imported.")
				return nil
			case errors.Is(err, service.ErrDuplicateCollection):
				return fmt.Errorf("collection %q already exists; pass --overwrite or choose another name with --name", hint)
			case err != nil:
				return err
			}

			fmt.Fprintf(c.out, "Imported %d entries into %q.\n", len(coll.Items), coll.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "collection name (default: file name without extension)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing collection of the same name")

	return cmd
}
