// renamectl renames invoice PDFs from the command line, through the same
// pipeline the web server uses.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"invoice-renamer/internal/archive"
	"invoice-renamer/internal/rename"
	"invoice-renamer/internal/renamer"
)

func main() {
	root := &cobra.Command{
		Use:          "renamectl",
		Short:        "Rename invoice PDFs from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		dir    string
		scheme string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rename every PDF in a directory and write the ZIP",
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, ok := rename.SchemeByName(scheme)
			if !ok {
				return fmt.Errorf("unknown scheme %q (have: %s)", scheme, strings.Join(rename.SchemeNames(), ", "))
			}

			uploads, err := loadPDFs(dir)
			if err != nil {
				return err
			}
			if len(uploads) == 0 {
				return fmt.Errorf("no PDF files in %s", dir)
			}

			files := renamer.NewService().Rename(cmd.Context(), sch, uploads)
			blob, err := archive.Build(files)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, blob, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d files)\n", out, len(files))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory containing PDF invoices")
	cmd.Flags().StringVar(&scheme, "scheme", "customer", "renaming scheme: "+strings.Join(rename.SchemeNames(), ", "))
	cmd.Flags().StringVar(&out, "out", "renamed_invoices.zip", "output archive path")
	return cmd
}

// loadPDFs reads every .pdf in dir, in directory order.
func loadPDFs(dir string) ([]renamer.Upload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var uploads []renamer.Upload
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, renamer.Upload{OriginalName: entry.Name(), Data: data})
	}
	return uploads, nil
}
