package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
)

func newImportCommand(rt *runtime) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CSV or XLSX bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = statement.FormatFromFilename(path)
			}
			reader := rt.readers.Get(format)
			if reader == nil {
				return fmt.Errorf("unsupported statement format %q for %s", format, filepath.Base(path))
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open statement: %w", err)
			}
			defer func() { _ = file.Close() }()

			rows, err := reader.Read(file)
			if err != nil {
				return fmt.Errorf("read statement: %w", err)
			}

			result, importErr := rt.services.Reconciler.ImportBatch(cmd.Context(), rows)
			if result != nil {
				if err := printJSON(cmd.OutOrStdout(), dto.NewImportResponse(result)); err != nil {
					return err
				}
			}
			return importErr
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "statement format (csv or xlsx); detected from the file extension when empty")
	return cmd
}

func newRerunCommand(rt *runtime) *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "rerun",
		Short: "Re-run automatic matching over unmatched and auto rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := rt.services.Reconciler.RerunAutoMatch(cmd.Context(), ids)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewRerunResponse(result))
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "restrict the pass to these transaction IDs")
	return cmd
}
