package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a site file (roster and affairs)",
		Long:  "Import a JSON site file. The whole file lands in one transaction; any invalid row cancels the import.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSiteFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d workers, %d affairs, %d phases\n",
				result.WorkerCount, result.AffairCount, result.PhaseCount)
			return nil
		},
	}
}
