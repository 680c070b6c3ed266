package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
	"github.com/mumpitzstuff/goodTimes/internal/export"
)

func newReportCmd(app *App) *cobra.Command {
	var dateFormat string
	var exportPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the working time report",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewReportRequest()

			resp, err := app.Report.BuildReport(context.Background(), req)
			if err != nil {
				var rerr *contract.ReportError
				if errors.As(err, &rerr) {
					// Report mode degrades instead of failing when no
					// log can be read, e.g. right after installation.
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No report: "+rerr.Message))
					return nil
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp, dateFormat))

			if exportPath != "" {
				if err := export.WriteFile(exportPath, resp); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Exported to "+exportPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFormat, "date-format", "", "Date column layout in Go time format (default \""+formatter.DefaultDateFormat+"\")")
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write the report to a .xlsx or .csv file")

	return cmd
}
