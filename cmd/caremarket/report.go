package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GenghisKhal/assignment3/internal/lib/utils"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/service"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "List and run the marketplace reports",
	}

	list := &cobra.Command{
		Use:         "list",
		Short:       "List the report catalogue",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWRITE\tDESCRIPTION")
			for _, rep := range service.NewReportService(nil).Reports() {
				fmt.Fprintf(w, "%s\t%t\t%s\n", rep.Name, rep.Write, rep.Description)
			}
			return w.Flush()
		},
	}

	var (
		params  map[string]string
		jsonOut bool
	)
	run := &cobra.Command{
		Use:   "run NAME",
		Short: "Run one report; --param overrides its defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReports(cmd, func(reports *service.ReportService) error {
				if _, err := reports.Lookup(args[0]); err != nil {
					return err
				}
				if args[0] == "applications-view" {
					if err := reports.PrepareView(cmd.Context()); err != nil {
						return err
					}
				}

				result, err := reports.Run(cmd.Context(), args[0], service.Params(params))
				if err != nil {
					return err
				}
				if jsonOut {
					return utils.WriteJSON(cmd.OutOrStdout(), result)
				}
				return printTable(cmd.OutOrStdout(), service.Tabulate(result))
			})
		},
	}
	run.Flags().StringToStringVarP(&params, "param", "p", nil, "report parameter as key=value, repeatable")
	run.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")

	all := &cobra.Command{
		Use:   "all",
		Short: "Run the whole catalogue in order with default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withReports(cmd, func(reports *service.ReportService) error {
				out := cmd.OutOrStdout()
				for _, rep := range reports.Reports() {
					if rep.Name == "applications-view" {
						if err := reports.PrepareView(cmd.Context()); err != nil {
							return err
						}
					}

					result, err := reports.Run(cmd.Context(), rep.Name, nil)
					if err != nil {
						return fmt.Errorf("report %s: %w", rep.Name, err)
					}

					fmt.Fprintf(out, "== %s: %s\n", rep.Name, rep.Description)
					if err := printTable(out, service.Tabulate(result)); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(list, run, all)
	return cmd
}

// withReports connects to the database for the duration of fn.
func (a *app) withReports(cmd *cobra.Command, fn func(*service.ReportService) error) error {
	srv, err := server.New(cmd.Context(), a.cfg, &a.logger, a.loggerService)
	if err != nil {
		return err
	}
	defer srv.DB.Close()

	return fn(service.NewServices(srv).Reports)
}

func printTable(out io.Writer, t service.Table) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(t.Columns, "\t")))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
	}
	return w.Flush()
}
