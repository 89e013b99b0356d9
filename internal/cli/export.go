package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/table"
)

func newExportCmd(g *globalOptions) *cobra.Command {
	var (
		query    string
		sortFlag string
		page     int
		pageSize int
		all      bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print users without the interactive table",
		Long: `Fetch the users list and print one page of it, filtered and sorted the same
way the interactive table does.

Examples:
  roster export --query jacksonville
  roster export --sort age:desc --page 2
  roster export --all --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sortState, err := parseSort(sortFlag)
			if err != nil {
				return flagError("sort", sortFlag, err, "roster export --sort name", "roster export --sort age:desc")
			}
			f, err := app.ParseFormat(format)
			if err != nil {
				return flagError("format", format, err, "roster export --format json")
			}
			if page < 1 {
				return flagError("page", fmt.Sprint(page), fmt.Errorf("pages start at 1"), "roster export --page 1")
			}

			return runExport(cmd.Context(), g, app.ExportOptions{
				Query:    query,
				Sort:     sortState,
				Page:     page,
				All:      all,
				PageSize: pageSize,
				Format:   f,
			}, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&query, "query", "q", "", "case-insensitive search over name, age, gender, phone and address")
	flags.StringVarP(&sortFlag, "sort", "s", "", "sort column with optional direction, e.g. age:desc")
	flags.IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	flags.IntVar(&pageSize, "page-size", 0, "rows per page (default from config)")
	flags.BoolVarP(&all, "all", "a", false, "print every matching row instead of one page")
	flags.StringVarP(&format, "format", "f", "plain", "output format: plain, json or raw")

	return cmd
}

// parseSort reads "column[:asc|desc]". The column may be given by id or
// title; a missing direction means ascending.
func parseSort(s string) (table.SortState, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return table.SortState{}, nil
	}
	name, dirText, _ := strings.Cut(s, ":")

	specs := table.DefaultColumns()
	id, ok := table.ParseColumnID(specs, strings.TrimSpace(name))
	if !ok {
		return table.SortState{}, fmt.Errorf("%w: %q", table.ErrUnknownColumn, name)
	}
	spec, _ := table.Lookup(specs, id)
	if !spec.Sortable {
		return table.SortState{}, fmt.Errorf("column %s is not sortable", spec.Title)
	}
	dir, err := table.ParseDirection(dirText)
	if err != nil {
		return table.SortState{}, err
	}
	return table.SortState{Column: id, Direction: dir}, nil
}
