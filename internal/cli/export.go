// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/export"
	"github.com/katalvlaran/coachtree/staff"
)

// ErrTeamNeedsYear is returned when export gets --team without --year.
var ErrTeamNeedsYear = errors.New("cli: --team needs --year")

func newExportCommand() *cobra.Command {
	var (
		full bool
		out  string
		team string
		year int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the lineage graph as JSON graph elements",
		Long: `Write every coach and relation as a list of {"data": {...}} elements.

By default only one direction of each relation is written, which is all a
viewer needs. --full writes both directions for exploration. With --team and
--year only that staff and the relations among them are written.`,
		Example: `  coachtree export -i coaches.csv --out elements.json
  coachtree export -i coaches.csv --full > full_elements.json
  coachtree export -i coaches.csv --team Georgia --year 2021`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			g, _, err := s.loadGraph()
			if err != nil {
				return err
			}
			if team != "" {
				if year == 0 {
					return ErrTeamNeedsYear
				}
				if g, err = staff.Graph(g, team, year); err != nil {
					return err
				}
			}
			doc, err := export.Elements(g, full)
			if err != nil {
				return err
			}
			if out == "" {
				return export.WriteElements(cmd.OutOrStdout(), doc, true)
			}

			fh, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cli: create %s: %w", out, err)
			}
			if err := export.WriteElements(fh, doc, true); err != nil {
				_ = fh.Close()
				return err
			}
			s.logger.Info("elements written", "path", out, "nodes", len(doc.Nodes), "edges", len(doc.Edges))

			return fh.Close()
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "write both directions of every relation")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&team, "team", "", "export only this team's staff (needs --year)")
	cmd.Flags().IntVar(&year, "year", 0, "season of the --team staff")

	return cmd
}
