// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/staff"
)

type staffView struct {
	Team    string         `json:"team"`
	Year    int            `json:"year"`
	Levels  []int          `json:"levels"`
	Roots   []string       `json:"roots"`
	Members []staff.Member `json:"members"`
	Links   [][2]string    `json:"links"`
}

func newStaffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "staff <team> <year>",
		Short: "Show the seniority hierarchy of one staff",
		Example: `  coachtree staff -i coaches.csv Oregon 2024`,
		Args:    cobra.ExactArgs(2),
		RunE:    runStaff,
	}
}

func runStaff(cmd *cobra.Command, args []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("cli: year %q: %w", args[1], err)
	}
	g, _, err := s.loadGraph()
	if err != nil {
		return err
	}
	tree, err := staff.Hierarchy(g, args[0], year)
	if err != nil {
		return err
	}

	v := staffView{Team: tree.Team, Year: tree.Year, Roots: tree.Roots, Members: tree.Members}
	for _, l := range tree.Levels {
		v.Levels = append(v.Levels, int(l))
	}
	for _, e := range tree.Edges {
		v.Links = append(v.Links, [2]string{e.From, e.To})
	}

	w := cmd.OutOrStdout()
	if done, err := emit(w, s.cfg, v); done {
		return err
	}

	reportsTo := make(map[string][]string)
	for _, l := range v.Links {
		reportsTo[l[0]] = append(reportsTo[l[0]], l[1])
	}
	t := newTable(w, fmt.Sprintf("%s %d", tree.Team, tree.Year), "Level", "Coach", "Position", "Reports to")
	for _, m := range tree.Members {
		t.AppendRow(table.Row{m.Level.String(), m.Coach, m.Position, strings.Join(reportsTo[m.Coach], ", ")})
	}
	t.Render()

	return nil
}

func newCareerCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "career <coach>",
		Short:   "List a coach's jobs season by season",
		Example: `  coachtree career -i coaches.csv "Dan Lanning"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCareer,
	}
}

func runCareer(cmd *cobra.Command, args []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	g, _, err := s.loadGraph()
	if err != nil {
		return err
	}
	jobs, err := staff.Career(g, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if done, err := emit(w, s.cfg, jobs); done {
		return err
	}
	t := newTable(w, args[0], "Season", "Team", "Position")
	for _, j := range jobs {
		t.AppendRow(table.Row{j.Year, j.Team, j.Position})
	}
	t.Render()

	return nil
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the teams and seasons in the input",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	g, _, err := s.loadGraph()
	if err != nil {
		return err
	}
	idx, err := staff.Catalog(g)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if done, err := emit(w, s.cfg, idx); done {
		return err
	}
	teams := newTable(w, "Teams", "Team")
	for _, team := range idx.Teams {
		teams.AppendRow(table.Row{team})
	}
	teams.Render()
	years := newTable(w, "Seasons", "Season")
	for _, y := range idx.Years {
		years.AppendRow(table.Row{y})
	}
	years.Render()

	return nil
}
