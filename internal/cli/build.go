// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/core"
	"github.com/katalvlaran/coachtree/dfs"
)

type buildView struct {
	Records      int            `json:"records"`
	Accepted     int            `json:"accepted"`
	Duplicates   int            `json:"duplicates"`
	Coaches      int            `json:"coaches"`
	Edges        int            `json:"edges"`
	Teams        int            `json:"teams"`
	ByStatus     map[string]int `json:"by_status"`
	Skipped      []string       `json:"skipped"`
	Unclassified []string       `json:"unclassified"`
	Cycles       [][]string     `json:"cycles"`
}

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the lineage graph and report on the input data",
		Long: `Build the mentorship graph from the input records and summarise it:
record counts, edges per mentor status, rows that were skipped and
positions missing from the seniority mapping. Coaches who each ranked
above the other on different staffs are listed as mentorship cycles.`,
		Example: `  coachtree build -i coaches.csv
  coachtree build -i coaches.csv --seniority-file levels.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	g, rep, err := s.loadGraph()
	if err != nil {
		return err
	}

	st := g.Stats()
	v := buildView{
		Records:    rep.Records,
		Accepted:   rep.Accepted,
		Duplicates: rep.Duplicates,
		Coaches:    st.Vertices,
		Edges:      st.Edges,
		Teams:      st.Teams,
		ByStatus:   make(map[string]int, len(st.ByStatus)),
	}
	for status, n := range st.ByStatus {
		v.ByStatus[status.String()] = n
	}
	for _, dq := range rep.Skipped {
		v.Skipped = append(v.Skipped, dq.Error())
	}
	for _, up := range rep.Unclassified {
		v.Unclassified = append(v.Unclassified, up.Position)
	}
	if v.Cycles, err = dfs.DetectCycles(g, isMentor); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if done, err := emit(w, s.cfg, v); done {
		return err
	}

	t := newTable(w, "Lineage graph")
	t.AppendRows([]table.Row{
		{"Records", v.Records},
		{"Accepted", v.Accepted},
		{"Skipped", len(v.Skipped)},
		{"Duplicate pairs", v.Duplicates},
		{"Coaches", v.Coaches},
		{"Teams", v.Teams},
		{"Edges", v.Edges},
	})
	t.AppendSeparator()
	for _, status := range []core.MentorStatus{core.Mentor, core.EqualStanding, core.NotAMentor} {
		t.AppendRow(table.Row{status.String(), st.ByStatus[status]})
	}
	t.Render()

	if len(v.Skipped) > 0 {
		sk := newTable(w, "Skipped records", "#", "Reason")
		for i, msg := range v.Skipped {
			sk.AppendRow(table.Row{i + 1, msg})
		}
		sk.Render()
	}
	if len(v.Unclassified) > 0 {
		uc := newTable(w, "Unclassified positions", "Position")
		for _, p := range v.Unclassified {
			uc.AppendRow(table.Row{p})
		}
		uc.Render()
	}
	if len(v.Cycles) > 0 {
		cy := newTable(w, "Mentorship cycles", "Coaches")
		for _, c := range v.Cycles {
			cy.AppendRow(table.Row{strings.Join(c, " -> ")})
		}
		cy.Render()
	}

	return nil
}

func isMentor(e *core.Edge) bool { return e.Status == core.Mentor }
