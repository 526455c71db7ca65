// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/dfs"
	"github.com/katalvlaran/coachtree/season"
)

type treeNode struct {
	Coach  string       `json:"coach"`
	Depth  int          `json:"depth"`
	Mentor string       `json:"mentor,omitempty"`
	Team   string       `json:"team,omitempty"`
	Years  season.Years `json:"years"`
}

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <coach>",
		Short: "Show a coach's coaching tree",
		Long: `Walk the mentor edges from a coach down to everyone who served under
them, then under those proteges, and so on. The same policy and as-of
filtering as lca applies; --max-depth caps the number of generations.`,
		Example: `  coachtree tree -i coaches.csv "Nick Saban" --max-depth 2`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	g, _, err := s.loadGraph()
	if err != nil {
		return err
	}
	fg, _, err := s.workingGraph(g, "")
	if err != nil {
		return err
	}
	res, err := dfs.DFS(fg, args[0],
		dfs.WithContext(cmd.Context()),
		dfs.WithDirection(dfs.TowardProteges),
		dfs.WithFilterEdge(isMentor),
		dfs.WithMaxDepth(s.cfg.MaxDepth),
	)
	if err != nil {
		return err
	}

	nodes := make([]treeNode, 0, len(res.Preorder))
	for _, id := range res.Preorder {
		n := treeNode{Coach: id, Depth: res.Depth[id]}
		if e, ok := res.ParentEdge[id]; ok {
			n.Mentor, n.Team, n.Years = e.To, e.Team, e.Years
		}
		nodes = append(nodes, n)
	}

	w := cmd.OutOrStdout()
	if done, err := emit(w, s.cfg, nodes); done {
		return err
	}
	t := newTable(w, "Coaching tree of "+args[0], "Coach", "Under", "Team", "Seasons")
	for _, n := range nodes {
		years := ""
		if !n.Years.IsEmpty() {
			years = n.Years.String()
		}
		t.AppendRow(table.Row{strings.Repeat("  ", n.Depth) + n.Coach, n.Mentor, n.Team, years})
	}
	t.Render()

	return nil
}
