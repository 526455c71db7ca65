// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/ancestry"
	"github.com/katalvlaran/coachtree/export"
)

func newLCACommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lca <coach> <coach> [coach...]",
		Short: "Find the lowest common coaching ancestor",
		Long: `Find the closest shared mentor of each pair of coaches, following only
lineage paths that run backwards in time.

The graph is first reduced to mentor relations that started no later than
--as-of. Relations among the current staff of --subject (default: the first
coach named) are dropped so that colleagues do not count as ancestors.`,
		Example: `  coachtree lca -i coaches.csv "Dan Lanning" "Will Stein" --as-of 2025
  coachtree lca -i coaches.csv A B C --policy permissive -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: runLCA,
	}
}

func runLCA(cmd *cobra.Command, args []string) error {
	s, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	g, _, err := s.loadGraph()
	if err != nil {
		return err
	}
	subject := s.cfg.Subject
	if subject == "" {
		subject = args[0]
	}
	work, _, err := s.workingGraph(g, subject)
	if err != nil {
		return err
	}
	searcher, err := ancestry.NewSearcher(work, s.cfg.CacheSize,
		ancestry.WithContext(cmd.Context()),
		ancestry.WithMaxFanOut(s.cfg.MaxFanOut),
		ancestry.WithMaxDepth(s.cfg.MaxDepth),
		ancestry.WithLogger(s.logger),
		ancestry.WithMetrics(s.metrics),
	)
	if err != nil {
		return err
	}

	var views []*export.Result
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			res, err := searcher.LowestCommonAncestor(args[i], args[j])
			if err != nil {
				return err
			}
			v, err := export.FromResult(work, res)
			if err != nil {
				return err
			}
			views = append(views, v)
		}
	}

	w := cmd.OutOrStdout()
	var payload any = views
	if len(views) == 1 {
		payload = views[0]
	}
	if done, err := emit(w, s.cfg, payload); done {
		return err
	}
	for _, v := range views {
		renderResult(w, v)
	}

	return nil
}

func renderResult(w io.Writer, v *export.Result) {
	title := fmt.Sprintf("%s / %s: %s", v.CoachA, v.CoachB, v.Status)
	if v.Status != ancestry.Found {
		t := newTable(w, title)
		t.AppendRow(table.Row{"Shared ancestors", v.Candidates})
		t.Render()
		return
	}

	t := newTable(w, title, "Side", "Step", "Coach", "Mentor", "Team", "Seasons")
	for _, side := range []struct {
		name string
		path export.Path
	}{{v.CoachA, v.PathA}, {v.CoachB, v.PathB}} {
		for i, e := range side.path.Edges {
			t.AppendRow(table.Row{side.name, i + 1, e.Source, e.Target, e.Team, e.Years.String()})
		}
	}
	if v.Ancestor != nil && v.TotalDistance != nil {
		t.AppendFooter(table.Row{"", "", "", "Ancestor", *v.Ancestor, fmt.Sprintf("distance %d", *v.TotalDistance)})
	}
	t.Render()
}
