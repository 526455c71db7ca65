// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/coachtree/export"
	"github.com/katalvlaran/coachtree/internal/config"
)

func newTable(w io.Writer, title string, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	if len(header) > 0 {
		t.AppendHeader(header)
	}

	return t
}

// emit writes v as JSON when the output mode asks for it and reports whether
// it did.
func emit(w io.Writer, cfg *config.Config, v any) (bool, error) {
	if cfg.Output != config.OutputJSON {
		return false, nil
	}

	return true, export.WriteJSON(w, v, true)
}
