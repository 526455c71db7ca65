// SPDX-License-Identifier: MIT

// Package logging builds the *slog.Logger handed to library packages.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Params configures a console logger.
type Params struct {
	Debug     bool
	Timestamp bool
}

// New returns a slog logger writing styled console output to w. The
// charmbracelet logger is the slog handler.
func New(w io.Writer, p Params) *slog.Logger {
	level := log.InfoLevel
	if p.Debug {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: p.Timestamp,
		Level:           level,
	})

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
