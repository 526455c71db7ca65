// SPDX-License-Identifier: MIT

// Package cli provides the coachtree command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coachtree/internal/config"
	"github.com/katalvlaran/coachtree/internal/logging"
	"github.com/katalvlaran/coachtree/metrics"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// sessionKey stores the *session in the command context.
type sessionKey struct{}

// session is what every subcommand needs: settings, logger, collectors.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collectors
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, fmt.Errorf("cli: %s: configuration not loaded", cmd.Name())
	}

	return s, nil
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "coachtree",
		Short: "Coaching mentorship lineage explorer",
		Long: `coachtree builds a mentorship graph from coaching job records and answers
lineage questions about it: shared mentors, staff hierarchies, careers.

Job records are read from a CSV file with the columns Name, Team, Position,
Start Year, End Year and Seasons at Position.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			s := &session{
				cfg:      cfg,
				logger:   logging.New(cmd.ErrOrStderr(), logging.Params{Debug: cfg.Verbose}),
				registry: reg,
				metrics:  metrics.New(reg),
			}
			if cfg.File != "" {
				s.logger.Debug("using config file", "path", cfg.File)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, s))

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			s, ok := cmd.Context().Value(sessionKey{}).(*session)
			if !ok || s.cfg.MetricsFile == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(s.cfg.MetricsFile, s.registry); err != nil {
				return fmt.Errorf("cli: write metrics: %w", err)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	pf.StringP("input", "i", "", "CSV file of coaching job records")
	pf.String("seniority-file", "", "YAML position-to-seniority mapping")
	pf.String("policy", "", "mentorship policy (strict|permissive)")
	pf.Int("as-of", 0, "ignore relations that started after this season")
	pf.String("subject", "", "coach whose current staff is excluded from lineage queries")
	pf.Int("subject-year", 0, "season used to find the subject's current staff (default: as-of)")
	pf.Int("max-fan-out", 0, "cap on mentor edges expanded per coach (0 = unlimited)")
	pf.Int("max-depth", 0, "cap on lineage steps searched (0 = unlimited)")
	pf.Int("cache-size", 0, "ancestry cache entries")
	pf.StringP("output", "o", "", "output format (table|json)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")

	_ = root.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("policy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"strict", "permissive"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newBuildCommand(),
		newLCACommand(),
		newStaffCommand(),
		newCareerCommand(),
		newCatalogCommand(),
		newTreeCommand(),
		newExportCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return run(NewRootCmd(), os.Stderr)
}

func run(root *cobra.Command, stderr io.Writer) error {
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "coachtree v%s (%s)\n", Version, GitCommit)
		},
	}
}
