package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/logger"
	"github.com/leftweet/nextgamesnippet/internal/notifier"
	"github.com/leftweet/nextgamesnippet/internal/snippet"
	"github.com/leftweet/nextgamesnippet/internal/web"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const shutdownTimeout = 10 * time.Second

var (
	flagTeam    string
	flagFormat  string
	flagSummary bool
	flagVerbose bool
	flagSort    string
	flagAddr    string
	flagTo      string
)

// loadConfig and newService are replaced in tests
var (
	loadConfig = config.New
	newService = func(cfg *config.Config) (web.Service, error) {
		svc, err := snippet.New(cfg)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextgame",
		Short: "Show a baseball team's next game",
		Long: `A CLI tool that scrapes a team's schedule page for its next game,
normalizes the details, and optionally writes a short preview with a text-generation API.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newTeamsCmd(), newFetchCmd(), newServeCmd(), newShareCmd())

	return cmd
}

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List the teams that can be looked up",
		RunE:  runTeams,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "name", "Sort order: name, abbr or mascot")

	return cmd
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print a team's next game",
		RunE:  runFetch,
	}

	cmd.Flags().StringVar(&flagTeam, "team", "", "Team name, mascot or abbreviation (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or ics")
	cmd.Flags().BoolVar(&flagSummary, "summary", false, "Generate a short preview (needs GEMINI_API_KEY)")

	cmd.MarkFlagRequired("team")

	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default LISTEN_ADDR or :8080)")

	return cmd
}

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Post a team's next game snippet",
		RunE:  runShare,
	}

	cmd.Flags().StringVar(&flagTeam, "team", "", "Team name, mascot or abbreviation (required)")
	cmd.Flags().StringVar(&flagTo, "to", notifier.ChannelDryRun, "Channel: dry-run, twitter or telegram")

	cmd.MarkFlagRequired("team")

	return cmd
}

// setup loads configuration, installs the default logger and builds the service
func setup(cmd *cobra.Command) (*config.Config, web.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := cfg.Logger(cmd.ErrOrStderr())
	if flagVerbose {
		log = logger.New(logger.LevelDebug, cmd.ErrOrStderr())
	}
	logger.SetDefault(log)

	svc, err := newService(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing service: %w", err)
	}
	return cfg, svc, nil
}

func runTeams(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(strings.ToLower(flagFormat))
	if err != nil {
		return err
	}
	order, ok := parseSortOrder(flagSort)
	if !ok {
		return fmt.Errorf("invalid sort: %s (must be 'name', 'abbr' or 'mascot')", flagSort)
	}

	_, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	teams := svc.Directory().All()
	sortTeams(teams, order)
	return WriteTeams(cmd.OutOrStdout(), teams, format)
}

func runFetch(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(strings.ToLower(flagFormat))
	if err != nil {
		return err
	}

	_, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	if flagSummary && !svc.SummaryEnabled() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --summary ignored, GEMINI_API_KEY is not set")
	}

	report, err := svc.Lookup(cmd.Context(), flagTeam, flagSummary)
	if err != nil {
		return fmt.Errorf("%s", snippet.UserMessage(err))
	}

	if report.Warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", report.Warning)
	}

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Report:    report,
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(addr, svc)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	n, err := notifier.New(flagTo, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	report, err := svc.Lookup(cmd.Context(), flagTeam, true)
	if err != nil {
		return fmt.Errorf("%s", snippet.UserMessage(err))
	}
	if report.Summary != nil && !report.Summary.Copyable() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", report.Summary.Text)
	}

	post := notifier.FormatPost(report.Game, report.Summary)
	if err := n.Notify(cmd.Context(), post); err != nil {
		return fmt.Errorf("sharing snippet: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
