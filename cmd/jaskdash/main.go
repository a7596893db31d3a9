package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/jaskdash/internal/config"
	"github.com/jask/jaskdash/internal/dashboard"
	"github.com/jask/jaskdash/internal/ids"
	"github.com/jask/jaskdash/internal/logging"
	"github.com/jask/jaskdash/internal/tabsapi"
	"github.com/jask/jaskdash/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "jaskdash: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jaskdash",
		Short:         "Terminal dashboard for the /api/tabs resource",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return runDashboard(cmd.Context(), cfg)
		},
	}

	fs := root.Flags()
	fs.String("config", "", "config file (TOML)")
	fs.String("api", "", "base URL of the tabs API")
	fs.Duration("timeout", 0, "per-request timeout")
	fs.String("log-file", "", "diagnostic log file")
	fs.String("id", "", "tab id strategy: timestamp or uuid")
	fs.BoolP("verbose", "v", false, "log at debug level")
	return root
}

func runDashboard(ctx context.Context, cfg config.Config) error {
	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	gen, err := ids.New(cfg.Tabs.IDStrategy)
	if err != nil {
		return err
	}

	client := tabsapi.New(cfg.API.BaseURL, cfg.API.Timeout)
	dash := dashboard.New(ctx, client, gen, logger, statCards(cfg.Stats))
	app := tui.New(dash, nil, tui.Options{
		Title:    cfg.UI.Title,
		Subtitle: cfg.UI.Subtitle,
		APIBase:  client.BaseURL(),
	})

	logger.Info("starting", "api", client.BaseURL(), "id_strategy", cfg.Tabs.IDStrategy)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func statCards(stats []config.StatConfig) []dashboard.StatCard {
	out := make([]dashboard.StatCard, len(stats))
	for i, s := range stats {
		out[i] = dashboard.StatCard{Name: s.Name, Value: s.Value, Change: s.Change, Icon: s.Icon}
	}
	return out
}
