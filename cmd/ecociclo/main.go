package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jask/ecociclo/internal/config"
	"github.com/jask/ecociclo/internal/core"
	"github.com/jask/ecociclo/internal/logging"
	"github.com/jask/ecociclo/internal/screen"
	"github.com/jask/ecociclo/internal/submit"
	"github.com/jask/ecociclo/internal/toast"
)

var version = "0.1.0" // set at build time with -ldflags

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("ecociclo: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath, logPath string
	root := &cobra.Command{
		Use:           "ecociclo",
		Short:         "Ecociclo login and registration screen",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgPath, logPath)
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/ecociclo/config.toml)")
	root.Flags().StringVar(&logPath, "log", "", "log file, overrides log.path")
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of ecociclo",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ecociclo v%s\n", version)
		},
	})
	return root
}

func run(ctx context.Context, cfgPath, logPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := newModel(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "version", version)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func newModel(ctx context.Context, cfg config.Config, logger *slog.Logger) (*screen.Model, error) {
	overrides, err := config.LoadKeybindings(cfg.Keys.Path)
	if err != nil {
		return nil, err
	}
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), overrides)
	return screen.New(screen.Options{
		Context:   ctx,
		Logger:    logger,
		Keys:      core.NewKeyRegistry(bindings),
		Submitter: submit.NewSimulated(cfg.Submit.Delay),
		Toasts:    toast.NewNotifier(cfg.Toast.Duration),
	}), nil
}
