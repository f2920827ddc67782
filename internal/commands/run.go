package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mybank-dev/mybank/internal/config"
	"github.com/mybank-dev/mybank/internal/console"
	"github.com/mybank-dev/mybank/internal/session"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var currency string
	var noIcons bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("currency") {
				cfg.Currency.Symbol = currency
			}
			if noIcons {
				cfg.Display.Icons = false
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "path to config file")
	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol (overrides config)")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "render message levels as text tags")

	return cmd
}

// loadConfig reads path. A missing file is only an error when the path was
// given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runSession(in io.Reader, out, errOut io.Writer, cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	logger.Info("starting session", "currency", cfg.Currency.Symbol)

	ctrl := session.New(
		session.WithCurrency(cfg.Currency.Symbol),
		session.WithLogger(logger),
	)
	con := console.New(in, out, ctrl, console.Options{
		Title:   cfg.Bank.Title,
		Tagline: cfg.Bank.Tagline,
		Icons:   cfg.Display.Icons,
	})
	if err := con.Run(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	logger.Info("session ended")
	return nil
}
