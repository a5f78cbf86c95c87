package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nstehr/valuenetwork/agent"
	"github.com/nstehr/valuenetwork/config"
	"github.com/nstehr/valuenetwork/ipc"
	"github.com/nstehr/valuenetwork/model"
	"github.com/nstehr/valuenetwork/nav"
	"github.com/nstehr/valuenetwork/rules"
)

const banner = `
 _   _       _            _   _      _                      _
| | | |__ _ | |_  _  ___ | \ | | ___| |___      _____  _ __| | __
| | | / _' || | || |/ -_)|  \| |/ -_)  _\ \ /\ / / _ \| '__| |/ /
 \_/ \__,_||_|\_,_|\___||_|\__|\___|\__|\_V  V /\___/|_|  |_|\_\

Halite II Fleet Commander`

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "valuenetwork",
		Short:        "Halite II bot speaking the engine protocol on stdin/stdout",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default ./bot.yaml)")
	return cmd
}

func run(ctx context.Context, configPath string) error {
	// stdout is the game protocol; nothing else may be written there.
	fmt.Fprintln(os.Stderr, banner)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runID := uuid.NewString()
	slog.SetDefault(newLogger(cfg.Logging, os.Stderr, runID))

	doctrine := newDoctrine(cfg)
	engine, err := rules.NewEngine(doctrine, newNavigator(doctrine))
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn := ipc.NewConnection(os.Stdin, os.Stdout)
	init, err := conn.ReadInit()
	if err != nil {
		slog.Error("handshake failed", "error", err)
		return err
	}

	logFile, err := openLogFile(cfg.Logging.Dir, init.PlayerID, cfg.Bot.Name)
	if err != nil {
		slog.Error("failed to open log file", "dir", cfg.Logging.Dir, "error", err)
		return err
	}
	defer logFile.Close()
	slog.SetDefault(newLogger(cfg.Logging, logFile, runID).With("player", init.PlayerID))

	slog.Info("starting valuenetwork", "name", cfg.Bot.Name, "expand_turn", doctrine.ExpandTurn)

	a := agent.New(conn, engine, cfg.Bot.Name)
	if err := a.Start(init); err != nil {
		slog.Error("failed to start session", "error", err)
		return err
	}

	err = a.Run(ctx)
	switch {
	case errors.Is(err, io.EOF):
		slog.Info("game over", "turns", a.State.Turn, "mode", a.State.Mode)
		return nil
	case errors.Is(err, context.Canceled):
		slog.Info("shutting down", "turns", a.State.Turn)
		return nil
	default:
		slog.Error("session failed", "turn", a.State.Turn, "error", err)
		return err
	}
}

// newDoctrine maps config onto the engine's parameters, clamped to the
// ranges the engine accepts.
func newDoctrine(cfg *config.Config) rules.Doctrine {
	d := rules.Doctrine{
		Name:             cfg.Bot.Name,
		ExpandTurn:       cfg.Strategy.ExpandTurn,
		ExpandMinPlayers: cfg.Strategy.ExpandMinPlayers,
		MaxThrust:        cfg.Navigation.MaxThrust,
		MaxCorrections:   cfg.Navigation.MaxCorrections,
		AngularStep:      model.DegToRad(cfg.Navigation.AngularStepDeg),
	}
	d.Validate()
	return d
}

// newNavigator shares the doctrine's correction budget so docking and
// free flight steer alike.
func newNavigator(d rules.Doctrine) *nav.Navigator {
	return &nav.Navigator{
		MaxCorrections: d.MaxCorrections,
		AngularStep:    d.AngularStep,
	}
}
