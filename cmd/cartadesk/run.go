package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"cartadesk/internal/cliargs"
	"cartadesk/internal/config"
	"cartadesk/internal/hostenv"
	"cartadesk/internal/logging"
	"cartadesk/internal/options"
	"cartadesk/internal/paths"
	"cartadesk/internal/supervisor"
)

func run(args []string) error {
	inv := cliargs.Parse(args)
	if inv.PortParseError != "" {
		return errors.New(inv.PortParseError)
	}

	cfg, cfgPath, cfgExists, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if cfgExists {
		logger.Debug("configuration loaded", slog.String("path", cfgPath))
	}

	env := hostenv.Detect()
	logger.Debug("execution environment",
		slog.String("name", env.Name()),
		slog.Bool("inside_wsl", hostenv.InsideWSL()))
	if env.Bridged() && !hostenv.BridgeAvailable() {
		return errors.New("wsl.exe not found: running the backend on this host requires WSL")
	}

	resourceDir := cfg.Paths.ResourceDir
	if resourceDir == "" {
		resourceDir, err = paths.DefaultResourceDir()
		if err != nil {
			return err
		}
	}

	if inv.Help || inv.Version {
		return runBackendHelp(env, resourceDir, inv.Version)
	}

	if err := options.Validate(inv.Passthrough); err != nil {
		return err
	}

	port := inv.ExplicitPort
	if !inv.PortSet {
		port, err = supervisor.PickPort()
		if err != nil {
			return err
		}
	}

	resolved, err := paths.Resolve(resourceDir, cfg.Paths.SymlinkBase, cfg.Paths.SymlinkName)
	if err != nil {
		return err
	}

	baseDir, err := paths.BaseDirectory(inv.InputPath)
	if err != nil {
		return err
	}
	if topLevel, ok := options.Value(inv.Passthrough, "top_level_folder"); ok {
		confined := paths.ConfineBase(env, baseDir, topLevel)
		if confined != baseDir {
			logger.Warn("base directory outside top-level folder, using top-level folder instead",
				slog.String("base", baseDir), slog.String("top_level", topLevel))
			baseDir = confined
		}
	}

	passthrough, err := options.TranslatePathValues(env, inv.Passthrough)
	if err != nil {
		return err
	}
	etcForBackend, err := env.TranslatePath(resolved.EtcDirectory)
	if err != nil {
		return fmt.Errorf("configuration directory: %w", err)
	}

	sup := supervisor.New(supervisor.Options{
		Environment:    env,
		Logger:         logger,
		ReadyTimeout:   cfg.ReadyTimeout(),
		ConnectTimeout: cfg.ConnectTimeout(),
		RetryInterval:  cfg.RetryInterval(),
	})

	if err := sup.Start(supervisor.LaunchSpec{
		BackendExecutable: resolved.BackendExecutable,
		FrontendAssets:    resolved.FrontendAssets,
		BaseDirectory:     baseDir,
		CasaPath:          paths.CasaPath(etcForBackend),
		LibraryDir:        resolved.LibraryDir,
		Port:              port,
		Passthrough:       passthrough,
	}); err != nil {
		return err
	}

	// The session URL carries the auth token; the window layer (or the
	// user's own browser) connects with it.
	logger.Info("session available",
		slog.String("url", fmt.Sprintf("http://localhost:%d/?token=%s", port, sup.AuthToken())),
		slog.Bool("inspect", inv.Inspect))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	logger.Info("shutting down backend")
	sup.Shutdown()
	return nil
}
