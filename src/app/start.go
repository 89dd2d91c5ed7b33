package app

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Blackdeer1524/KnotHash/src"
	"github.com/Blackdeer1524/KnotHash/src/config"
	"github.com/Blackdeer1524/KnotHash/src/pkg/utils"
)

// Entrypoint owns the per-run configuration and logger of the CLI.
type Entrypoint struct {
	ConfigPath string
	Env        config.Config
	RunID      string

	log src.Logger
}

func (e *Entrypoint) Init(_ context.Context) error {
	env, err := config.Load(e.ConfigPath)
	if err != nil {
		return fmt.Errorf("Entrypoint.Init: %w", err)
	}
	e.Env = env

	level, err := zapcore.ParseLevel(env.LogLevel)
	if err != nil {
		return fmt.Errorf("Entrypoint.Init: log level: %w", err)
	}

	var zcfg zap.Config
	if e.Env.Environment == config.EnvDev {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	e.RunID = uuid.NewString()
	e.log = utils.Must(zcfg.Build()).Sugar().With("run_id", e.RunID)

	e.log.Debugw(
		"configuration loaded",
		"environment", env.Environment,
		"list_size", env.ListSize,
		"workers", env.Workers,
	)

	return nil
}

func (e *Entrypoint) Log() src.Logger {
	if e.log == nil {
		return zap.NewNop().Sugar()
	}

	return e.log
}

func (e *Entrypoint) Close() (err error) {
	if e.log == nil {
		return nil
	}

	// syncing a terminal stderr fails on linux and darwin
	if err = e.log.Sync(); errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		err = nil
	}

	return err
}
