package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/pkg/adapters/file"
	loamadapter "github.com/aretw0/statespace/pkg/adapters/loam"
	"github.com/aretw0/statespace/pkg/adapters/memory"
	redisadapter "github.com/aretw0/statespace/pkg/adapters/redis"
	"github.com/aretw0/statespace/pkg/ports"
	"github.com/aretw0/statespace/pkg/registry"
	"github.com/aretw0/statespace/pkg/solver"
)

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// loadRegistry returns the built-in puzzles plus the definitions of --dir.
// The loader is nil when no directory is configured.
func loadRegistry(ctx context.Context, cmd *cobra.Command) (*registry.Registry, *loamadapter.Loader, error) {
	reg := registry.Default()

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return reg, nil, nil
	}

	loader, err := loamadapter.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	if err := reg.Load(ctx, loader); err != nil {
		return nil, nil, fmt.Errorf("failed to load puzzles from %s: %w", dir, err)
	}
	return reg, loader, nil
}

// newManager wires the plan store selected by the flags: Redis, then a
// plans directory, then memory. The returned function releases the store's
// connections.
func newManager(cmd *cobra.Command, reg *registry.Registry, logger *slog.Logger, opts ...solver.Option) (*solver.Manager, func()) {
	workers, _ := cmd.Flags().GetInt("workers")
	addr, _ := cmd.Flags().GetString("redis-addr")
	ttl, _ := cmd.Flags().GetDuration("redis-ttl")
	plansDir, _ := cmd.Flags().GetString("plans-dir")

	opts = append([]solver.Option{solver.WithLogger(logger), solver.WithWorkers(workers)}, opts...)

	var store ports.PlanStore = memory.NewStore()
	cleanup := func() {}
	switch {
	case addr != "":
		rs := redisadapter.New(addr, redisadapter.WithTTL(ttl))
		store = rs
		cleanup = func() { _ = rs.Client().Close() }
		opts = append(opts, solver.WithLocker(redisadapter.NewLocker(rs.Client(), ""), time.Minute))
		logger.Info("Using Redis plan store", "addr", addr, "ttl", ttl)
	case plansDir != "":
		store = file.New(plansDir)
		logger.Info("Using file plan store", "dir", plansDir)
	}

	return solver.NewManager(reg, store, opts...), cleanup
}
