// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rab/internal/adapters/cmake"
	_ "go.trai.ch/rab/internal/adapters/config"
	_ "go.trai.ch/rab/internal/adapters/fs"
	_ "go.trai.ch/rab/internal/adapters/history"
	_ "go.trai.ch/rab/internal/adapters/logger"
	_ "go.trai.ch/rab/internal/adapters/registry"
	_ "go.trai.ch/rab/internal/adapters/shell"
	_ "go.trai.ch/rab/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/rab/internal/app"
	_ "go.trai.ch/rab/internal/engine/invoker"
	_ "go.trai.ch/rab/internal/engine/planner"
)
