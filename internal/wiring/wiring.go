// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/asyncwalk/internal/adapters/config"
	_ "go.trai.ch/asyncwalk/internal/adapters/fs"
	_ "go.trai.ch/asyncwalk/internal/adapters/logger"
	_ "go.trai.ch/asyncwalk/internal/adapters/telemetry"
	_ "go.trai.ch/asyncwalk/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/asyncwalk/internal/app"
)
