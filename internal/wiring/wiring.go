// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bump/internal/adapters/config"
	_ "go.trai.ch/bump/internal/adapters/fs"
	_ "go.trai.ch/bump/internal/adapters/journal"
	_ "go.trai.ch/bump/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/bump/internal/app"
)
