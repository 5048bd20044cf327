// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mbedconf/internal/adapters/cas"
	_ "go.trai.ch/mbedconf/internal/adapters/config"
	_ "go.trai.ch/mbedconf/internal/adapters/fs"
	_ "go.trai.ch/mbedconf/internal/adapters/logger"
	_ "go.trai.ch/mbedconf/internal/adapters/shell"
	_ "go.trai.ch/mbedconf/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/mbedconf/internal/app"
)
