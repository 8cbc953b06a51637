package bootstrap

import "time"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingRecipeBook  = "Starting RecipeBook"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Seed messages
const (
	LogMsgSeeding          = "Seeding catalog from YAML..."
	LogMsgSeeded           = "Catalog seeded"
	LogMsgSeedSkipped      = "Seed record already present, skipped"
	ErrMsgFailedLoadSeed   = "failed to load seed file"
	ErrMsgInvalidSeed      = "invalid seed file"
	ErrMsgFailedSeedUser   = "failed to seed user"
	ErrMsgFailedSeedRecord = "failed to seed record"
	ErrMsgUnknownSeedItem  = "seed recipe references unknown ingredient"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout = 15 * time.Second
)
