// Package logger builds configured slog.Logger instances for the SDK and the
// programs embedding it.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("tradedesk"),
//	)
//
//	client, err := tradedesk.New(cfg, tradedesk.WithLogger(log))
//
// Production defaults (JSON output, info level) apply when no options are
// given. WithFormat panics on unknown formats so misconfiguration surfaces
// at startup rather than at log time.
//
// The attr helpers (Error, RequestID, Status, Endpoint) keep attribute keys
// consistent across log call sites.
package logger
