package middleware

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewCors,
	NewTraceEntry,
	NewLogger,
	NewRecovery,
	NewResponse,
	NewAdminKey,
	NewEmployee,
	NewFormLimit,
)
