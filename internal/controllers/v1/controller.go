// Package v1 implements the HTTP API.
package v1

import (
	"time"

	"github.com/samiti-app/backend/internal/auth"
	"github.com/samiti-app/backend/internal/ledger"
	"github.com/samiti-app/backend/internal/report"
	"github.com/samiti-app/backend/internal/storage"
)

// Controller bundles the handles the API operates on. It is constructed once
// at startup and passed to the router; there is no package-global state.
type Controller struct {
	Store         *storage.Store
	Ledger        *ledger.Ledger
	Sessions      *auth.Sessions
	Reports       report.Generator
	ReportTimeout time.Duration
}
