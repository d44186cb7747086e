// Package common defines shared constants and sentinel errors used across
// the service, repository, and HTTP layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Account errors.
	ErrorEmailExists        = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Budget errors.
	ErrorBudgetExists = errors.New("budget already exists for this category and month")

	// Statement export requires an object-storage endpoint to be configured.
	ErrorExportNotConfigured = errors.New("statement export not configured")

	// Token lifecycle errors. A stale token is structurally valid but refers
	// to a user that no longer exists.
	ErrorInvalidToken = errors.New("invalid token")
	ErrorTokenExpired = errors.New("token expired")
	ErrorStaleToken   = errors.New("token user no longer exists")
)
