// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	httpTypes "github.com/SrVladyslav/falquor-backend/internal/http/types"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
)

// HeaderName is the header the authenticating proxy uses to pass the caller's
// account id.
const HeaderName = "X-Account-Id"

type contextKey struct{}

var accountIDKey contextKey

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware rejects requests without a well formed account id and stores
// the id in the request context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		accountID := r.Header.Get(HeaderName)
		if _, err := uuid.Parse(accountID); err != nil {
			m.logger.Security().AuthzFailure(accountID, r.URL.Path)

			httpTypes.WriteStatus(w, http.StatusUnauthorized, "missing or malformed account id")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAccountID(ctx, accountID)))
	})
}

func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

func AccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok && id != ""
}

// RequireAccountID returns the caller's account id, writing a 401 and returning
// false when the request was not authenticated.
func RequireAccountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := AccountID(r.Context())
	if !ok {
		httpTypes.WriteStatus(w, http.StatusUnauthorized, "unauthenticated")
		return "", false
	}
	return id, true
}
