// Package identity resolves the user id sent to the backend.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/kvstore"
)

const KeyUserID = "userId"

// Resolver reads the stored user id and falls back to a configured
// placeholder when none has been stored.
type Resolver struct {
	store    kvstore.Store
	fallback string
	log      *slog.Logger
}

func NewResolver(store kvstore.Store, fallback string, logger *slog.Logger) *Resolver {
	return &Resolver{store: store, fallback: fallback, log: logger.With("component", "identity")}
}

func (r *Resolver) UserID(ctx context.Context) string {
	v, ok, err := r.store.Get(ctx, KeyUserID)
	if err != nil {
		r.log.WarnContext(ctx, "read user id", slog.Any("error", err))
		return r.fallback
	}
	if !ok || strings.TrimSpace(v) == "" {
		return r.fallback
	}
	return v
}

func (r *Resolver) SetUserID(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return r.store.Set(ctx, KeyUserID, userID)
}
