package devbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	apperrors "mindflow/internal/platform/errors"
)

type handler struct {
	store *Store
	log   *slog.Logger
}

// NewRouter mounts the task API under /api and a heartbeat at /healthz.
func NewRouter(store *Store, logger *slog.Logger) http.Handler {
	h := &handler{store: store, log: logger.With("component", "devbackend")}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(h.logRequests)

	r.Route("/api/tasks/{user_id}", func(r chi.Router) {
		r.Get("/", h.getTasks)
		r.Post("/complete/{task_id}", h.completeTask)
		r.Post("/refresh-day", h.refreshDay)
	})
	return r
}

func (h *handler) getTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Tasks(chi.URLParam(r, "user_id")))
}

func (h *handler) completeTask(w http.ResponseWriter, r *http.Request) {
	resp, err := h.store.Complete(chi.URLParam(r, "user_id"), chi.URLParam(r, "task_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) refreshDay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.RefreshDay(chi.URLParam(r, "user_id")))
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", r.Header.Get("X-Request-ID")),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "dev backend listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("dev backend: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("dev backend shutdown: %w", err)
	}
	return nil
}
