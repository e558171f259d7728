package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sehatplus/notification-service/internal/providers"
	"github.com/sehatplus/notification-service/pkg/logging"
)

const maxBodyBytes = 1 << 20

// Handler exposes the notification endpoint over HTTP.
type Handler struct {
	svc    *Service
	repo   providers.Repository
	logger *logging.Logger
}

// NewHandler creates the notification HTTP handler. repo serves the
// get_user_email side channel and may be nil.
func NewHandler(svc *Service, repo providers.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, repo: repo, logger: logger}
}

// getUserEmailResponse always answers 200; lookup problems ride in the body.
type getUserEmailResponse struct {
	Email *string `json:"email"`
	Error string  `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Notify handles POST requests carrying either a NotificationRequest or the
// get_user_email action.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Error("failed to read request body", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read request body"})
		return
	}

	var probe struct {
		Action string `json:"action"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "invalid request body"})
		return
	}

	if probe.Action == "get_user_email" {
		h.getUserEmail(r.Context(), w, probe.UserID)
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "invalid request body"})
		return
	}

	summary, err := h.svc.Dispatch(r.Context(), &req)
	if err != nil {
		h.logger.Error("dispatch failed", "type", req.Type, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	status := http.StatusOK
	if !summary.Success {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, summary)
}

// getUserEmail resolves a user's email before the caller builds the main
// request. It never fails the HTTP exchange: missing users and lookup errors
// both answer 200 with a null email.
func (h *Handler) getUserEmail(ctx context.Context, w http.ResponseWriter, userID string) {
	if h.repo == nil || userID == "" {
		writeJSON(w, http.StatusOK, getUserEmailResponse{Email: nil})
		return
	}
	email, err := h.repo.UserEmail(ctx, userID)
	if err != nil {
		if err == providers.ErrNotFound {
			writeJSON(w, http.StatusOK, getUserEmailResponse{Email: nil})
			return
		}
		h.logger.Warn("user email lookup failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusOK, getUserEmailResponse{Email: nil, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, getUserEmailResponse{Email: &email})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
