package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kinship/internal/person/models"
	"kinship/internal/platform/middleware"
	"kinship/pkg/domain"
)

// StatusNoResponse is nginx's unofficial 444 status, returned when a
// submission produces an empty match set.
const StatusNoResponse = 444

// Service defines the interface for person operations.
type Service interface {
	ProcessPerson(ctx context.Context, req models.PersonRequest) ([]*models.Person, error)
	DeletePersons(ctx context.Context, ids []domain.PersonID)
}

// Handler handles the people endpoints.
type Handler struct {
	logger  *slog.Logger
	persons Service
}

// New creates a new person Handler.
func New(persons Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		persons: persons,
	}
}

// Register registers the people routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/v1/people", h.handleAddPerson)
	r.Delete("/api/v1/people", h.handleDeletePersons)
}

// handleAddPerson ingests one person record and responds with the current
// match set: 200 plus the matches when non-empty, 444 with no body otherwise.
func (h *Handler) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid person request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.writeBadRequest(w, "invalid request body", nil)
		return
	}

	if fieldErrors := req.Validate(); fieldErrors != nil {
		h.logger.WarnContext(ctx, "person request failed validation",
			"request_id", requestID,
			"field_errors", fieldErrors,
		)
		h.writeBadRequest(w, "Validation Failed", fieldErrors)
		return
	}

	matches, err := h.persons.ProcessPerson(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to process person",
			"request_id", requestID,
			"person_id", req.ID,
			"error", err.Error(),
		)
		h.writeInternalError(w)
		return
	}

	if len(matches) == 0 {
		w.WriteHeader(StatusNoResponse)
		return
	}

	responses := make([]models.PersonResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, models.NewPersonResponse(match))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responses)
}

// handleDeletePersons tombstones the submitted ids. The body is a bare JSON
// array of ids.
func (h *Handler) handleDeletePersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var ids []domain.PersonID
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		h.logger.WarnContext(ctx, "invalid delete request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.writeBadRequest(w, "invalid request body", nil)
		return
	}

	h.persons.DeletePersons(ctx, ids)
	w.WriteHeader(http.StatusNoContent)
}

// errorEnvelope is the JSON error body shared by all failure responses.
type errorEnvelope struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string, fieldErrors map[string]string) {
	envelope := errorEnvelope{
		Timestamp:   time.Now().UTC(),
		Status:      http.StatusBadRequest,
		Error:       "Bad Request",
		FieldErrors: fieldErrors,
	}
	if fieldErrors == nil {
		envelope.Message = message
	} else {
		envelope.Error = message
	}
	writeJSON(w, http.StatusBadRequest, envelope)
}

func (h *Handler) writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusInternalServerError,
		Error:     "Internal Server Error",
		Message:   "an unexpected error occurred",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
