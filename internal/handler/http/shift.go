package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	BulkAssign(w http.ResponseWriter, r *http.Request)
	CreateOverride(w http.ResponseWriter, r *http.Request)
	GetPattern(w http.ResponseWriter, r *http.Request)
	ListPatterns(w http.ResponseWriter, r *http.Request)
	ResolveMy(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// BulkAssign implements ShiftHandler.
func (h *shiftHandlerImpl) BulkAssign(w http.ResponseWriter, r *http.Request) {
	var req shift.BulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkAssign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shiftService.BulkAssign(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk shift assignment processed",
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"skipped", len(result.Skipped),
		"retroactive", result.Retroactive)
	response.Success(w, result)
}

// CreateOverride implements ShiftHandler.
func (h *shiftHandlerImpl) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateScheduleOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOverride decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	override, err := h.shiftService.CreateOverride(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule override created", override)
}

// GetPattern implements ShiftHandler.
func (h *shiftHandlerImpl) GetPattern(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pattern, err := h.shiftService.GetPattern(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pattern)
}

// ListPatterns implements ShiftHandler.
func (h *shiftHandlerImpl) ListPatterns(w http.ResponseWriter, r *http.Request) {
	patterns, err := h.shiftService.ListPatterns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, patterns)
}

// ResolveMy implements ShiftHandler.
func (h *shiftHandlerImpl) ResolveMy(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	resolved, err := h.shiftService.Resolve(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}
