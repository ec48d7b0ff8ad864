package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WFHHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ApproveBySupervisor(w http.ResponseWriter, r *http.Request)
	RejectBySupervisor(w http.ResponseWriter, r *http.Request)
	ApproveByHR(w http.ResponseWriter, r *http.Request)
	RejectByHR(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
}

type wfhHandlerImpl struct {
	wfhService approval.WFHService
}

func NewWFHHandler(wfhService approval.WFHService) WFHHandler {
	return &wfhHandlerImpl{
		wfhService: wfhService,
	}
}

// Submit implements WFHHandler.
func (h *wfhHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	var req approval.CreateWFHRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit WFH decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.wfhService.Submit(r.Context(), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "WFH request submitted", created)
}

// decision decodes the optional note and runs one WFH transition.
func (h *wfhHandlerImpl) decision(
	w http.ResponseWriter, r *http.Request,
	fn func(requestID, actorID string, note *string) (*approval.WFHRequest, error),
	message string,
) {
	actorID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	requestID := chi.URLParam(r, "id")

	var req approval.DecisionRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	updated, err := fn(requestID, actorID, req.Note)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, updated)
}

// ApproveBySupervisor implements WFHHandler.
func (h *wfhHandlerImpl) ApproveBySupervisor(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.WFHRequest, error) {
		return h.wfhService.ApproveBySupervisor(r.Context(), requestID, actorID, note)
	}, "WFH request approved by supervisor")
}

// RejectBySupervisor implements WFHHandler.
func (h *wfhHandlerImpl) RejectBySupervisor(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.WFHRequest, error) {
		return h.wfhService.RejectBySupervisor(r.Context(), requestID, actorID, note)
	}, "WFH request rejected by supervisor")
}

// ApproveByHR implements WFHHandler.
func (h *wfhHandlerImpl) ApproveByHR(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.WFHRequest, error) {
		return h.wfhService.ApproveByHR(r.Context(), requestID, actorID, note)
	}, "WFH request approved")
}

// RejectByHR implements WFHHandler.
func (h *wfhHandlerImpl) RejectByHR(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.WFHRequest, error) {
		return h.wfhService.RejectByHR(r.Context(), requestID, actorID, note)
	}, "WFH request rejected")
}

// ListMy implements WFHHandler.
func (h *wfhHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	requests, err := h.wfhService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ApproveBySupervisor(w http.ResponseWriter, r *http.Request)
	RejectBySupervisor(w http.ResponseWriter, r *http.Request)
	ApproveByHR(w http.ResponseWriter, r *http.Request)
	RejectByHR(w http.ResponseWriter, r *http.Request)
	RecordActualDuration(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService approval.OvertimeService
}

func NewOvertimeHandler(overtimeService approval.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Submit implements OvertimeHandler.
func (h *overtimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	var req approval.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.overtimeService.Submit(r.Context(), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", created)
}

func (h *overtimeHandlerImpl) decision(
	w http.ResponseWriter, r *http.Request,
	fn func(requestID, actorID string, note *string) (*approval.OvertimeRequest, error),
	message string,
) {
	actorID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	requestID := chi.URLParam(r, "id")

	var req approval.DecisionRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	updated, err := fn(requestID, actorID, req.Note)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, updated)
}

// ApproveBySupervisor implements OvertimeHandler.
func (h *overtimeHandlerImpl) ApproveBySupervisor(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
		return h.overtimeService.ApproveBySupervisor(r.Context(), requestID, actorID, note)
	}, "Overtime request approved by supervisor")
}

// RejectBySupervisor implements OvertimeHandler.
func (h *overtimeHandlerImpl) RejectBySupervisor(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
		return h.overtimeService.RejectBySupervisor(r.Context(), requestID, actorID, note)
	}, "Overtime request rejected by supervisor")
}

// ApproveByHR implements OvertimeHandler.
func (h *overtimeHandlerImpl) ApproveByHR(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
		return h.overtimeService.ApproveByHR(r.Context(), requestID, actorID, note)
	}, "Overtime request approved")
}

// RejectByHR implements OvertimeHandler.
func (h *overtimeHandlerImpl) RejectByHR(w http.ResponseWriter, r *http.Request) {
	h.decision(w, r, func(requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
		return h.overtimeService.RejectByHR(r.Context(), requestID, actorID, note)
	}, "Overtime request rejected")
}

// RecordActualDuration implements OvertimeHandler.
func (h *overtimeHandlerImpl) RecordActualDuration(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req approval.ActualDurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.overtimeService.RecordActualDuration(r.Context(), requestID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Actual overtime duration recorded", updated)
}

// ListMy implements OvertimeHandler.
func (h *overtimeHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	requests, err := h.overtimeService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
