package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetHistories(w http.ResponseWriter, r *http.Request)
	ChangeAssignment(w http.ResponseWriter, r *http.Request)
	ChangeSalary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// GetHistories implements EmployeeHandler.
func (h *employeeHandlerImpl) GetHistories(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	histories, err := h.employeeService.GetHistories(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, histories)
}

// ChangeAssignment implements EmployeeHandler.
func (h *employeeHandlerImpl) ChangeAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.ChangeAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.ChangeAssignment(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment changed", emp)
}

// ChangeSalary implements EmployeeHandler.
func (h *employeeHandlerImpl) ChangeSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.ChangeSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	row, err := h.employeeService.ChangeSalary(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary changed", row)
}
