package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	data := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		data = append(data, toEmployeeResponse(&employees[i]))
	}

	respondData(w, h.logger, http.StatusOK, "employees retrieved", data)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "employee retrieved", toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	respondData(w, h.logger, http.StatusCreated, "employee created", toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "employee updated", toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Pinfl:          emp.Pinfl,
		OrganizationID: emp.OrganizationID,
	}

	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}

	return resp
}
