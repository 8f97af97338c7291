package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/service"
)

type CalculationHandler struct {
	calcService service.CalculationService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewCalculationHandler(calcService service.CalculationService, logger *slog.Logger) *CalculationHandler {
	return &CalculationHandler{
		calcService: calcService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	calcs, err := h.calcService.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	data := make([]dto.CalculationResponse, 0, len(calcs))
	for i := range calcs {
		data = append(data, toCalculationResponse(&calcs[i]))
	}

	respondData(w, h.logger, http.StatusOK, "calculations retrieved", data)
}

func (h *CalculationHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	calc, err := h.calcService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "calculation retrieved", toCalculationResponse(calc))
}

func (h *CalculationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := h.calcService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	respondData(w, h.logger, http.StatusCreated, "calculation created", toCalculationResponse(calc))
}

func (h *CalculationHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := h.calcService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "calculation updated", toCalculationResponse(calc))
}

func (h *CalculationHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.calcService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HighSalaries обрабатывает GET /api/calculations/reports/high-salary
func (h *CalculationHandler) HighSalaries(w http.ResponseWriter, r *http.Request) {
	month, ok := h.queryInt(w, r, "month")
	if !ok {
		return
	}

	threshold, err := strconv.ParseFloat(r.URL.Query().Get("threshold"), 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid threshold parameter")
		return
	}

	rows, err := h.calcService.HighSalaries(r.Context(), month, threshold)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	if len(rows) == 0 {
		respondError(w, h.logger, http.StatusNotFound,
			"no employees found with higher salary for the provided month and threshold")
		return
	}

	data := make([]dto.HighSalaryRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.HighSalaryRow{
			Pinfl:       row.Pinfl,
			TotalAmount: row.TotalAmount,
		})
	}

	respondData(w, h.logger, http.StatusOK, "high salary report retrieved", data)
}

// OrganizationSummaries обрабатывает GET /api/calculations/reports/region
func (h *CalculationHandler) OrganizationSummaries(w http.ResponseWriter, r *http.Request) {
	month, ok := h.queryInt(w, r, "month")
	if !ok {
		return
	}

	rows, err := h.calcService.OrganizationSummaries(r.Context(), month)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	if len(rows) == 0 {
		respondError(w, h.logger, http.StatusNotFound, "no employees found for the specified month")
		return
	}

	data := make([]dto.OrganizationSummaryRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.OrganizationSummaryRow{
			Pinfl:             row.Pinfl,
			OrganizationCount: row.OrganizationCount,
			TotalAmount:       row.TotalAmount,
		})
	}

	respondData(w, h.logger, http.StatusOK, "region report retrieved", data)
}

// AverageSalary обрабатывает GET /api/calculations/reports/average-salary
func (h *CalculationHandler) AverageSalary(w http.ResponseWriter, r *http.Request) {
	month, ok := h.queryInt(w, r, "month")
	if !ok {
		return
	}

	organizationID, err := strconv.ParseInt(r.URL.Query().Get("organizationId"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid organizationId parameter")
		return
	}

	rows, err := h.calcService.AverageSalaryByOrganization(r.Context(), month, organizationID)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	if len(rows) == 0 {
		respondError(w, h.logger, http.StatusNotFound,
			"no data found for the specified month and organization")
		return
	}

	data := make([]dto.AverageSalaryRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.AverageSalaryRow{
			OrganizationID:   row.OrganizationID,
			OrganizationName: row.OrganizationName,
			AverageAmount:    row.AverageAmount,
		})
	}

	respondData(w, h.logger, http.StatusOK, "average salary report retrieved", data)
}

// SalariesAndVacations обрабатывает GET /api/calculations/reports/salaries-vacations
func (h *CalculationHandler) SalariesAndVacations(w http.ResponseWriter, r *http.Request) {
	month, ok := h.queryInt(w, r, "month")
	if !ok {
		return
	}

	rows, err := h.calcService.SalariesAndVacations(r.Context(), month)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	if len(rows) == 0 {
		respondError(w, h.logger, http.StatusNotFound,
			"no salary or vacation records found for the specified month")
		return
	}

	data := make([]dto.SalaryVacationRow, 0, len(rows))
	for _, row := range rows {
		emp := dto.EmployeeResponse{
			ID:             row.EmployeeID,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Pinfl:          row.Pinfl,
			OrganizationID: row.OrganizationID,
		}
		if row.HireDate != nil {
			hireDate := row.HireDate.Format("2006-01-02")
			emp.HireDate = &hireDate
		}
		data = append(data, dto.SalaryVacationRow{
			Employee: emp,
			Amount:   row.Amount,
		})
	}

	respondData(w, h.logger, http.StatusOK, "salaries and vacations report retrieved", data)
}

// queryInt извлекает обязательный целочисленный параметр запроса
func (h *CalculationHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}

func toCalculationResponse(calc *domain.CalculationRecord) dto.CalculationResponse {
	return dto.CalculationResponse{
		ID:              calc.ID,
		EmployeeID:      calc.EmployeeID,
		Amount:          calc.Amount,
		Rate:            calc.Rate,
		Date:            calc.Date.Format("2006-01-02"),
		OrganizationID:  calc.OrganizationID,
		CalculationType: calc.CalculationType,
	}
}
