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

type OrganizationHandler struct {
	orgService service.OrganizationService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewOrganizationHandler(orgService service.OrganizationService, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgService.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	data := make([]dto.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		data = append(data, toOrganizationResponse(&orgs[i]))
	}

	respondData(w, h.logger, http.StatusOK, "organizations retrieved", data)
}

func (h *OrganizationHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	org, err := h.orgService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "organization retrieved", toOrganizationResponse(org))
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	org, err := h.orgService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	respondData(w, h.logger, http.StatusCreated, "organization created", toOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.OrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	org, err := h.orgService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "organization updated", toOrganizationResponse(org))
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.orgService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOrganizationResponse(org *domain.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:       org.ID,
		Name:     org.Name,
		RegionID: org.RegionID,
		ParentID: org.ParentID,
	}
}
