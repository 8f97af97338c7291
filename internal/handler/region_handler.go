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

type RegionHandler struct {
	regionService service.RegionService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewRegionHandler(regionService service.RegionService, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{
		regionService: regionService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	regions, err := h.regionService.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	data := make([]dto.RegionResponse, 0, len(regions))
	for i := range regions {
		data = append(data, toRegionResponse(&regions[i]))
	}

	respondData(w, h.logger, http.StatusOK, "regions retrieved", data)
}

func (h *RegionHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	region, err := h.regionService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "region retrieved", toRegionResponse(region))
}

func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	region, err := h.regionService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, 0)
		return
	}

	respondData(w, h.logger, http.StatusCreated, "region created", toRegionResponse(region))
}

func (h *RegionHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.RegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	region, err := h.regionService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	respondData(w, h.logger, http.StatusOK, "region updated", toRegionResponse(region))
}

func (h *RegionHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.regionService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toRegionResponse(region *domain.Region) dto.RegionResponse {
	return dto.RegionResponse{
		ID:   region.ID,
		Name: region.Name,
	}
}
