// internal/fusion/handlers.go

package fusion

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/imadgeboyega/destiny-fusion/internal/common/utils"
)

// maxBodyBytes bounds a request body; two full charts fit comfortably
const maxBodyBytes = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// decode reads and validates the body into dst, writing the error response itself on failure
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	if err := Validate(dst); err != nil {
		utils.RespondWithDetailedError(w, http.StatusUnprocessableEntity, err, "Validation failed")
		return false
	}
	return true
}

func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, ErrInsufficientData) {
		utils.ErrorResponse(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Printf("%s: %v", fallback, err)
	utils.ErrorResponse(w, fallback, http.StatusInternalServerError)
}

// Compatibility scores two people across Saju and, when present, Western charts
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.service.Compatibility(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to calculate compatibility")
		return
	}
	utils.SuccessResponse(w, res, http.StatusOK)
}

func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.service.Matrix(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to calculate destiny matrix")
		return
	}
	utils.SuccessResponse(w, res, http.StatusOK)
}

func (h *Handler) Daeun(w http.ResponseWriter, r *http.Request) {
	var req DaeunRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.service.Daeun(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to analyze major cycles")
		return
	}
	utils.SuccessResponse(w, res, http.StatusOK)
}

func (h *Handler) Seun(w http.ResponseWriter, r *http.Request) {
	var req SeunRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.service.Seun(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to analyze annual cycle")
		return
	}
	utils.SuccessResponse(w, res, http.StatusOK)
}

func (h *Handler) Yongsin(w http.ResponseWriter, r *http.Request) {
	var req YongsinRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.service.Yongsin(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to analyze yongsin")
		return
	}
	utils.SuccessResponse(w, res, http.StatusOK)
}

// MatrixSummary describes the layer catalogue without exposing cell contents
func (h *Handler) MatrixSummary(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.MatrixSummary(), http.StatusOK)
}

func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.CacheStats(), http.StatusOK)
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCache(r.Context()); err != nil {
		log.Printf("Cache clear failed: %v", err)
		utils.ErrorResponse(w, "Failed to clear cache", http.StatusServiceUnavailable)
		return
	}
	utils.MessageResponse(w, "Cache cleared", http.StatusOK)
}
