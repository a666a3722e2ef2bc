package company

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for the company profile
type Handler struct {
	service *Service
}

// NewHandler creates a new company handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for company endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/", h.Upsert)

	return r
}

// Get handles GET /company
// @Summary      Get company profile
// @Tags         company
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Company}
// @Failure      404 {object} response.APIResponse
// @Router       /company [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get company")
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// Upsert handles PUT /company
// @Summary      Create or replace company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        request body UpsertCompanyRequest true "Company profile"
// @Success      200 {object} response.APIResponse{data=Company}
// @Failure      400 {object} response.APIResponse
// @Router       /company [put]
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	c, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to save company")
		return
	}

	response.JSON(w, http.StatusOK, c)
}
