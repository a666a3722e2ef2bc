package settlement

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/driver/{driverId}", h.ListByDriver)
	r.Get("/{id}", h.GetByID)

	return r
}

// Create handles POST /settlements
// @Summary      Compute a driver settlement
// @Description  Selects the driver's loads, expenses and IFTA records for the period, computes the statement and stores it. Selected records are tagged with the invoice and week numbers.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body CreateSettlementRequest true "Settlement request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	st, err := h.service.ComputeSettlement(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to compute settlement")
		return
	}

	response.JSON(w, http.StatusCreated, st.ToResponse())
}

// GetByID handles GET /settlements/{id}
// @Summary      Get settlement by ID
// @Tags         settlements
// @Produce      json
// @Param        id path int true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid settlement ID")
		return
	}

	st, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get settlement")
		return
	}

	response.JSON(w, http.StatusOK, st.ToResponse())
}

// ListByDriver handles GET /settlements/driver/{driverId}
// @Summary      List a driver's settlements
// @Tags         settlements
// @Produce      json
// @Param        driverId path int true "Driver ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /settlements/driver/{driverId} [get]
func (h *Handler) ListByDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := strconv.ParseInt(chi.URLParam(r, "driverId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	page, perPage := response.PageParams(r)
	settlements, total, err := h.service.ListByDriver(r.Context(), driverID, page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list settlements")
		return
	}

	out := make([]*SettlementResponse, len(settlements))
	for i, st := range settlements {
		out[i] = st.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, out, response.NewMeta(page, perPage, total))
}
