package driver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for driver operations
type Handler struct {
	service *Service
}

// NewHandler creates a new driver handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for driver endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/pay-rates", h.AddPayRate)
	r.Get("/{id}/pay-rates", h.ListPayRates)
	r.Get("/{id}/ledger", h.ListLedger)

	return r
}

func driverID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Create handles POST /drivers
// @Summary      Create a driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        request body CreateDriverRequest true "Driver"
// @Success      201 {object} response.APIResponse{data=Driver}
// @Failure      400 {object} response.APIResponse
// @Router       /drivers [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	d, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create driver")
		return
	}

	response.JSON(w, http.StatusCreated, d)
}

// GetByID handles GET /drivers/{id}
// @Summary      Get driver by ID
// @Tags         drivers
// @Produce      json
// @Param        id path int true "Driver ID"
// @Success      200 {object} response.APIResponse{data=Driver}
// @Failure      404 {object} response.APIResponse
// @Router       /drivers/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := driverID(r)
	if !ok {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get driver")
		return
	}

	response.JSON(w, http.StatusOK, d)
}

// List handles GET /drivers
// @Summary      List drivers
// @Tags         drivers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Driver}
// @Router       /drivers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := response.PageParams(r)

	drivers, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list drivers")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, drivers, response.NewMeta(page, perPage, total))
}

// AddPayRate handles POST /drivers/{id}/pay-rates
// @Summary      Add a pay rate
// @Description  The newest pay rate is the one settlements use
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Param        id path int true "Driver ID"
// @Param        request body CreatePayRateRequest true "Pay rate"
// @Success      201 {object} response.APIResponse{data=PayRate}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /drivers/{id}/pay-rates [post]
func (h *Handler) AddPayRate(w http.ResponseWriter, r *http.Request) {
	id, ok := driverID(r)
	if !ok {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	var req CreatePayRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.AddPayRate(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to add pay rate")
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// ListPayRates handles GET /drivers/{id}/pay-rates
// @Summary      List pay rates
// @Tags         drivers
// @Produce      json
// @Param        id path int true "Driver ID"
// @Success      200 {object} response.APIResponse{data=[]PayRate}
// @Failure      404 {object} response.APIResponse
// @Router       /drivers/{id}/pay-rates [get]
func (h *Handler) ListPayRates(w http.ResponseWriter, r *http.Request) {
	id, ok := driverID(r)
	if !ok {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	rates, err := h.service.ListPayRates(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to list pay rates")
		return
	}

	response.JSON(w, http.StatusOK, rates)
}

// ListLedger handles GET /drivers/{id}/ledger
// @Summary      List ledger postings
// @Tags         drivers
// @Produce      json
// @Param        id path int true "Driver ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]LedgerEntry}
// @Failure      404 {object} response.APIResponse
// @Router       /drivers/{id}/ledger [get]
func (h *Handler) ListLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := driverID(r)
	if !ok {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	page, perPage := response.PageParams(r)
	entries, total, err := h.service.ListLedger(r.Context(), id, page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list ledger")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, entries, response.NewMeta(page, perPage, total))
}
