package load

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for load operations
type Handler struct {
	service *Service
}

// NewHandler creates a new load handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for load endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/driver/{driverId}", h.ListByDriver)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/stops", h.AddStop)
	r.Post("/{id}/other-pays", h.AddOtherPay)
	r.Put("/{id}/invoice-status", h.UpdateInvoiceStatus)

	return r
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// Create handles POST /loads
// @Summary      Create a load
// @Description  Creates a load with its stops and other-pay items in one transaction
// @Tags         loads
// @Accept       json
// @Produce      json
// @Param        request body CreateLoadRequest true "Load"
// @Success      201 {object} response.APIResponse{data=LoadResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /loads [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	l, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create load")
		return
	}

	response.JSON(w, http.StatusCreated, l.ToResponse())
}

// GetByID handles GET /loads/{id}
// @Summary      Get load by ID
// @Tags         loads
// @Produce      json
// @Param        id path int true "Load ID"
// @Success      200 {object} response.APIResponse{data=LoadResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /loads/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid load ID")
		return
	}

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get load")
		return
	}

	response.JSON(w, http.StatusOK, l.ToResponse())
}

// ListByDriver handles GET /loads/driver/{driverId}
// @Summary      List a driver's loads
// @Tags         loads
// @Produce      json
// @Param        driverId path int true "Driver ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]LoadResponse}
// @Router       /loads/driver/{driverId} [get]
func (h *Handler) ListByDriver(w http.ResponseWriter, r *http.Request) {
	driverID, ok := pathID(r, "driverId")
	if !ok {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	page, perPage := response.PageParams(r)
	loads, total, err := h.service.ListByDriver(r.Context(), driverID, page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list loads")
		return
	}

	out := make([]*LoadResponse, len(loads))
	for i, l := range loads {
		out[i] = l.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, out, response.NewMeta(page, perPage, total))
}

// AddStop handles POST /loads/{id}/stops
// @Summary      Add a stop to a load
// @Tags         loads
// @Accept       json
// @Produce      json
// @Param        id path int true "Load ID"
// @Param        request body CreateStopRequest true "Stop"
// @Success      201 {object} response.APIResponse{data=Stop}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /loads/{id}/stops [post]
func (h *Handler) AddStop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid load ID")
		return
	}

	var req CreateStopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	stop, err := h.service.AddStop(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to add stop")
		return
	}

	response.JSON(w, http.StatusCreated, stop)
}

// AddOtherPay handles POST /loads/{id}/other-pays
// @Summary      Add an other-pay item to a load
// @Tags         loads
// @Accept       json
// @Produce      json
// @Param        id path int true "Load ID"
// @Param        request body CreateOtherPayRequest true "Other pay"
// @Success      201 {object} response.APIResponse{data=OtherPay}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /loads/{id}/other-pays [post]
func (h *Handler) AddOtherPay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid load ID")
		return
	}

	var req CreateOtherPayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.AddOtherPay(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to add other pay")
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// UpdateInvoiceStatus handles PUT /loads/{id}/invoice-status
// @Summary      Set a load's invoice status
// @Tags         loads
// @Accept       json
// @Produce      json
// @Param        id path int true "Load ID"
// @Param        request body UpdateInvoiceStatusRequest true "Status"
// @Success      200 {object} response.APIResponse{data=LoadResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /loads/{id}/invoice-status [put]
func (h *Handler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid load ID")
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	l, err := h.service.UpdateInvoiceStatus(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update invoice status")
		return
	}

	response.JSON(w, http.StatusOK, l.ToResponse())
}
