package ifta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for fuel tax rates and IFTA records
type Handler struct {
	service *Service
}

// NewHandler creates a new IFTA handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for IFTA endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/rates", func(r chi.Router) {
		r.Get("/", h.ListRates)
		r.Post("/", h.UpsertRate)
		r.Post("/bulk", h.BulkUpsertRates)
	})

	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.ListRecords)
		r.Post("/", h.CreateRecord)
		r.Post("/bulk", h.BulkCreateRecords)
		r.Get("/{id}", h.GetRecord)
		r.Put("/{id}", h.UpdateRecord)
	})

	r.Get("/summary", h.Summary)

	return r
}

// UpsertRate handles POST /ifta/rates
// @Summary      Set a fuel tax rate
// @Description  Inserts or replaces the rate and baseline MPG for a quarter and state
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        request body UpsertRateRequest true "Rate"
// @Success      200 {object} response.APIResponse{data=FuelTaxRate}
// @Failure      400 {object} response.APIResponse
// @Router       /ifta/rates [post]
func (h *Handler) UpsertRate(w http.ResponseWriter, r *http.Request) {
	var req UpsertRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rate, err := h.service.UpsertRate(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to save fuel tax rate")
		return
	}

	response.JSON(w, http.StatusOK, rate)
}

// BulkUpsertRates handles POST /ifta/rates/bulk
// @Summary      Set a quarter's fuel tax rates
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        request body BulkUpsertRatesRequest true "Rates"
// @Success      200 {object} response.APIResponse{data=[]FuelTaxRate}
// @Failure      400 {object} response.APIResponse
// @Router       /ifta/rates/bulk [post]
func (h *Handler) BulkUpsertRates(w http.ResponseWriter, r *http.Request) {
	var req BulkUpsertRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rates, err := h.service.BulkUpsertRates(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to save fuel tax rates")
		return
	}

	response.JSON(w, http.StatusOK, rates)
}

// ListRates handles GET /ifta/rates
// @Summary      List a quarter's fuel tax rates
// @Tags         ifta
// @Produce      json
// @Param        quarter query string true "Quarter, e.g. Quarter 1"
// @Success      200 {object} response.APIResponse{data=[]FuelTaxRate}
// @Router       /ifta/rates [get]
func (h *Handler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.ListRates(r.Context(), Quarter(r.URL.Query().Get("quarter")))
	if err != nil {
		response.FromError(w, err, "Failed to list fuel tax rates")
		return
	}
	if rates == nil {
		rates = []*FuelTaxRate{}
	}

	response.JSON(w, http.StatusOK, rates)
}

// CreateRecord handles POST /ifta/records
// @Summary      Record miles and fuel for one state and week
// @Description  Taxable gallons, net taxable gallons and tax are computed from the rate table
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        request body CreateRecordRequest true "Record"
// @Success      201 {object} response.APIResponse{data=Record}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /ifta/records [post]
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rec, err := h.service.CreateRecord(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create IFTA record")
		return
	}

	response.JSON(w, http.StatusCreated, rec)
}

// BulkCreateRecords handles POST /ifta/records/bulk
// @Summary      Record a driver's week across states
// @Description  All records are stored or none are
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        request body BulkCreateRecordsRequest true "Records"
// @Success      201 {object} response.APIResponse{data=[]Record}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /ifta/records/bulk [post]
func (h *Handler) BulkCreateRecords(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	records, err := h.service.BulkCreateRecords(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create IFTA records")
		return
	}

	response.JSON(w, http.StatusCreated, records)
}

// GetRecord handles GET /ifta/records/{id}
// @Summary      Get IFTA record by ID
// @Tags         ifta
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} response.APIResponse{data=Record}
// @Failure      404 {object} response.APIResponse
// @Router       /ifta/records/{id} [get]
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	rec, err := h.service.GetRecord(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get IFTA record")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// UpdateRecord handles PUT /ifta/records/{id}
// @Summary      Update an IFTA record
// @Description  Derived fields are recomputed against the current rate table
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Param        request body UpdateRecordRequest true "Changes"
// @Success      200 {object} response.APIResponse{data=Record}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /ifta/records/{id} [put]
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	var req UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rec, err := h.service.UpdateRecord(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update IFTA record")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// ListRecords handles GET /ifta/records
// @Summary      List IFTA records
// @Tags         ifta
// @Produce      json
// @Param        driver_id query int false "Driver ID"
// @Param        quarter query string false "Quarter"
// @Param        weekly_number query int false "Week"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Record}
// @Router       /ifta/records [get]
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f RecordFilter
	if v := q.Get("driver_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid driver ID")
			return
		}
		f.DriverID = &id
	}
	if v := q.Get("quarter"); v != "" {
		quarter := Quarter(v)
		f.Quarter = &quarter
	}
	if v := q.Get("weekly_number"); v != "" {
		week, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid weekly number")
			return
		}
		f.WeeklyNumber = &week
	}

	page, perPage := response.PageParams(r)
	records, total, err := h.service.ListRecords(r.Context(), f, page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list IFTA records")
		return
	}
	if records == nil {
		records = []*Record{}
	}

	response.JSONWithMeta(w, http.StatusOK, records, response.NewMeta(page, perPage, total))
}

// Summary handles GET /ifta/summary
// @Summary      Quarter summary for a driver
// @Tags         ifta
// @Produce      json
// @Param        driver_id query int true "Driver ID"
// @Param        quarter query string true "Quarter"
// @Success      200 {object} response.APIResponse{data=QuarterSummary}
// @Failure      400 {object} response.APIResponse
// @Router       /ifta/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	driverID, err := strconv.ParseInt(r.URL.Query().Get("driver_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	summary, err := h.service.Summary(r.Context(), driverID, Quarter(r.URL.Query().Get("quarter")))
	if err != nil {
		response.FromError(w, err, "Failed to summarize IFTA records")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
