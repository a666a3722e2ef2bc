package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/haulledger/pkg/response"
)

// Handler handles HTTP requests for the audit log
type Handler struct {
	service *Service
}

// NewHandler creates a new audit handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for audit endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List handles GET /audit
// @Summary      List audit entries
// @Description  Newest first, optionally filtered by entity type
// @Tags         audit
// @Produce      json
// @Param        entity_type query string false "Entity type, e.g. DRIVER_PAY"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Entry}
// @Router       /audit [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := response.PageParams(r)

	entries, total, err := h.service.List(r.Context(), r.URL.Query().Get("entity_type"), page, perPage)
	if err != nil {
		response.FromError(w, err, "Failed to list audit entries")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, entries, response.NewMeta(page, perPage, total))
}
