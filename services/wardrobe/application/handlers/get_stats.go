package handlers

import (
	"net/http"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
)

// GetStatsHandler handles GET /items/stats requests.
type GetStatsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatsHandler returns a GetStatsHandler backed by the given services.
func NewGetStatsHandler(svc *appsvcs.Services) *GetStatsHandler {
	return &GetStatsHandler{svc: svc}
}

// Execute computes the statistics overview from the current collection.
// Derived values are recomputed on every call; nothing is cached.
//
//	@Summary		Wardrobe statistics
//	@Description	Totals, capped weekly wears, most-worn ranking, recent preview, and per-category rollups
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	services.StatsOverview
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items/stats [get]
func (h *GetStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Item.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, overview)
}
