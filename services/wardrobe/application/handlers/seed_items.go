package handlers

import (
	"net/http"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
)

// SeedItemsResponse reports the outcome of a seed request.
type SeedItemsResponse struct {
	Message string `json:"message" example:"database seeded successfully"`
	Count   int    `json:"count" example:"6"`
} // @name SeedItemsResponse

// SeedItemsHandler handles POST /items/seed requests.
type SeedItemsHandler struct {
	svc *appsvcs.Services
}

// NewSeedItemsHandler returns a SeedItemsHandler backed by the given services.
func NewSeedItemsHandler(svc *appsvcs.Services) *SeedItemsHandler {
	return &SeedItemsHandler{svc: svc}
}

// Execute seeds the sample wardrobe into an empty collection. When items
// already exist nothing is written and the current count is reported.
//
//	@Summary		Seed sample items
//	@Description	Populates an empty collection with the sample wardrobe; no-op otherwise
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	SeedItemsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items/seed [post]
func (h *SeedItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	count, seeded, err := h.svc.Item.Seed(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	msg := "database already seeded"
	if seeded {
		msg = "database seeded successfully"
	}
	httpx.JSON(w, http.StatusOK, SeedItemsResponse{Message: msg, Count: count})
}
