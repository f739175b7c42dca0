package handlers

import (
	"net/http"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists the full collection newest-first.
//
//	@Summary		List items
//	@Description	Returns every wardrobe item, newest first
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		models.ClothingItem
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}
