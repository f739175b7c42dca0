package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
)

// DeleteItemResponse is returned on successful (or no-op) deletion.
type DeleteItemResponse struct {
	Success bool `json:"success" example:"true"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item. Deleting an id that does not exist still
// succeeds; the operation is idempotent.
//
//	@Summary		Delete item
//	@Description	Removes a wardrobe item; idempotent
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Item.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeleteItemResponse{Success: true})
}
