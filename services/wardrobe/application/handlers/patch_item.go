package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// PatchItemHandler handles PATCH /items/{id} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute applies a partial update. The id in the path always wins; any id
// in the body is discarded. Multipart submissions may replace the image.
//
//	@Summary		Update item
//	@Description	Applies a field-level patch to a wardrobe item
//	@Tags			items
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			id		path		string			true	"Item id"
//	@Param			request	body		models.ItemPatch	true	"Fields to change"
//	@Success		200		{object}	models.ClothingItem
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/items/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, image, ok := h.parsePatch(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, patch, image)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *PatchItemHandler) parsePatch(w http.ResponseWriter, r *http.Request) (models.ItemPatch, []byte, bool) {
	if isMultipart(r) {
		form, err := parseItemForm(r)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid form data")
			return models.ItemPatch{}, nil, false
		}
		return patchFromForm(form), form.image, true
	}

	// ItemPatch has no ID field, so an "id" key in the body is dropped by
	// the decoder — the path id is the only identity ever used.
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid JSON")
		return models.ItemPatch{}, nil, false
	}
	return patch, nil, true
}

// patchFromForm builds a patch from whichever form fields were present.
// Absent fields stay nil and leave the stored value alone.
func patchFromForm(form *itemForm) models.ItemPatch {
	var patch models.ItemPatch
	if form.has("name") {
		v := form.get("name")
		patch.Name = &v
	}
	if form.has("category") {
		v := models.Category(form.get("category"))
		patch.Category = &v
	}
	if form.has("wearCount") {
		v := form.getInt("wearCount")
		patch.WearCount = &v
	}
	if form.has("washCount") {
		v := form.getInt("washCount")
		patch.WashCount = &v
	}
	if form.has("boughtFrom") {
		v := form.get("boughtFrom")
		patch.BoughtFrom = &v
	}
	if form.has("price") {
		v := form.getFloat("price")
		patch.Price = &v
	}
	if form.has("purchaseDate") {
		v := form.get("purchaseDate")
		patch.PurchaseDate = &v
	}
	if form.has("lastWornDate") {
		v := form.get("lastWornDate")
		patch.LastWornDate = &v
	}
	if form.has("notes") {
		v := form.get("notes")
		patch.Notes = &v
	}
	return patch
}
