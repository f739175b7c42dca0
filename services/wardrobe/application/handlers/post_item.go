package handlers

import (
	"net/http"

	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/httpx"
	pkgvalidator "github.com/ghuser/recount/pkg/validator"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// CreateItemRequest is the JSON request body for POST /items. Multipart
// submissions carry the same field names plus an optional image file.
type CreateItemRequest struct {
	Name         string  `json:"name" validate:"required" example:"Classic White Tee"`
	Category     string  `json:"category" validate:"required,oneof=top upper lower underwear" example:"top"`
	BoughtFrom   string  `json:"boughtFrom" validate:"omitempty,max=255" example:"Uniqlo"`
	Price        float64 `json:"price" validate:"gte=0" example:"19.90"`
	PurchaseDate string  `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02" example:"2025-03-15"`
	Notes        string  `json:"notes" validate:"omitempty,max=2000"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item from a JSON body or a multipart form with an
// optional image file.
//
//	@Summary		Create item
//	@Description	Creates a new wardrobe item, optionally uploading an image
//	@Tags			items
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item draft"
//	@Success		201		{object}	models.ClothingItem
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.parseDraft(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), draft)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *PostItemHandler) parseDraft(w http.ResponseWriter, r *http.Request) (appsvcs.CreateItem, bool) {
	if isMultipart(r) {
		form, err := parseItemForm(r)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid form data")
			return appsvcs.CreateItem{}, false
		}
		return appsvcs.CreateItem{
			Name:         form.get("name"),
			Category:     models.Category(form.get("category")),
			BoughtFrom:   form.get("boughtFrom"),
			Price:        form.getFloat("price"),
			PurchaseDate: form.get("purchaseDate"),
			Notes:        form.get("notes"),
			Image:        form.image,
		}, true
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return appsvcs.CreateItem{}, false
	}
	return appsvcs.CreateItem{
		Name:         req.Name,
		Category:     models.Category(req.Category),
		BoughtFrom:   req.BoughtFrom,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
		Notes:        req.Notes,
	}, true
}
