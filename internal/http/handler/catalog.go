package handler

import (
	"net/http"

	"storefront/internal/http/handler/middleware"
)

func (h *StorefrontHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	items, err := h.storefront.ActiveItems(r.Context())
	if err != nil {
		h.fail(w, "Could not load items", err, GetItems, requestId)
		return
	}

	h.logs.Infow("items retrieved",
		"num_of_items", len(items),
		"handler", GetItems,
		"request_id", requestId)

	h.respond(w, Response{Data: items}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	itemID, ok := h.itemID(w, r, GetItem, requestId)
	if !ok {
		return
	}

	details, err := h.storefront.ItemDetails(r.Context(), itemID)
	if err != nil {
		h.fail(w, "Could not load item", err, GetItem, requestId)
		return
	}

	h.respond(w, Response{Data: details}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleGetSeller(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	seller, err := h.storefront.SellerProfile(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Could not load seller", err, GetSeller, requestId)
		return
	}

	h.respond(w, Response{Data: seller}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleGetSellerItems(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	items, err := h.storefront.SellerItems(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Could not load seller items", err, GetSellerItems, requestId)
		return
	}

	h.respond(w, Response{Data: items}, http.StatusOK, requestId)
}
