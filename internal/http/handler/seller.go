package handler

import (
	"net/http"

	"storefront/internal/core"
	"storefront/internal/http/handler/middleware"
	"storefront/internal/http/payload"
)

func (h *StorefrontHandler) HandleRegisterSeller(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, RegisterSeller, requestId)
	if !ok {
		return
	}

	var req payload.RegisterSellerRequest
	if !h.decode(w, r, &req, RegisterSeller, requestId) {
		return
	}

	tx, err := h.storefront.RegisterSeller(r.Context(), session, req.Name)
	h.prepared(w, "Confirm the registration in your wallet", tx, err, RegisterSeller, requestId)
}

func (h *StorefrontHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, CreateItem, requestId)
	if !ok {
		return
	}

	var req payload.ItemRequest
	if !h.decode(w, r, &req, CreateItem, requestId) {
		return
	}

	tx, err := h.storefront.CreateItem(r.Context(), session, req.ToInput())
	h.prepared(w, "Confirm the new listing in your wallet", tx, err, CreateItem, requestId)
}

func (h *StorefrontHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	itemID, ok := h.itemID(w, r, UpdateItem, requestId)
	if !ok {
		return
	}
	session, ok := h.session(w, r, UpdateItem, requestId)
	if !ok {
		return
	}

	var req payload.ItemRequest
	if !h.decode(w, r, &req, UpdateItem, requestId) {
		return
	}

	tx, err := h.storefront.UpdateItem(r.Context(), session, itemID, req.ToInput())
	h.prepared(w, "Confirm the update in your wallet", tx, err, UpdateItem, requestId)
}

func (h *StorefrontHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	itemID, ok := h.itemID(w, r, RemoveItem, requestId)
	if !ok {
		return
	}
	session, ok := h.session(w, r, RemoveItem, requestId)
	if !ok {
		return
	}

	tx, err := h.storefront.RemoveItem(r.Context(), session, itemID)
	h.prepared(w, "Confirm the removal in your wallet", tx, err, RemoveItem, requestId)
}

func (h *StorefrontHandler) HandleAssignItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	itemID, ok := h.itemID(w, r, AssignItem, requestId)
	if !ok {
		return
	}
	session, ok := h.session(w, r, AssignItem, requestId)
	if !ok {
		return
	}

	var req payload.AssignItemRequest
	if !h.decode(w, r, &req, AssignItem, requestId) {
		return
	}

	tx, err := h.storefront.AssignItemToSeller(r.Context(), session, itemID, req.Seller)
	h.prepared(w, "Confirm the transfer in your wallet", tx, err, AssignItem, requestId)
}

func (h *StorefrontHandler) HandleSellerDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, GetDashboard, requestId)
	if !ok {
		return
	}

	dashboard, err := h.storefront.SellerDashboard(r.Context(), session.Address.Hex())
	if err != nil {
		h.fail(w, "Could not load dashboard", err, GetDashboard, requestId)
		return
	}

	h.respond(w, Response{Data: dashboard}, http.StatusOK, requestId)
}

// prepared answers with an unsigned transaction for the wallet to sign.
func (h *StorefrontHandler) prepared(w http.ResponseWriter, message string, tx core.TxRequest, err error, route, requestId string) {
	if err != nil {
		h.fail(w, "Could not prepare transaction", err, route, requestId)
		return
	}

	h.logs.Infow("transaction prepared",
		"kind", tx.Kind,
		"from", tx.From,
		"handler", route,
		"request_id", requestId)

	h.respond(w, Response{
		Message: message,
		Data:    tx,
	}, http.StatusOK, requestId)
}
