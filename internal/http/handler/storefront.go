package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core"
	"storefront/internal/http/handler/middleware"
	"storefront/pkg/units"

	"go.uber.org/zap"
)

var (
	Health = "GET /health"

	RequestChallenge = "POST /api/wallet/challenge"
	ConnectWallet    = "POST /api/wallet/connect"
	DisconnectWallet = "POST /api/wallet/disconnect"
	GetWalletStatus  = "GET /api/wallet/status"

	GetItems        = "GET /api/items"
	GetItem         = "GET /api/items/{id}"
	BuyItem         = "POST /api/items/{id}/buy"
	GetSeller       = "GET /api/sellers/{address}"
	GetSellerItems  = "GET /api/sellers/{address}/items"
	GetPurchases    = "GET /api/purchases"
	GetDashboard    = "GET /api/seller/dashboard"
	RegisterSeller  = "POST /api/seller/register"
	CreateItem      = "POST /api/seller/items"
	UpdateItem      = "PUT /api/seller/items/{id}"
	RemoveItem      = "DELETE /api/seller/items/{id}"
	AssignItem      = "POST /api/seller/items/{id}/assign"
	TrackTx         = "POST /api/transactions"
	SubmitRawTx     = "POST /api/transactions/raw"
	GetTransaction  = "GET /api/transactions/{hash}"
	GetTransactions = "GET /api/transactions"
)

const (
	AuthHeader    = "AUTH_TOKEN"
	SessionCookie = "storefront_session"
)

type StorefrontHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	storefront       StorefrontService
	secureCookies    bool
}

func NewStorefrontHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, storefront StorefrontService, secureCookies bool) *StorefrontHandler {
	return &StorefrontHandler{
		logs:             logger,
		requestValidator: requestValidator,
		storefront:       storefront,
		secureCookies:    secureCookies,
	}
}

func (h *StorefrontHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.GetRequestID(r.Context()))
}

// authToken reads the session token from the AUTH_TOKEN header, falling back to the cookie.
func authToken(r *http.Request) string {
	if token := r.Header.Get(AuthHeader); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *StorefrontHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *StorefrontHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// session resolves the caller's wallet session and answers 401 when there is none.
func (h *StorefrontHandler) session(w http.ResponseWriter, r *http.Request, route, requestId string) (core.Session, bool) {
	session, err := h.storefront.Session(r.Context(), authToken(r))
	if err != nil {
		h.fail(w, "Wallet not connected", err, route, requestId)
		return core.Session{}, false
	}
	return session, true
}

func (h *StorefrontHandler) itemID(w http.ResponseWriter, r *http.Request, route, requestId string) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		h.badRequest(w, "Invalid item id", fmt.Errorf("item id %q: must be a positive integer", r.PathValue("id")), route, requestId)
		return 0, false
	}
	return id, true
}

func (h *StorefrontHandler) decode(w http.ResponseWriter, r *http.Request, object any, route, requestId string) bool {
	if err := h.requestValidator.DecodeJSONPayload(r, object); err != nil {
		h.badRequest(w, "Invalid request", err, route, requestId)
		return false
	}
	return true
}

func (h *StorefrontHandler) badRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail maps a service error to its status code. Unexpected errors are not
// shown to the client.
func (h *StorefrontHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	code := statusCode(err)

	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(strings.ToLower(message),
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, core.ErrChallengeExpired),
		errors.Is(err, core.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrNotSeller),
		errors.Is(err, core.ErrNotItemOwner):
		return http.StatusForbidden
	case errors.Is(err, core.ErrItemNotFound),
		errors.Is(err, core.ErrSellerNotFound),
		errors.Is(err, core.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrItemInactive),
		errors.Is(err, core.ErrAlreadySeller),
		errors.Is(err, core.ErrAlreadyTracked):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidPrice),
		errors.Is(err, core.ErrInvalidKind),
		errors.Is(err, core.ErrInvalidHash),
		errors.Is(err, core.ErrRejectedTransaction),
		errors.Is(err, units.ErrEmptyAmount),
		errors.Is(err, units.ErrInvalidAmount),
		errors.Is(err, units.ErrNegativeAmount),
		errors.Is(err, units.ErrTooPrecise):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNodeRequest):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *StorefrontHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
