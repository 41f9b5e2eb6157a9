package handlers

import (
	"bytes"
	"net/http"
	"time"

	"service-dispatch/internal/export"
	"service-dispatch/internal/logx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandler serves the order workspace endpoints.
type OrderHandler struct {
	logger logx.Logger
	uc     orderUsecase
	now    func() time.Time
}

// NewOrderHandler wires an orderUsecase into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	return &OrderHandler{logger: orNop(logger), uc: uc, now: time.Now}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := parseListParams(r.URL.Query())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	res, err := h.uc.List(r.Context(), p.Query, p.Sort, p.Page, p.PageSize)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pagedToResponse(res))
}

// Export handles GET /orders/export.xlsx with the same filters as List.
func (h *OrderHandler) Export(w http.ResponseWriter, r *http.Request) {
	p, err := parseListParams(r.URL.Query())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	list, err := h.uc.Query(r.Context(), p.Query, p.Sort)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Orders(&buf, list); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	name := "orders-" + h.now().UTC().Format("20060102-150405") + ".xlsx"
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Debug("export write failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.uc.Get(r.Context(), pathID(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.uc.Create(r.Context(), req.toInput(actor(r)))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+o.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, orderToResponse(*o))
}

// Update handles PATCH /orders/{id}.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req patchOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := h.uc.Update(r.Context(), pathID(r, "id"), req.toModel(), actor(r))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// Bulk handles POST /orders/bulk. Per-id failures are counted, not reported as errors.
func (h *OrderHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	res, err := h.uc.BulkUpdate(r.Context(), req.IDs, req.Patch.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bulkResponse{OK: res.OK, Fail: res.Fail})
}

// ListCouriers handles GET /couriers.
func (h *OrderHandler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListCouriers(r.Context())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, couriersToResponse(list))
}
