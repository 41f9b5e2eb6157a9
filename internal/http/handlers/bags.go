package handlers

import (
	"bytes"
	"io"
	"net/http"

	"service-dispatch/internal/documents"
	"service-dispatch/internal/logx"
)

// BagHandler serves bags and their printable documents.
type BagHandler struct {
	logger logx.Logger
	uc     bagUsecase
}

// NewBagHandler wires a bagUsecase into HTTP handlers.
func NewBagHandler(logger logx.Logger, uc bagUsecase) *BagHandler {
	return &BagHandler{logger: orNop(logger), uc: uc}
}

// List handles GET /bags with an optional ?courier= filter.
func (h *BagHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListBags(r.Context(), r.URL.Query().Get("courier"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bagsToResponse(list))
}

// Get handles GET /bags/{id}.
func (h *BagHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.uc.GetBag(r.Context(), pathID(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bagToResponse(*b))
}

// Manifest handles GET /bags/{id}/manifest.
func (h *BagHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	h.document(w, r, documents.Manifest)
}

// Receipt handles GET /bags/{id}/receipt.
func (h *BagHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	h.document(w, r, documents.Receipt)
}

func (h *BagHandler) document(w http.ResponseWriter, r *http.Request, render func(io.Writer, documents.Bag) error) {
	d, err := h.uc.Details(r.Context(), pathID(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := render(&buf, documents.Bag{Bag: d.Bag, Orders: d.Orders, Courier: d.Courier}); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Debug("document write failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}
