package handlers

import (
	"net/http"

	"service-dispatch/internal/logx"
)

// HandoverHandler serves the courier handover reconciliation sessions.
type HandoverHandler struct {
	logger logx.Logger
	uc     handoverUsecase
}

// NewHandoverHandler wires a handoverUsecase into HTTP handlers.
func NewHandoverHandler(logger logx.Logger, uc handoverUsecase) *HandoverHandler {
	return &HandoverHandler{logger: orNop(logger), uc: uc}
}

// Open handles POST /handover/sessions.
func (h *HandoverHandler) Open(w http.ResponseWriter, r *http.Request) {
	s := h.uc.Open()
	w.Header().Set("Location", "/handover/sessions/"+s.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, sessionToResponse(s))
}

// Get handles GET /handover/sessions/{id}.
func (h *HandoverHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.Get(pathID(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionToResponse(s))
}

// SelectCourier handles PUT /handover/sessions/{id}/courier.
func (h *HandoverHandler) SelectCourier(w http.ResponseWriter, r *http.Request) {
	var req selectCourierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	s, err := h.uc.SelectCourier(r.Context(), pathID(r, "id"), req.CourierID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionToResponse(s))
}

// Scan handles POST /handover/sessions/{id}/scans. A rejected scan is a
// normal 200 response carrying the feedback.
func (h *HandoverHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	s, fb, err := h.uc.Scan(pathID(r, "id"), req.Barcode)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, scanResponse{
		Session:  sessionToResponse(s),
		Feedback: feedbackToResponse(fb),
	})
}

// Commit handles POST /handover/sessions/{id}/commit.
func (h *HandoverHandler) Commit(w http.ResponseWriter, r *http.Request) {
	res, err := h.uc.Commit(r.Context(), pathID(r, "id"), actor(r))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/bags/"+res.Bag.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, commitResponse{
		Session: sessionToResponse(res.Session),
		Bag:     bagToResponse(res.Bag),
	})
}

// Reset handles POST /handover/sessions/{id}/reset.
func (h *HandoverHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.Reset(pathID(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionToResponse(s))
}

// Close handles DELETE /handover/sessions/{id}.
func (h *HandoverHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Close(pathID(r, "id")); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
