package transport

import "net/http"

func (h *Handler) listWriteoffs(w http.ResponseWriter, r *http.Request) {
	writeoffs, err := h.writeoffs.ListWriteoffs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, writeoffs)
}

func (h *Handler) recordWriteoff(w http.ResponseWriter, r *http.Request) {
	var req recordWriteoffRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeoff, err := h.writeoffs.RecordWriteoff(r.Context(), req.Flower, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, writeoff)
}

func (h *Handler) clearWriteoffs(w http.ResponseWriter, r *http.Request) {
	if err := h.writeoffs.ClearWriteoffs(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}
