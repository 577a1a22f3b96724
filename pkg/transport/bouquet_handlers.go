package transport

import "net/http"

func (h *Handler) listBouquets(w http.ResponseWriter, r *http.Request) {
	bouquets, err := h.bouquets.ListBouquets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bouquets)
}

func (h *Handler) getBouquet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	bouquet, err := h.bouquets.GetBouquet(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bouquet)
}

func (h *Handler) getBouquetItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.bouquets.GetBouquetItems(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createBouquet(w http.ResponseWriter, r *http.Request) {
	var req createBouquetRequest
	if !h.decode(w, r, &req) {
		return
	}
	bouquet, err := h.bouquets.CreateBouquet(r.Context(), req.Description, req.Photo, toLineItems(req.Items))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bouquet)
}

func (h *Handler) sellBouquet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.bouquets.SellBouquet(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (h *Handler) disassembleBouquet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.bouquets.DisassembleBouquet(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}
