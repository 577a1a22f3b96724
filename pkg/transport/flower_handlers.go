package transport

import (
	"net/http"

	"github.com/aeste7/flw/pkg/domain/model"
)

func (h *Handler) listFlowers(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.warehouse.ListFlowers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flowers)
}

func (h *Handler) getFlower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	flower, err := h.warehouse.GetFlower(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flower)
}

func (h *Handler) addFlowers(w http.ResponseWriter, r *http.Request) {
	var req addFlowersRequest
	if !h.decode(w, r, &req) {
		return
	}
	flower, err := h.warehouse.AddFlowers(r.Context(), req.Flower, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, flower)
}

func (h *Handler) updateFlower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateFlowerRequest
	if !h.decode(w, r, &req) {
		return
	}
	flower, err := h.warehouse.UpdateFlower(r.Context(), id, model.FlowerUpdate{
		Name:   req.Flower,
		Amount: req.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flower)
}

func (h *Handler) removeFlower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.warehouse.RemoveFlower(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}
