package transport

import (
	"net/http"

	"github.com/aeste7/flw/pkg/domain/model"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.ListNotes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !h.decode(w, r, &req) {
		return
	}
	note, err := h.notes.CreateNote(r.Context(), req.Title, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateNoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	note, err := h.notes.UpdateNote(r.Context(), id, model.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.notes.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}
