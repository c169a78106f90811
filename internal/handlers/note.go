package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/calnote/apiserver/internal/metrics"
	"github.com/calnote/apiserver/internal/services"
	"github.com/calnote/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
)

// NoteHandler provides HTTP handlers for notes. Every route requires an
// authenticated caller; the owner id is taken from the request context and
// never from the payload.
type NoteHandler struct {
	noteService *services.NoteService
	collector   *metrics.Collector
}

// NewNoteHandler constructs a handler with the provided dependencies.
func NewNoteHandler(noteService *services.NoteService, collector *metrics.Collector) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		collector:   collector,
	}
}

// NoteRouter registers note routes on the given router.
func NoteRouter(
	r chi.Router,
	noteService *services.NoteService,
	collector *metrics.Collector,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewNoteHandler(noteService, collector)

	r.Use(authMiddleware)
	r.Post("/", handler.CreateNote)
	r.Get("/", handler.ListNotes)
	r.Route("/{noteID}", func(r chi.Router) {
		r.Put("/", handler.UpdateNote)
		r.Delete("/", handler.DeleteNote)
	})
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	note, err := h.noteService.Create(r.Context(), ownerID, strings.TrimSpace(req.Date), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		slog.Error("failed to create note", "error", err)
		writeError(w, http.StatusInternalServerError, "error creating note")
		return
	}

	if h.collector != nil {
		h.collector.RecordNoteCreated()
	}

	writeJSON(w, http.StatusCreated, NoteCreateResponse{
		Message: "Note created successfully",
		NoteID:  note.ID,
	})
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	notes, err := h.noteService.List(r.Context(), ownerID)
	if err != nil {
		slog.Error("failed to list notes", "error", err)
		writeError(w, http.StatusInternalServerError, "error fetching notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	noteID, err := parseNoteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req NoteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.noteService.UpdateContent(r.Context(), ownerID, noteID, req.Content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "note not found or unauthorized")
			return
		}
		slog.Error("failed to update note", "error", err)
		writeError(w, http.StatusInternalServerError, "error updating note")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Note updated successfully"})
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	noteID, err := parseNoteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.noteService.Delete(r.Context(), ownerID, noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "note not found or unauthorized")
			return
		}
		slog.Error("failed to delete note", "error", err)
		writeError(w, http.StatusInternalServerError, "error deleting note")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
}

type NoteCreateRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

type NoteUpdateRequest struct {
	Content string `json:"content"`
}

type NoteCreateResponse struct {
	Message string `json:"message"`
	NoteID  int    `json:"noteId"`
}

// MessageResponse is a success payload with no other data.
type MessageResponse struct {
	Message string `json:"message"`
}

func parseNoteID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "noteID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid note id")
	}
	return id, nil
}
