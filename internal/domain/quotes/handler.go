package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"friends-directory/internal/domain/validation"

	"github.com/go-chi/chi/v5"
)

type FriendChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, friendsSvc FriendChecker) {
	r.Post("/friends/{friendID}/quotes", createQuoteHandler(svc, friendsSvc))
	r.Delete("/quotes/{quoteID}", deleteQuoteHandler(svc))
}

type createQuoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"` // opcional, default "Unknown"
}

// quoteResponse representa una quote devuelta por la API.
type quoteResponse struct {
	ID        string     `json:"id"`
	FriendID  string     `json:"friend_id"`
	Text      string     `json:"text"`
	Author    string     `json:"author"`
	Seeded    bool       `json:"seeded"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// createQuoteHandler godoc
// @Summary Crear quote de un friend
// @Tags quotes
// @Accept json
// @Produce json
// @Param friendID path string true "ID del friend"
// @Param payload body createQuoteRequest true "Texto (máx. 1000) y autor (máx. 200)"
// @Success 201 {object} quoteResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "friend not found"
// @Failure 422 {object} validationResponse
// @Router /api/friends/{friendID}/quotes [post]
func createQuoteHandler(svc *Service, friendsSvc FriendChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		friendID := chi.URLParam(r, "friendID")
		ok, err := friendsSvc.Exists(r.Context(), friendID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "friend not found", http.StatusNotFound)
			return
		}

		var req createQuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		q, err := svc.Create(r.Context(), friendID, CreateInput{Text: req.Text, Author: req.Author})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toQuoteResponse(q))
	}
}

// deleteQuoteHandler godoc
// @Summary Borrar quote
// @Tags quotes
// @Produce json
// @Param quoteID path string true "ID de la quote"
// @Success 200 {object} quoteResponse
// @Failure 404 {string} string "quote not found"
// @Router /api/quotes/{quoteID} [delete]
func deleteQuoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := svc.DeleteQuote(r.Context(), chi.URLParam(r, "quoteID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toQuoteResponse(q))
	}
}

func toQuoteResponse(q Quote) quoteResponse {
	return quoteResponse{
		ID:        q.ID,
		FriendID:  q.FriendID,
		Text:      q.Text,
		Author:    q.Author,
		Seeded:    q.Seeded,
		CreatedAt: q.CreatedAt,
		DeletedAt: q.DeletedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case validation.FieldsOf(err) != nil:
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "invalid input", Fields: validation.FieldsOf(err)})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "quote not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
