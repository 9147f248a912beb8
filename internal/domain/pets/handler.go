package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"friends-directory/internal/domain/validation"

	"github.com/go-chi/chi/v5"
)

// FriendChecker confirma que el friend dueño existe antes de crear.
type FriendChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, friendsSvc FriendChecker) {
	r.Post("/friends/{friendID}/pets", createPetHandler(svc, friendsSvc))
	r.Delete("/pets/{petID}", deletePetHandler(svc))
}

// createPetRequest es el cuerpo para registrar una mascota de un friend.
type createPetRequest struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind" enums:"dog,cat,rabbit,fish,bird"`
	Mood Mood   `json:"mood" enums:"happy,hungry,lazy,sulky,busy,sleepy"` // opcional, default happy
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID        string     `json:"id"`
	FriendID  string     `json:"friend_id"`
	Name      string     `json:"name"`
	Kind      Kind       `json:"kind"`
	Mood      Mood       `json:"mood"`
	Seeded    bool       `json:"seeded"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// createPetHandler godoc
// @Summary Crear mascota de un friend
// @Tags pets
// @Accept json
// @Produce json
// @Param friendID path string true "ID del friend"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "friend not found"
// @Failure 422 {object} validationResponse
// @Router /api/friends/{friendID}/pets [post]
func createPetHandler(svc *Service, friendsSvc FriendChecker) http.HandlerFunc {
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

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), friendID, CreateInput{
			Name: req.Name,
			Kind: req.Kind,
			Mood: req.Mood,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borrado lógico: la mascota deja de aparecer salvo con includeDeleted.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /api/pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.DeletePet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		FriendID:  p.FriendID,
		Name:      p.Name,
		Kind:      p.Kind,
		Mood:      p.Mood,
		Seeded:    p.Seeded,
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case validation.FieldsOf(err) != nil:
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "invalid input", Fields: validation.FieldsOf(err)})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
