package friends

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"friends-directory/internal/domain/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/friends", listFriendsHandler(svc))
	r.Post("/friends", createFriendHandler(svc))

	// Overview agrupado por país
	r.Get("/friends/by-country", friendsByCountryHandler(svc))

	r.Get("/friends/{friendID}", getFriendHandler(svc))
	r.Put("/friends/{friendID}", updateFriendHandler(svc))
}

// friendRequest es el cuerpo de alta/edición de un friend.
type friendRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Birthday  string  `json:"birthday"`   // YYYY-MM-DD opcional
	AddressID *string `json:"address_id"` // opcional
}

type addressSummary struct {
	ID            string `json:"id"`
	StreetAddress string `json:"street_address"`
	ZipCode       int    `json:"zip_code"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

type petSummary struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Mood      string     `json:"mood"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type quoteSummary struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Author    string     `json:"author"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// friendResponse representa un friend con su dirección y dependientes.
type friendResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Birthday  string          `json:"birthday,omitempty"`
	AddressID *string         `json:"address_id,omitempty"`
	Address   *addressSummary `json:"address,omitempty"`
	Country   string          `json:"country"`
	Pets      []petSummary    `json:"pets"`
	Quotes    []quoteSummary  `json:"quotes"`
	Seeded    bool            `json:"seeded"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// listFriendsHandler godoc
// @Summary Listar friends
// @Description Sin useSeeds (o con useSeeds=true) incluye los datos demo.
// @Tags friends
// @Produce json
// @Param useSeeds query bool false "Incluir datos demo" default(true)
// @Success 200 {array} friendResponse
// @Failure 500 {string} string "internal error"
// @Router /api/friends [get]
func listFriendsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListFriends(r.Context(), boolParam(r, "useSeeds", true))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]friendResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFriendResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// friendsByCountryHandler godoc
// @Summary Friends agrupados por país
// @Description Los friends sin dirección van bajo "Unknown". Cada grupo viene ordenado por apellido y nombre.
// @Tags friends
// @Produce json
// @Param useSeeds query bool false "Incluir datos demo" default(true)
// @Param includeDeleted query bool false "Incluir mascotas y quotes borradas" default(false)
// @Success 200 {object} map[string][]friendResponse
// @Failure 500 {string} string "internal error"
// @Router /api/friends/by-country [get]
func friendsByCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.ReadFriendsByCountry(r.Context(), boolParam(r, "useSeeds", true), boolParam(r, "includeDeleted", false))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make(map[string][]friendResponse, len(groups))
		for country, items := range groups {
			list := make([]friendResponse, 0, len(items))
			for _, f := range items {
				list = append(list, toFriendResponse(f))
			}
			out[country] = list
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getFriendHandler godoc
// @Summary Obtener friend
// @Tags friends
// @Produce json
// @Param friendID path string true "ID del friend"
// @Param includeDeleted query bool false "Incluir mascotas y quotes borradas" default(false)
// @Success 200 {object} friendResponse
// @Failure 404 {string} string "friend not found"
// @Router /api/friends/{friendID} [get]
func getFriendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.ReadFriend(r.Context(), chi.URLParam(r, "friendID"), boolParam(r, "includeDeleted", false))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFriendResponse(f))
	}
}

// createFriendHandler godoc
// @Summary Crear friend
// @Description Nombre y apellido obligatorios (máx. 100), email válido (máx. 255), cumpleaños opcional en el pasado y desde 1900.
// @Tags friends
// @Accept json
// @Produce json
// @Param payload body friendRequest true "Datos del friend; birthday en formato YYYY-MM-DD"
// @Success 201 {object} friendResponse
// @Failure 400 {string} string "invalid json / birthday inválido"
// @Failure 422 {object} validationResponse
// @Router /api/friends [post]
func createFriendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeFriendRequest(w, r)
		if !ok {
			return
		}

		f, err := svc.CreateFriend(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toFriendResponse(f))
	}
}

// updateFriendHandler godoc
// @Summary Actualizar friend
// @Tags friends
// @Accept json
// @Produce json
// @Param friendID path string true "ID del friend"
// @Param payload body friendRequest true "Datos del friend; birthday en formato YYYY-MM-DD"
// @Success 200 {object} friendResponse
// @Failure 400 {string} string "invalid json / birthday inválido"
// @Failure 404 {string} string "friend not found"
// @Failure 422 {object} validationResponse
// @Router /api/friends/{friendID} [put]
func updateFriendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeFriendRequest(w, r)
		if !ok {
			return
		}
		in.ID = chi.URLParam(r, "friendID")

		f, err := svc.UpdateFriend(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFriendResponse(f))
	}
}

func decodeFriendRequest(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return Input{}, false
	}

	in := Input{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		AddressID: req.AddressID,
	}
	if strings.TrimSpace(req.Birthday) != "" {
		t, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			http.Error(w, "birthday must be YYYY-MM-DD", http.StatusBadRequest)
			return Input{}, false
		}
		in.Birthday = &t
	}
	return in, true
}

func toFriendResponse(f Friend) friendResponse {
	out := friendResponse{
		ID:        f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		AddressID: f.AddressID,
		Country:   f.Country(),
		Pets:      make([]petSummary, 0, len(f.Pets)),
		Quotes:    make([]quoteSummary, 0, len(f.Quotes)),
		Seeded:    f.Seeded,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Birthday != nil {
		out.Birthday = f.Birthday.Format("2006-01-02")
	}
	if a := f.Address; a != nil {
		out.Address = &addressSummary{
			ID:            a.ID,
			StreetAddress: a.StreetAddress,
			ZipCode:       a.ZipCode,
			City:          a.City,
			Country:       a.Country,
		}
	}
	for _, p := range f.Pets {
		out.Pets = append(out.Pets, petSummary{ID: p.ID, Name: p.Name, Kind: string(p.Kind), Mood: string(p.Mood), DeletedAt: p.DeletedAt})
	}
	for _, q := range f.Quotes {
		out.Quotes = append(out.Quotes, quoteSummary{ID: q.ID, Text: q.Text, Author: q.Author, DeletedAt: q.DeletedAt})
	}
	return out
}

func boolParam(r *http.Request, key string, def bool) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case validation.FieldsOf(err) != nil:
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "invalid input", Fields: validation.FieldsOf(err)})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "friend not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
