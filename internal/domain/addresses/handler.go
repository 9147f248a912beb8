package addresses

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"friends-directory/internal/domain/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/addresses", func(ar chi.Router) {
		ar.Get("/", listAddressesHandler(svc))
		ar.Post("/", createAddressHandler(svc))
		ar.Get("/{addressID}", getAddressHandler(svc))
		ar.Put("/{addressID}", updateAddressHandler(svc))
	})
}

// addressRequest es el cuerpo de alta/edición de una dirección.
type addressRequest struct {
	StreetAddress string `json:"street_address"`
	ZipCode       int    `json:"zip_code"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// addressResponse representa una dirección devuelta por la API.
type addressResponse struct {
	ID            string    `json:"id"`
	StreetAddress string    `json:"street_address"`
	ZipCode       int       `json:"zip_code"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Seeded        bool      `json:"seeded"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// listAddressesHandler godoc
// @Summary Listar direcciones
// @Tags addresses
// @Produce json
// @Success 200 {array} addressResponse
// @Failure 500 {string} string "internal error"
// @Router /api/addresses [get]
func listAddressesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAddresses(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]addressResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAddressResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAddressHandler godoc
// @Summary Crear dirección
// @Description Valida calle, ciudad y país (solo letras, números y espacios) y el zip (0 a 999999).
// @Tags addresses
// @Accept json
// @Produce json
// @Param payload body addressRequest true "Datos de la dirección"
// @Success 201 {object} addressResponse
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationResponse
// @Router /api/addresses [post]
func createAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.CreateAddress(r.Context(), req.input(""))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAddressResponse(a))
	}
}

// getAddressHandler godoc
// @Summary Obtener dirección
// @Tags addresses
// @Produce json
// @Param addressID path string true "ID de la dirección"
// @Success 200 {object} addressResponse
// @Failure 404 {string} string "address not found"
// @Router /api/addresses/{addressID} [get]
func getAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.ReadAddress(r.Context(), chi.URLParam(r, "addressID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAddressResponse(a))
	}
}

// updateAddressHandler godoc
// @Summary Actualizar dirección
// @Tags addresses
// @Accept json
// @Produce json
// @Param addressID path string true "ID de la dirección"
// @Param payload body addressRequest true "Datos de la dirección"
// @Success 200 {object} addressResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "address not found"
// @Failure 422 {object} validationResponse
// @Router /api/addresses/{addressID} [put]
func updateAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateAddress(r.Context(), req.input(chi.URLParam(r, "addressID")))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAddressResponse(a))
	}
}

func (req addressRequest) input(id string) Input {
	return Input{
		ID:            id,
		StreetAddress: req.StreetAddress,
		ZipCode:       req.ZipCode,
		City:          req.City,
		Country:       req.Country,
	}
}

func toAddressResponse(a Address) addressResponse {
	return addressResponse{
		ID:            a.ID,
		StreetAddress: a.StreetAddress,
		ZipCode:       a.ZipCode,
		City:          a.City,
		Country:       a.Country,
		Seeded:        a.Seeded,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case validation.FieldsOf(err) != nil:
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "invalid input", Fields: validation.FieldsOf(err)})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "address not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
