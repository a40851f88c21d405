package breeds

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc))

		br.Get("/{breedID}", getBreedHandler(svc))
		br.Put("/{breedID}", updateBreedHandler(svc))
		br.Delete("/{breedID}", deleteBreedHandler(svc))
	})
}

type breedRequest struct {
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Size        string `json:"size"`
	Temperament string `json:"temperament"`
	Lifespan    string `json:"lifespan"`
	Description string `json:"description"`
}

type breedResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Size        string    `json:"size"`
	Temperament string    `json:"temperament"`
	Lifespan    string    `json:"lifespan"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type createBreedResponse struct {
	ID      int64         `json:"id"`
	Message string        `json:"message"`
	Breed   breedResponse `json:"breed"`
}

type updateBreedResponse struct {
	Message string        `json:"message"`
	Breed   breedResponse `json:"breed"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listBreedsHandler godoc
// @Summary      Lista todas las razas
// @Tags         breeds
// @Produce      json
// @Success      200 {array} breedResponse
// @Failure      500 {object} errorResponse
// @Router       /breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("error fetching breeds")
			writeError(w, http.StatusInternalServerError, "Failed to fetch breeds")
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getBreedHandler godoc
// @Summary      Busca una raza por id
// @Tags         breeds
// @Produce      json
// @Param        breedID path int true "Breed ID"
// @Success      200 {object} breedResponse
// @Failure      404 {object} errorResponse
// @Failure      500 {object} errorResponse
// @Router       /breeds/{breedID} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBreedID(chi.URLParam(r, "breedID"))
		if !ok {
			// id no numérico: no puede matchear ninguna fila
			writeError(w, http.StatusNotFound, "Breed not found")
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Breed not found")
			default:
				log.Ctx(r.Context()).Error().Err(err).Int64("breed_id", id).Msg("error fetching breed")
				writeError(w, http.StatusInternalServerError, "Failed to fetch breed")
			}
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

// createBreedHandler godoc
// @Summary      Crea una raza
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Param        breed body breedRequest true "Breed payload"
// @Success      201 {object} createBreedResponse
// @Failure      400 {object} errorResponse
// @Failure      409 {object} errorResponse
// @Failure      500 {object} errorResponse
// @Router       /breeds [post]
func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req breedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		b, err := svc.Create(r.Context(), toInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "All required fields must be provided")
			case errors.Is(err, ErrDuplicateName):
				writeError(w, http.StatusConflict, "A breed with this name already exists")
			default:
				log.Ctx(r.Context()).Error().Err(err).Msg("error creating breed")
				writeError(w, http.StatusInternalServerError, "Failed to create breed")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createBreedResponse{
			ID:      b.ID,
			Message: "Breed created successfully",
			Breed:   toBreedResponse(b),
		})
	}
}

// updateBreedHandler godoc
// @Summary      Actualiza una raza (payload completo, no PATCH)
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Param        breedID path int true "Breed ID"
// @Param        breed body breedRequest true "Breed payload"
// @Success      200 {object} updateBreedResponse
// @Failure      400 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Failure      409 {object} errorResponse
// @Failure      500 {object} errorResponse
// @Router       /breeds/{breedID} [put]
func updateBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBreedID(chi.URLParam(r, "breedID"))
		if !ok {
			writeError(w, http.StatusNotFound, "Breed not found")
			return
		}

		var req breedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		b, err := svc.Update(r.Context(), id, toInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "All required fields must be provided")
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Breed not found")
			case errors.Is(err, ErrDuplicateName):
				writeError(w, http.StatusConflict, "A breed with this name already exists")
			default:
				log.Ctx(r.Context()).Error().Err(err).Int64("breed_id", id).Msg("error updating breed")
				writeError(w, http.StatusInternalServerError, "Failed to update breed")
			}
			return
		}

		writeJSON(w, http.StatusOK, updateBreedResponse{
			Message: "Breed updated successfully",
			Breed:   toBreedResponse(b),
		})
	}
}

// deleteBreedHandler godoc
// @Summary      Elimina una raza (hard delete)
// @Tags         breeds
// @Produce      json
// @Param        breedID path int true "Breed ID"
// @Success      200 {object} messageResponse
// @Failure      404 {object} errorResponse
// @Failure      500 {object} errorResponse
// @Router       /breeds/{breedID} [delete]
func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseBreedID(chi.URLParam(r, "breedID"))
		if !ok {
			writeError(w, http.StatusNotFound, "Breed not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Breed not found")
			default:
				log.Ctx(r.Context()).Error().Err(err).Int64("breed_id", id).Msg("error deleting breed")
				writeError(w, http.StatusInternalServerError, "Failed to delete breed")
			}
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Breed deleted successfully"})
	}
}

func parseBreedID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toInput(req breedRequest) Input {
	return Input{
		Name:        req.Name,
		Origin:      req.Origin,
		Size:        req.Size,
		Temperament: req.Temperament,
		Lifespan:    req.Lifespan,
		Description: req.Description,
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:          b.ID,
		Name:        b.Name,
		Origin:      b.Origin,
		Size:        b.Size,
		Temperament: b.Temperament,
		Lifespan:    b.Lifespan,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
