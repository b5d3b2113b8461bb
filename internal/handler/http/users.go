package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Not-found responses deliberately use 400, matching the published API
// contract of this service.
const (
	msgUserNotFound       = "User not found."
	msgUserNotFoundUpdate = "User not found. Impossible to update."
	msgUserNotFoundDelete = "Could not delete. User not found."
)

// userIDFromRequest extracts and parses the {id} path parameter.
// An unparseable identifier cannot match any stored user, so callers
// treat a parse failure the same way as an absent record.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing users")
		writeInternalError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("unparseable user id in path")
		writeMessage(w, msgUserNotFound, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Str("id", id.String()).Msg("user not found")
			writeMessage(w, msgUserNotFound, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			writeInternalError(w, err)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("validated payload missing from context")
		writeInternalError(w, ErrNoValidatedPayload)
		return
	}

	newUser, err := h.services.UserService.CreateUser(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Msg("create attempt with an email already in use")
			writeEmailConflict(w)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeInternalError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.IDResponse{ID: newUser.ID}, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("unparseable user id in path")
		writeMessage(w, msgUserNotFoundUpdate, http.StatusBadRequest)
		return
	}

	payload, ok := utils.GetPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("validated payload missing from context")
		writeInternalError(w, ErrNoValidatedPayload)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, id, payload)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Str("id", id.String()).Msg("user not found for update")
			writeMessage(w, msgUserNotFoundUpdate, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Str("id", id.String()).Msg("update attempt with an email already in use")
			writeEmailConflict(w)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			writeInternalError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.IDResponse{ID: updatedUser.ID}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("unparseable user id in path")
		writeMessage(w, msgUserNotFoundDelete, http.StatusBadRequest)
		return
	}

	deletedUser, err := h.services.UserService.DeleteUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Str("id", id.String()).Msg("user not found for delete")
			writeMessage(w, msgUserNotFoundDelete, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user deletion")
			writeInternalError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.IDResponse{ID: deletedUser.ID}, http.StatusOK)
}
