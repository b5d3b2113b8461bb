package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// login authenticates a user by email and password and issues a bearer
// token.
//
// Outcomes:
//   - unknown email → 403
//   - wrong password → 401 (the flow stops here, no token is issued)
//   - success → 200 with {token, id}
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("validated payload missing from context")
		writeInternalError(w, ErrNoValidatedPayload)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Warn().Msg("login attempt for unknown email")
			writeMessage(w, "User not found", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Msg("login attempt with wrong password")
			writeMessage(w, "Invalid credentials.", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeInternalError(w, err)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeInternalError(w, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		ID:    foundUser.ID,
	}, http.StatusOK)
}

// signup registers a new user account.
//
// Outcomes:
//   - email already registered → 409
//   - success → 201 with {message, id}
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetPayloadFromContext(ctx)
	if !ok {
		log.Error().Msg("validated payload missing from context")
		writeInternalError(w, ErrNoValidatedPayload)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Msg("signup attempt with an email already in use")
			writeEmailConflict(w)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user signup")
			writeInternalError(w, err)
			return
		}
	}

	log.Debug().Str("id", registeredUser.ID.String()).Msg("user successfully signed up")

	utils.WriteJSON(w, models.SignupResponse{
		Message: "User created successfully",
		ID:      registeredUser.ID,
	}, http.StatusCreated)
}
