package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// requestPart selects which part of the incoming request the validation
// middleware parses and checks.
type requestPart string

const (
	// partBody selects the JSON request body. This is the default.
	partBody requestPart = "body"

	// partQuery selects the URL query string.
	partQuery requestPart = "query"
)

// validate is an HTTP middleware that parses the selected request part
// into a [models.UserPayload] and checks it against schema.
//
// When no part is given the body is validated. Outcomes:
//   - unparseable part → 400 with a single message;
//   - schema violations → 400 with per-field "<field> is <violation>"
//     messages;
//   - any other validation failure → 500.
//
// On success the decoded payload is stored in the request context under
// [utils.PayloadCtxKey] and the next handler is invoked, so handlers never
// re-read the request body.
func (h *Handler) validate(schema validators.Validator, parts ...requestPart) func(http.Handler) http.Handler {
	part := partBody
	if len(parts) > 0 {
		part = parts[0]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			payload, err := parseRequestPart(r, part)
			if err != nil {
				log.Err(err).Str("part", string(part)).Msg("invalid request payload")
				writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
				return
			}

			ctx := r.Context()
			if err := schema.Validate(ctx, payload); err != nil {
				var schemaErr *validators.SchemaError
				if errors.As(err, &schemaErr) {
					log.Debug().Str("violations", schemaErr.Error()).Msg("request failed schema validation")
					utils.WriteJSON(w, validationResponse(schemaErr), http.StatusBadRequest)
					return
				}

				log.Err(err).Msg("unexpected error occurred during validation")
				writeInternalError(w, err)
				return
			}

			ctx = context.WithValue(ctx, utils.PayloadCtxKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseRequestPart decodes the selected request part into a UserPayload.
func parseRequestPart(r *http.Request, part requestPart) (models.UserPayload, error) {
	switch part {
	case partQuery:
		return payloadFromQuery(r.URL.Query())
	default:
		var payload models.UserPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return models.UserPayload{}, err
		}
		return payload, nil
	}
}

// payloadFromQuery maps URL query parameters onto the payload fields.
// Only parameters that are present become non-nil fields.
func payloadFromQuery(query url.Values) (models.UserPayload, error) {
	var payload models.UserPayload

	if query.Has("name") {
		name := query.Get("name")
		payload.Name = &name
	}
	if query.Has("email") {
		email := query.Get("email")
		payload.Email = &email
	}
	if query.Has("password") {
		password := query.Get("password")
		payload.Password = &password
	}
	if query.Has("emailVerified") {
		verified, err := strconv.ParseBool(query.Get("emailVerified"))
		if err != nil {
			return models.UserPayload{}, err
		}
		payload.EmailVerified = &verified
	}

	return payload, nil
}

// validationResponse renders a SchemaError as the public validation
// failure envelope.
func validationResponse(schemaErr *validators.SchemaError) models.ValidationResponse {
	messages := make([]models.ValidationMessage, 0, len(schemaErr.Violations))
	for _, violation := range schemaErr.Violations {
		messages = append(messages, models.ValidationMessage{Message: violation.Message()})
	}

	return models.ValidationResponse{
		Message: "Invalid data",
		Errors:  messages,
	}
}
