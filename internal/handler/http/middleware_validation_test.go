package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// executeValidate routes a JSON body through the validation middleware.
func executeValidate(h *Handler, schema validators.Validator, body string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.validate(schema)(next)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestValidate_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	rr := executeValidate(h, validators.NewUserSchema(), "{not json", next)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid JSON was passed"}`, rr.Body.String())
}

func TestValidate_SchemaViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	// email malformed, password missing entirely
	rr := executeValidate(h, validators.NewUserSchema(), `{"email":"not-an-email"}`, next)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `"Invalid data"`)
	assert.Contains(t, body, "email is not a valid email address")
	assert.Contains(t, body, "password is required")
}

func TestValidate_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	rr := executeValidate(h, validators.NewUserSchema(), `{"email":"john@example.com","password":"short"}`, next)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "password is shorter than 8 characters")
}

func TestValidate_Success_StoresPayloadInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	var gotPayload models.UserPayload
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPayload, gotOK = utils.GetPayloadFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	body := `{"name":"John","email":"john@example.com","password":"super-secret"}`
	rr := executeValidate(h, validators.NewUserSchema(), body, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, gotOK)
	require.NotNil(t, gotPayload.Email)
	assert.Equal(t, "john@example.com", *gotPayload.Email)
	require.NotNil(t, gotPayload.Name)
	assert.Equal(t, "John", *gotPayload.Name)
	require.NotNil(t, gotPayload.Password)
}

func TestValidate_UpdateSchema_EmptyBodyPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	// the update schema has no required fields; emptiness is rejected
	// later by the service layer
	rr := executeValidate(h, validators.NewUserUpdateSchema(), `{}`, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
}

func TestValidate_QueryPart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	var gotPayload models.UserPayload
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPayload, _ = utils.GetPayloadFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.validate(validators.NewUserUpdateSchema(), partQuery)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?email=john%40example.com&emailVerified=true", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotPayload.Email)
	assert.Equal(t, "john@example.com", *gotPayload.Email)
	require.NotNil(t, gotPayload.EmailVerified)
	assert.True(t, *gotPayload.EmailVerified)
}
