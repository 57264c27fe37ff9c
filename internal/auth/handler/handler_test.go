package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movieswipe-auth/internal/auth"
	"movieswipe-auth/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	result *auth.Result
	err    error
	calls  int
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, raw string) (*auth.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(a Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(a, time.Second).RegisterRoutes(r)
	return r
}

func postAuth(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateSuccess(t *testing.T) {
	stub := &stubAuthenticator{
		result: &auth.Result{
			Token: "signed-token",
			User: &user.User{
				ID:       "u-1",
				GoogleID: "g-1",
				Email:    "a@x.com",
				Name:     "Alice",
			},
		},
	}
	r := newTestRouter(stub)

	w := postAuth(r, `{"idToken": "valid-google-token"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Token string          `json:"token"`
			User  json.RawMessage `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User signed up successfully", body.Message)
	assert.Equal(t, "signed-token", body.Data.Token)

	var u map[string]any
	require.NoError(t, json.Unmarshal(body.Data.User, &u))
	assert.Equal(t, "u-1", u["_id"])
	assert.Equal(t, "g-1", u["googleId"])
	assert.Equal(t, "a@x.com", u["email"])
	assert.Equal(t, "Alice", u["name"])
}

func TestAuthenticateInvalidToken(t *testing.T) {
	stub := &stubAuthenticator{
		err: fmt.Errorf("%w: rejected by google", auth.ErrInvalidToken),
	}
	r := newTestRouter(stub)

	w := postAuth(r, `{"idToken": "bad-token"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Invalid Google token"}`, w.Body.String())
}

func TestAuthenticateProvisioningFailure(t *testing.T) {
	stub := &stubAuthenticator{
		err: fmt.Errorf("%w: store unreachable", auth.ErrUserProvisioning),
	}
	r := newTestRouter(stub)

	w := postAuth(r, `{"idToken": "valid-google-token"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Failed to process user information"}`, w.Body.String())
}

func TestAuthenticateUnclassifiedFailure(t *testing.T) {
	stub := &stubAuthenticator{err: errors.New("boom")}
	r := newTestRouter(stub)

	w := postAuth(r, `{"idToken": "valid-google-token"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Internal server error"}`, w.Body.String())
}

func TestAuthenticateMissingIDToken(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "empty idToken", body: `{"idToken": ""}`},
		{name: "wrong field", body: `{"token": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAuthenticator{}
			r := newTestRouter(stub)

			w := postAuth(r, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			// Validation rejects before any verification is attempted.
			assert.Equal(t, 0, stub.calls)

			var body struct {
				Message string `json:"message"`
				Errors  []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "IDToken", body.Errors[0].Field)
		})
	}
}

func TestAuthenticateMalformedJSON(t *testing.T) {
	stub := &stubAuthenticator{}
	r := newTestRouter(stub)

	w := postAuth(r, `{"idToken": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.calls)
}
