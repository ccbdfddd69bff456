package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titodev/tasker-api/internal/api"
	"github.com/titodev/tasker-api/internal/domain"
	"github.com/titodev/tasker-api/internal/mocks"
)

func registerBody(t *testing.T, username, displayName, password string) *bytes.Buffer {
	t.Helper()
	payload, err := json.Marshal(map[string]string{
		"username":     username,
		"display_name": displayName,
		"password":     password,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(payload)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Token: "signed.jwt.token"}
		hasher := &mocks.MockPasswordVerifier{ShouldSucceed: true}
		handler := api.NewAuthHandler(userStore, jwtService, hasher, hasher, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			registerBody(t, "johndoe", "John Doe", "password123"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.Equal(t, "signed.jwt.token", resp.Token)

		// The stored user carries only the hash
		stored, ok := userStore.Users["johndoe"]
		require.True(t, ok)
		assert.Empty(t, stored.Password)
		assert.Equal(t, "hashed:password123", stored.HashedPassword)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			registerBody(t, "johndoe", "John Doe", "short"))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, userStore.Users)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("johndoe", "John Doe", "password123")
		require.NoError(t, err)
		existing.HashedPassword = "hash"
		existing.Password = ""
		userStore.Users["johndoe"] = existing

		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockJWTService{Token: "t"},
			&mocks.MockPasswordVerifier{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			registerBody(t, "johndoe", "Other Person", "password456"))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestToken(t *testing.T) {
	t.Parallel()

	setupUserStore := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("johndoe", "John Doe", "password123")
		require.NoError(t, err)
		user.HashedPassword = "hashed:password123"
		user.Password = ""
		userStore.Users["johndoe"] = user
		return userStore
	}

	tokenRequest := func(username, password string) *http.Request {
		form := url.Values{}
		if username != "" {
			form.Set("username", username)
		}
		if password != "" {
			form.Set("password", password)
		}
		req := httptest.NewRequest(http.MethodPost, "/token",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("returns bearer token for valid credentials", func(t *testing.T) {
		t.Parallel()
		userStore := setupUserStore(t)
		verifier := &mocks.MockPasswordVerifier{
			CompareFn: func(hashedPassword, password string) error {
				if hashedPassword == "hashed:"+password {
					return nil
				}
				return context.DeadlineExceeded // any non-nil error
			},
		}
		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockJWTService{Token: "signed.jwt.token"},
			verifier,
			verifier,
			nil,
		)

		rec := httptest.NewRecorder()
		handler.Token(rec, tokenRequest("johndoe", "password123"))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		userStore := setupUserStore(t)
		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockJWTService{Token: "t"},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			nil,
		)

		unknownRec := httptest.NewRecorder()
		handler.Token(unknownRec, tokenRequest("nobody", "password123"))

		wrongRec := httptest.NewRecorder()
		handler.Token(wrongRec, tokenRequest("johndoe", "wrongpassword"))

		assert.Equal(t, http.StatusUnauthorized, unknownRec.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongRec.Code)
		assert.JSONEq(t, unknownRec.Body.String(), wrongRec.Body.String())
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(
			setupUserStore(t),
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		rec := httptest.NewRecorder()
		handler.Token(rec, tokenRequest("johndoe", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
