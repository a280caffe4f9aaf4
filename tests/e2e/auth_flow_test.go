//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Auth_RegisterLoginMe(t *testing.T) {
	ts := setupTestServer(t)

	resp := restRequest(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "flow@example.com",
		"username": "flowuser",
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["accessToken"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	assert.Equal(t, "flow@example.com", user["email"])
	assert.Equal(t, "flowuser", user["username"])
	assert.Equal(t, "user", user["role"])

	// Login with the same credentials.
	resp = restRequest(t, ts, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "flow@example.com",
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken string")

	// The token resolves the caller's own profile.
	resp = restRequest(t, ts, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := decodeBody(t, resp)
	assert.Equal(t, user["id"], me["id"])
	assert.Equal(t, "flow@example.com", me["email"])
}

func TestE2E_Auth_Register_DuplicateEmail(t *testing.T) {
	ts := setupTestServer(t)

	payload := map[string]string{
		"email":    "dup@example.com",
		"username": "dupuser1",
		"password": "securepassword123",
	}
	resp := restRequest(t, ts, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	payload["username"] = "dupuser2"
	resp = restRequest(t, ts, http.MethodPost, "/auth/register", "", payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestE2E_Auth_Login_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	_, user := registerUser(t, ts)

	resp := restRequest(t, ts, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    user["email"].(string),
		"password": "not-the-password",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_Auth_Me_RequiresToken(t *testing.T) {
	ts := setupTestServer(t)

	resp := restRequest(t, ts, http.MethodGet, "/auth/me", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_RequestID_InResponse(t *testing.T) {
	ts := setupTestServer(t)

	resp := restRequest(t, ts, http.MethodGet, "/health/live", "", nil)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
