//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/catalog"
	progressrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/progress"
	"github.com/algotrack/algotrack-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/algotrack/algotrack-backend/internal/auth"
	"github.com/algotrack/algotrack-backend/internal/config"
	"github.com/algotrack/algotrack-backend/internal/domain"
	authsvc "github.com/algotrack/algotrack-backend/internal/service/auth"
	catalogsvc "github.com/algotrack/algotrack-backend/internal/service/catalog"
	progresssvc "github.com/algotrack/algotrack-backend/internal/service/progress"
	sheetsvc "github.com/algotrack/algotrack-backend/internal/service/sheet"
	statssvc "github.com/algotrack/algotrack-backend/internal/service/stats"
	"github.com/algotrack/algotrack-backend/internal/transport/middleware"
	"github.com/algotrack/algotrack-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	users := userrepo.New(pool)
	catalog := catalogrepo.New(pool)
	progress := progressrepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, users, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4, // minimal cost keeps the suite fast
	})
	catalogService := catalogsvc.NewService(logger, catalog)
	progressService := progresssvc.NewService(logger, progress, catalog)
	sheetService := sheetsvc.NewService(logger, catalog, progress)
	statsService := statssvc.NewService(logger, catalog, progress)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(
		logger,
		config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		jwtMgr,
		limiter,
		1000, // rate limiting is covered by its own unit tests
		rest.Handlers{
			Health:   rest.NewHealthHandler(pool, "test-version"),
			Auth:     rest.NewAuthHandler(authService, logger),
			Catalog:  rest.NewCatalogHandler(catalogService, logger),
			Progress: rest.NewProgressHandler(progressService, logger),
			Sheet:    rest.NewSheetHandler(sheetService, logger),
			Stats:    rest.NewStatsHandler(statsService, logger),
		},
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// restRequest sends a JSON request to the test server. A nil body sends no
// payload; a non-empty token is attached as a bearer credential.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into a generic map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ---------------------------------------------------------------------------
// Fixture helpers
// ---------------------------------------------------------------------------

// registerUser registers a fresh user through the public API and returns
// the access token plus the user object from the response.
func registerUser(t *testing.T, ts *testServer) (string, map[string]any) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	resp := restRequest(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "e2e-" + suffix + "@example.com",
		"username": "e2e-" + suffix,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken string in response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	return token, user
}

// adminToken mints a token carrying the admin role for an existing user.
// Role changes happen out of band (there is no promotion endpoint), so the
// test flips the column directly.
func adminToken(t *testing.T, ts *testServer, userID string) string {
	t.Helper()

	id, err := uuid.Parse(userID)
	require.NoError(t, err)

	_, err = ts.Pool.Exec(context.Background(),
		`UPDATE users SET role = 'admin' WHERE id = $1`, id)
	require.NoError(t, err)

	token, err := ts.jwt.GenerateAccessToken(id, string(domain.UserRoleAdmin))
	require.NoError(t, err)
	return token
}

// seedSmallCatalog inserts one chapter with one topic holding an easy and
// a hard problem, returning the seeded rows.
func seedSmallCatalog(t *testing.T, ts *testServer) (domain.Chapter, domain.Topic, domain.Problem, domain.Problem) {
	t.Helper()

	chapter := testhelper.SeedChapter(t, ts.Pool, 1)
	topic := testhelper.SeedTopic(t, ts.Pool, chapter.ID, 1)
	easy := testhelper.SeedProblem(t, ts.Pool, topic.ID, domain.DifficultyEasy, 1)
	hard := testhelper.SeedProblem(t, ts.Pool, topic.ID, domain.DifficultyHard, 2)
	return chapter, topic, easy, hard
}
