package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beuelvinc/pageloot-hw/config"
	"github.com/beuelvinc/pageloot-hw/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestRouter builds the full route surface over a fresh in-memory
// database.
func setupTestRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("DATABASE_PATH", ":memory:")

	db, err := config.InitDB()
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, config.RunMigrations(db), "failed to run migrations")

	router := gin.New()
	api := router.Group("/")
	routes.SetupUserRoutes(api, db)
	routes.SetupExpenseRoutes(api, db)
	routes.SetupReportRoutes(api, db)

	return router, db
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "response body: %s", w.Body.String())
	return out
}

func expensePath(id int64) string {
	return fmt.Sprintf("/expenses/%d/", id)
}

// createTestUser inserts a user through the API and returns its id.
func createTestUser(t *testing.T, router *gin.Engine, username, email string) int64 {
	t.Helper()
	w := performRequest(t, router, http.MethodPost, "/users/", gin.H{
		"username": username,
		"email":    email,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	user := decodeJSON[map[string]any](t, w)
	return int64(user["id"].(float64))
}

// createTestExpense inserts an expense through the API and returns its id.
func createTestExpense(t *testing.T, router *gin.Engine, userID int64, title string, amount float64, date, category string) int64 {
	t.Helper()
	w := performRequest(t, router, http.MethodPost, "/expenses/", gin.H{
		"user":     userID,
		"title":    title,
		"amount":   amount,
		"date":     date,
		"category": category,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	expense := decodeJSON[map[string]any](t, w)
	return int64(expense["id"].(float64))
}
