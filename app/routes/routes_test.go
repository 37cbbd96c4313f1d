package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repositories.NewBadgerPostRepository(db)
	cfg := &config.Config{Addr: ":0", BaseURL: "http://localhost:8080"}
	return SetupRoutes(repo, cfg)
}

// TestPostLifecycle drives the full resource contract through the wired
// router against a real (in-memory) Badger store.
func TestPostLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Empty list
	w := do(http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Create
	w = do(http.MethodPost, "/posts", `{
		"title": "Round Trip",
		"content": "Body text",
		"author": {"firstName": "Edsger", "lastName": "Dijkstra"}
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Edsger Dijkstra", created.Author)

	// Round trip: fetch reproduces the created wire output
	w = do(http.MethodGet, "/posts/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, created, fetched)

	// List contains the record
	w = do(http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	// Update, then verify
	w = do(http.MethodPut, "/posts/"+created.ID, `{"title": "Renamed"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(http.MethodGet, "/posts/"+created.ID, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, "Renamed", fetched.Title)
	require.Equal(t, "Edsger Dijkstra", fetched.Author)

	// Feed mentions the post
	w = do(http.MethodGet, "/posts/feed", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Renamed")

	// Delete twice, both 204
	w = do(http.MethodDelete, "/posts/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(http.MethodDelete, "/posts/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// Gone
	w = do(http.MethodGet, "/posts/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
