package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func TestCreateProductEndpoint(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	body := `{"name":"Celular 1","price":2.30,"description":"Lorem ipsum"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp CreatedProductResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Celular 1", resp.Name)
	assert.InDelta(t, 2.30, resp.Price, 0.0001)
	assert.Equal(t, "Lorem ipsum", resp.Description)
}

func TestCreateProductEndpointMissingField(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	body := `{"price":2.30,"description":"Lorem ipsum"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"message":"the name field is required"}`, rec.Body.String())
	assert.Empty(t, repo.items)
}

func TestListProductsEmpty(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"no products found"}`, rec.Body.String())
}

func TestListProducts(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	create := `{"name":"Celular 1","price":2.30,"description":"Lorem ipsum"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(create)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var items []Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Celular 1", items[0].Name)
}
