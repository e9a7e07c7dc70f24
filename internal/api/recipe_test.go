package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRecipe(t *testing.T, engine *gin.Engine, token, name string) map[string]interface{} {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/recepti", token, map[string]interface{}{
		"name":         name,
		"ingredients":  []string{"brašno", "šećer"},
		"instructions": []string{"pomiješati", "peći"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}

func TestCreateRecipeEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")

	// creation requires a bearer token
	w := doJSON(t, engine, http.MethodPost, "/api/recepti", "", map[string]interface{}{
		"name": "Torta",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	created := postRecipe(t, engine, token, "Čokoladna torta")
	assert.Equal(t, "Čokoladna torta", created["name"])
	assert.Equal(t, float64(1), created["servings"])
	assert.Equal(t, float64(0), created["like_count"])
	assert.NotEmpty(t, created["id"])

	// missing required fields
	w = doJSON(t, engine, http.MethodPost, "/api/recepti", token, map[string]interface{}{
		"name": "Bez sastojaka",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	created := postRecipe(t, engine, token, "Palačinke")
	id := created["id"].(string)

	// a malformed id never reaches the store
	w := doJSON(t, engine, http.MethodGet, "/api/recepti/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// anonymous read carries no favorite flag
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Palačinke", body["name"])
	_, present := body["isFavorite"]
	assert.False(t, present)

	// an authenticated read is annotated
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["isFavorite"])

	// a garbage token on the optional route reads as anonymous
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, "not-a-real-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAndSearchRecipesEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	postRecipe(t, engine, token, "Jabučna pita")
	postRecipe(t, engine, token, "Sirnica")

	w := doJSON(t, engine, http.MethodGet, "/api/recepti", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// listing filters case-insensitively but never 404s
	w = doJSON(t, engine, http.MethodGet, "/api/recepti?naziv=PITA", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, engine, http.MethodGet, "/api/recepti?naziv=nema-toga", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// search distinguishes a blank query from a miss
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/pretraga", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/pretraga?naziv=nema-toga", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/pretraga?naziv=pita", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, owner := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	_, stranger := createTestUserAndToken(t, auth, "Ivo", "ivo@example.com")

	created := postRecipe(t, engine, owner, "Kolač")
	id := created["id"].(string)

	w := doJSON(t, engine, http.MethodPut, "/api/recepti/"+id, stranger, map[string]interface{}{
		"name": "Tuđi kolač",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodPut, "/api/recepti/"+id, owner, map[string]interface{}{
		"name":     "Bolji kolač",
		"servings": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Bolji kolač", body["name"])
	assert.Equal(t, float64(4), body["servings"])

	// an empty patch is rejected
	w = doJSON(t, engine, http.MethodPut, "/api/recepti/"+id, owner, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, owner := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	_, stranger := createTestUserAndToken(t, auth, "Ivo", "ivo@example.com")

	created := postRecipe(t, engine, owner, "Krafne")
	id := created["id"].(string)

	w := doJSON(t, engine, http.MethodDelete, "/api/recepti/"+id, stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/recepti/"+id, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMyRecipesEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")

	// no recipes yet reads as not found
	w := doJSON(t, engine, http.MethodGet, "/api/mojirecepti", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	postRecipe(t, engine, token, "Štrudla")
	w = doJSON(t, engine, http.MethodGet, "/api/mojirecepti", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
