package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	created := postRecipe(t, engine, token, "Baklava")
	ref := map[string]string{"recipeId": created["id"].(string)}

	w := doJSON(t, engine, http.MethodPost, "/api/korisnici/omiljeni", token, ref)
	require.Equal(t, http.StatusCreated, w.Code)

	// favoriting twice is a conflict, not a no-op
	w = doJSON(t, engine, http.MethodPost, "/api/korisnici/omiljeni", token, ref)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/korisnici/omiljeni", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "Baklava", favorites[0]["name"])

	w = doJSON(t, engine, http.MethodDelete, "/api/korisnici/omiljeni", token, ref)
	require.Equal(t, http.StatusOK, w.Code)

	// removing an absent favorite is also a conflict
	w = doJSON(t, engine, http.MethodDelete, "/api/korisnici/omiljeni", token, ref)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the whole surface requires a token
	w = doJSON(t, engine, http.MethodGet, "/api/korisnici/omiljeni", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLikesEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	created := postRecipe(t, engine, token, "Medenjaci")
	id := created["id"].(string)
	ref := map[string]string{"recipeId": id}

	// liking is idempotent and counts each user once
	for i := 0; i < 2; i++ {
		w := doJSON(t, engine, http.MethodPost, "/api/korisnici/lajk", token, ref)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["like_count"])

	w = doJSON(t, engine, http.MethodDelete, "/api/korisnici/lajk", token, ref)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["like_count"])

	// unliking twice fails
	w = doJSON(t, engine, http.MethodDelete, "/api/korisnici/lajk", token, ref)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetEndpointsRejectBadReferences(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	_, token := createTestUserAndToken(t, auth, "Ana", "ana@example.com")

	// missing body field
	w := doJSON(t, engine, http.MethodPost, "/api/korisnici/omiljeni", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed id
	w = doJSON(t, engine, http.MethodPost, "/api/korisnici/lajk", token, map[string]string{"recipeId": "not-an-id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentsEndpoint(t *testing.T) {
	engine, _, auth := setupTestRouter(t)
	ana, anaToken := createTestUserAndToken(t, auth, "Ana", "ana@example.com")
	_, ivoToken := createTestUserAndToken(t, auth, "Ivo", "ivo@example.com")
	created := postRecipe(t, engine, anaToken, "Fritule")
	id := created["id"].(string)

	// posting requires a token, blank text is rejected
	w := doJSON(t, engine, http.MethodPost, "/api/recepti/"+id+"/komentari", "", map[string]string{"text": "odlično"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, engine, http.MethodPost, "/api/recepti/"+id+"/komentari", anaToken, map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/recepti/"+id+"/komentari", anaToken, map[string]string{"text": "odlično"})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := decodeBody(t, w)["id"].(string)

	// reading is public and resolves author names
	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id+"/komentari", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "Ana", comments[0]["author_name"])
	assert.Equal(t, ana.ID.String(), comments[0]["author_id"])

	// only the comment author may remove it, and a wrong author reads the
	// same as a wrong id
	w = doJSON(t, engine, http.MethodDelete, "/api/recepti/"+id+"/komentari/"+commentID, ivoToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/recepti/"+id+"/komentari/"+commentID, anaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/recepti/"+id+"/komentari", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
