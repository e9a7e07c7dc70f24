package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/slastice/backend/internal/types"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &types.TokenClaims{UserID: v.userID}, nil
}

func doAuthed(t *testing.T, handler gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var caller *uuid.UUID
	engine := gin.New()
	engine.GET("/t", handler, func(c *gin.Context) {
		if id, ok := CallerID(c); ok {
			caller = &id
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, caller
}

func TestAuthRequired(t *testing.T) {
	userID := uuid.New()
	valid := &stubValidator{userID: userID}
	broken := &stubValidator{err: errors.New("bad token")}

	w, caller := doAuthed(t, AuthRequired(valid), "Bearer token")
	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, caller) {
		assert.Equal(t, userID, *caller)
	}

	w, _ = doAuthed(t, AuthRequired(valid), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doAuthed(t, AuthRequired(valid), "NotBearer token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doAuthed(t, AuthRequired(broken), "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthOptional(t *testing.T) {
	userID := uuid.New()
	valid := &stubValidator{userID: userID}
	broken := &stubValidator{err: errors.New("bad token")}

	w, caller := doAuthed(t, AuthOptional(valid), "Bearer token")
	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, caller) {
		assert.Equal(t, userID, *caller)
	}

	// no token and a garbage token both read as anonymous
	w, caller = doAuthed(t, AuthOptional(valid), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, caller)

	w, caller = doAuthed(t, AuthOptional(broken), "Bearer token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, caller)
}
