package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slastice/backend/internal/api"
	"github.com/slastice/backend/internal/models"
	"github.com/slastice/backend/internal/router"
	"github.com/slastice/backend/internal/service"
)

// setupTestDB opens an in-memory store with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one shared in-memory database per test, isolated by name
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.ShoppingList{},
	))

	return db
}

// setupTestRouter wires the full route table against an in-memory store.
// Rate limiting and image upload stay disabled.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	log := zap.NewNop()

	authService := service.NewAuthService(db, "test-secret", time.Hour)
	recipeService := service.NewRecipeService(db)
	socialService := service.NewSocialService(db)
	shoppingService := service.NewShoppingService(db)

	engine := router.Setup(log, router.Handlers{
		Auth:     api.NewAuthHandler(authService, log),
		Recipe:   api.NewRecipeHandler(recipeService, socialService, authService, log),
		Social:   api.NewSocialHandler(socialService, authService, log),
		Shopping: api.NewShoppingHandler(shoppingService, authService, log),
	})

	return engine, db, authService
}

// createTestUserAndToken registers a user and logs them in.
func createTestUserAndToken(t *testing.T, auth *service.AuthService, name, email string) (*models.User, string) {
	t.Helper()

	user, err := auth.Register(context.Background(), name, email, "password123")
	require.NoError(t, err)

	_, token, err := auth.Login(context.Background(), email, "password123")
	require.NoError(t, err)

	return user, token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
