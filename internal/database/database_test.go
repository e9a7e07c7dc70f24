package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slastice/backend/internal/database"
	"github.com/slastice/backend/internal/models"
	"github.com/slastice/backend/internal/testdb"
)

func TestMigratedSchema(t *testing.T) {
	db := testdb.SetupPostgres(t)

	require.NoError(t, database.HealthCheck(context.Background(), db))

	user := models.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)
	assert.NotZero(t, user.ID)
}
