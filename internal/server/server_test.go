package server

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New("127.0.0.1:0", gin.New(), zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	// give the listener a moment before draining
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
