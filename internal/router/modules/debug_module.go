package modules

import (
	"context"
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DebugModule exposes liveness and process metrics endpoints.
type DebugModule struct {
	Pool *pgxpool.Pool
}

func NewDebugModule(pool *pgxpool.Pool) *DebugModule {
	return &DebugModule{Pool: pool}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.health)
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}

func (m *DebugModule) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := m.Pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
