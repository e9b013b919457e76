package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/chalkboard/user-service/internal/interface/http"
)

// UserModule wires the user CRUD handlers into routes:
// POST /users, GET /users, GET /users/:id, PUT /users/:id, DELETE /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Create)
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/:id", m.Handler.Get)
	rg.PUT("/users/:id", m.Handler.Update)
	rg.DELETE("/users/:id", m.Handler.Delete)
}
