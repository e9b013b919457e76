package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	userapp "github.com/chalkboard/user-service/internal/application"
	pginfra "github.com/chalkboard/user-service/internal/infrastructure/postgres"
	handlers "github.com/chalkboard/user-service/internal/interface/http"
	"github.com/chalkboard/user-service/internal/router/modules"
)

// Deps carries the process-wide infrastructure every module may draw on.
// Modules receive their collaborators explicitly; there is no global
// container.
type Deps struct {
	Pool   *pgxpool.Pool
	Logger *logrus.Logger
}

// InitModules builds each module's repository/service/handler chain and
// registers it. Called once during startup.
func InitModules(r *Registry, deps Deps) {
	userRepo := pginfra.NewUserRepository(deps.Pool)
	userSvc := userapp.NewService(userRepo, deps.Logger)
	userHandler := handlers.NewUserHandler(userSvc, deps.Logger)
	r.Add(modules.NewUserModule(userHandler))
	r.Add(modules.NewDebugModule(deps.Pool))
}
