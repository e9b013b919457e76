package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/chalkboard/user-service/internal/application"
	repo "github.com/chalkboard/user-service/internal/domain/repository"
	"github.com/chalkboard/user-service/pkg/response"
	"github.com/chalkboard/user-service/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// updateUserRequest allows any subset of fields; absent fields stay nil
// and are left untouched by the update.
type updateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,min=1"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1"`
}

func conflictDetail(e *repo.ConflictError) string {
	switch e.Field {
	case "username":
		return "Username already exists"
	case "email":
		return "Email already exists"
	default:
		return "Unique constraint violation"
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		var conflict *repo.ConflictError
		if errors.As(err, &conflict) {
			response.Error(c, http.StatusBadRequest, conflictDetail(conflict))
			return
		}
		h.Logger.WithError(err).Error("create user failed")
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, response.User(u))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.User(u))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.GetUsers(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.Users(users))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), id, userapp.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		var conflict *repo.ConflictError
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.As(err, &conflict):
			response.Error(c, http.StatusBadRequest, conflictDetail(conflict))
		default:
			h.Logger.WithError(err).WithField("user_id", id).Error("update user failed")
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, response.User(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
