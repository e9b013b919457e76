package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chalkboard/user-service/internal/domain/entity"
)

// UserPayload is the wire projection of a User.
type UserPayload struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

func User(u *entity.User) UserPayload {
	return UserPayload{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateCreated: u.DateCreated,
		DateUpdated: u.DateUpdated,
	}
}

func Users(us []*entity.User) []UserPayload {
	out := make([]UserPayload, 0, len(us))
	for _, u := range us {
		out = append(out, User(u))
	}
	return out
}

// ErrorBody is the error envelope: {"detail": ...}. Detail is either a
// message string or a map of field errors.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

func Error(c *gin.Context, status int, detail interface{}) {
	c.JSON(status, ErrorBody{Detail: detail})
}
