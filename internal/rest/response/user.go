package response

import "github.com/avezina/inkwell/domain"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type Login struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
