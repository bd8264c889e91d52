//go:build unit || e2e

package builder

import (
	"hotel-frontdesk/internal/domain/staff"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "desk@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

// BuildCredentials panics on input the DTO validation would have rejected.
func (a *AuthBuilder) BuildCredentials() staff.Credentials {
	c, err := staff.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return c
}
