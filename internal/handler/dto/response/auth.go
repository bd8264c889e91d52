package response

import (
	"hotel-frontdesk/internal/usecase/queries"
)

type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func FromStaffView(v *queries.StaffView) *StaffResponse {
	return &StaffResponse{
		ID:       v.ID.String(),
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	StaffID     string `json:"staff_id"`
	Role        string `json:"role"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
