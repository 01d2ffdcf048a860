package authapimodels

import (
	"admission-backend/models"
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserCreateRequest struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"`
}

func (r UserCreateRequest) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if r.Role == "" {
		return errors.New("не указана роль")
	}
	return nil
}

type UserView struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
	IsActive bool            `json:"is_active"`
}

func UserConvert(rec dbmodels.StaffUser) UserView {
	return UserView{
		ID:       rec.ID,
		Email:    rec.Email,
		FullName: rec.GetFullName(),
		Role:     rec.Role,
		RoleName: rec.Role.ToHuman(),
		IsActive: rec.IsActive,
	}
}
