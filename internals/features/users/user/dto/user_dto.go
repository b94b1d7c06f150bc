package dto

import (
	"time"

	"quizku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

// UserDTO adalah bentuk aman user untuk response (tanpa password hash)
type UserDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserDTOs(models []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToUserDTO(m))
	}
	return out
}
