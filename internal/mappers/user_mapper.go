package mappers

import (
	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
)

// UserMapper converts users to their public wire form.
// The password hash has no wire counterpart.
type UserMapper struct{}

// ToDto maps a user to its wire form
func (UserMapper) ToDto(user models.User) dto.UserDto {
	return dto.UserDto{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToEntity maps a wire user to a model without credentials
func (UserMapper) ToEntity(d dto.UserDto) models.User {
	return models.User{
		ID:       d.ID,
		Username: d.Username,
		Email:    d.Email,
		Role:     d.Role,
	}
}

// ToDtos maps a slice of users
func (m UserMapper) ToDtos(users []models.User) []dto.UserDto {
	out := make([]dto.UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, m.ToDto(u))
	}
	return out
}
