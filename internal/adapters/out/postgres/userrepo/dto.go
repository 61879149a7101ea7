// Package userrepo provides data transfer objects and mapping functions for user persistence.
// Shipment booking only ever creates prospect records and looks accounts up
// by normalized email or phone; the table is shared with the auth service.
package userrepo

import (
	"time"

	"globaledge/internal/core/domain/model/account"
	"globaledge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Phone      string `gorm:"index"`
	Role       string `gorm:"type:varchar(16)"`
	Credential string
	CreatedAt  time.Time
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:         user.ID().Bytes(),
		Name:       user.Name(),
		Email:      user.Email().String(),
		Phone:      user.Phone().String(),
		Role:       string(user.Role()),
		Credential: user.Credential(),
		CreatedAt:  user.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var email kernel.Email
	if dto.Email != "" {
		email, err = kernel.NewEmail(dto.Email)
		if err != nil {
			return nil, err
		}
	}

	return account.RestoreUser(
		id,
		dto.Name,
		email,
		kernel.NewPhone(dto.Phone),
		account.Role(dto.Role),
		dto.Credential,
		dto.CreatedAt,
	)
}
