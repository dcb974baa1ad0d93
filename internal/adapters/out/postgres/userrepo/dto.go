// Package userrepo persists marketplace user records.
package userrepo

import (
	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user records. Role is
// stored in its wire form ("customer", "driver", "restaurant_owner").
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"uniqueIndex"`
	Name  string
	Role  string `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Email: u.Email(),
		Name:  u.Name(),
		Role:  u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Name, role)
}
