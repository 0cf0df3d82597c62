package store

import (
	"strings"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"
)

// GetUserByEmail looks a user up through the unique email index.
// Matching is case-insensitive. Returns ErrNotFound when absent.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&user).Error
	if err != nil {
		return nil, wrap("get user by email", translate(err))
	}
	return &user, nil
}

// GetUser loads a user by id.
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrap("get user", translate(err))
	}
	return &user, nil
}

// ListUsers returns every user, oldest first.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

// CreateUser inserts an unconditional new user. ErrDuplicate when the
// email is already taken.
func (s *Store) CreateUser(user *models.User) error {
	user.Email = strings.TrimSpace(user.Email)
	if err := s.db.Create(user).Error; err != nil {
		return wrap("create user", translate(err))
	}
	return nil
}

// UpdateUser shallow-merges fields over the stored record and persists
// the result. ErrNotFound when the id does not exist.
func (s *Store) UpdateUser(id uint, fields map[string]any) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrap("update user", translate(err))
	}
	if err := s.db.Model(&user).Updates(fields).Error; err != nil {
		return nil, wrap("update user", translate(err))
	}
	return &user, nil
}

// DeleteUser removes a user. Deleting an id that does not exist is not
// an error; the boolean tells callers whether anything was removed.
func (s *Store) DeleteUser(id uint) (bool, error) {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, wrap("delete user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountAdmins returns the number of admin accounts. User management
// refuses to demote or delete the last one.
func (s *Store) CountAdmins() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return 0, wrap("count admins", err)
	}
	return count, nil
}
