package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles a user account can hold.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User представляє обліковий запис у системі — студента або адміністратора.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	UserID       string `gorm:"uniqueIndex;not null" json:"userId"` // Зовнішній ідентифікатор (номер студентського квитка тощо)
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"` // "student" або "admin"
	RoomNumber   string `json:"roomNumber"`           // Лише для студентів
}

// BeforeCreate — це хук GORM, який викликається перед створенням запису.
// Він генерує новий UUID для користувача, якщо ID ще не встановлено.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Principal is the authenticated actor behind a request: identity, display
// attributes and role. It is built once by the auth middleware and treated as
// immutable for the duration of the request.
type Principal struct {
	ID     string
	UserID string
	Name   string
	Role   string
}

// PrincipalFromUser derives the request principal from a stored user.
func PrincipalFromUser(u *User) Principal {
	return Principal{
		ID:     u.ID,
		UserID: u.UserID,
		Name:   u.Name,
		Role:   u.Role,
	}
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// IsStudent reports whether the principal holds the student role.
func (p Principal) IsStudent() bool { return p.Role == RoleStudent }

// ValidRole reports whether the given role is one of the fixed set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}
