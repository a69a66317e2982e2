package entity

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FullName     string  `gorm:"not null" json:"full_name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string  `json:"phone"`
	Role         string  `gorm:"not null;default:resident" json:"role"`
	Department   *string `json:"department"`
	PasswordHash string  `gorm:"column:password_hash" json:"-"` // ปลอดภัย
}

// SetPassword hashes the plain password with bcrypt before storing.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
