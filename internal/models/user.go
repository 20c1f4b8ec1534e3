// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the LinkUp application.
//
// Verification lifecycle: an account is created unverified with an
// outstanding OTP; verifying sets Verified and clears OTP in the same
// update, so "verified with an OTP outstanding" is never persisted.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Firstname string         `gorm:"not null;size:50" json:"firstname"`
	Lastname  string         `gorm:"not null;size:50" json:"lastname"`
	Username  string         `gorm:"unique;not null;size:50" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Mobile    string         `gorm:"unique;not null;size:15" json:"mobile"`
	Password  string         `gorm:"not null" json:"-"`
	Gender    string         `gorm:"size:10" json:"gender"`
	OTP       *int           `json:"-"`
	Verified  bool           `gorm:"not null;default:false" json:"verified"`
	Prime     bool           `gorm:"not null;default:false" json:"prime"`
	Bio       string         `gorm:"size:500" json:"bio"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
