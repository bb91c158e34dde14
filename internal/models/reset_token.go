package models

import "time"

// ResetToken is a password-reset credential issued by the forgot-password
// flow. Used stays false in training-fidelity mode: the apply step never
// consumes the token, which is the vulnerability this app exists to teach.
type ResetToken struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Username string `gorm:"size:50;not null;index"`
	Token    string `gorm:"uniqueIndex;size:64;not null"`
	Used     bool   `gorm:"not null;default:false"`
}
