package model

import "time"

// Tokenはemailのダイジェスト（決定的トークン）。
// 平文パスワードは保存しない。
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(50)"`
	Email        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Token        string `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
