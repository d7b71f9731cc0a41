package model

import "time"

// 1メールアドレスにつきカートは1つ。
// 最初のaddToCartで作成され、その後削除されない。
// APIへの出力はusecase側のDTO経由なのでjsonタグは持たない。
type Cart struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Email     string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
