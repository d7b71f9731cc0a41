package model

import (
	"time"

	"gorm.io/datatypes"
)

// カートの明細。IDの昇順が追加順。
// Attrsはクライアントが追加時に送ったオブジェクトをそのまま保持する
// （productName以外のフィールドも失わない）。
type CartItem struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	CartID      int64          `gorm:"not null;index"`
	ProductName string         `gorm:"column:product_name;type:varchar(255);not null;index"`
	Attrs       datatypes.JSON `gorm:"column:attrs"`
	CreatedAt   time.Time
}
