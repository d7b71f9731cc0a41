package model

import "time"

// 商品。nameに一意制約は無い（name検索は先頭一致＝最小ID）。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"productId"`
	Name        string    `gorm:"column:product_name;type:varchar(255);not null" json:"productName"`
	Price       float64   `gorm:"column:product_price;not null" json:"productPrice"`
	Category    string    `gorm:"column:product_category;type:varchar(100)" json:"productCategory"`
	Brand       string    `gorm:"column:product_brand;type:varchar(100)" json:"productBrand"`
	Description string    `gorm:"column:product_description;type:text" json:"productDescription"`
	Image       string    `gorm:"column:product_image" json:"productImage"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
