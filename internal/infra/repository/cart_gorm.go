package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// emailのカートへ明細を追記。カートが無ければ作る。
// 同一カートへの同時追記で更新を失わないよう、カート行をロックして直列化する。
func (r *CartGormRepository) AppendItem(ctx context.Context, email string, productName string, attrs datatypes.JSON) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockCartByEmail(tx, email)

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 無ければ作る。同時作成に負けてもトランザクションを
			// 中断させないようON CONFLICT DO NOTHINGで入れる。
			now := time.Now()
			newCart := model.Cart{
				Email:     email,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&newCart).Error; err != nil {
				return err
			}

			// 勝敗に関わらず確定済みの行をロックし直す
			locked, err = lockCartByEmail(tx, email)
			if err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		item := model.CartItem{
			CartID:      locked.ID,
			ProductName: productName,
			Attrs:       attrs,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		loaded, err := loadCart(tx, locked.ID)
		if err != nil {
			return err
		}
		cart = loaded
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// productNameに一致する最初の明細（最小ID）を削除する。
// カートが無ければErrNotFound。一致が無い場合は何もしないで現状を返す。
func (r *CartGormRepository) RemoveFirstByProductName(ctx context.Context, email string, productName string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockCartByEmail(tx, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		var item model.CartItem
		findErr := tx.
			Where("cart_id = ? AND product_name = ?", locked.ID, productName).
			Order("id asc").
			First(&item).Error

		if findErr == nil {
			if err := tx.Delete(&model.CartItem{}, item.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		// 一致なしはno-op

		loaded, err := loadCart(tx, locked.ID)
		if err != nil {
			return err
		}
		cart = loaded
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// emailのカートを明細付きで取得
func (r *CartGormRepository) FindByEmail(ctx context.Context, email string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id asc")
		}).
		Where("email = ?", email).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 全カートを明細付きで取得
func (r *CartGormRepository) FindAll(ctx context.Context) ([]model.Cart, error) {
	var carts []model.Cart

	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id asc")
		}).
		Order("id asc").
		Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}

	return carts, nil
}

// カート行をSELECT ... FOR UPDATEで取得
func lockCartByEmail(tx *gorm.DB, email string) (model.Cart, error) {
	var cart model.Cart
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email = ?", email).
		First(&cart).Error
	return cart, err
}

// 明細をID昇順（追加順）で読み直す
func loadCart(tx *gorm.DB, cartID int64) (model.Cart, error) {
	var cart model.Cart
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id asc")
		}).
		First(&cart, cartID).Error
	return cart, err
}
