package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/datatypes"
)

// カートの永続化を約束。
// Append/Removeはカート単位の排他区間（同一emailの同時更新で更新を失わない）。
type CartRepository interface {
	// emailのカートに明細を追記する。カートが無ければ作る。
	// 重複追加も許可（dedupしない）。更新後のカートを返す。
	AppendItem(ctx context.Context, email string, productName string, attrs datatypes.JSON) (model.Cart, error)
	// productNameに一致する最初の明細を削除する。
	// カートが無ければErrNotFound。一致が無い場合はno-op。更新後のカートを返す。
	RemoveFirstByProductName(ctx context.Context, email string, productName string) (model.Cart, error)
	// emailのカートを明細付きで取得。無ければErrNotFound。
	FindByEmail(ctx context.Context, email string) (model.Cart, error)
	// 全カートを明細付きで返す。
	FindAll(ctx context.Context) ([]model.Cart, error)
}
