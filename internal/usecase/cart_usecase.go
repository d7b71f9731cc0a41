package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/sirupsen/logrus"
)

// CartEntry はクライアントがaddToCartで送った明細オブジェクトそのもの。
// productName以外のフィールドは任意で、そのまま往復させる。
type CartEntry = map[string]interface{}

// CartUsecase はカート操作と画像付与（enrichment）の業務ロジック。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// 更新後のカートの姿
type CartSnapshot struct {
	Email string      `json:"email"`
	Items []CartEntry `json:"items"`
}

type CartView struct {
	Email   string      `json:"email"`
	Product []CartEntry `json:"product"`
}

// AddToCart は明細を末尾に追記する。カートが無ければ作る。
// 同じ明細を2回送れば2件になる（dedupしない）。
func (u *CartUsecase) AddToCart(ctx context.Context, email string, item CartEntry) (CartSnapshot, error) {
	if email == "" {
		return CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	productName, ok := item["productName"].(string)
	if !ok || productName == "" {
		return CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "product must have productName")
	}

	attrs, err := json.Marshal(item)
	if err != nil {
		return CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	cart, err := u.cartRepo.AppendItem(ctx, email, productName, attrs)
	if err != nil {
		logrus.WithError(err).Error("append cart item failed")
		return CartSnapshot{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toSnapshot(cart), nil
}

// RemoveFromCart は最初に一致した明細だけを消す。
// カートが無ければ404、一致が無ければno-opで現状を返す。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, email string, productName string) (CartSnapshot, error) {
	if email == "" {
		return CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if productName == "" {
		return CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid product name")
	}

	cart, err := u.cartRepo.RemoveFirstByProductName(ctx, email, productName)
	if errors.Is(err, repo.ErrNotFound) {
		return CartSnapshot{}, NewHTTPError(http.StatusNotFound, "no cart for this user")
	}
	if err != nil {
		logrus.WithError(err).Error("remove cart item failed")
		return CartSnapshot{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toSnapshot(cart), nil
}

// ListCarts は全カートを返す。
func (u *CartUsecase) ListCarts(ctx context.Context) ([]CartView, error) {
	carts, err := u.cartRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("list carts failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CartView, 0, len(carts))
	for _, c := range carts {
		out = append(out, CartView{
			Email:   c.Email,
			Product: decodeItems(c.Items),
		})
	}
	return out, nil
}

// GetCartItemsWithImages は各明細のproductNameで商品を引き、
// 現在のproductImageを明細へ付けて返す。
// 商品が消えている明細はproductImage無しのまま返す（リクエストは失敗させない）。
func (u *CartUsecase) GetCartItemsWithImages(ctx context.Context, email string) ([]CartEntry, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	cart, err := u.cartRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "no cart for this user")
	}
	if err != nil {
		logrus.WithError(err).Error("find cart failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	entries := make([]CartEntry, 0, len(cart.Items))
	for _, it := range cart.Items {
		entry := decodeItem(it)

		p, err := u.productRepo.FindByName(ctx, it.ProductName)
		if errors.Is(err, repo.ErrNotFound) {
			// 参照先が消えた明細：productImageを付けずに返す
			entries = append(entries, entry)
			continue
		}
		if err != nil {
			logrus.WithError(err).Error("find product for cart item failed")
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		entry["productImage"] = p.Image
		entries = append(entries, entry)
	}

	return entries, nil
}

func toSnapshot(cart model.Cart) CartSnapshot {
	return CartSnapshot{
		Email: cart.Email,
		Items: decodeItems(cart.Items),
	}
}

func decodeItems(items []model.CartItem) []CartEntry {
	out := make([]CartEntry, 0, len(items))
	for _, it := range items {
		out = append(out, decodeItem(it))
	}
	return out
}

// attrsをCartEntryへ戻す。壊れていてもproductNameだけは復元する。
func decodeItem(it model.CartItem) CartEntry {
	var entry CartEntry
	if err := json.Unmarshal(it.Attrs, &entry); err != nil || entry == nil {
		entry = CartEntry{"productName": it.ProductName}
	}
	return entry
}
