package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/db"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TEST_DATABASE_URLが設定されている場合のみ実行するDB結合テスト
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gormDB, err := db.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Cart{}, &model.CartItem{}))
	return gormDB
}

func testEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// Test: カート未作成のユーザーへ同時に追記しても両方成功し、明細は2件になる
func TestCartGormRepository_AppendItem_ConcurrentCreate(t *testing.T) {
	gormDB := openTestDB(t)
	r := NewCartGormRepository(gormDB)
	email := testEmail("race")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			attrs := datatypes.JSON(fmt.Sprintf(`{"productName":"item-%d"}`, i))
			_, errs[i] = r.AppendItem(context.Background(), email, fmt.Sprintf("item-%d", i), attrs)
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])

	cart, err := r.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

// Test: 追記は重複排除せず追加順で並ぶ
func TestCartGormRepository_AppendItem_Order(t *testing.T) {
	gormDB := openTestDB(t)
	r := NewCartGormRepository(gormDB)
	email := testEmail("order")

	for _, name := range []string{"apple", "apple", "banana"} {
		_, err := r.AppendItem(context.Background(), email, name, datatypes.JSON(`{}`))
		require.NoError(t, err)
	}

	cart, err := r.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)
	assert.Equal(t, "apple", cart.Items[0].ProductName)
	assert.Equal(t, "apple", cart.Items[1].ProductName)
	assert.Equal(t, "banana", cart.Items[2].ProductName)
}

// Test: 削除は最初の一致だけ。残りは追加順のまま
func TestCartGormRepository_RemoveFirstByProductName(t *testing.T) {
	gormDB := openTestDB(t)
	r := NewCartGormRepository(gormDB)
	email := testEmail("remove")

	for _, name := range []string{"apple", "apple", "banana"} {
		_, err := r.AppendItem(context.Background(), email, name, datatypes.JSON(`{}`))
		require.NoError(t, err)
	}

	cart, err := r.RemoveFirstByProductName(context.Background(), email, "apple")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "apple", cart.Items[0].ProductName)
	assert.Equal(t, "banana", cart.Items[1].ProductName)

	// 一致なしはno-op
	cart, err = r.RemoveFirstByProductName(context.Background(), email, "cherry")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

// Test: カートが無いユーザーからの削除はErrNotFound
func TestCartGormRepository_RemoveFirstByProductName_NoCart(t *testing.T) {
	gormDB := openTestDB(t)
	r := NewCartGormRepository(gormDB)

	_, err := r.RemoveFirstByProductName(context.Background(), testEmail("nocart"), "apple")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
