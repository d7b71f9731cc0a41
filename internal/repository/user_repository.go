package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// email重複（unique違反）を統一
var ErrDuplicateEmail = errors.New("duplicate email")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複はErrDuplicateEmail。
	Create(ctx context.Context, user *model.User) error
	// emailからユーザーを1件取得する。無ければErrNotFound。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, id int64) (model.User, error)
	// tokenからユーザーを1件取得する。
	FindByToken(ctx context.Context, token string) (model.User, error)
	// 全ユーザーを登録順で返す。
	FindAll(ctx context.Context) ([]model.User, error)
}
