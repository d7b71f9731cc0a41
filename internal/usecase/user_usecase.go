package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"app/internal/domain/model"
	"app/internal/hash"
	repo "app/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//401 認証失敗
	ErrUnauthorized = errors.New("unauthorized")
	//404
	ErrNotFound = errors.New("not found")
	//409 email重複
	ErrConflict = errors.New("conflict")
	//500
	ErrInternal = errors.New("internal error")
)

// UserUsecase は会員登録・ログイン・ユーザー照会の業務ロジック。
type UserUsecase struct {
	users  repo.UserRepository
	hasher hash.Hasher
}

func NewUserUsecase(users repo.UserRepository, hasher hash.Hasher) *UserUsecase {
	return &UserUsecase{
		users:  users,
		hasher: hasher,
	}
}

// パスワード・トークンは外に出さない
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// getUserByToken用（トークン込み）
type UserWithTokenDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type AuthUserResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// CreateUser は会員登録。
// パスワードはダイジェスト化して保存し、トークンはemailのダイジェスト。
func (u *UserUsecase) CreateUser(ctx context.Context, name, email, password string) (int64, error) {
	if email == "" || password == "" {
		return 0, ErrValidation
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: u.hasher.Sum(password),
		Token:        u.hasher.Sum(email),
	}

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return 0, ErrConflict
		}
		logrus.WithError(err).Error("create user failed")
		return 0, ErrInternal
	}

	return user.ID, nil
}

// Authenticate はログイン。emailが無い場合もダイジェスト不一致の場合も
// 同じErrUnauthorizedを返す（どちらが誤りかを漏らさない）。
func (u *UserUsecase) Authenticate(ctx context.Context, email, password string) (AuthUserResponse, error) {
	if email == "" || password == "" {
		return AuthUserResponse{}, ErrUnauthorized
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthUserResponse{}, ErrUnauthorized
	}
	if err != nil {
		logrus.WithError(err).Error("find user failed")
		return AuthUserResponse{}, ErrInternal
	}

	digest := u.hasher.Sum(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		return AuthUserResponse{}, ErrUnauthorized
	}

	// 保存済みトークンをそのまま返す
	return AuthUserResponse{
		Msg:   "user validated successfully",
		Token: user.Token,
	}, nil
}

// ListUsers は全ユーザー（パスワード・トークン除外）を登録順で返す。
func (u *UserUsecase) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("list users failed")
		return nil, ErrInternal
	}

	out := make([]UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, UserDTO{
			ID:       user.ID,
			Username: user.Name,
			Email:    user.Email,
		})
	}
	return out, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, id int64) (UserDTO, error) {
	user, err := u.users.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).Error("find user by id failed")
		return UserDTO{}, ErrInternal
	}

	return UserDTO{
		ID:       user.ID,
		Username: user.Name,
		Email:    user.Email,
	}, nil
}

func (u *UserUsecase) GetUserByToken(ctx context.Context, token string) (UserWithTokenDTO, error) {
	user, err := u.users.FindByToken(ctx, token)
	if errors.Is(err, repo.ErrNotFound) {
		return UserWithTokenDTO{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).Error("find user by token failed")
		return UserWithTokenDTO{}, ErrInternal
	}

	return UserWithTokenDTO{
		ID:       user.ID,
		Username: user.Name,
		Email:    user.Email,
		Token:    user.Token,
	}, nil
}
