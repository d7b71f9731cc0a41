package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/hash"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByToken(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

var hasher = hash.NewSHA256Hasher()

// Test: 登録でパスワードはダイジェスト保存、トークンはemailのダイジェスト
func TestUserUsecase_CreateUser_StoresDigests(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "a@example.com" &&
			u.PasswordHash == hasher.Sum("pw123") &&
			u.Token == hasher.Sum("a@example.com")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 1
	}).Return(nil)

	id, err := uc.CreateUser(ctx, "alice", "a@example.com", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	users.AssertExpectations(t)
}

// Test: 同じemailの2回目はConflict
func TestUserUsecase_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicateEmail)

	_, err := uc.CreateUser(ctx, "alice", "a@example.com", "pw123")
	assert.ErrorIs(t, err, ErrConflict)
}

// Test: 入力不足はValidation
func TestUserUsecase_CreateUser_MissingFields(t *testing.T) {
	uc := NewUserUsecase(new(UserRepoMock), hasher)

	_, err := uc.CreateUser(context.Background(), "alice", "", "pw123")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.CreateUser(context.Background(), "alice", "a@example.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}

// Test: ログイン成功は保存済みトークンを返す
func TestUserUsecase_Authenticate_Success(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	stored := model.User{
		ID:           1,
		Email:        "a@example.com",
		PasswordHash: hasher.Sum("pw123"),
		Token:        hasher.Sum("a@example.com"),
	}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(stored, nil)

	out, err := uc.Authenticate(ctx, "a@example.com", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, stored.Token, out.Token)
}

// Test: パスワード不一致は常にUnauthorized（別種のエラーにならない）
func TestUserUsecase_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	stored := model.User{
		ID:           1,
		Email:        "a@example.com",
		PasswordHash: hasher.Sum("pw123"),
	}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(stored, nil)

	_, err := uc.Authenticate(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// Test: 存在しないemailもUnauthorized（どちらが誤りかを漏らさない）
func TestUserUsecase_Authenticate_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Authenticate(ctx, "nobody@example.com", "pw123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// Test: 一覧はパスワード・トークンを含まないDTO
func TestUserUsecase_ListUsers(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	users.On("FindAll", mock.Anything).Return([]model.User{
		{ID: 1, Name: "alice", Email: "a@example.com", PasswordHash: "x", Token: "y"},
		{ID: 2, Name: "bob", Email: "b@example.com", PasswordHash: "x", Token: "y"},
	}, nil)

	out, err := uc.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []UserDTO{
		{ID: 1, Username: "alice", Email: "a@example.com"},
		{ID: 2, Username: "bob", Email: "b@example.com"},
	}, out)
}

// Test: tokenでの照会はトークン込みで返す
func TestUserUsecase_GetUserByToken(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	token := hasher.Sum("a@example.com")
	users.On("FindByToken", mock.Anything, token).Return(model.User{
		ID: 1, Name: "alice", Email: "a@example.com", Token: token,
	}, nil)

	out, err := uc.GetUserByToken(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, token, out.Token)
	assert.Equal(t, "alice", out.Username)
}

// Test: ID照会で見つからない
func TestUserUsecase_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := NewUserUsecase(users, hasher)

	users.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
