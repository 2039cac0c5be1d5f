package service

import (
	"LinkBank/internal/model"
	"LinkBank/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Name: "John", Email: "john@example.com"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль должен уйти в репозиторий уже хешированным
			return u.Email == "john@example.com" && u.Password != "secret1"
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "John", "John@Example.com", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return(&model.User{ID: 1, Email: "john@example.com"}, nil).Once()

		user, err := svc.Register(ctx, "John", "john@example.com", "secret1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})

	t.Run("short password rejected", func(t *testing.T) {
		m.ExpectedCalls = nil
		user, err := svc.Register(ctx, "John", "john@example.com", "123")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrValidation)
		m.AssertNotCalled(t, "CreateUser")
	})

	t.Run("email without @ rejected", func(t *testing.T) {
		m.ExpectedCalls = nil
		_, err := svc.Register(ctx, "John", "not-an-email", "secret1")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 2, Email: "alice@example.com", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 2, Email: "alice@example.com", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		_, err := svc.Login(ctx, "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	m.On("GetUserByID", mock.Anything, int64(2)).Return(&model.User{ID: 2, Name: "Alice"}, nil).Once()
	user, err := svc.Get(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	m.On("GetUserByID", mock.Anything, int64(99)).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
