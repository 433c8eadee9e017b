package usecase

import (
	"context"
	"errors"
	"testing"

	"scheme-directory/internal/delivery/dto"
	"scheme-directory/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUserRepo struct {
	users     map[string]*entity.User
	findErr   error
	createErr error
	nextID    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.UserID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[username], nil
}

func newTestGorm(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestSignup_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	err := uc.Signup(context.Background(), &dto.SignupRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	stored := repo.users["asha"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	require.NotNil(t, stored.Email)
	assert.Equal(t, "asha@example.com", *stored.Email)
}

func TestSignup_WithoutEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{Username: "ravi", Password: "pw"}))
	assert.Nil(t, repo.users["ravi"].Email)
}

func TestSignup_UsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["asha"] = &entity.User{UserID: 1, Username: "asha"}
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	err := uc.Signup(context.Background(), &dto.SignupRequest{Username: "asha", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignup_UniqueViolationOnInsert(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	err := uc.Signup(context.Background(), &dto.SignupRequest{Username: "asha", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignup_DatabaseError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection refused")
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	err := uc.Signup(context.Background(), &dto.SignupRequest{Username: "asha", Password: "pw"})
	assert.EqualError(t, err, "connection refused")
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestSignin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)
	require.NoError(t, uc.Signup(context.Background(), &dto.SignupRequest{Username: "asha", Password: "s3cret"}))

	t.Run("valid credentials", func(t *testing.T) {
		user, err := uc.Signin(context.Background(), &dto.SigninRequest{Username: "asha", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "asha", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Signin(context.Background(), &dto.SigninRequest{Username: "asha", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Signin(context.Background(), &dto.SigninRequest{Username: "ghost", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignin_DatabaseError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("db down")
	uc := NewAuthUsecase(newTestGorm(t), quietLogger(), repo)

	_, err := uc.Signin(context.Background(), &dto.SigninRequest{Username: "asha", Password: "pw"})
	assert.EqualError(t, err, "db down")
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, "username"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "username"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}, "username"))
	assert.False(t, isDuplicateKeyError(errors.New("boom"), "username"))
}
