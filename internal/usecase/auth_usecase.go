package usecase

import (
	"context"
	"errors"
	"strings"

	"scheme-directory/internal/converter"
	"scheme-directory/internal/delivery/dto"
	"scheme-directory/internal/domain/entity"
	"scheme-directory/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) error
	Signin(ctx context.Context, req *dto.SigninRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) error {
	db := u.db.WithContext(ctx)

	existing, err := u.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}

	if err := u.userRepo.Create(db, user); err != nil {
		// Two concurrent signups can both pass the lookup above.
		if isDuplicateKeyError(err, "username") {
			return ErrUsernameTaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
