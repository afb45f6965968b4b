package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/openbid/auctiond/internal/auth"
	"github.com/openbid/auctiond/internal/errors"
	"github.com/openbid/auctiond/internal/model"
	"github.com/openbid/auctiond/internal/repository"
	"github.com/openbid/auctiond/internal/validation"
)

const bcryptCost = 10

// AuthService handles registration and authentication.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, phone, password string) error
	Login(ctx context.Context, email, password string) (token string, user *model.PublicUser, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register validates the payload and persists a new user with a hashed
// password. No token is issued; the caller logs in separately.
func (s *authService) Register(ctx context.Context, firstName, lastName, email, phone, password string) error {
	if err := validation.User(firstName, lastName, email, phone, password); err != nil {
		return err
	}

	// Check if the email is already taken
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.Conflict("Email already registered")
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Password:   hashedPassword,
		CreatedAt:  time.Now().UTC(),
		Rating:     0,
		TotalSales: 0,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index closes the check-then-insert race.
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Email already registered")
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a bearer token bound to the
// user's identifier, alongside a public summary that never includes the
// password hash.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.PublicUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return "", nil, errors.Unauthorized("Invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user.Public(), nil
}
