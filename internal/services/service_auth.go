package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/models"
	"inkwell-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken     = errors.New("user with this email already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrValidation     = errors.New("validation failed")
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const tokenTTL = 72 * time.Hour

// IssueToken signs an HS256 session token carrying the user id.
func IssueToken(secret string, userID string, now time.Time) (string, error) {
	claims := middleware.Claims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func validateSignup(req dto.SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if !emailRe.MatchString(req.Email) {
		return errors.New("please enter a valid email")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// Signup creates an account. Email is case-folded; uniqueness is enforced
// by the index, duplicate insert maps to ErrEmailTaken.
func Signup(ctx context.Context, users *repository.UserRepository, req dto.SignupRequest) (*models.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, errors.Join(ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Bio:          "New writer on Inkwell",
	}
	if err := users.Create(ctx, u); err != nil {
		if repository.IsDupKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login resolves email+password to a user. Unknown email and wrong password
// are indistinguishable to the caller.
func Login(ctx context.Context, users *repository.UserRepository, req dto.LoginRequest) (*models.User, error) {
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}
