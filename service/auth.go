package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tubeline/database"
	"tubeline/logctx"
	"tubeline/models"
)

const minPasswordLen = 6

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,30}$`)

// Claims is the JWT payload. UserID is the hex id of the user.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	const op = "service/auth/Register"

	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case in.FullName == "":
		return nil, invalid(op, "fullName", "is required")
	case !usernamePattern.MatchString(in.Username):
		return nil, invalid(op, "username", "must be 3-30 characters of a-z, 0-9, _ or .")
	case !strings.Contains(in.Email, "@"):
		return nil, invalid(op, "email", "is not a valid address")
	case len(in.Password) < minPasswordLen:
		return nil, invalid(op, "password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	}

	lg := logctx.With(ctx, op, "username", in.Username)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		lg.Error("password_hash_failed", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	u := &models.User{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.storage.InsertUser(ctx, u); err != nil {
		return nil, storageErr(lg, op, err)
	}

	token, err := s.issueToken(u.ID.Hex())
	if err != nil {
		lg.Error("token_sign_failed", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("user_registered", slog.String("id", u.ID.Hex()))
	return &AuthResult{User: u, Token: token}, nil
}

// SignIn accepts a username or an email as login.
func (s *Service) SignIn(ctx context.Context, login, password string) (*AuthResult, error) {
	const op = "service/auth/SignIn"

	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" {
		return nil, invalid(op, "login", "is required")
	}
	if password == "" {
		return nil, invalid(op, "password", "is required")
	}

	lg := logctx.With(ctx, op)

	u, err := s.storage.UserByLogin(ctx, login)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	token, err := s.issueToken(u.ID.Hex())
	if err != nil {
		lg.Error("token_sign_failed", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &AuthResult{User: u, Token: token}, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}

	return claims, nil
}
