package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/Haribaskar21/Profile-backend/internal/events"
	"github.com/Haribaskar21/Profile-backend/internal/jwt"
	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/repository"
)

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (token string, user model.PublicUser, err error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    *jwt.Service
	publisher events.EventPublisher
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Service, publisher events.EventPublisher) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		AvatarURL:    placeholderAvatarURL(name),
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}

		return err
	}

	if err := s.publisher.PublishUserRegistered(newID, email); err != nil {
		slog.WarnContext(ctx, "Failed to publish user.registered event", slog.String("error", err.Error()))
	}

	return nil
}

// Login deliberately returns the same error for an unknown email and a
// wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (string, model.PublicUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", model.PublicUser{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.PublicUser{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", model.PublicUser{}, err
	}

	return token, user.Public(), nil
}

func placeholderAvatarURL(name string) string {
	return "https://api.dicebear.com/7.x/identicon/svg?seed=" + url.QueryEscape(name)
}
