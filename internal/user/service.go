package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Signup(ctx context.Context, input SignupInput) (*User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	email := strings.TrimSpace(input.Email)
	if input.Password == "" {
		return nil, errors.New("password cannot be empty")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Error().Err(err).Msg("service: failed to look up user by email")
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to generate password hash")
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	now := s.now().UTC()
	u := &User{
		ID:           id,
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      input.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return nil, ErrEmailExists
		}
		log.Error().Err(err).Msg("service: failed to create user in repository")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	log.Info().Stringer("user_id", u.ID).Bool("is_admin", u.IsAdmin).Msg("service: user signed up")

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("service: failed to get user for login")
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		log.Warn().Stringer("user_id", u.ID).Msg("service: password mismatch on login")
		return nil, ErrInvalidCredentials
	}

	return &Session{
		Token: MakeToken(u.Email, s.now().UTC()),
		User:  u,
	}, nil
}
