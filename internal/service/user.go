package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/auth"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports"
)

type UserService struct {
	userRepo ports.UserRepo
	resolver *access.Resolver
	tokens   *auth.Service
}

func NewUserService(userRepo ports.UserRepo, resolver *access.Resolver, tokens *auth.Service) *UserService {
	return &UserService{
		userRepo: userRepo,
		resolver: resolver,
		tokens:   tokens,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	switch input.Role {
	case domain.RoleLandlord, domain.RoleTenant, domain.RoleBoth:
	default:
		// Admin accounts are seeded out of band, never self-registered.
		return nil, fmt.Errorf("%w: role must be one of landlord, tenant, both", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:          input.Email,
		PasswordHash:   string(hash),
		Role:           input.Role,
		TelegramChatID: input.TelegramChatID,
	}
	if err = s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, p *domain.Principal, id int64) (*domain.User, error) {
	if err := s.resolver.CanActOnUser(p, id); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}
