package auth

import (
	"context"
	"errors"

	"github.com/kbukum/inventario/auth/jwt"
	"github.com/kbukum/inventario/auth/password"
	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/model"
	"github.com/kbukum/inventario/store"
)

// Service orchestrates registration and login.
type Service struct {
	users  store.UserStore
	hasher password.Hasher
	tokens *jwt.Service[*Claims]
	log    *logger.Logger
}

// NewService creates the auth service.
func NewService(users store.UserStore, hasher password.Hasher, tokens *jwt.Service[*Claims], log *logger.Logger) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// Register creates a new user with the given credentials. The password is
// accepted as-is, with no strength policy. Returns AlreadyExists
// when the username is taken; the store resolves concurrent registrations
// of the same username atomically, so at most one can ever succeed.
func (s *Service) Register(ctx context.Context, username, plaintext string) (*model.User, error) {
	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return nil, apperrors.AlreadyExists("user")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Database("find_user", err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			// Lost the race against a concurrent registration.
			return nil, apperrors.AlreadyExists("user")
		}
		return nil, apperrors.Database("create_user", err)
	}

	s.log.Info("user registered", logger.Fields(
		logger.FieldUserID, user.ID,
		logger.FieldUsername, user.Username,
	))
	return user, nil
}

// Login verifies the credentials and issues a signed token. An unknown
// username and a wrong password return the same InvalidCredentials error so
// the response does not reveal which factor failed.
func (s *Service) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperrors.InvalidCredentials()
		}
		return "", apperrors.Database("find_user", err)
	}

	if err := s.hasher.Verify(plaintext, user.PasswordHash); err != nil {
		return "", apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(NewClaims(user))
	if err != nil {
		return "", apperrors.Internal(err)
	}

	s.log.Info("user logged in", logger.Fields(
		logger.FieldUserID, user.ID,
		logger.FieldUsername, user.Username,
	))
	return token, nil
}
