package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/jwt"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// TokenIssuer issues and parses access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, *jwt.Claims, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenStore tracks which issued tokens are still live.
type TokenStore interface {
	Save(ctx context.Context, tokenID string, userID uuid.UUID, exp time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles login, logout and actor resolution.
type AuthService struct {
	users  UserReader
	tokens TokenIssuer
	store  TokenStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, tokens TokenIssuer, store TokenStore) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		store:  store,
	}
}

// Login checks the credentials and issues a new access token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("login for unknown email", "email", email)
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "error", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, claims, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return "", nil, err
	}

	if err := svc.store.Save(ctx, claims.ID, user.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		logger.Log.Errorw("failed to store token", "userID", user.ID, "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes exactly the token of session.
// Revoking a token that is already gone returns ErrTokenAlreadyRevoked.
func (svc *AuthService) Logout(ctx context.Context, session *models.Session) error {
	deleted, err := svc.store.Delete(ctx, session.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to revoke token", "tokenID", session.TokenID, "error", err)
		return err
	}
	if !deleted {
		logger.Log.Errorw("token already revoked", "tokenID", session.TokenID)
		return ErrTokenAlreadyRevoked
	}
	return nil
}

// CurrentUser resolves the actor behind tokenString.
// Any invalid, expired, revoked or orphaned token yields ErrUnauthenticated.
func (svc *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := svc.tokens.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Warnw("invalid access token", "error", err)
		return nil, ErrUnauthenticated
	}

	live, err := svc.store.Exists(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token", "tokenID", claims.ID, "error", err)
		return nil, err
	}
	if !live {
		logger.Log.Warnw("revoked access token", "tokenID", claims.ID)
		return nil, ErrUnauthenticated
	}

	user, err := svc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("token of deleted user", "userID", claims.UserID)
			return nil, ErrUnauthenticated
		}
		logger.Log.Errorw("failed to get user", "userID", claims.UserID, "error", err)
		return nil, err
	}

	return &models.Session{User: user, TokenID: claims.ID}, nil
}
