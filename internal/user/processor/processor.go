package processor

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"reward-platform/internal/observability"
	"reward-platform/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 4

var (
	ErrUsernameExists      = errors.New("username already exists")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// TokenConfig holds the signing secrets and lifetimes of issued tokens
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type UserProcessor struct {
	store  UserStore
	tokens TokenConfig
	logger *observability.Logger
	now    func() time.Time
}

// Option customises a UserProcessor
type Option func(*UserProcessor)

// WithClock replaces the wall clock used for token timestamps and login statistics
func WithClock(now func() time.Time) Option {
	return func(p *UserProcessor) {
		p.now = now
	}
}

func New(store UserStore, tokens TokenConfig, logger *observability.Logger, opts ...Option) UserProcessor {
	p := UserProcessor{
		store:  store,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// TokenPair is returned on a successful login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Profile is the public view of a user
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register creates a user. An empty role defaults to USER.
func (p *UserProcessor) Register(ctx context.Context, username, password, role string) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	if len(password) < minPasswordLength {
		return store.User{}, ErrPasswordTooShort
	}
	if role == "" {
		role = store.RoleUser
	}
	if !store.IsOneOf(role, store.Roles) {
		return store.User{}, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.User{}, ErrUsernameExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	p.logger.Info(ctx, "user registered successfully")
	return user, nil
}

// Login verifies credentials, issues a token pair and records the login
func (p *UserProcessor) Login(ctx context.Context, username, password string) (TokenPair, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	user, err := p.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by username", err)
		return TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.Info(ctx, "password mismatch")
		return TokenPair{}, ErrInvalidCredentials
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})
	now := p.now()

	accessToken, err := p.issueAccessToken(user, now)
	if err != nil {
		p.logger.Error(ctx, "failed to issue access token", err)
		return TokenPair{}, err
	}

	refreshClaims := newClaims(user.ID.String(), now, p.tokens.RefreshTTL)
	refreshClaims.Type = tokenTypeRefresh
	refreshClaims.ID = uuid.NewString()
	refreshToken, err := signToken(refreshClaims, p.tokens.RefreshSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to issue refresh token", err)
		return TokenPair{}, err
	}

	digest := tokenDigest(refreshToken)
	if err := p.store.UpdateRefreshTokenHash(ctx, user.ID, &digest); err != nil {
		p.logger.Error(ctx, "failed to store refresh token", err)
		return TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if _, err := p.store.CreateLoginLog(ctx, user.ID, user.Username, now); err != nil {
		p.logger.Error(ctx, "failed to record login", err)
		return TokenPair{}, fmt.Errorf("failed to record login: %w", err)
	}

	p.logger.Info(ctx, "user logged in successfully")
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (p *UserProcessor) issueAccessToken(user store.User, now time.Time) (string, error) {
	claims := newClaims(user.ID.String(), now, p.tokens.AccessTTL)
	claims.Username = user.Username
	claims.Role = user.Role
	return signToken(claims, p.tokens.AccessSecret)
}

// Logout revokes the stored refresh token of a user
func (p *UserProcessor) Logout(ctx context.Context, userID string) error {
	id, err := p.parseUserID(userID)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if err := p.store.UpdateRefreshTokenHash(ctx, id, nil); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to clear refresh token", err)
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	p.logger.Info(ctx, "user logged out successfully")
	return nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token
func (p *UserProcessor) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := ValidateJWTToken(refreshToken, p.tokens.RefreshSecret)
	if err != nil || claims.Type != tokenTypeRefresh {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: claims.Subject})

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		p.logger.Error(ctx, "failed to get user", err)
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user.RefreshTokenHash == nil ||
		subtle.ConstantTimeCompare([]byte(*user.RefreshTokenHash), []byte(tokenDigest(refreshToken))) != 1 {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := p.issueAccessToken(user, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to issue access token", err)
		return "", err
	}
	return accessToken, nil
}

// UpdateRole changes the role of a user
func (p *UserProcessor) UpdateRole(ctx context.Context, userID, role string) (store.User, error) {
	id, err := p.parseUserID(userID)
	if err != nil {
		return store.User{}, err
	}
	if !store.IsOneOf(role, store.Roles) {
		return store.User{}, ErrInvalidRole
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "role", Value: role},
	)

	user, err := p.store.UpdateUserRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to update user role", err)
		return store.User{}, fmt.Errorf("failed to update user role: %w", err)
	}

	p.logger.Info(ctx, "user role updated successfully")
	return user, nil
}

// DeleteUser removes a user
func (p *UserProcessor) DeleteUser(ctx context.Context, userID string) error {
	id, err := p.parseUserID(userID)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if err := p.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to delete user", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	p.logger.Info(ctx, "user deleted successfully")
	return nil
}

// LoginStats aggregates the login log of a user. Unknown users have no logins.
func (p *UserProcessor) LoginStats(ctx context.Context, userID string) (LoginStats, error) {
	id, err := p.parseUserID(userID)
	if err != nil {
		return LoginStats{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	logins, err := p.store.GetLoginTimes(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to get login times", err)
		return LoginStats{}, fmt.Errorf("failed to get login times: %w", err)
	}
	return summarizeLogins(logins, p.now()), nil
}

// Profile returns the public view of a user
func (p *UserProcessor) Profile(ctx context.Context, userID string) (Profile, error) {
	id, err := p.parseUserID(userID)
	if err != nil {
		return Profile{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	user, err := p.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return Profile{}, fmt.Errorf("failed to get user: %w", err)
	}
	return Profile{ID: user.ID, Username: user.Username, Role: user.Role, CreatedAt: user.CreatedAt}, nil
}

func (p *UserProcessor) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}
