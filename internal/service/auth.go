package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/metrics"
	"github.com/SageMyrloc/FinalProject/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and session validation.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	secret      []byte
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewAuthService creates an AuthService. secretKey signs session tokens and
// keys the email digest, so it must stay stable across restarts.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, secretKey string, sessionTTL time.Duration) (*AuthService, error) {
	if userRepo == nil || sessionRepo == nil {
		panic("UserRepository and SessionRepository cannot be nil for AuthService")
	}
	if secretKey == "" {
		return nil, fmt.Errorf("secret key cannot be empty")
	}
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      []byte(secretKey),
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}, nil
}

// SessionTTL is how long an issued session stays valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a new account. All checks that can fail without the
// database run first.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirmPassword string) (*domain.User, error) {
	logCtx := logrus.WithField("username", username)

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, ErrMissingFields
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	// bcrypt only looks at the first 72 bytes
	if len(password) > maxSecretLen {
		return nil, ErrInvalidInput
	}

	digest := s.emailDigest(email)
	taken, err := s.userRepo.ExistsByUsernameOrEmailDigest(ctx, username, digest)
	if err != nil {
		logCtx.WithError(err).Error("Failed to check for existing user")
		return nil, ErrInternalServer
	}
	if taken {
		logCtx.Warn("Registration failed: username or email already exists")
		return nil, ErrRegistrationFailed
	}

	hashedPassword, err := hashSecret(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}
	// the digest has a fixed length, so addresses of any size hash cleanly
	hashedEmail, err := hashSecret(digest)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash email during registration")
		return nil, ErrInternalServer
	}

	user := &domain.User{
		Username:    username,
		Email:       hashedEmail,
		EmailDigest: digest,
		Password:    hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// lost a race with a concurrent registration
			logCtx.WithError(err).Warn("Registration failed: duplicate entry on insert")
			return nil, ErrRegistrationFailed
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternalServer
	}

	metrics.RecordRegistration()
	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	user.Password = ""
	return user, nil
}

// Login verifies credentials and opens a session. It returns the session and
// the signed token to be stored in the session cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	logCtx := logrus.WithField("username", username)

	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
			metrics.RecordLoginFailure()
			return nil, "", ErrAuthenticationFailed
		}
		logCtx.WithError(err).Error("Login attempt failed: error finding user")
		return nil, "", ErrInternalServer
	}
	if !checkSecret(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		metrics.RecordLoginFailure()
		return nil, "", ErrAuthenticationFailed
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session, s.sessionTTL); err != nil {
		logCtx.WithError(err).Error("Failed to store session")
		return nil, "", ErrInternalServer
	}
	token, err := s.signToken(session)
	if err != nil {
		logCtx.WithError(err).Error("Failed to sign session token")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return session, token, nil
}

// ForgotPassword checks that the email matches the account. No reset is
// delivered.
func (s *AuthService) ForgotPassword(ctx context.Context, username, email string) error {
	logCtx := logrus.WithField("username", username)

	if username == "" || email == "" {
		return ErrMissingFields
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("Forgot password: error finding user")
		return ErrInternalServer
	}
	if !checkSecret(s.emailDigest(email), user.Email) {
		logCtx.Warn("Forgot password: email mismatch")
		return ErrEmailMismatch
	}
	// TODO: deliver a reset link once an outbound mail service is configured.
	logCtx.Info("Forgot password request verified")
	return nil
}

// Authenticate resolves a session token to a live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	claims, err := s.parseToken(token)
	if err != nil {
		logrus.WithError(err).Debug("Rejected session token")
		return nil, ErrSessionInvalid
	}

	session, err := s.sessionRepo.Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		logrus.WithError(err).Error("Failed to load session")
		return nil, ErrInternalServer
	}
	if session.UserID != claims.UserID {
		logrus.WithField("session_id", claims.SessionID).Warn("Session token does not match stored session")
		return nil, ErrSessionInvalid
	}
	return session, nil
}

// Logout deletes the session behind token. Unknown or invalid tokens are not
// an error: the cookie is cleared either way.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		logrus.WithError(err).WithField("session_id", claims.SessionID).Error("Failed to delete session")
		return ErrInternalServer
	}
	return nil
}

// AddFlash queues a one-shot message for the next page the session renders.
func (s *AuthService) AddFlash(ctx context.Context, sessionID, category, message string) error {
	if sessionID == "" {
		return ErrSessionInvalid
	}
	err := s.sessionRepo.PushFlash(ctx, sessionID, domain.Flash{Category: category, Message: message})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionInvalid
		}
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to store flash message")
		return ErrInternalServer
	}
	return nil
}

// Flashes returns and clears the session's pending messages. Failures are
// logged and yield no messages; a page never fails because of them.
func (s *AuthService) Flashes(ctx context.Context, sessionID string) []domain.Flash {
	if sessionID == "" {
		return nil
	}
	flashes, err := s.sessionRepo.PopFlashes(ctx, sessionID)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to load flash messages")
		return nil
	}
	return flashes
}

// --- helpers ---

const maxSecretLen = 72

type sessionClaims struct {
	SessionID string `json:"sid"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(tokenStr string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// emailDigest is a keyed, deterministic digest of the normalised address.
func (s *AuthService) emailDigest(email string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(mac.Sum(nil))
}

func hashSecret(value string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash: %w", err)
	}
	return string(bytes), nil
}

func checkSecret(value, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(value)) == nil
}
