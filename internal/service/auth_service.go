package service

import (
	"context"
	"strings"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/cache"
	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims is the payload of the signed user token.
type JWTClaims struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

// RegisterInput is the signup payload. StoreName only applies to sellers.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FullName  string `json:"full_name" validate:"required,max=100"`
	StoreName string `json:"store_name" validate:"max=100"`
}

// AuthService handles signup, login and token issuance.
type AuthService struct {
	users    repository.UserRepository
	cfg      *config.Config
	validate *validator.Validate
}

// NewAuthService creates the auth service.
func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Register creates a user with the given role. Customers are verified on
// the spot; sellers wait for an admin.
func (s *AuthService) Register(input RegisterInput, role string) (*models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, WrapValidation(err)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         role,
		IsVerified:   role != constants.RoleSeller,
	}
	if role == constants.RoleSeller {
		user.StoreName = strings.TrimSpace(input.StoreName)
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	logger.Infow("user_registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login checks credentials and issues a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(user.ID, now); err != nil {
		logger.Warnw("last_login_update_failed", "user_id", user.ID, "error", err)
	}
	user.LastLoginAt = &now

	if err := cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_failed", "user_id", user.ID, "error", err)
	}
	return user, token, nil
}

// GenerateToken signs a token for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	claims := JWTClaims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

// ParseToken validates a token string and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
