package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/potluck/recipebook/internal/httperr"
	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/store"
	"github.com/potluck/recipebook/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the session token payload: the user id under the "id" claim
// plus the standard expiry.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Credentials is what sign-up and sign-in hand back to the client.
type Credentials struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthService validates credentials and issues and verifies session
// tokens. Tokens are stateless: validity is determined by the signature,
// the expiry, and the encoded user still existing.
type AuthService struct {
	users    store.UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users store.UserStore, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a fresh session token for userID.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks the token's signature and expiry and resolves the
// encoded user. A token whose user no longer exists is treated the same
// as an invalid one.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", httperr.Unauthorized(err.Error())
	}
	if !token.Valid || claims.UserID == "" {
		return "", httperr.Unauthorized("Unauthorized token!")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", httperr.Unauthorized("Unauthorized token!")
		}
		return "", httperr.Upstream(err)
	}
	return user.ID.Hex(), nil
}

// SignUp registers a new user and signs them in.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (Credentials, error) {
	if err := validation.Credentials(email, password); err != nil {
		return Credentials{}, err
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return Credentials{}, httperr.Conflict("This email already exists!")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return Credentials{}, httperr.Upstream(err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return Credentials{}, httperr.Upstream(err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return Credentials{}, httperr.Upstream(err)
	}

	token, err := s.GenerateToken(user.ID.Hex())
	if err != nil {
		return Credentials{}, httperr.Upstream(err)
	}
	return Credentials{ID: user.ID.Hex(), Email: user.Email, Token: token}, nil
}

// SignIn authenticates an existing user and issues a fresh token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (Credentials, error) {
	if err := validation.Credentials(email, password); err != nil {
		return Credentials{}, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Credentials{}, httperr.NotFound("This user does not exist!")
		}
		return Credentials{}, httperr.Upstream(err)
	}

	if !VerifyPassword(password, user.Password) {
		return Credentials{}, httperr.Unauthorized("Password is not correct!")
	}

	token, err := s.GenerateToken(user.ID.Hex())
	if err != nil {
		return Credentials{}, httperr.Upstream(err)
	}
	return Credentials{ID: user.ID.Hex(), Email: user.Email, Token: token}, nil
}

// Refresh issues a new token for an already-verified user id, same
// expiry policy as sign-in.
func (s *AuthService) Refresh(ctx context.Context, userID string) (string, error) {
	token, err := s.GenerateToken(userID)
	if err != nil {
		return "", httperr.Upstream(err)
	}
	return token, nil
}
