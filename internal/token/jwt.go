package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/sessionkeeper/internal/model"
)

var (
	// ErrMissingSecret is returned when the signing secret is not configured.
	ErrMissingSecret = errors.New("jwt secret is not configured")
	// ErrInvalidTTL is returned when the access token TTL is not positive.
	ErrInvalidTTL = errors.New("access token ttl must be positive")
)

// Claims is the access token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a token manager signing with secretKey. Tokens live for ttl.
func NewJWT(secretKey string, ttl time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime of issued access tokens.
func (j *JWT) TTL() time.Duration {
	return j.ttl
}

// IssueAccessToken signs the subject's claim set.
func (j *JWT) IssueAccessToken(subject model.Subject) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subject.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: subject.ID,
		Email:  subject.Email,
		Role:   subject.Role.String(),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// VerifyAccessToken validates the token and returns its subject.
// It fails with model.ErrTokenExpired or model.ErrTokenInvalid.
func (j *JWT) VerifyAccessToken(tokenString string) (model.Subject, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		// Signature is checked before expiry, so an expired error implies a genuine token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Subject{}, model.ErrTokenExpired
		}
		return model.Subject{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}

	role := model.Role(claims.Role)
	if claims.UserID == 0 || !role.IsValid() {
		return model.Subject{}, fmt.Errorf("%w: unexpected claims", model.ErrTokenInvalid)
	}

	return model.Subject{ID: claims.UserID, Email: claims.Email, Role: role}, nil
}
