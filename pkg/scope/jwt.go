package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	Issuer          = "nuvanta-api"
	AccessAudience  = "nuvanta-client"
	RefreshAudience = "nuvanta-refresh"

	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Config configures the JWT manager.
type Config struct {
	Secret        string
	RefreshSecret string // falls back to Secret
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type jwtManager struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// New creates an HS256 token manager.
func New(cfg Config) (Manager, error) {
	return newManager(cfg, time.Now)
}

func newManager(cfg Config, now func() time.Time) (*jwtManager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	m := &jwtManager{
		secret:        []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           now,
	}
	if len(m.refreshSecret) == 0 {
		m.refreshSecret = m.secret
	}
	if m.accessTTL <= 0 {
		m.accessTTL = DefaultAccessTTL
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = DefaultRefreshTTL
	}
	return m, nil
}

func (m *jwtManager) CreateTokens(s Scope) (Tokens, error) {
	access, err := m.sign(s, AccessAudience, m.accessTTL, m.secret)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := m.sign(s, RefreshAudience, m.refreshTTL, m.refreshSecret)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(m.accessTTL.Seconds()),
	}, nil
}

func (m *jwtManager) VerifyAccessToken(token string) (Scope, error) {
	return m.verify(token, AccessAudience, m.secret)
}

func (m *jwtManager) VerifyRefreshToken(token string) (Scope, error) {
	return m.verify(token, RefreshAudience, m.refreshSecret)
}

func (m *jwtManager) sign(s Scope, audience string, ttl time.Duration, secret []byte) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:   s.UserID,
		Username: s.Username,
		Role:     s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *jwtManager) verify(token string, audience string, secret []byte) (Scope, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Scope{}, ErrExpiredToken
		}
		return Scope{}, ErrInvalidToken
	}

	return Scope{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
