package scope

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateAndVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	m, err := newManager(Config{Secret: "access-secret", RefreshSecret: "refresh-secret"}, func() time.Time { return now })
	if err != nil {
		t.Fatalf("newManager: %v", err)
	}

	in := Scope{UserID: 7, Username: "sarah.chen", Role: "nurse"}
	tokens, err := m.CreateTokens(in)
	if err != nil {
		t.Fatalf("CreateTokens: %v", err)
	}
	if tokens.ExpiresIn != int64(DefaultAccessTTL.Seconds()) {
		t.Errorf("ExpiresIn = %d", tokens.ExpiresIn)
	}

	t.Run("access token verifies", func(t *testing.T) {
		got, err := m.VerifyAccessToken(tokens.AccessToken)
		if err != nil {
			t.Fatalf("VerifyAccessToken: %v", err)
		}
		if got != in {
			t.Errorf("got %+v, want %+v", got, in)
		}
	})

	t.Run("refresh token verifies", func(t *testing.T) {
		got, err := m.VerifyRefreshToken(tokens.RefreshToken)
		if err != nil {
			t.Fatalf("VerifyRefreshToken: %v", err)
		}
		if got != in {
			t.Errorf("got %+v, want %+v", got, in)
		}
	})

	t.Run("tokens are not interchangeable", func(t *testing.T) {
		if _, err := m.VerifyAccessToken(tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("refresh as access: err = %v, want ErrInvalidToken", err)
		}
		if _, err := m.VerifyRefreshToken(tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("access as refresh: err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := now.Add(DefaultAccessTTL + time.Minute)
		m.now = func() time.Time { return later }
		defer func() { m.now = func() time.Time { return now } }()

		if _, err := m.VerifyAccessToken(tokens.AccessToken); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("err = %v, want ErrExpiredToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.VerifyAccessToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("err = %v, want ErrMissingSecret", err)
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Fatal("empty context should not carry a scope")
	}
	ctx := SetScopeToContext(context.Background(), Scope{UserID: 1, Role: "admin"})
	s, ok := GetScopeFromContext(ctx)
	if !ok || s.UserID != 1 || s.Role != "admin" {
		t.Fatalf("got %+v, %v", s, ok)
	}
}
