package service

import (
	"errors"
	"testing"
	"time"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.ExpiresIn != 60 {
		t.Fatalf("expected expires_in 60, got %d", pair.ExpiresIn)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "client-1" {
		t.Fatalf("unexpected client id %s", claims.ClientID)
	}
	if claims.TokenType != "access" {
		t.Fatalf("unexpected token type %s", claims.TokenType)
	}
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for refresh token, got %v", err)
	}
}

func TestJWTService_RefreshRotation(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rotated, err := svc.RefreshPair(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Fatal("expected a new refresh token after rotation")
	}

	// El refresh anterior queda revocado.
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for rotated refresh token, got %v", err)
	}

	// El nuevo sigue siendo usable.
	if _, err := svc.RefreshPair(rotated.RefreshToken); err != nil {
		t.Fatalf("unexpected error for fresh refresh token: %v", err)
	}
}

func TestJWTService_RevokeRefresh(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RevokeRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid after revoke, got %v", err)
	}
}

func TestJWTService_InvalidInputs(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	if _, err := svc.GeneratePair("  "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for empty client id, got %v", err)
	}
	if _, err := svc.ParseAccessToken("not-a-token"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for garbage token, got %v", err)
	}

	other := NewJWTService("other-secret", time.Minute, time.Hour)
	pair, err := other.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for wrong signature, got %v", err)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	svc.accessTTL = -time.Minute

	pair, err := svc.GeneratePair("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}
