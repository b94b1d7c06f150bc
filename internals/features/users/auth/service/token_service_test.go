package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "quizku_backend/internals/features/users/user/model"
)

func TestCreateAccessTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "token-test-secret")

	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "budi",
		Role:     "admin",
	}

	signed, err := CreateAccessToken(user)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	tok, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("metode tanda tangan bukan HMAC: %v", tok.Method)
		}
		return []byte("token-test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims bukan MapClaims")
	}
	if claims["id"] != user.ID.String() {
		t.Errorf("id = %v, want %s", claims["id"], user.ID)
	}
	if claims["user_name"] != "budi" || claims["role"] != "admin" {
		t.Errorf("claims = %v", claims)
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if ttl := time.Duration(exp-iat) * time.Second; ttl != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", ttl)
	}
}

func TestCreateAccessTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := CreateAccessToken(userModel.UserModel{ID: uuid.New(), UserName: "x", Role: "user"})
	if err == nil {
		t.Fatal("tanpa JWT_SECRET seharusnya gagal")
	}
}
