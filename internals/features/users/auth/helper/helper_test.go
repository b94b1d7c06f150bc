package helper

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("password tersimpan plaintext")
	}
	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah123"); err == nil {
		t.Error("password salah diterima")
	}
}

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "budi", "rahasia123", false},
		{"username 3 karakter pas", "abc", "rahasia123", false},
		{"username terlalu pendek", "ab", "rahasia123", true},
		{"username kosong", "", "rahasia123", true},
		{"username whitespace saja", "   ", "rahasia123", true},
		{"username ada spasi", "budi santoso", "rahasia123", true},
		{"username terlalu panjang", strings.Repeat("a", 51), "rahasia123", true},
		{"username 50 karakter pas", strings.Repeat("a", 50), "rahasia123", false},
		{"password terlalu pendek", "budi", "12345", true},
		{"password 6 karakter pas", "budi", "123456", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterInput(tc.username, tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("budi", "apapun"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateLoginInput("", "apapun"); err == nil {
		t.Error("username kosong lolos")
	}
	if err := ValidateLoginInput("budi", ""); err == nil {
		t.Error("password kosong lolos")
	}
}
