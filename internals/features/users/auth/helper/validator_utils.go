package helper

import (
	"errors"
	"strings"
)

// ValidateRegisterInput memvalidasi input register sebelum masuk validator struct.
func ValidateRegisterInput(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("Username wajib diisi")
	}
	if len(username) < 3 {
		return errors.New("Username minimal 3 karakter")
	}
	if len(username) > 50 {
		return errors.New("Username maksimal 50 karakter")
	}
	if strings.ContainsAny(username, " \t\n") {
		return errors.New("Username tidak boleh mengandung spasi")
	}
	if len(password) < 6 {
		return errors.New("Password minimal 6 karakter")
	}
	return nil
}

// ValidateLoginInput memvalidasi input login
func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("Username wajib diisi")
	}
	if password == "" {
		return errors.New("Password wajib diisi")
	}
	return nil
}
