package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Хеш не должен содержать пароль в открытом виде
	assert.False(t, strings.Contains(hash, "correct horse"))

	// Проверяем фактическую стоимость
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, PasswordHashCost, cost)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_Randomized(t *testing.T) {
	// bcrypt сам генерирует соль, два хеша одного пароля различаются
	h1, err := HashPassword("same password 123")
	require.NoError(t, err)
	h2, err := HashPassword("same password 123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("same password 123", h1))
	assert.True(t, CheckPassword("same password 123", h2))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password-1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret-password-1", hash))
	assert.False(t, CheckPassword("secret-password-2", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("secret-password-1", "not-a-bcrypt-hash"))
}
