package service

import (
	"testing"

	"portfolio/util/crypto"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAdminRehashOnlyWhenChanged(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	admin, err := userService.GetFirstAdmin()
	assert.NoError(t, err)
	storedHash := admin.Password
	assert.True(t, crypto.IsHashed(storedHash))

	// Renaming without a new password keeps the hash untouched
	assert.NoError(t, userService.UpdateFirstAdmin("root", ""))
	admin, err = userService.GetFirstAdmin()
	assert.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
	assert.Equal(t, storedHash, admin.Password)
	assert.NotNil(t, userService.CheckAdmin("root", "admin123"))

	// Re-saving the stored hash does not hash the hash
	assert.NoError(t, userService.UpdateFirstAdmin("root", storedHash))
	admin, err = userService.GetFirstAdmin()
	assert.NoError(t, err)
	assert.Equal(t, storedHash, admin.Password)
	assert.NotNil(t, userService.CheckAdmin("root", "admin123"))

	// A new plaintext password is hashed exactly once
	assert.NoError(t, userService.UpdateFirstAdmin("root", "newpass"))
	admin, err = userService.GetFirstAdmin()
	assert.NoError(t, err)
	assert.NotEqual(t, storedHash, admin.Password)
	assert.True(t, crypto.IsHashed(admin.Password))
	assert.Nil(t, userService.CheckAdmin("root", "admin123"))
	assert.NotNil(t, userService.CheckAdmin("root", "newpass"))
}

func TestStoredPasswordNeverPlaintext(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	admin, err := userService.GetFirstAdmin()
	assert.NoError(t, err)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.True(t, crypto.IsHashed(admin.Password))
}
