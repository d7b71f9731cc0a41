package usecase

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
)

// Test: 両方一致のときだけtrue
func TestAdminUsecase_Authenticate(t *testing.T) {
	uc := NewAdminUsecase(config.Config{
		AdminUsername: "admin",
		AdminPassword: "admin@123",
	})

	assert.True(t, uc.Authenticate("admin", "admin@123"))
	assert.False(t, uc.Authenticate("admin", "wrong"))
	assert.False(t, uc.Authenticate("wrong", "admin@123"))
	assert.False(t, uc.Authenticate("", ""))
}
