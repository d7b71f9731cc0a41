package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: 同じ入力は常に同じダイジェスト
func TestSum_Deterministic(t *testing.T) {
	h := NewSHA256Hasher()

	d1 := h.Sum("secret")
	d2 := h.Sum("secret")

	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

// Test: 既知ベクトル
func TestSum_KnownDigest(t *testing.T) {
	h := NewSHA256Hasher()

	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		h.Sum("password"),
	)
}

// Test: 異なる入力は異なるダイジェスト
func TestSum_DifferentInputs(t *testing.T) {
	h := NewSHA256Hasher()

	assert.NotEqual(t, h.Sum("a@example.com"), h.Sum("b@example.com"))
}
