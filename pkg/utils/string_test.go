package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentu-app/momentu-backend/pkg/utils"
)

func TestGenerateEventCode(t *testing.T) {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	code := utils.GenerateEventCode(6)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}
}
