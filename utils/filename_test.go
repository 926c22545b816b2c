package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueFilenameSanitizesWhitespace(t *testing.T) {
	name := UniqueFilename("nota fiscal  03.pdf")
	assert.True(t, strings.HasSuffix(name, "-nota_fiscal_03.pdf"), "got %q", name)
	assert.NotContains(t, name, " ")
}

func TestUniqueFilenameStripsDirectories(t *testing.T) {
	name := UniqueFilename("../../secret/recibo.png")
	assert.NotContains(t, name, "/")
	assert.True(t, strings.HasSuffix(name, "-recibo.png"), "got %q", name)
}

func TestUniqueFilenameAvoidsCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := UniqueFilename("a.jpg")
		assert.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
}
