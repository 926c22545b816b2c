package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"time"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// UniqueFilename builds a collision-safe stored name from the original
// upload name: unix millis, a random component, and the sanitized
// original with whitespace collapsed to underscores.
func UniqueFilename(original string) string {
	base := filepath.Base(original)
	base = whitespaceRe.ReplaceAllString(base, "_")
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), base)
}
