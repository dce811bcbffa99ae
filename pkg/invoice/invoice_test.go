package invoice

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFormat(t *testing.T) {
	at := time.Date(2026, 5, 12, 14, 30, 59, 0, time.Local)
	got := Generate(at)

	assert.Regexp(t, regexp.MustCompile(`^INV-260512-143059-[0-9A-F]{4}$`), got)
}

func TestGenerateDiffersAcrossSeconds(t *testing.T) {
	at := time.Date(2026, 5, 12, 14, 30, 59, 0, time.Local)

	assert.NotEqual(t, Generate(at), Generate(at.Add(time.Second)))
}
