package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsScanned(t *testing.T) {
	parser := NewPDFParserService()

	assert.True(t, parser.IsScanned(""))
	assert.True(t, parser.IsScanned("   \n\t  "))
	assert.True(t, parser.IsScanned(strings.Repeat("x", ScannedTextThreshold-1)))

	assert.False(t, parser.IsScanned(strings.Repeat("x", ScannedTextThreshold)))

	// Surrounding whitespace does not count toward the threshold.
	padded := "  " + strings.Repeat("x", ScannedTextThreshold-1) + "  "
	assert.True(t, parser.IsScanned(padded))

	// Thai text is measured in runes, not bytes.
	assert.True(t, parser.IsScanned(strings.Repeat("ก", ScannedTextThreshold-1)))
	assert.False(t, parser.IsScanned(strings.Repeat("ก", ScannedTextThreshold)))
}
