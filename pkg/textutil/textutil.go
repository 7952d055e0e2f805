// Package textutil provides context preprocessing and script detection
// shared by the engine's callers and the validator.
package textutil

import (
	"strings"
	"unicode"
)

// Normalizer preprocesses caller-supplied text before it reaches the
// engine: trimming and size limiting. The engine itself accepts any
// string; the limit only bounds work on pathological inputs.
type Normalizer struct {
	maxSize int
}

// New creates a Normalizer with the given size limit in bytes.
func New(maxSize int) *Normalizer {
	return &Normalizer{maxSize: maxSize}
}

// Normalize trims surrounding whitespace and truncates to the limit.
func (n *Normalizer) Normalize(text string) string {
	text = strings.TrimSpace(text)
	if n.maxSize > 0 && len(text) > n.maxSize {
		text = text[:n.maxSize]
	}
	return text
}

// IsEmpty checks if the text is empty or whitespace only.
func (n *Normalizer) IsEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsTooLarge checks if the text exceeds the maximum size.
func (n *Normalizer) IsTooLarge(text string) bool {
	return n.maxSize > 0 && len(text) > n.maxSize
}

// HasHangul reports whether the text contains Korean script.
func HasHangul(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// HasLatin reports whether the text contains Latin letters.
func HasLatin(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// HasDigit reports whether the text contains a decimal digit.
func HasDigit(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
