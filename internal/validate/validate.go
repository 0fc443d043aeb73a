package validate

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 .-]{5,19}$`)
	// Moroccan ICE company identifier: 15 digits
	reTaxID = regexp.MustCompile(`^[0-9]{15}$`)
	reSlug  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone accepts international-ish numbers; optional field, so callers skip
// it when empty.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

func TaxID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTaxID.MatchString(s)
}

// Query normalizes a catalog search string: trims and caps the length.
// Matching is substring-based so no charset restriction applies (product
// names carry accents).
func Query(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

// Slug validates a URL slug (products, categories).
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 96 && reSlug.MatchString(s)
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Page parses a 1-based page number; anything unparseable falls back to 1.
// Out-of-range values are clamped later against the actual page count.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// Qty parses an absolute quantity for the cart stepper. Unparseable input
// becomes 0, which the cart treats as removal.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	if n > 999 {
		return 999
	}
	return n
}

const (
	MaxAttachments    = 3
	MaxAttachmentSize = 5 << 20 // 5 MiB
)

var attachmentExts = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// Attachment checks one uploaded file's name and size against the
// submission rules.
func Attachment(filename string, size int64) bool {
	if size <= 0 || size > MaxAttachmentSize {
		return false
	}
	return attachmentExts[strings.ToLower(filepath.Ext(filename))]
}
