package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// KeyPrefix is the folder every uploaded image is written under
	KeyPrefix = "images/"

	// PresignExpiry is the lifetime of every generated link
	PresignExpiry = time.Hour

	// DefaultContentType is stored when the client declares none
	DefaultContentType = "application/octet-stream"

	// BytesPerMB converts the configured limit to bytes
	BytesPerMB = 1024 * 1024

	maxFilenameLen   = 120
	fallbackFilename = "file"
)

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// AllowedExtensions returns the accepted extensions in sorted order
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Extension returns the lower-cased text after the last dot, or "" if there is no dot
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// ExtensionAllowed reports whether name carries an allowed image extension
func ExtensionAllowed(name string) bool {
	_, ok := allowedExtensions[Extension(name)]
	return ok
}

// SanitizeFilename keeps letters, digits, '.', '-' and '_', replaces every
// other character with '_' and truncates to 120 characters.
// An empty result becomes "file".
func SanitizeFilename(name string) string {
	var sb strings.Builder
	n := 0
	for _, r := range name {
		if n == maxFilenameLen {
			break
		}
		if isSafeFilenameRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
		n++
	}
	if sb.Len() == 0 {
		return fallbackFilename
	}
	return sb.String()
}

func isSafeFilenameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '_':
		return true
	}
	return false
}

// NewStorageKey builds images/<uuid>-<sanitized filename>
func NewStorageKey(filename string) string {
	return fmt.Sprintf("%s%s-%s", KeyPrefix, uuid.New().String(), SanitizeFilename(filename))
}
