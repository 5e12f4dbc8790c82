//go:build mobile

package utils

// IsMobile reports whether the app runs as an ebitenmobile binding.
func IsMobile() bool {
	return true
}
