package utils

import "strings"

// NilIfBlank trims s and returns nil when nothing is left
func NilIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
