// Package internal holds the text and sequence helpers shared by the asm374
// packages.
//
// The text helpers are deliberately ASCII only: the assembly syntax has no
// use for Unicode folding or spacing rules.
package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// IsSpace is true for ASCII whitespace, including CR.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// Trim removes leading and trailing ASCII whitespace.
func Trim(s string) string {
	a, b := 0, len(s)
	for a < b && IsSpace(s[a]) {
		a++
	}
	for b > a && IsSpace(s[b-1]) {
		b--
	}
	return s[a:b]
}

// Cut slices s around the first byte that appears in seps.
func Cut(s string, seps string) (before, after string, found bool) {
	if n := strings.IndexAny(s, seps); n >= 0 {
		return s[:n], s[n+1:], true
	}
	return s, "", false
}

// lower maps an ASCII upper case letter to lower case.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for n := 0; n < len(a); n++ {
		if lower(a[n]) != lower(b[n]) {
			return false
		}
	}
	return true
}

// Digit returns the value of an alphanumeric digit, 0-9 then a-z (or A-Z) as 10-35.
func Digit(c byte) (value uint32, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'z':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return uint32(c-'A') + 10, true
	}
	return
}

// ParseHex32 parses exactly 8 hex digits, most significant nibble first.
func ParseHex32(s string) (value uint32, ok bool) {
	if len(s) != 8 {
		return
	}
	for n := 0; n < len(s); n++ {
		d, is_digit := Digit(s[n])
		if !is_digit || d >= 16 {
			return
		}
		value = value<<4 | d
	}
	return value, true
}

// FormatHex32 renders value as 8 upper case hex digits.
func FormatHex32(value uint32) string {
	return fmt.Sprintf("%08X", value)
}

// Binary renders the low width bits of value as binary digits, most significant first.
func Binary(value uint32, width uint) string {
	digits := strconv.FormatUint(uint64(value&(1<<width-1)), 2)
	if pad := int(width) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return digits
}
