package models

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
)

// Shortcode returns the compact URL-safe form of a numeric Lemmy ID, as used
// in shortened entity links: the 4-byte little-endian encoding of id is
// base64url-encoded, then padding and trailing zero-byte 'A' characters are
// stripped. Shortcode(0) is the empty string. The uint32 parameter type is
// the range contract; there is no runtime range check.
func Shortcode(id uint32) string {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], id)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(buf[:]), "=A")
}

// IDFromShortcode reverses Shortcode: the code is right-padded with 'A' to
// six characters, '==' padding is restored and the result is base64url
// decoded as a little-endian uint32. Codes longer than six characters cannot
// come from a 32-bit ID and are rejected.
func IDFromShortcode(code string) (uint32, error) {
	if len(code) > 6 {
		return 0, fmt.Errorf("shortcode %q too long: at most 6 characters", code)
	}
	raw, err := base64.URLEncoding.DecodeString(code + strings.Repeat("A", 6-len(code)) + "==")
	if err != nil {
		return 0, fmt.Errorf("decode shortcode %q: %w", code, err)
	}
	return binary.LittleEndian.Uint32(raw), nil
}
