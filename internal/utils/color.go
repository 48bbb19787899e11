package utils

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ARGBToHex converts the signed 32-bit ARGB integer encoding used for
// shelf colors to "#AARRGGBB".
// Example: -15654349 -> "#FF112233"
func ARGBToHex(color int32) string {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(color))
	return fmt.Sprintf("#%02X%02X%02X%02X", bytes[0], bytes[1], bytes[2], bytes[3])
}

// HexToARGB parses "#AARRGGBB" (or "#RRGGBB", alpha implied FF) into the
// signed 32-bit ARGB integer encoding. The leading "#" is optional.
func HexToARGB(hex string) (int32, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want AARRGGBB or RRGGBB", hex)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return int32(uint32(value)), nil
}
