package rules

import (
	"strings"

	"github.com/google/uuid"
)

// IsUUID validates the canonical 36 character UUID form. An optional
// version argument (1 to 5, or "all") pins the UUID version.
func IsUUID(value any, args ...any) (bool, error) {
	version := 0
	if a, ok := optArg(args, 0); ok && !strings.EqualFold(String(a), "all") {
		v, _, err := intArg("isUUID", args, 0)
		if err != nil {
			return false, err
		}
		if v < 1 || v > 5 {
			return false, argError("isUUID", "unsupported UUID version %d", v)
		}
		version = v
	}

	s := String(value)
	// cheap shape check before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false, nil
	}
	if version == 0 {
		return true, nil
	}
	return int(id.Version()) == version && id.Variant() == uuid.RFC4122, nil
}

// IsUUIDv3 validates version 3 UUIDs.
func IsUUIDv3(value any, _ ...any) (bool, error) { return IsUUID(value, 3) }

// IsUUIDv4 validates version 4 UUIDs.
func IsUUIDv4(value any, _ ...any) (bool, error) { return IsUUID(value, 4) }

// IsUUIDv5 validates version 5 UUIDs.
func IsUUIDv5(value any, _ ...any) (bool, error) { return IsUUID(value, 5) }
