package rules

// builtins returns a fresh table of the built-in predicates.
func builtins() map[string]Predicate {
	return map[string]Predicate{
		// presence
		"notNull":  NotNull,
		"isNull":   IsNull,
		"notEmpty": NotEmpty,
		"required": Required,

		// format
		"isEmail":        IsEmail,
		"isURL":          IsURL,
		"isUrl":          IsURL,
		"isIP":           IsIP,
		"isIPv4":         IsIPv4,
		"isIPv6":         IsIPv6,
		"isMAC":          IsMAC,
		"isAlpha":        IsAlpha,
		"isAlphanumeric": IsAlphanumeric,
		"isNumeric":      IsNumeric,
		"isDecimal":      IsDecimal,
		"isInt":          IsInt,
		"isFloat":        IsFloat,
		"isHexadecimal":  IsHexadecimal,
		"isHexColor":     IsHexColor,
		"isBase64":       IsBase64,
		"isJSON":         IsJSON,
		"isLowercase":    IsLowercase,
		"isUppercase":    IsUppercase,
		"isAscii":        IsASCII,
		"isCreditCard":   IsCreditCard,
		"isSlug":         IsSlug,
		"isPhone":        IsPhone,

		// identity
		"isUUID":   IsUUID,
		"isUUIDv3": IsUUIDv3,
		"isUUIDv4": IsUUIDv4,
		"isUUIDv5": IsUUIDv5,

		// length and content
		"len":          Len,
		"isLength":     Len,
		"isByteLength": IsByteLength,
		"minLen":       MinLen,
		"maxLen":       MaxLen,
		"contains":     Contains,
		"notContains":  NotContains,
		"equals":       Equals,
		"isIn":         IsIn,
		"notIn":        NotIn,

		// pattern
		"matches":    Matches,
		"notMatches": NotMatches,
		"is":         Matches,
		"not":        NotMatches,

		// numeric
		"min":           Min,
		"max":           Max,
		"isDivisibleBy": IsDivisibleBy,

		// dates
		"isDate":   IsDate,
		"isAfter":  IsAfter,
		"isBefore": IsBefore,
	}
}
