package rules

import (
	"encoding/base64"
	"encoding/json"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	numericRegex      = regexp.MustCompile(`^[-+]?[0-9]+$`)
	decimalRegex      = regexp.MustCompile(`^[-+]?(?:[0-9]+|\.[0-9]+|[0-9]+\.[0-9]+)$`)
	intRegex          = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	floatRegex        = regexp.MustCompile(`^(?:[-+]?[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
	atomLocalRegex    = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~.\\-\\x{80}-\\x{10FFFF}]+$")
	quotedLocalRegex  = regexp.MustCompile(`^"(?:[^"\\\x00-\x08\x0a-\x1f\x7f]|\\[\x20-\x7e])+"$`)
	hexadecimalRegex  = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	hexColorRegex     = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	base64Regex       = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hostnameLabel     = regexp.MustCompile(`^[\p{L}\p{N}](?:[\p{L}\p{N}-]*[\p{L}\p{N}])?$`)
	tldRegex          = regexp.MustCompile(`^(?:\p{L}{2,}|xn--[a-z0-9-]+)$`)
	allowedURLSchemes = []string{"http", "https", "ftp"}
)

const (
	maxURLLength        = 2083
	maxEmailLocalLength = 64
)

// IsEmail validates an address in the common web form local@domain.tld.
// The local part is either a dot-atom, where runs of dots are tolerated the
// way mail providers do, or a quoted string.
func IsEmail(value any, _ ...any) (bool, error) {
	s := String(value)
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false, nil
	}

	local, domain := s[:at], s[at+1:]
	if len(local) > maxEmailLocalLength {
		return false, nil
	}
	if !atomLocalRegex.MatchString(local) && !quotedLocalRegex.MatchString(local) {
		return false, nil
	}
	return validHostname(domain), nil
}

// IsURL validates http, https and ftp URLs. A missing scheme is accepted,
// so "example.com/path" is a valid URL.
func IsURL(value any, _ ...any) (bool, error) {
	s := String(value)
	if s == "" || len(s) > maxURLLength || strings.ContainsFunc(s, unicode.IsSpace) {
		return false, nil
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "mailto:") {
		return false, nil
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" || u.Opaque != "" {
		return false, nil
	}
	if !containsFold(allowedURLSchemes, u.Scheme) {
		return false, nil
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 || n > 65535 {
			return false, nil
		}
	}

	host := u.Hostname()
	if host == "localhost" {
		return true, nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return true, nil
	}
	if looksLikeIPv4(host) {
		return false, nil
	}
	return validHostname(host), nil
}

// IsIP validates an IP address. An optional version argument (4 or 6)
// restricts the family.
func IsIP(value any, args ...any) (bool, error) {
	version, ok, err := intArg("isIP", args, 0)
	if err != nil {
		return false, err
	}

	s := String(value)
	switch {
	case !ok:
		return net.ParseIP(s) != nil, nil
	case version == 4:
		return isIPv4(s), nil
	case version == 6:
		return isIPv6(s), nil
	}
	return false, argError("isIP", "unsupported IP version %d", version)
}

// IsIPv4 validates dotted-quad IPv4 addresses.
func IsIPv4(value any, _ ...any) (bool, error) {
	return isIPv4(String(value)), nil
}

// IsIPv6 validates IPv6 addresses, including IPv4-mapped forms.
func IsIPv6(value any, _ ...any) (bool, error) {
	return isIPv6(String(value)), nil
}

// IsMAC validates hardware addresses such as AA:BB:CC:DD:EE:FF.
func IsMAC(value any, _ ...any) (bool, error) {
	s := String(value)
	if strings.TrimSpace(s) == "" {
		return false, nil
	}
	_, err := net.ParseMAC(s)
	return err == nil, nil
}

// IsNumeric validates optionally signed digit strings such as "-00123".
func IsNumeric(value any, _ ...any) (bool, error) {
	return numericRegex.MatchString(String(value)), nil
}

// IsDecimal validates decimal numbers such as "-1.5", ".1" or "00123".
func IsDecimal(value any, _ ...any) (bool, error) {
	return decimalRegex.MatchString(String(value)), nil
}

// IsInt validates integers without leading zeros.
func IsInt(value any, _ ...any) (bool, error) {
	return intRegex.MatchString(String(value)), nil
}

// IsFloat validates floating point literals, exponent notation included.
// A sign must be followed by a digit, so "-.5" is rejected while ".5" is not.
func IsFloat(value any, _ ...any) (bool, error) {
	return floatRegex.MatchString(String(value)), nil
}

// IsHexadecimal validates non-empty hexadecimal strings.
func IsHexadecimal(value any, _ ...any) (bool, error) {
	return hexadecimalRegex.MatchString(String(value)), nil
}

// IsHexColor validates #RGB and #RRGGBB colours, hash optional.
func IsHexColor(value any, _ ...any) (bool, error) {
	return hexColorRegex.MatchString(String(value)), nil
}

// IsBase64 validates padded standard base64.
func IsBase64(value any, _ ...any) (bool, error) {
	s := String(value)
	if strings.TrimSpace(s) == "" || len(s)%4 != 0 || !base64Regex.MatchString(s) {
		return false, nil
	}
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil, nil
}

// IsJSON validates JSON objects and arrays.
func IsJSON(value any, _ ...any) (bool, error) {
	s := strings.TrimSpace(String(value))
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return false, nil
	}
	return json.Valid([]byte(s)), nil
}

// IsLowercase passes when the value has no uppercase letters.
func IsLowercase(value any, _ ...any) (bool, error) {
	s := String(value)
	return s == strings.ToLower(s), nil
}

// IsUppercase passes when the value has no lowercase letters.
func IsUppercase(value any, _ ...any) (bool, error) {
	s := String(value)
	return s == strings.ToUpper(s), nil
}

// IsASCII passes when every byte is 7-bit ASCII.
func IsASCII(value any, _ ...any) (bool, error) {
	s := String(value)
	for i := range len(s) {
		if s[i] > unicode.MaxASCII {
			return false, nil
		}
	}
	return true, nil
}

// IsCreditCard validates card numbers with the Luhn checksum.
// Spaces and dashes are ignored.
func IsCreditCard(value any, _ ...any) (bool, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(String(value))
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false, nil
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false, nil
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0, nil
}

// IsSlug validates lowercase, dash separated URL slugs.
func IsSlug(value any, _ ...any) (bool, error) {
	return slugRegex.MatchString(String(value)), nil
}

// IsPhone validates E.164 phone numbers. Spaces and dashes are ignored.
func IsPhone(value any, _ ...any) (bool, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(String(value))
	if len(cleaned) < 7 {
		return false, nil
	}
	return phoneRegex.MatchString(cleaned), nil
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

func looksLikeIPv4(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}

// validHostname requires at least two labels and an alphabetic or
// punycode top-level domain.
func validHostname(host string) bool {
	if host == "" || strings.HasSuffix(host, ".") || len(host) > 253 {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 || !hostnameLabel.MatchString(label) {
			return false
		}
		if strings.Contains(label, "---") || label == "xn--" {
			return false
		}
	}
	return tldRegex.MatchString(strings.ToLower(labels[len(labels)-1]))
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
