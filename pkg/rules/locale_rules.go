package rules

import (
	"unicode"

	"golang.org/x/text/language"
)

type alphabet func(r rune) bool

func asciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func inScript(table *unicode.RangeTable) alphabet {
	return func(r rune) bool { return unicode.IsLetter(r) && unicode.Is(table, r) }
}

var (
	latinAlphabet    = inScript(unicode.Latin)
	cyrillicAlphabet = inScript(unicode.Cyrillic)

	// alphabets maps a base language to the letters it accepts.
	// English is restricted to ASCII.
	alphabets = map[string]alphabet{
		"en": asciiLetter,
		"cs": latinAlphabet, "da": latinAlphabet, "de": latinAlphabet,
		"es": latinAlphabet, "fi": latinAlphabet, "fr": latinAlphabet,
		"hr": latinAlphabet, "hu": latinAlphabet, "it": latinAlphabet,
		"nb": latinAlphabet, "nl": latinAlphabet, "pl": latinAlphabet,
		"pt": latinAlphabet, "ro": latinAlphabet, "sk": latinAlphabet,
		"sl": latinAlphabet, "sv": latinAlphabet, "tr": latinAlphabet,
		"be": cyrillicAlphabet, "bg": cyrillicAlphabet, "mk": cyrillicAlphabet,
		"ru": cyrillicAlphabet, "sr": cyrillicAlphabet, "uk": cyrillicAlphabet,
		"el": inScript(unicode.Greek),
		"ar": inScript(unicode.Arabic), "fa": inScript(unicode.Arabic),
		"he": inScript(unicode.Hebrew),
	}

	scripts = map[string]alphabet{
		"Latn": latinAlphabet,
		"Cyrl": cyrillicAlphabet,
	}
)

// alphabetFor resolves the optional locale argument, defaulting to English.
func alphabetFor(rule string, args []any) (alphabet, error) {
	a, ok := optArg(args, 0)
	if !ok {
		return asciiLetter, nil
	}

	tag, err := language.Parse(String(a))
	if err != nil {
		return nil, argError(rule, "invalid locale %q", String(a))
	}
	if script, conf := tag.Script(); conf == language.Exact {
		if fn, ok := scripts[script.String()]; ok {
			return fn, nil
		}
	}

	base, _ := tag.Base()
	fn, ok := alphabets[base.String()]
	if !ok {
		return nil, argError(rule, "unsupported locale %q", String(a))
	}
	return fn, nil
}

// IsAlpha passes for non-empty values made of letters only. The optional
// argument is a BCP 47 locale ("de-DE", "ru") selecting the alphabet.
func IsAlpha(value any, args ...any) (bool, error) {
	letter, err := alphabetFor("isAlpha", args)
	if err != nil {
		return false, err
	}
	return allRunes(String(value), letter), nil
}

// IsAlphanumeric is IsAlpha that also accepts ASCII digits.
func IsAlphanumeric(value any, args ...any) (bool, error) {
	letter, err := alphabetFor("isAlphanumeric", args)
	if err != nil {
		return false, err
	}
	return allRunes(String(value), func(r rune) bool {
		return (r >= '0' && r <= '9') || letter(r)
	}), nil
}

func allRunes(s string, fn alphabet) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}
