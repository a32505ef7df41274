package language

import (
	"golang.org/x/text/language"
)

// Default is the code used when neither detection nor the user's
// preference yields a supported language.
const Default = "en"

// Supported lists the assistant's languages in matcher priority order.
// English leads so unmatched tags resolve to it.
var Supported = []string{"en", "hi", "te", "ta", "kn", "ml"}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, 0, len(Supported))
	for _, code := range Supported {
		tags = append(tags, language.MustParse(code))
	}
	matcher = language.NewMatcher(tags)
}

// Normalize maps an arbitrary language code onto one of the supported six.
// Unknown, unparsable or empty codes resolve to English. Regional variants
// collapse to their base language (hi-IN -> hi).
func Normalize(code string) string {
	if code == "" {
		return Default
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// IsSupported reports whether code is exactly one of the six supported codes.
func IsSupported(code string) bool {
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}
