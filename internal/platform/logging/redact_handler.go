package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// a log line. The logging middleware masks them in request dumps and masq masks
// any attribute that carries one of these names.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Value patterns masked wherever they appear, including inside error strings.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Segments of at least 10 characters keep version strings like 1.2.3 intact.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// Chat API keys, sometimes echoed back in an upstream 401 body.
	secretKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9\-_]{16,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveHeaders set (5 field names + 2 prefixes + 4 regexes).
const fixedRedactOptions = 11

// newRedactAttr builds the slog ReplaceAttr hook: masq masks by attribute name
// first, then by value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		// Registrant contact addresses.
		masq.WithFieldName("email"),

		// secret_key, api_key_v2, ...
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(secretKeyPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
