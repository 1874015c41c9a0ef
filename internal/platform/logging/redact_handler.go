package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. The HTTP logging
// middleware redacts the same set at the call site.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// authTokenPattern matches a PlatformIO account token passed through the
// environment, as it shows up in echoed command lines and tool output.
var authTokenPattern = regexp.MustCompile(`PLATFORMIO_AUTH_TOKEN=\S+`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("auth_token"),
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(authTokenPattern),
		masq.WithRegex(jwtPattern),
	)

	return masq.New(opts...)
}

// shortenHome rewrites string values under home to start with "~", so that
// project paths in logs do not carry the account name.
func shortenHome(home string) func([]string, slog.Attr) slog.Attr {
	home = strings.TrimRight(home, `/\`)
	return func(_ []string, a slog.Attr) slog.Attr {
		if home == "" || a.Value.Kind() != slog.KindString {
			return a
		}
		s := a.Value.String()
		if s == home || strings.HasPrefix(s, home+"/") || strings.HasPrefix(s, home+`\`) {
			a.Value = slog.StringValue("~" + s[len(home):])
		}
		return a
	}
}

// chainReplace applies fns in order, stopping once an attribute is dropped.
func chainReplace(fns ...func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		for _, fn := range fns {
			a = fn(groups, a)
			if a.Equal(slog.Attr{}) {
				return a
			}
		}
		return a
	}
}
