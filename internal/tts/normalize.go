package tts

import (
	"regexp"
	"strings"
)

// Normalize rewrites raw text into a speech-friendly form: URLs become their
// domain spoken with "dot", file paths collapse to their tail, long hex runs
// become a short "hash" prefix, and deeply dotted identifiers keep only
// their last segment. Idempotent for already-simplified input and never
// fails; malformed input degrades to partial simplification.
func Normalize(raw string) string {
	text := urlPattern.ReplaceAllStringFunc(raw, spokenDomain)
	text = absPathPattern.ReplaceAllStringFunc(text, pathTail)
	text = relPathPattern.ReplaceAllStringFunc(text, pathTail)
	text = hexPattern.ReplaceAllStringFunc(text, hashPrefix)
	text = dottedPattern.ReplaceAllStringFunc(text, lastSegment)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var (
	urlPattern = regexp.MustCompile(`https?://[^\s]+`)

	// Absolute paths collapse to the filename; relative paths with three or
	// more segments keep parent/filename so short references like
	// "pkg/runner.go" pass through untouched.
	absPathPattern = regexp.MustCompile(`/(?:[\w.@+-]+/)+[\w.@+-]+`)
	relPathPattern = regexp.MustCompile(`\b[\w.@+-]+(?:/[\w.@+-]+){2,}`)

	hexPattern = regexp.MustCompile(`\b[0-9a-fA-F]{8,}\b`)

	// Identifiers with four or more dotted segments, first segment starting
	// with a letter so versions and IP addresses are left alone.
	dottedPattern = regexp.MustCompile(`\b[A-Za-z][\w-]*(?:\.[\w-]+){3,}\b`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// knownSuffixes are file extensions and TLDs that mark a dotted run as a
// filename or hostname rather than a collapsible identifier.
var knownSuffixes = map[string]struct{}{
	"go": {}, "py": {}, "js": {}, "ts": {}, "tsx": {}, "jsx": {},
	"json": {}, "jsonl": {}, "yaml": {}, "yml": {}, "toml": {},
	"md": {}, "txt": {}, "html": {}, "css": {}, "sh": {}, "rs": {},
	"com": {}, "org": {}, "net": {}, "io": {}, "dev": {}, "ai": {},
}

func spokenDomain(url string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	host := rest
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == "" {
		return url
	}
	return strings.ReplaceAll(host, ".", " dot ")
}

func pathTail(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(segments) == 0:
		return path
	case strings.HasPrefix(path, "/") || len(segments) < 2:
		return segments[len(segments)-1]
	default:
		return strings.Join(segments[len(segments)-2:], "/")
	}
}

func hashPrefix(run string) string {
	var hasDigit, hasLetter bool
	for _, c := range run {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasLetter = true
		}
	}
	if !hasDigit || !hasLetter {
		return run
	}
	return "hash " + run[:6]
}

func lastSegment(identifier string) string {
	segments := strings.Split(identifier, ".")
	if _, known := knownSuffixes[strings.ToLower(segments[len(segments)-1])]; known {
		return identifier
	}
	return segments[len(segments)-1]
}
