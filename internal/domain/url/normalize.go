// Package url provides identifier and URL helpers for favicon lookups.
package url

import (
	"net/url"
	"strings"
)

// IconExtension is appended to every cache key.
const IconExtension = ".ico"

// unsafeReplacer maps filesystem-unsafe characters to underscores.
// Distinct identifiers that differ only in these characters share a key.
var unsafeReplacer = strings.NewReplacer(
	":", "_",
	"/", "_",
	"\\", "_",
	"?", "_",
	"*", "_",
	"|", "_",
	"<", "_",
	">", "_",
)

// SanitizeDomainForFilename converts a website identifier into a cache key.
// Replaces unsafe filesystem characters with underscores and appends .ico.
func SanitizeDomainForFilename(domain string) string {
	return unsafeReplacer.Replace(domain) + IconExtension
}

// LooksLikeURL reports whether input carries an explicit http(s) scheme.
func LooksLikeURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// Identifier turns CLI or UI input into a website identifier.
// URLs are reduced to their domain, anything else is returned trimmed.
func Identifier(input string) string {
	input = strings.TrimSpace(input)
	if LooksLikeURL(input) {
		return ExtractDomain(input)
	}
	return input
}
