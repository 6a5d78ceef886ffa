package resolver

import "regexp"

// Host set of the supported platform: apex domain plus the short-link and
// mobile subdomains. Scheme and "www." are optional; a path must follow.
var (
	linkPattern = regexp.MustCompile(`(?i)(https?://)?(www\.)?(tiktok\.com|vt\.tiktok\.com|m\.tiktok\.com|vm\.tiktok\.com)/[^\s]+`)
	hostPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(tiktok\.com|vt\.tiktok\.com|m\.tiktok\.com|vm\.tiktok\.com)/`)
)

// ExtractLink returns the first supported platform URL embedded in text.
// The match ends at the first whitespace. It does not check reachability.
func ExtractLink(text string) (string, bool) {
	match := linkPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// ValidURL reports whether url starts with a supported platform host.
func ValidURL(url string) bool {
	return hostPattern.MatchString(url)
}
