package resolver

import "regexp"

// The mirror's markup is unversioned and shifts without notice. Every
// extraction below is an ordered list of independent patterns evaluated
// until one yields a result; earlier entries are more specific and win ties.
// Keep the lists separate — collapsing them into one pattern loses the
// per-step fallback.

// titlePatterns locate the post description inside named content containers,
// primary content block first, generic text blocks last.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']content["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)class\s*=\s*["']content["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']desc["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']description["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<p[^>]*class\s*=\s*["']desc["'][^>]*>(.*?)</p>`),
	regexp.MustCompile(`(?is)<span[^>]*class\s*=\s*["']desc["'][^>]*>(.*?)</span>`),
	regexp.MustCompile(`(?is)class\s*=\s*["']tik-left["'].*?<div[^>]*class\s*=\s*["']content["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']content["'][^>]*>(.*?)(?:</div>|$)`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']text["'][^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["']caption["'][^>]*>(.*?)</div>`),
}

// hashtagTextPatterns are the loose second pass: any element whose direct
// text contains a hashtag. Results shorter than 6 characters are rejected.
var hashtagTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<div[^>]*>([^<]*#[^<]*?)</div>`),
	regexp.MustCompile(`(?i)<p[^>]*>([^<]*#[^<]*?)</p>`),
	regexp.MustCompile(`(?i)<span[^>]*>([^<]*#[^<]*?)</span>`),
}

// creatorAnchoredPattern captures the handle inside the left-panel user
// block. Tried before the loose pattern to avoid picking up unrelated
// @mentions elsewhere in the page.
var (
	creatorAnchoredPattern = regexp.MustCompile(`(?is)class\s*=\s*["']tik-left["'].*?<div[^>]*class\s*=\s*["']user["'][^>]*>.*?<a[^>]*>@([^<]+)</a>`)
	creatorLoosePattern    = regexp.MustCompile(`@([a-zA-Z0-9_.]+)`)
)

// thumbnailPattern captures the first image inside the left panel.
var thumbnailPattern = regexp.MustCompile(`(?is)class\s*=\s*["']tik-left["'].*?<img[^>]*src="([^"]+)"`)

// sectionPatterns locate the download-actions container holding asset links.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)class\s*=\s*["']dl-action["'].*?</div>`),
	regexp.MustCompile(`(?is)class\s*=\s*["']download["'].*?</div>`),
	regexp.MustCompile(`(?is)class\s*=\s*["']download-box["'].*?</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class\s*=\s*["'][^"']*download[^"']*["'][^>]*>.*?</div>`),
}

// albumListPattern locates the ordered list of album images.
var albumListPattern = regexp.MustCompile(`(?is)<ul[^>]*class\s*=\s*["'][^"']*download-box[^"']*["'][^>]*>(.*?)</ul>`)

var (
	hrefPattern    = regexp.MustCompile(`href="([^"]+)"`)
	imgSrcPattern  = regexp.MustCompile(`<img[^>]*src="([^"]+)"`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// stripTags removes all HTML tags from s.
func stripTags(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}
