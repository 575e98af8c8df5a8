package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// emailPolicy keeps what the editor and the layout renderer produce
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3",
			"strong", "b", "em", "i", "u", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all markup and returns escaped text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps the formatting allowed in email bodies (paragraphs,
// headings, strong/em/u, lists, links, code) and strips everything else,
// including scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// blockBreaks turns block boundaries into line breaks before stripping.
var blockBreaks = strings.NewReplacer(
	"</p>", "</p>\n\n",
	"</h1>", "</h1>\n\n",
	"</h2>", "</h2>\n\n",
	"</h3>", "</h3>\n\n",
	"</li>", "</li>\n",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"<hr>", "\n---\n",
)

// PlainText converts email HTML into readable plain text: block elements
// end lines, entities are decoded, and runs of blank lines collapse to one.
func PlainText(s string) string {
	text := html.UnescapeString(StripHTML(blockBreaks.Replace(s)))

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
