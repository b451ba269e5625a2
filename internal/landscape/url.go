package landscape

import (
	"regexp"
	"strings"
)

// DefaultSiteBase is the public landscape site.
const DefaultSiteBase = "https://landscape.cncf.io"

// invalidSlugChars matches everything outside the landscape's slug alphabet.
var invalidSlugChars = regexp.MustCompile(`[^a-z0-9\- ]`)

// multipleHyphens collapses hyphen runs introduced by slugging.
var multipleHyphens = regexp.MustCompile(`-{2,}`)

// slugify converts a display name to the landscape site's item-key form.
func slugify(value string) string {
	s := strings.ToLower(value)
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidSlugChars.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.TrimRight(s, "-")
}

// SiteURL returns the landscape site deep link for the item.
func (i Item) SiteURL(base string) string {
	if base == "" {
		base = DefaultSiteBase
	}
	key := strings.Join([]string{
		slugify(i.Category),
		slugify(i.Subcategory),
		slugify(i.Name),
	}, "--")
	return base + "/?item=" + key
}

// IconURL returns the rendered PNG icon location for the item's logo.
// The logo pipeline publishes <name>.png for every <name>.svg, so the
// SVG extension is swapped rather than appended to.
func (i Item) IconURL(base string) string {
	if i.Logo == "" || base == "" {
		return ""
	}
	stem := strings.TrimSuffix(i.Logo, ".svg")
	return strings.TrimRight(base, "/") + "/" + stem + ".png"
}
