package generation

import "strings"

// NormalizeHashtags trims each tag, strips leading '#' characters and drops
// tags that end up empty.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// ShareText formats post content the way it is copied to the clipboard:
// the main text, a blank line, then space-separated #tags.
func ShareText(content PostContent) string {
	tags := make([]string, 0, len(content.Hashtags))
	for _, tag := range content.Hashtags {
		tags = append(tags, "#"+tag)
	}
	if len(tags) == 0 {
		return content.MainText
	}
	return content.MainText + "\n\n" + strings.Join(tags, " ")
}
