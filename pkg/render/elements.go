package render

// isInlineElement reports whether tag is phrasing content that pretty
// printing keeps on the same line as its children.
func isInlineElement(tag string) bool {
	switch tag {
	case "a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
		"em", "i", "kbd", "label", "mark", "q", "s", "samp", "small", "span",
		"strong", "sub", "sup", "time", "u", "var":
		return true
	}
	return false
}
