package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// previewHTML cleans an HTML fragment for terminal display: scripts,
// styles, and comments are dropped, only identifying attributes survive,
// and the output is truncated to maxLength characters.
func previewHTML(fragment string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultPreviewLength
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	length := 0
	truncated := previewNode(doc, &builder, &length, maxLength)

	out := strings.TrimSpace(builder.String())
	if truncated {
		out += "\n[preview truncated]"
	}
	return out, nil
}

func previewNode(n *html.Node, builder *strings.Builder, length *int, maxLength int) bool {
	if *length >= maxLength {
		return true
	}

	switch n.Type {
	case html.CommentNode:
		return false
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if droppedTag(tag) {
			return false
		}
		return previewElement(n, tag, builder, length, maxLength)
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return false
		}
		if *length+len(text) > maxLength {
			cut := maxLength - *length
			// back off to a rune boundary so the cut never splits a
			// multibyte character
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			builder.WriteString(text[:cut])
			*length = maxLength
			return true
		}
		builder.WriteString(text)
		*length += len(text)
		return false
	default:
		return previewChildren(n, builder, length, maxLength)
	}
}

func previewElement(n *html.Node, tag string, builder *strings.Builder, length *int, maxLength int) bool {
	builder.WriteString("<")
	builder.WriteString(tag)
	for _, attr := range n.Attr {
		if keptAttribute(attr.Key) {
			fmt.Fprintf(builder, " %s=%q", attr.Key, attr.Val)
		}
	}
	builder.WriteString(">")
	*length += len(tag) + 2

	truncated := previewChildren(n, builder, length, maxLength)

	if !voidTag(tag) {
		builder.WriteString("</")
		builder.WriteString(tag)
		builder.WriteString(">")
		*length += len(tag) + 3
	}
	return truncated
}

func previewChildren(n *html.Node, builder *strings.Builder, length *int, maxLength int) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if previewNode(c, builder, length, maxLength) {
			return true
		}
	}
	return false
}

func droppedTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "svg", "head":
		return true
	}
	return false
}

func keptAttribute(key string) bool {
	switch key {
	case "id", "class", "name", "type", "href", "src", "value", "placeholder", "role":
		return true
	}
	return strings.HasPrefix(key, "data-")
}

func voidTag(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}
