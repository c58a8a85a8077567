package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags end the current paragraph at their boundaries.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Flatten walks a chapter body and returns its paragraphs. Text runs are
// joined into the current paragraph; a whitespace-only text node or a block
// element boundary ends it. The result never holds empty paragraphs.
func Flatten(root *html.Node) []string {
	var paragraphs []string
	flatten(root, &paragraphs)

	if n := len(paragraphs); n > 0 && paragraphs[n-1] == "" {
		paragraphs = paragraphs[:n-1]
	}
	return paragraphs
}

func flatten(n *html.Node, paragraphs *[]string) {
	if n == nil {
		return
	}

	switch n.Type {
	case html.DocumentNode, html.ElementNode:
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			separate(paragraphs)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			flatten(c, paragraphs)
		}
		if block {
			separate(paragraphs)
		}

	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			separate(paragraphs)
			return
		}
		p := *paragraphs
		if len(p) == 0 {
			p = append(p, "")
		}
		p[len(p)-1] += n.Data
		*paragraphs = p
	}
}

func separate(paragraphs *[]string) {
	if p := *paragraphs; len(p) > 0 && p[len(p)-1] != "" {
		*paragraphs = append(p, "")
	}
}
