package extract

import (
	"fmt"

	"golang.org/x/net/html"
)

// Traverse follows path from n, where each step selects the child at that
// position. Text and comment nodes count as children, so paths match the raw
// markup including whitespace between tags.
func Traverse(n *html.Node, path ...int) (*html.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil start node", ErrPathNotFound)
	}

	cur := n
	for step, index := range path {
		cur = nthChild(cur, index)
		if cur == nil {
			return nil, fmt.Errorf("%w: %v stops at step %d", ErrPathNotFound, path, step)
		}
	}
	return cur, nil
}

func nthChild(n *html.Node, index int) *html.Node {
	if index < 0 {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && index > 0; index-- {
		c = c.NextSibling
	}
	return c
}

// Attr returns the value of the named attribute of n.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
