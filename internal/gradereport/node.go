package gradereport

import (
	"strings"

	"golang.org/x/net/html"
)

// findAll returns every element below n (excluding n) accepted by match,
// in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first element below n accepted by match, or nil.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// byTagAndClasses matches tag elements whose class attribute contains
// every class in classList.
func byTagAndClasses(tag, classList string) func(*html.Node) bool {
	want := strings.Fields(classList)
	return func(n *html.Node) bool {
		if n.Data != tag {
			return false
		}
		have := strings.Fields(attr(n, "class"))
		for _, w := range want {
			if !contains(have, w) {
				return false
			}
		}
		return true
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// textContent concatenates the text below n, skipping the subtrees in skip.
func textContent(n *html.Node, skip ...*html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for _, s := range skip {
			if p == s {
				return
			}
		}
		if p.Type == html.TextNode {
			b.WriteString(p.Data)
			return
		}
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// RowText returns the visible text of a row, one space between text nodes
// and runs of whitespace collapsed.
func RowText(row *html.Node) string {
	var words []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			words = append(words, strings.Fields(n.Data)...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(row)
	return strings.Join(words, " ")
}
