// Package htmlutil extracts visible text from HTML documents.
package htmlutil

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/happyhackingspace/bow/internal/textutil"
)

// invisible holds elements whose content never renders as text.
var invisible = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Head:     true,
}

// LoadHTML parses HTML bytes into a goquery Document.
func LoadHTML(r io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(r)
}

// LoadHTMLString parses HTML string into a goquery Document.
func LoadHTMLString(htmlStr string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
}

// ExtractText returns the visible text of an HTML document with whitespace collapsed.
func ExtractText(r io.Reader) (string, error) {
	doc, err := LoadHTML(r)
	if err != nil {
		return "", err
	}
	return SelectionText(doc.Selection), nil
}

// ExtractTextString is ExtractText for an in-memory document.
func ExtractTextString(htmlStr string) (string, error) {
	return ExtractText(strings.NewReader(htmlStr))
}

// SelectionText returns the visible text under s. Text of adjacent elements
// is separated by a space, so "<p>a</p><p>b</p>" yields "a b".
func SelectionText(s *goquery.Selection) string {
	var parts []string
	for _, n := range s.Nodes {
		collectText(n, &parts)
	}
	text := textutil.NormalizeWhitespaces(strings.Join(parts, " "))
	return strings.TrimSpace(text)
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	case html.ElementNode:
		if invisible[n.DataAtom] {
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
