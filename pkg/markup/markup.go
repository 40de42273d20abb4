// Package markup normalizes the irregular strings the dictionary API
// embeds in its JSON: values that are nominally text but may contain
// arbitrary HTML fragments (spans for acronyms, grammar hints, IPA).
package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// UnrecognizedFragmentError reports a fragment kind the normalizer has
// no rule for. It fails the lookup it belongs to; it is never skipped.
type UnrecognizedFragmentError struct {
	Fragment string
	NodeType string
}

func (e *UnrecognizedFragmentError) Error() string {
	return fmt.Sprintf("unrecognized %s fragment in %q", e.NodeType, e.Fragment)
}

// AnnotatedText flattens a possibly-markup-bearing string into display
// text. Top-level text runs are copied verbatim; element nodes become
// their flattened text content wrapped as (*text*), so annotations end
// up italicized in parentheses. Fragment order is preserved. Any other
// node kind (comments, doctypes) is an error.
func AnnotatedText(s string) (string, error) {
	nodes, err := fragments(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			b.WriteString("(*")
			b.WriteString(textContent(n))
			b.WriteString("*)")
		default:
			return "", &UnrecognizedFragmentError{Fragment: s, NodeType: nodeTypeName(n.Type)}
		}
	}
	return b.String(), nil
}

// Metadata extracts the grammar annotations from a full headword
// string. The first fragment is the headword itself and is dropped;
// every following element maps its class attribute to its flattened
// text content. When a class repeats, the first occurrence wins.
// Class-less elements and stray text runs between elements carry no
// metadata and are ignored.
func Metadata(s string) (map[string]string, error) {
	nodes, err := fragments(s)
	if err != nil {
		return nil, err
	}

	meta := make(map[string]string)
	if len(nodes) < 2 {
		return meta, nil
	}

	for _, n := range nodes[1:] {
		if n.Type != html.ElementNode {
			continue
		}
		class, ok := attr(n, "class")
		if !ok {
			continue
		}
		if _, seen := meta[class]; seen {
			continue
		}
		meta[class] = textContent(n)
	}
	return meta, nil
}

// StripTags flattens a fragment to bare text, with no annotation
// wrapping at all. Used where only the words matter.
func StripTags(s string) (string, error) {
	nodes, err := fragments(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(textContent(n))
	}
	return b.String(), nil
}

// fragments tokenizes s the way a browser would inside <body>,
// returning the top-level nodes in document order. Text runs between
// elements come back as their own nodes.
func fragments(s string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize fragment %q: %w", s, err)
	}
	return nodes, nil
}

// textContent flattens a node the way DOM text_content does: all
// descendant text, markup removed.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	return goquery.NewDocumentFromNode(n).Text()
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func nodeTypeName(t html.NodeType) string {
	switch t {
	case html.TextNode:
		return "text"
	case html.ElementNode:
		return "element"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	case html.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
