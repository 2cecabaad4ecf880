// Package textutil converts tab titles for terminal display: inline markup to
// plain text, and unicode-aware truncation.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// blockTags break a title onto a new word boundary when rendered inline.
var blockTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true,
}

// PlainText strips inline markup from a title and decodes entities.
// Whitespace runs collapse to a single space.
func PlainText(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return collapseSpace(markup)
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or an unparseable tail: keep what we have.
			return collapseSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates s to fit within maxWidth visual columns, appending an
// ellipsis when it cuts.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}
