package cssbuilder

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/speedata/css/scanner"
	"github.com/stretchr/testify/require"
)

// Every built selector should be accepted by a real selector engine.
func TestBuiltSelectorsCompile(t *testing.T) {
	selectors := []string{
		Element("a").Attr(`href$=".png"`).PseudoClass("focus").String(),
		ID("main").Class("container").Class("editable").String(),
		Element("input").ID("search").Class("wide").Attr("type=text").PseudoClass("focus").String(),
		Combine(Element("ul"), ">", Element("li").PseudoClass("first-child")).String(),
		Combine(Combine(Element("table"), "~", Element("tr")), " ", Element("td")).String(),
	}
	for _, sel := range selectors {
		_, err := cascadia.Parse(sel)
		require.NoError(t, err, "selector %q should compile", sel)
	}
}

// The fragments must land as the token kinds a CSS tokenizer produces for a
// hand-written selector: an ident, a hash and delim-prefixed idents.
func TestBuiltSelectorTokens(t *testing.T) {
	sel := Element("div").ID("main").Class("container").PseudoClass("focus").String()
	s := scanner.New(sel)
	expect := []struct {
		typ any
		val string
	}{
		{scanner.Ident, "div"},
		{scanner.Hash, "main"},
		{scanner.Delim, "."},
		{scanner.Ident, "container"},
		{scanner.Delim, ":"},
		{scanner.Ident, "focus"},
	}
	for _, want := range expect {
		tok := s.Next()
		require.Equal(t, want.typ, tok.Type)
		require.Equal(t, want.val, tok.Value)
	}
	require.Equal(t, scanner.EOF, s.Next().Type)
}

func TestBuiltSelectorsFindNodes(t *testing.T) {
	const page = `<html><head></head><body>
	<div id="main" class="container draggable"><p class="note">one</p></div>
	<ul><li class="item">a</li><li class="item">b</li></ul>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	compound := Element("div").ID("main").Class("container")
	require.Equal(t, 1, doc.Find(compound.String()).Length())

	children := Combine(Element("ul"), ">", Element("li").Class("item"))
	require.Equal(t, 2, doc.Find(children.String()).Length())

	descendant := Combine(ID("main"), " ", Element("p").Class("note"))
	require.Equal(t, 1, doc.Find(descendant.String()).Length())
}
