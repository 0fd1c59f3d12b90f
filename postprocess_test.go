package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAbsolutizesRelativeImageURL(t *testing.T) {
	input := strings.NewReader(`<html><body><article><p>` +
		strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 15) +
		`<img src="images/x.jpg"></p></article></body></html>`)

	article, err := New().Parse(input, "https://example.com/a/")
	require.NoError(t, err)
	assert.Contains(t, article.Content, "https://example.com/a/images/x.jpg")
}

func TestParseReplacesJavascriptLinkWithText(t *testing.T) {
	input := strings.NewReader(`<html><body><article><p>` +
		strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 15) +
		`<a href="javascript:void(0)">click</a></p></article></body></html>`)

	article, err := New().Parse(input, "https://example.com/a/")
	require.NoError(t, err)
	assert.NotContains(t, article.Content, "javascript:")
	assert.Contains(t, article.Content, "click")
}

func TestCleanClassesPreservesAllowListedTokens(t *testing.T) {
	doc := mustParseHTML(t, `<html><body><div class="page foo"><p class="bar">x</p></div></body></html>`)

	r := New()
	r.cleanClasses(documentElement(doc))

	div := getElementsByTagName(doc, "div")[0]
	assert.Equal(t, "page", getAttribute(div, "class"))

	p := getElementsByTagName(doc, "p")[0]
	assert.Empty(t, getAttribute(p, "class"))
}

func TestCleanClassesSkippedWhenKeepClassesSet(t *testing.T) {
	doc := mustParseHTML(t, `<html><body><div class="foo bar">x</div></body></html>`)

	r := NewWithOptions(Options{KeepClasses: true})
	r.cleanClasses(documentElement(doc))

	div := getElementsByTagName(doc, "div")[0]
	assert.Equal(t, "foo bar", getAttribute(div, "class"))
}

func TestSimplifyNestedDivsCollapsesWrapper(t *testing.T) {
	doc := mustParseHTML(t, `<html><body><div id="outer"><div id="inner" class="keep"><p>hi</p></div></div></body></html>`)
	body := getElementsByTagName(doc, "body")[0]

	r := New()
	r.simplifyNestedDivs(body)

	divs := getElementsByTagName(doc, "div")
	assert.Len(t, divs, 1)
	assert.Equal(t, "keep", getAttribute(divs[0], "class"))
	assert.Equal(t, "inner", id(divs[0]))
}
