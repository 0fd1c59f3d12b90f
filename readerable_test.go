package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProbablyReaderableDefaultOptions(t *testing.T) {
	shortPara := strings.Repeat("hello there ", 12) // 144 chars
	doc := mustParseHTML(t, `<html><body><p>`+shortPara+`</p></body></html>`)

	assert.False(t, IsProbablyReaderable(doc, DefaultReaderableOptions()))
	assert.True(t, IsProbablyReaderable(doc, ReaderableOptions{MinContentLength: 0, MinScore: 4}))
}

func TestIsProbablyReaderableLongArticle(t *testing.T) {
	longPara := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 40)
	doc := mustParseHTML(t, `<html><body><article><p>`+longPara+`</p></article></body></html>`)

	assert.True(t, IsProbablyReaderable(doc, DefaultReaderableOptions()))
}

func TestIsProbablyReaderableSkipsUnlikelyCandidates(t *testing.T) {
	longPara := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 40)
	doc := mustParseHTML(t, `<html><body><div><p class="comment-footer">`+longPara+`</p></div></body></html>`)

	assert.False(t, IsProbablyReaderable(doc, DefaultReaderableOptions()))
}

func TestIsProbablyReaderableSkipsListItemParagraphs(t *testing.T) {
	longPara := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 40)
	doc := mustParseHTML(t, `<html><body><ul><li><p>`+longPara+`</p></li></ul></body></html>`)

	assert.False(t, IsProbablyReaderable(doc, DefaultReaderableOptions()))
}

func TestIsProbablyReaderableIgnoresLinkDensity(t *testing.T) {
	longPara := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 40)
	doc := mustParseHTML(t, `<html><body><article><p>`+longPara+`<a href="https://example.com/x">`+longPara+`</a></p></article></body></html>`)

	assert.True(t, IsProbablyReaderable(doc, DefaultReaderableOptions()))
}

func TestIsReadableDelegatesToReaderable(t *testing.T) {
	longPara := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 40)
	input := strings.NewReader(`<html><body><article><p>` + longPara + `</p></article></body></html>`)

	assert.True(t, New().IsReadable(input))
}
