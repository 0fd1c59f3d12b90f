package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleArticle(t *testing.T) {
	body := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod ", 10)
	input := strings.NewReader(`<html><head><title>Hi</title></head><body><article><h1>Hi</h1><p>` + body + `</p></article></body></html>`)

	article, err := New().Parse(input, "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "Hi", article.Title)
	assert.Contains(t, article.TextContent, "lorem ipsum")
	assert.Greater(t, article.Length, 400)
}

func TestParseExcludesSidebar(t *testing.T) {
	articleBody := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod ", 12)
	sidebarBody := strings.Repeat("buy now click here advertisement deal ", 12)
	input := strings.NewReader(`<html><body><main><article><p>` + articleBody +
		`</p></article><aside class="sidebar"><p>` + sidebarBody + `</p></aside></main></body></html>`)

	article, err := New().Parse(input, "https://example.com/")
	require.NoError(t, err)

	assert.Contains(t, article.TextContent, "lorem ipsum")
	assert.NotContains(t, article.TextContent, "advertisement")
}

func TestParseReturnsErrorWhenURLInvalid(t *testing.T) {
	input := strings.NewReader(`<html><body><p>hi</p></body></html>`)

	_, err := New().Parse(input, "://not a url")
	assert.Error(t, err)
}

func TestParseReturnsEmptyArticleWhenNoContentMeetsThreshold(t *testing.T) {
	input := strings.NewReader(`<html><body><p>short</p></body></html>`)

	article, err := New().Parse(input, "https://example.com/")
	require.NoError(t, err)
	assert.Empty(t, article.TextContent)
}

func TestMarkDataTablesDetectsSummaryAttribute(t *testing.T) {
	doc := mustParseHTML(t, `<html><body><table summary="a data table"><tr><td>1</td></tr></table></body></html>`)

	r := New()
	r.markDataTables(documentElement(doc))

	table := getElementsByTagName(doc, "table")[0]
	assert.True(t, r.isReadabilityDataTable(table))
}

func TestGetLinkDensityWeighsHashLinksLess(t *testing.T) {
	doc := mustParseHTML(t, `<html><body><p>hello <a href="#ref">world here</a></p></body></html>`)
	p := getElementsByTagName(doc, "p")[0]

	r := New()
	density := r.getLinkDensity(p)

	assert.Less(t, density, 0.5)
}
