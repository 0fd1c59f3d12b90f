package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetArticleMetadataPrefersOpenGraphTitle(t *testing.T) {
	input := strings.NewReader(`<html><head>
		<title>Foo | Bar</title>
		<meta property="og:title" content="Real"/>
	</head><body><p>` + strings.Repeat("lorem ipsum dolor sit amet ", 30) + `</p></body></html>`)

	article, err := New().Parse(input, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "Real", article.Title)
}

func TestGetArticleMetadataJSONLDWinsOverMetaTags(t *testing.T) {
	input := strings.NewReader(`<html><head>
		<title>Site Title</title>
		<meta property="og:title" content="Meta Title"/>
		<meta property="og:description" content="Meta excerpt"/>
		<script type="application/ld+json">
		{"@context":"https://schema.org","@type":"NewsArticle","headline":"JSONLD Title","author":{"name":"Jane Doe"},"description":"JSONLD excerpt","datePublished":"2024-01-02","publisher":{"name":"Example Times"}}
		</script>
	</head><body><p>` + strings.Repeat("lorem ipsum dolor sit amet ", 30) + `</p></body></html>`)

	article, err := New().Parse(input, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "JSONLD Title", article.Title)
	assert.Equal(t, "Jane Doe", article.Byline)
	assert.Equal(t, "JSONLD excerpt", article.Excerpt)
	assert.Equal(t, "Example Times", article.SiteName)
	assert.Equal(t, "2024-01-02", article.PublishedTime)
}

func TestGetArticleMetadataJSONLDDisabled(t *testing.T) {
	input := strings.NewReader(`<html><head>
		<meta property="og:title" content="Meta Title"/>
		<script type="application/ld+json">
		{"@context":"https://schema.org","@type":"Article","headline":"JSONLD Title"}
		</script>
	</head><body><p>` + strings.Repeat("lorem ipsum dolor sit amet ", 30) + `</p></body></html>`)

	parser := NewWithOptions(Options{DisableJSONLD: true})
	article, err := parser.Parse(input, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "Meta Title", article.Title)
}

func TestGetArticleMetadataJSONLDArrayAndGraph(t *testing.T) {
	input := strings.NewReader(`<html><head>
		<script type="application/ld+json">
		{"@context":"https://schema.org","@graph":[{"@type":"WebPage"},{"@type":"BlogPosting","name":"Graph Title","author":[{"name":"A"},{"name":"B"}]}]}
		</script>
	</head><body><p>` + strings.Repeat("lorem ipsum dolor sit amet ", 30) + `</p></body></html>`)

	article, err := New().Parse(input, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "Graph Title", article.Title)
	assert.Equal(t, "A, B", article.Byline)
}

func TestGetArticleFaviconPrefersLargestPNG(t *testing.T) {
	r := New()
	r.documentURI = mustParseURL(t, "https://example.com/")
	r.doc = mustParseHTML(t, `<html><head>
		<link rel="icon" type="image/png" sizes="16x16" href="/small.png">
		<link rel="icon" type="image/png" sizes="32x32" href="/big.png">
	</head><body></body></html>`)

	assert.Equal(t, "https://example.com/big.png", r.getArticleFavicon())
}

func TestGetArticleMetadataBareTitleMetaWinsOverTitleTag(t *testing.T) {
	input := strings.NewReader(`<html><head>
		<title>Site Title</title>
		<meta name="title" content="Bare Meta Title"/>
	</head><body><p>` + strings.Repeat("lorem ipsum dolor sit amet ", 30) + `</p></body></html>`)

	article, err := New().Parse(input, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "Bare Meta Title", article.Title)
}

func TestGetArticleTitleStripsSiteSuffix(t *testing.T) {
	r := New()
	r.doc = mustParseHTML(t, `<html><head><title>How To Write A Good Article | My Great Site</title></head><body></body></html>`)

	assert.Equal(t, "How To Write A Good Article", r.getArticleTitle())
}
