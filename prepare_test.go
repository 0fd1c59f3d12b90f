package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsNoscriptFallbackImage(t *testing.T) {
	body := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod ", 10)
	input := strings.NewReader(`<html><body><article><p>` + body + `</p>` +
		`<img class="lazy" src="placeholder.gif"><noscript><img src="real.jpg" alt="real"></noscript>` +
		`</article></body></html>`)

	article, err := New().Parse(input, "https://example.com/")
	require.NoError(t, err)

	assert.Contains(t, article.Content, "real.jpg")
	assert.NotContains(t, article.Content, "placeholder.gif")
}

func TestUnwrapNoscriptImagesReplacesPlaceholder(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<img class="lazy" src="placeholder.gif">
		<noscript><img src="real.jpg" alt="real"></noscript>
	</body></html>`)

	r := New()
	r.unwrapNoscriptImages(doc)

	imgs := getElementsByTagName(doc, "img")
	assert.Len(t, imgs, 1)
	assert.Equal(t, "real.jpg", getAttribute(imgs[0], "src"))
	assert.Empty(t, getElementsByTagName(doc, "noscript"))
}

func TestUnwrapNoscriptImagesKeepsNoscriptWhenNotSingleImage(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<noscript><p>JavaScript is required</p></noscript>
	</body></html>`)

	r := New()
	r.unwrapNoscriptImages(doc)

	assert.Len(t, getElementsByTagName(doc, "noscript"), 1)
}

func TestFixLazyImagesFallsBackToDataSrc(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<img data-src="https://example.com/real.jpg">
	</body></html>`)

	r := New()
	r.fixLazyImages(doc)

	img := getElementsByTagName(doc, "img")[0]
	assert.Equal(t, "https://example.com/real.jpg", getAttribute(img, "src"))
}

func TestFixLazyImagesReplacesTinyPlaceholder(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<img src="data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///ywAAAAAAQABAAACAUwAOw==" data-src="https://example.com/real.jpg">
	</body></html>`)

	r := New()
	r.fixLazyImages(doc)

	img := getElementsByTagName(doc, "img")[0]
	assert.Equal(t, "https://example.com/real.jpg", getAttribute(img, "src"))
}

func TestConvertPictureNodesMergesSrcset(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<picture>
			<source srcset="small.jpg 480w">
			<source srcset="large.jpg 1024w">
			<img src="fallback.jpg">
		</picture>
	</body></html>`)

	r := New()
	r.convertPictureNodes(doc)

	assert.Empty(t, getElementsByTagName(doc, "picture"))

	img := getElementsByTagName(doc, "img")[0]
	srcset := getAttribute(img, "srcset")
	assert.Contains(t, srcset, "small.jpg 480w")
	assert.Contains(t, srcset, "large.jpg 1024w")
	assert.Contains(t, srcset, "fallback.jpg")
}

func TestConvertPictureNodesStripsFigureClasses(t *testing.T) {
	doc := mustParseHTML(t, `<html><body>
		<figure class="wp-caption"><img class="foo" src="a.jpg"><figcaption class="bar">caption</figcaption></figure>
	</body></html>`)

	r := New()
	r.convertPictureNodes(doc)

	figure := getElementsByTagName(doc, "figure")[0]
	assert.Empty(t, getAttribute(figure, "class"))

	for _, child := range children(figure) {
		assert.Empty(t, getAttribute(child, "class"))
	}
}
