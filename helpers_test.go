package readability

import (
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		t.Fatalf("failed to parse URL %q: %s", raw, err)
	}

	return u
}

func mustParseHTML(t *testing.T, input string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse HTML: %s", err)
	}

	return doc
}
