package readability

import (
	"math"
	"strings"

	"golang.org/x/net/html"
)

// ReaderableOptions tunes IsProbablyReaderable: a cheap classifier that
// estimates whether a document is worth running the full extraction on,
// without paying for a full grabArticle pass.
type ReaderableOptions struct {
	// MinContentLength is the minimum node text length considered.
	MinContentLength int

	// MinScore is the minimum cumulative score across all scored nodes
	// required to consider a document readerable.
	MinScore float64

	// VisibilityChecker overrides the visibility predicate applied to each
	// candidate node. Defaults to isNodeVisible.
	VisibilityChecker func(*html.Node) bool
}

// DefaultReaderableOptions returns the spec-mandated defaults: a 140
// character minimum content length and a minimum score of 20.
func DefaultReaderableOptions() ReaderableOptions {
	return ReaderableOptions{
		MinContentLength:  140,
		MinScore:          20,
		VisibilityChecker: isNodeVisible,
	}
}

// IsProbablyReaderable decides whether the document is probably readerable
// without parsing the whole thing into an Article. It collects every <p>,
// <pre> and <article> node plus each <div> that directly contains a <br>,
// scores each by sqrt(length-MinContentLength), and accepts the document as
// soon as the running total crosses MinScore.
func IsProbablyReaderable(doc *html.Node, opts ReaderableOptions) bool {
	if opts.MinContentLength < 0 {
		opts.MinContentLength = 140
	}

	if opts.MinScore <= 0 {
		opts.MinScore = 20
	}

	if opts.VisibilityChecker == nil {
		opts.VisibilityChecker = isNodeVisible
	}

	nodes := concatTagLists(doc, "p", "pre", "article")

	// Also count <div> nodes that are the direct parent of a <br>, a common
	// pattern for loosely-marked-up articles.
	brNodes := getElementsByTagName(doc, "br")
	seen := map[*html.Node]bool{}
	for _, br := range brNodes {
		parent := br.Parent
		if parent == nil || tagName(parent) != "div" || seen[parent] {
			continue
		}
		seen[parent] = true
		nodes = append(nodes, parent)
	}

	score := 0.0

	for _, node := range nodes {
		if !opts.VisibilityChecker(node) {
			continue
		}

		matchString := className(node) + "\x20" + id(node)
		if rxUnlikelyCandidates.MatchString(matchString) && !rxOkMaybeItsACandidate.MatchString(matchString) {
			continue
		}

		if tagName(node) == "div" && hasSingleDirectChildTag(node, "p") {
			continue
		}

		if hasAncestorTagName(node, "li") {
			continue
		}

		textContentLength := len(strings.TrimSpace(textContent(node)))
		if textContentLength < opts.MinContentLength {
			continue
		}

		score += math.Sqrt(float64(textContentLength - opts.MinContentLength))

		if score > opts.MinScore {
			return true
		}
	}

	return false
}

func concatTagLists(doc *html.Node, tags ...string) []*html.Node {
	var nodes []*html.Node
	for _, tag := range tags {
		nodes = append(nodes, getElementsByTagName(doc, tag)...)
	}
	return nodes
}

func hasSingleDirectChildTag(node *html.Node, tag string) bool {
	childs := children(node)
	return len(childs) == 1 && tagName(childs[0]) == tag
}

// hasAncestorTagName reports whether any ancestor of node has the given tag
// name; list-item paragraphs don't count toward the readerable score.
func hasAncestorTagName(node *html.Node, tag string) bool {
	for p := node.Parent; p != nil; p = p.Parent {
		if tagName(p) == tag {
			return true
		}
	}

	return false
}

// isNodeVisible is the default VisibilityChecker: same rule the full parser
// applies to nodes, minus the fallback-image class carve-out (which only
// matters once lazy-image normalization has already run).
func isNodeVisible(node *html.Node) bool {
	style := getAttribute(node, "style")
	isHiddenByStyle := rxDisplayNone.MatchString(style) || rxVisibilityHidden.MatchString(style)
	ariaHidden := getAttribute(node, "aria-hidden") == "true"

	return !isHiddenByStyle && !hasAttribute(node, "hidden") && !ariaHidden
}
