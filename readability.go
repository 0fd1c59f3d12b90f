// Package readability extracts the primary readable article from an
// arbitrary HTML document: the textual "body" a human reader cares about,
// discarding navigation, sidebars, advertising, comments, footers and other
// chrome. It is the scoring/grab core of a reader-mode implementation.
package readability

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// All of the regular expressions in use within readability.
// Defined up here so we don't instantiate them repeatedly in loops.
var (
	rxUnlikelyCandidates   = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	rxOkMaybeItsACandidate = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)
	rxPositive             = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	rxNegative             = regexp.MustCompile(`(?i)-ad-|hidden|^hid$|hid$|hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|widget`)
	rxByline               = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)
	rxNormalize            = regexp.MustCompile(`(?i)\s{2,}`)
	rxVideos               = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)
	rxWhitespace           = regexp.MustCompile(`(?i)^\s*$`)
	rxHasContent           = regexp.MustCompile(`(?i)\S$`)
	rxDisplayNone          = regexp.MustCompile(`(?i)display\s*:\s*none`)
	rxVisibilityHidden     = regexp.MustCompile(`(?i)visibility\s*:\s*hidden`)
	rxSentencePeriod       = regexp.MustCompile(`(?i)\.( |$)`)
	rxShare                = regexp.MustCompile(`(?i)share`)
)

// divToPElems is a list of HTML tag names representing content dividers.
var divToPElems = []string{
	"a", "blockquote", "div", "dl", "img",
	"ol", "p", "pre", "select", "table", "ul",
}

// alterToDivExceptions is a list of HTML tags that we want to convert into
// regular DIV elements to prevent unwanted removal when the parser is cleaning
// out unnecessary Nodes.
var alterToDivExceptions = []string{
	"article",
	"div",
	"p",
	"section",
}

// presentationalAttributes is a list of HTML attributes used to style Nodes.
var presentationalAttributes = []string{
	"align",
	"background",
	"bgcolor",
	"border",
	"cellpadding",
	"cellspacing",
	"frame",
	"hspace",
	"rules",
	"style",
	"valign",
	"vspace",
}

// deprecatedSizeAttributeElems is a list of HTML tags that allow programmers
// to set Width and Height attributes to define their own size but that have
// already been deprecated in recent HTML specifications.
var deprecatedSizeAttributeElems = []string{
	"table",
	"th",
	"td",
	"hr",
	"pre",
}

// unlikelyRoles are ARIA roles removed alongside class/id matches of
// rxUnlikelyCandidates.
var unlikelyRoles = []string{
	"menu", "menubar", "complementary", "navigation", "alert", "alertdialog", "dialog",
}

// The commented out elements qualify as phrasing content but tend to be
// removed by readability when put into paragraphs, so we ignore them here.
var phrasingElems = []string{
	// "canvas", "iframe", "svg", "video",
	"abbr", "audio", "b", "bdo", "br", "button", "cite", "code", "data",
	"datalist", "dfn", "em", "embed", "i", "img", "input", "kbd", "label",
	"mark", "math", "meter", "noscript", "object", "output", "progress", "q",
	"ruby", "samp", "script", "select", "small", "span", "strong", "sub",
	"sup", "textarea", "time", "var", "wbr",
}

// flags track which heuristic passes are still enabled for the current
// grabArticle attempt; they get progressively relaxed by the retry loop.
type flags struct {
	stripUnlikelys     bool
	useWeightClasses   bool
	cleanConditionally bool
}

// parseAttempt is container for the result of previous parse attempts.
type parseAttempt struct {
	articleContent *html.Node
	textLength     int
}

// Options controls the extraction process. Every field has a documented
// default in NewOptions.
type Options struct {
	// Debug enables verbose diagnostic logging via log/slog.
	Debug bool

	// MaxElemsToParse is the optional maximum number of HTML nodes to parse
	// from the document. If the number of elements in the document is higher
	// than this number, the operation immediately errors. Zero disables the
	// check.
	MaxElemsToParse int

	// NTopCandidates is the number of top candidates to consider when the
	// parser is analysing how tight the competition is among candidates.
	NTopCandidates int

	// CharThreshold is the minimum number of chars an attempt must have in
	// order to return a result.
	CharThreshold int

	// ClassesToPreserve are the class tokens kept when scrubbing class
	// attributes, unless KeepClasses is set.
	ClassesToPreserve []string

	// KeepClasses, if true, skips class scrubbing entirely.
	KeepClasses bool

	// DisableJSONLD skips the JSON-LD metadata pass.
	DisableJSONLD bool

	// AllowedVideoRegex overrides the regex tested against embed/object/
	// iframe src attributes to decide whether to keep them. Defaults to
	// rxVideos (YouTube, Vimeo, Dailymotion, Twitch, Wikimedia archives).
	AllowedVideoRegex *regexp.Regexp

	// LinkDensityModifier is an additive bias applied to the link-density
	// thresholds used by cleanConditionally.
	LinkDensityModifier float64

	// TagsToScore is element tags to score by default.
	TagsToScore []string
}

// NewOptions returns the default option set used by New.
func NewOptions() Options {
	return Options{
		NTopCandidates:    5,
		CharThreshold:     500,
		ClassesToPreserve: []string{"page"},
		AllowedVideoRegex: rxVideos,
		TagsToScore:       []string{"section", "h2", "h3", "h4", "h5", "h6", "p", "td", "pre"},
	}
}

// Readability is an HTML parser that reads and extracts relevant content.
type Readability struct {
	doc           *html.Node
	documentURI   *url.URL
	articleTitle  string
	articleByline string
	articleDir    string
	articleLang   string
	attempts      []parseAttempt
	flags         flags
	opts          Options
	log           *slog.Logger
}

// Article represents the metadata and content of the article.
type Article struct {
	// Title is the heading that precedes the article's content.
	Title string

	// Byline gives the author's name.
	Byline string

	// Dir is the direction of the text in the article, either "ltr" or "rtl".
	Dir string

	// Lang is the language of the article, taken from the root <html> element.
	Lang string

	// Content is the relevant text in the article with HTML tags.
	Content string

	// TextContent is the relevant text in the article without HTML tags.
	TextContent string

	// Excerpt is the summary for the relevant text in the article.
	Excerpt string

	// SiteName is the name of the original publisher website.
	SiteName string

	// PublishedTime is the publication timestamp, as a raw string lifted
	// from JSON-LD or meta tags with no timezone normalization.
	PublishedTime string

	// Favicon is a URL to a high quality (PNG) favicon, when discoverable.
	Favicon string

	// Image is an image URL which represents the article's content.
	Image string

	// Length is the amount of characters in the article.
	Length int

	// Node is the first element in the extracted article content.
	Node *html.Node
}

// New returns a new Readability with sane defaults to parse simple documents.
func New() *Readability {
	return NewWithOptions(NewOptions())
}

// NewWithOptions returns a Readability configured with opts. Zero-valued
// fields that have a spec-mandated default are filled in.
func NewWithOptions(opts Options) *Readability {
	if opts.NTopCandidates == 0 {
		opts.NTopCandidates = 5
	}

	if opts.CharThreshold == 0 {
		opts.CharThreshold = 500
	}

	if opts.ClassesToPreserve == nil {
		opts.ClassesToPreserve = []string{"page"}
	}

	if opts.AllowedVideoRegex == nil {
		opts.AllowedVideoRegex = rxVideos
	}

	if opts.TagsToScore == nil {
		opts.TagsToScore = []string{"section", "h2", "h3", "h4", "h5", "h6", "p", "td", "pre"}
	}

	logLevel := slog.LevelWarn
	var logOut io.Writer = io.Discard
	if opts.Debug {
		logLevel = slog.LevelDebug
		logOut = os.Stderr
	}

	return &Readability{
		opts: opts,
		log:  slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: logLevel})).With("component", "readability"),
	}
}

// removeNodes iterates over a collection of HTML elements, calls the optional
// filter function on each node, and removes the node if the function returns
// true. If filter is nil, removes all the nodes in the list.
func (r *Readability) removeNodes(list []*html.Node, filter func(*html.Node) bool) {
	for i := len(list) - 1; i >= 0; i-- {
		node := list[i]
		parentNode := node.Parent

		if parentNode != nil && (filter == nil || filter(node)) {
			parentNode.RemoveChild(node)
		}
	}
}

// replaceNodeTags iterates over a list, calling setNodeTag for each node.
func (r *Readability) replaceNodeTags(list []*html.Node, newTagName string) {
	for i := len(list) - 1; i >= 0; i-- {
		r.setNodeTag(list[i], newTagName)
	}
}

// forEachNode iterates over a list of HTML nodes.
func (r *Readability) forEachNode(list []*html.Node, fn func(*html.Node, int)) {
	for idx, node := range list {
		fn(node, idx)
	}
}

// someNode returns true if any of the provided iterate function calls returns
// true, false otherwise.
func (r *Readability) someNode(nodeList []*html.Node, fn func(*html.Node) bool) bool {
	for i := 0; i < len(nodeList); i++ {
		if fn(nodeList[i]) {
			return true
		}
	}

	return false
}

// everyNode returns true if all of the provided iterator function calls
// return true, otherwise returns false.
func (r *Readability) everyNode(list []*html.Node, fn func(*html.Node) bool) bool {
	for _, node := range list {
		if !fn(node) {
			return false
		}
	}

	return true
}

// concatNodeLists concats all nodelists passed as arguments.
func (r *Readability) concatNodeLists(nodeLists ...[]*html.Node) []*html.Node {
	var result []*html.Node

	for i := 0; i < len(nodeLists); i++ {
		result = append(result, nodeLists[i]...)
	}

	return result
}

func (r *Readability) getAllNodesWithTag(node *html.Node, tagNames ...string) []*html.Node {
	var list []*html.Node

	for _, tag := range tagNames {
		list = append(list, getElementsByTagName(node, tag)...)
	}

	return list
}

// prepDocument prepares the HTML document for readability to scrape it. This
// includes stripping out <style> tags, unwrapping noscript image fallbacks,
// normalizing lazy-loaded images, and collapsing <br> chains into paragraphs.
func (r *Readability) prepDocument() {
	doc := r.doc

	r.removeNodes(getElementsByTagName(doc, "style"), nil)

	r.unwrapNoscriptImages(doc)

	if n := getElementsByTagName(doc, "body"); len(n) > 0 && n[0] != nil {
		r.replaceBrs(n[0])
	}

	r.replaceNodeTags(getElementsByTagName(doc, "font"), "span")

	r.fixLazyImages(doc)
}

// nextElement finds the next element, starting from the given node, and
// ignoring whitespace in between. If the given node is an element, the same
// node is returned.
func (r *Readability) nextElement(node *html.Node) *html.Node {
	next := node

	for next != nil &&
		next.Type != html.ElementNode &&
		rxWhitespace.MatchString(textContent(next)) {
		next = next.NextSibling
	}

	return next
}

// replaceBrs replaces two or more successive <br> elements with a single <p>.
// Whitespace between <br> elements is ignored. For example:
//
//	<div>foo<br>bar<br> <br><br>abc</div>
//
// becomes:
//
//	<div>foo<br>bar<p>abc</p></div>
func (r *Readability) replaceBrs(elem *html.Node) {
	r.forEachNode(r.getAllNodesWithTag(elem, "br"), func(br *html.Node, _ int) {
		next := br.NextSibling
		replaced := false

		for {
			next = r.nextElement(next)

			if next == nil || tagName(next) != "br" {
				break
			}

			replaced = true
			brSibling := next.NextSibling
			next.Parent.RemoveChild(next)
			next = brSibling
		}

		if replaced {
			p := createElement("p")
			replaceNode(br, p)

			next = p.NextSibling
			for next != nil {
				if tagName(next) == "br" {
					nextElem := r.nextElement(next.NextSibling)
					if nextElem != nil && tagName(nextElem) == "br" {
						break
					}
				}

				if !r.isPhrasingContent(next) {
					break
				}

				sibling := next.NextSibling
				appendChild(p, next)
				next = sibling
			}

			for p.LastChild != nil && r.isWhitespace(p.LastChild) {
				p.RemoveChild(p.LastChild)
			}

			if tagName(p.Parent) == "p" {
				r.setNodeTag(p.Parent, "div")
			}
		}
	})
}

func (r *Readability) setNodeTag(node *html.Node, newTagName string) {
	if node.Type == html.ElementNode {
		node.Data = newTagName
	}
}

// prepArticle prepares the article Node for display, cleaning out inline CSS
// styles, iframes, forms and stripping extraneous paragraph tags.
func (r *Readability) prepArticle(articleContent *html.Node) {
	r.cleanStyles(articleContent)

	// Check for data tables before we continue, to avoid removing items in
	// those tables, which will often be isolated even though they are
	// visually linked to other content-ful elements.
	r.markDataTables(articleContent)

	r.cleanConditionally(articleContent, "form")
	r.cleanConditionally(articleContent, "fieldset")
	r.clean(articleContent, "object")
	r.clean(articleContent, "embed")
	r.clean(articleContent, "h1")
	r.clean(articleContent, "footer")
	r.clean(articleContent, "link")
	r.clean(articleContent, "aside")

	// Clean out elements with "share" in their id/class combinations from
	// final top candidates, but not the top candidates themselves.
	r.forEachNode(children(articleContent), func(topCandidate *html.Node, _ int) {
		r.cleanMatchedNodes(topCandidate, func(node *html.Node, nodeClassID string) bool {
			return rxShare.MatchString(nodeClassID) && len(textContent(node)) < r.opts.CharThreshold
		})
	})

	// If there is only one h2 and its text substantially matches the article
	// title, it's probably a duplicate header rather than a subheader.
	if h2s := getElementsByTagName(articleContent, "h2"); len(h2s) == 1 && r.articleTitle != "" {
		h2 := h2s[0]
		h2Text := textContent(h2)
		lengthSimilarRate := float64(len(h2Text)-len(r.articleTitle)) / float64(len(r.articleTitle))

		if math.Abs(lengthSimilarRate) < 0.5 {
			titlesMatch := false

			if lengthSimilarRate > 0 {
				titlesMatch = strings.Contains(h2Text, r.articleTitle)
			} else {
				titlesMatch = strings.Contains(r.articleTitle, h2Text)
			}

			if titlesMatch {
				r.clean(articleContent, "h2")
			}
		}
	}

	r.clean(articleContent, "iframe")
	r.clean(articleContent, "input")
	r.clean(articleContent, "textarea")
	r.clean(articleContent, "select")
	r.clean(articleContent, "button")
	r.cleanHeaders(articleContent)

	// Do these last as the previous stuff may have removed junk that affects
	// these.
	r.cleanConditionally(articleContent, "table")
	r.cleanConditionally(articleContent, "ul")
	r.cleanConditionally(articleContent, "div")

	r.removeNodes(getElementsByTagName(articleContent, "p"), func(p *html.Node) bool {
		imgCount := len(getElementsByTagName(p, "img"))
		embedCount := len(getElementsByTagName(p, "embed"))
		objectCount := len(getElementsByTagName(p, "object"))
		iframeCount := len(getElementsByTagName(p, "iframe"))
		totalCount := imgCount + embedCount + objectCount + iframeCount

		return totalCount == 0 && r.getInnerText(p, false) == ""
	})

	r.forEachNode(getElementsByTagName(articleContent, "br"), func(br *html.Node, _ int) {
		next := r.nextElement(br.NextSibling)

		if next != nil && tagName(next) == "p" {
			br.Parent.RemoveChild(br)
		}
	})

	// Collapse single-cell tables into their one cell.
	r.forEachNode(getElementsByTagName(articleContent, "table"), func(table *html.Node, _ int) {
		tbody := table

		if r.hasSingleTagInsideElement(table, "tbody") {
			tbody = firstElementChild(table)
		}

		if r.hasSingleTagInsideElement(tbody, "tr") {
			row := firstElementChild(tbody)

			if r.hasSingleTagInsideElement(row, "td") {
				cell := firstElementChild(row)

				newTag := "div"
				if r.everyNode(childNodes(cell), r.isPhrasingContent) {
					newTag = "p"
				}

				r.setNodeTag(cell, newTag)
				replaceNode(table, cell)
			}
		}
	})
}

// grabArticle uses a variety of metrics (content score, classname, element
// types) to find the content that is most likely to be the stuff a user wants
// to read, returning it wrapped in a div.
func (r *Readability) grabArticle() *html.Node {
	for {
		doc := cloneNode(r.doc)

		var page *html.Node
		if nodes := getElementsByTagName(doc, "body"); len(nodes) > 0 {
			page = nodes[0]
		}

		if page == nil {
			return nil
		}

		var elementsToScore []*html.Node
		node := documentElement(doc)

		for node != nil {
			matchString := className(node) + "\x20" + id(node)

			if !r.isProbablyVisible(node) {
				node = r.removeAndGetNext(node)
				continue
			}

			if r.checkByline(node, matchString) {
				node = r.removeAndGetNext(node)
				continue
			}

			nodeTagName := tagName(node)
			nodeRole := strings.TrimSpace(strings.ToLower(getAttribute(node, "role")))

			if r.flags.stripUnlikelys {
				if indexOf(unlikelyRoles, nodeRole) != -1 {
					node = r.removeAndGetNext(node)
					continue
				}

				if rxUnlikelyCandidates.MatchString(matchString) &&
					!rxOkMaybeItsACandidate.MatchString(matchString) &&
					!r.hasAncestorTag(node, "table", 3, nil) &&
					nodeTagName != "body" &&
					nodeTagName != "a" {
					node = r.removeAndGetNext(node)
					continue
				}
			}

			switch nodeTagName {
			case "div",
				"section",
				"header",
				"h1",
				"h2",
				"h3",
				"h4",
				"h5",
				"h6":
				if r.isElementWithoutContent(node) {
					node = r.removeAndGetNext(node)
					continue
				}
			}

			if indexOf(r.opts.TagsToScore, nodeTagName) != -1 {
				elementsToScore = append(elementsToScore, node)
			}

			if nodeTagName == "div" {
				var p *html.Node
				childNode := node.FirstChild

				for childNode != nil {
					nextSibling := childNode.NextSibling

					if r.isPhrasingContent(childNode) {
						if p != nil {
							appendChild(p, childNode)
						} else if !r.isWhitespace(childNode) {
							p = createElement("p")
							appendChild(p, cloneNode(childNode))
							replaceNode(childNode, p)
						}
					} else if p != nil {
						for p.LastChild != nil && r.isWhitespace(p.LastChild) {
							p.RemoveChild(p.LastChild)
						}
						p = nil
					}

					childNode = nextSibling
				}

				if r.hasSingleTagInsideElement(node, "p") && r.getLinkDensity(node) < 0.25 {
					newNode := children(node)[0]
					replaceNode(node, newNode)
					node = newNode
					elementsToScore = append(elementsToScore, node)
				} else if !r.hasChildBlockElement(node) {
					r.setNodeTag(node, "p")
					elementsToScore = append(elementsToScore, node)
				}
			}

			node = r.getNextNode(node, false)
		}

		var candidates []*html.Node
		r.forEachNode(elementsToScore, func(elementToScore *html.Node, _ int) {
			if elementToScore.Parent == nil || tagName(elementToScore.Parent) == "" {
				return
			}

			innerText := r.getInnerText(elementToScore, true)
			if len(innerText) < 25 {
				return
			}

			ancestors := r.getNodeAncestors(elementToScore, 3)
			if len(ancestors) == 0 {
				return
			}

			contentScore := 1
			contentScore += strings.Count(innerText, ",")
			contentScore += int(math.Min(math.Floor(float64(len(innerText))/100.0), 3.0))

			r.forEachNode(ancestors, func(ancestor *html.Node, level int) {
				if tagName(ancestor) == "" || ancestor.Parent == nil || ancestor.Parent.Type != html.ElementNode {
					return
				}

				if !r.hasContentScore(ancestor) {
					r.initializeNode(ancestor)
					candidates = append(candidates, ancestor)
				}

				scoreDivider := 1
				switch level {
				case 0:
					scoreDivider = 1
				case 1:
					scoreDivider = 2
				default:
					scoreDivider = level * 3
				}

				ancestorScore := r.getContentScore(ancestor)
				ancestorScore += float64(contentScore) / float64(scoreDivider)

				r.setContentScore(ancestor, ancestorScore)
			})
		})

		for i := 0; i < len(candidates); i++ {
			candidate := candidates[i]
			candidateScore := r.getContentScore(candidate) * (1 - r.getLinkDensity(candidate))
			r.setContentScore(candidate, candidateScore)
		}

		sort.SliceStable(candidates, func(i int, j int) bool {
			return r.getContentScore(candidates[i]) > r.getContentScore(candidates[j])
		})

		var topCandidates []*html.Node

		if len(candidates) > r.opts.NTopCandidates {
			topCandidates = candidates[:r.opts.NTopCandidates]
		} else {
			topCandidates = candidates
		}

		var topCandidate, parentOfTopCandidate *html.Node
		neededToCreateTopCandidate := false
		if len(topCandidates) > 0 {
			topCandidate = topCandidates[0]
		}

		if topCandidate == nil || tagName(topCandidate) == "body" {
			topCandidate = createElement("div")
			neededToCreateTopCandidate = true

			kids := childNodes(page)
			for i := 0; i < len(kids); i++ {
				appendChild(topCandidate, kids[i])
			}

			appendChild(page, topCandidate)
			r.initializeNode(topCandidate)
		} else if topCandidate != nil {
			topCandidateScore := r.getContentScore(topCandidate)
			var alternativeCandidateAncestors [][]*html.Node
			for i := 1; i < len(topCandidates); i++ {
				if r.getContentScore(topCandidates[i])/topCandidateScore >= 0.75 {
					topCandidateAncestors := r.getNodeAncestors(topCandidates[i], 0)
					alternativeCandidateAncestors = append(alternativeCandidateAncestors, topCandidateAncestors)
				}
			}

			minimumTopCandidates := 3
			if len(alternativeCandidateAncestors) >= minimumTopCandidates {
				parentOfTopCandidate = topCandidate.Parent
				for parentOfTopCandidate != nil && tagName(parentOfTopCandidate) != "body" {
					listContainingThisAncestor := 0
					for ancestorIndex := 0; ancestorIndex < len(alternativeCandidateAncestors) && listContainingThisAncestor < minimumTopCandidates; ancestorIndex++ {
						if includeNode(alternativeCandidateAncestors[ancestorIndex], parentOfTopCandidate) {
							listContainingThisAncestor++
						}
					}

					if listContainingThisAncestor >= minimumTopCandidates {
						topCandidate = parentOfTopCandidate
						break
					}

					parentOfTopCandidate = parentOfTopCandidate.Parent
				}
			}

			if !r.hasContentScore(topCandidate) {
				r.initializeNode(topCandidate)
			}

			parentOfTopCandidate = topCandidate.Parent
			lastScore := r.getContentScore(topCandidate)
			scoreThreshold := lastScore / 3.0
			for parentOfTopCandidate != nil && tagName(parentOfTopCandidate) != "body" {
				if !r.hasContentScore(parentOfTopCandidate) {
					parentOfTopCandidate = parentOfTopCandidate.Parent
					continue
				}

				parentScore := r.getContentScore(parentOfTopCandidate)
				if parentScore < scoreThreshold {
					break
				}

				if parentScore > lastScore {
					topCandidate = parentOfTopCandidate
					break
				}

				lastScore = parentScore
				parentOfTopCandidate = parentOfTopCandidate.Parent
			}

			parentOfTopCandidate = topCandidate.Parent
			for parentOfTopCandidate != nil && tagName(parentOfTopCandidate) != "body" && len(children(parentOfTopCandidate)) == 1 {
				topCandidate = parentOfTopCandidate
				parentOfTopCandidate = topCandidate.Parent
			}

			if !r.hasContentScore(topCandidate) {
				r.initializeNode(topCandidate)
			}
		}

		articleContent := createElement("div")
		siblingScoreThreshold := math.Max(10, r.getContentScore(topCandidate)*0.2)

		topCandidateScore := r.getContentScore(topCandidate)
		topCandidateClassName := className(topCandidate)

		parentOfTopCandidate = topCandidate.Parent
		siblings := children(parentOfTopCandidate)
		for s := 0; s < len(siblings); s++ {
			sibling := siblings[s]
			appendNode := false

			if sibling == topCandidate {
				appendNode = true
			} else {
				contentBonus := float64(0)

				if className(sibling) == topCandidateClassName && topCandidateClassName != "" {
					contentBonus += topCandidateScore * 0.2
				}

				if r.hasContentScore(sibling) && r.getContentScore(sibling)+contentBonus >= siblingScoreThreshold {
					appendNode = true
				} else if tagName(sibling) == "p" {
					linkDensity := r.getLinkDensity(sibling)
					nodeContent := r.getInnerText(sibling, true)
					nodeLength := len(nodeContent)

					if nodeLength > 80 && linkDensity < 0.25 {
						appendNode = true
					} else if nodeLength < 80 && nodeLength > 0 && linkDensity == 0 &&
						rxSentencePeriod.MatchString(nodeContent) {
						appendNode = true
					}
				}
			}

			if appendNode {
				if indexOf(alterToDivExceptions, tagName(sibling)) == -1 {
					r.setNodeTag(sibling, "div")
				}

				appendChild(articleContent, sibling)
			}
		}

		r.prepArticle(articleContent)

		if neededToCreateTopCandidate {
			firstChild := firstElementChild(articleContent)
			if firstChild != nil && tagName(firstChild) == "div" {
				setAttribute(firstChild, "id", "readability-page-1")
				setAttribute(firstChild, "class", "page")
			}
		} else {
			div := createElement("div")
			setAttribute(div, "id", "readability-page-1")
			setAttribute(div, "class", "page")

			childs := childNodes(articleContent)
			for i := 0; i < len(childs); i++ {
				appendChild(div, childs[i])
			}

			appendChild(articleContent, div)
		}

		parseSuccessful := true
		textLength := len(r.getInnerText(articleContent, true))

		if textLength < r.opts.CharThreshold {
			parseSuccessful = false

			if r.flags.stripUnlikelys {
				r.log.Debug("retrying grab with stripUnlikelys disabled", "textLength", textLength)
				r.flags.stripUnlikelys = false
				r.attempts = append(r.attempts, parseAttempt{articleContent: articleContent, textLength: textLength})
			} else if r.flags.useWeightClasses {
				r.log.Debug("retrying grab with useWeightClasses disabled", "textLength", textLength)
				r.flags.useWeightClasses = false
				r.attempts = append(r.attempts, parseAttempt{articleContent: articleContent, textLength: textLength})
			} else if r.flags.cleanConditionally {
				r.log.Debug("retrying grab with cleanConditionally disabled", "textLength", textLength)
				r.flags.cleanConditionally = false
				r.attempts = append(r.attempts, parseAttempt{articleContent: articleContent, textLength: textLength})
			} else {
				r.attempts = append(r.attempts, parseAttempt{articleContent: articleContent, textLength: textLength})

				sort.SliceStable(r.attempts, func(i, j int) bool {
					return r.attempts[i].textLength > r.attempts[j].textLength
				})

				if r.attempts[0].textLength == 0 {
					return nil
				}

				articleContent = r.attempts[0].articleContent
				parseSuccessful = true
			}
		}

		if parseSuccessful {
			r.log.Debug("grab successful", "textLength", textLength)
			return articleContent
		}
	}
}

// initializeNode initializes a node with the readability score, also checking
// the className/id for special names to add to its score.
func (r *Readability) initializeNode(node *html.Node) {
	contentScore := float64(r.getClassWeight(node))

	switch tagName(node) {
	case "div":
		contentScore += 5
	case "pre", "td", "blockquote":
		contentScore += 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		contentScore -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		contentScore -= 5
	}

	r.setContentScore(node, contentScore)
}

// removeAndGetNext removes node and returns its next node.
func (r *Readability) removeAndGetNext(node *html.Node) *html.Node {
	nextNode := r.getNextNode(node, true)

	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}

	return nextNode
}

// getNextNode traverses the DOM depth-first from node, starting at the node
// passed in. Pass true for ignoreSelfAndKids to indicate this node (and its
// children) are going away and we want the next node over.
func (r *Readability) getNextNode(node *html.Node, ignoreSelfAndKids bool) *html.Node {
	if firstChild := firstElementChild(node); !ignoreSelfAndKids && firstChild != nil {
		return firstChild
	}

	if sibling := nextElementSibling(node); sibling != nil {
		return sibling
	}

	for {
		node = node.Parent
		if node == nil || nextElementSibling(node) != nil {
			break
		}
	}

	if node != nil {
		return nextElementSibling(node)
	}

	return nil
}

// isValidByline checks whether the input string could be a byline.
func (r *Readability) isValidByline(byline string) bool {
	byline = strings.TrimSpace(byline)
	return len(byline) > 0 && len(byline) < 100
}

// checkByline determines if a node is used as byline.
func (r *Readability) checkByline(node *html.Node, matchString string) bool {
	if r.articleByline != "" {
		return false
	}

	rel := getAttribute(node, "rel")
	itemprop := getAttribute(node, "itemprop")
	nodeText := textContent(node)

	if (rel == "author" || strings.Contains(itemprop, "author") || rxByline.MatchString(matchString)) && r.isValidByline(nodeText) {
		nodeText = strings.TrimSpace(nodeText)
		nodeText = strings.Join(strings.Fields(nodeText), "\x20")
		r.articleByline = nodeText
		return true
	}

	return false
}

// getNodeAncestors gets the node's direct parent and grandparents, up to
// maxDepth levels (0 means unlimited).
func (r *Readability) getNodeAncestors(node *html.Node, maxDepth int) []*html.Node {
	level := 0
	ancestors := []*html.Node{}

	for node.Parent != nil {
		level++
		ancestors = append(ancestors, node.Parent)

		if maxDepth > 0 && level == maxDepth {
			break
		}

		node = node.Parent
	}

	return ancestors
}

// setContentScore stores the readability score for a node in a synthetic
// attribute, since *html.Node carries no scratch fields of its own.
func (r *Readability) setContentScore(node *html.Node, score float64) {
	setAttribute(node, "data-readability-score", fmt.Sprintf("%.4f", score))
}

// hasContentScore checks if node has a readability score.
func (r *Readability) hasContentScore(node *html.Node) bool {
	return hasAttribute(node, "data-readability-score")
}

// getContentScore reads the readability score of a node.
func (r *Readability) getContentScore(node *html.Node) float64 {
	strScore := strings.TrimSpace(getAttribute(node, "data-readability-score"))

	if strScore == "" {
		return 0
	}

	score, err := strconv.ParseFloat(strScore, 64)
	if err != nil {
		return 0
	}

	return score
}

// removeScripts removes script and noscript tags from the document. Called
// after unwrapNoscriptImages has already consumed any single-image noscript
// fallbacks it needed.
func (r *Readability) removeScripts(doc *html.Node) {
	r.removeNodes(getElementsByTagName(doc, "script"), nil)
	r.removeNodes(getElementsByTagName(doc, "noscript"), nil)
}

// hasSingleTagInsideElement checks if the node has only whitespace and a
// single element with given tag. Returns false if the element contains
// non-empty text nodes or contains no element (or more than one) with the
// given tag.
func (r *Readability) hasSingleTagInsideElement(element *html.Node, tag string) bool {
	if childs := children(element); len(childs) != 1 || tagName(childs[0]) != tag {
		return false
	}

	return !r.someNode(childNodes(element), func(node *html.Node) bool {
		return node.Type == html.TextNode && rxHasContent.MatchString(textContent(node))
	})
}

// isElementWithoutContent determines if node is empty: nothing inside, or
// only <br>/<hr> tags.
func (r *Readability) isElementWithoutContent(node *html.Node) bool {
	brs := getElementsByTagName(node, "br")
	hrs := getElementsByTagName(node, "hr")
	childs := children(node)

	return node.Type == html.ElementNode &&
		strings.TrimSpace(textContent(node)) == "" &&
		(len(childs) == 0 || len(childs) == len(brs)+len(hrs))
}

// hasChildBlockElement determines whether element has any block-level
// children.
func (r *Readability) hasChildBlockElement(element *html.Node) bool {
	return r.someNode(childNodes(element), func(node *html.Node) bool {
		return indexOf(divToPElems, tagName(node)) != -1 || r.hasChildBlockElement(node)
	})
}

// isPhrasingContent determines if a node qualifies as phrasing content.
//
// See: https://developer.mozilla.org/en-US/docs/Web/Guide/HTML/Content_categories#Phrasing_content
func (r *Readability) isPhrasingContent(node *html.Node) bool {
	if node.Type == html.TextNode {
		return true
	}

	tag := tagName(node)

	if indexOf(phrasingElems, tag) != -1 {
		return true
	}

	return (tag == "a" || tag == "del" || tag == "ins") && r.everyNode(childNodes(node), r.isPhrasingContent)
}

func (r *Readability) isWhitespace(node *html.Node) bool {
	if node.Type == html.TextNode && strings.TrimSpace(textContent(node)) == "" {
		return true
	}

	return node.Type == html.ElementNode && tagName(node) == "br"
}

// getInnerText gets the inner text of a node, optionally collapsing runs of
// whitespace down to a single space.
func (r *Readability) getInnerText(node *html.Node, normalizeSpaces bool) string {
	text := strings.TrimSpace(textContent(node))

	if normalizeSpaces {
		text = rxNormalize.ReplaceAllString(text, "\x20")
	}

	return text
}

// getCharCount returns the number of times a string appears in the node.
func (r *Readability) getCharCount(node *html.Node, s string) int {
	innerText := r.getInnerText(node, true)
	return strings.Count(innerText, s)
}

// cleanStyles removes the style attribute, and other deprecated
// presentational attributes, from every node in the subtree.
func (r *Readability) cleanStyles(node *html.Node) {
	nodeTagName := tagName(node)

	if node == nil || nodeTagName == "svg" {
		return
	}

	for i := 0; i < len(presentationalAttributes); i++ {
		removeAttribute(node, presentationalAttributes[i])
	}

	if indexOf(deprecatedSizeAttributeElems, nodeTagName) != -1 {
		removeAttribute(node, "width")
		removeAttribute(node, "height")
	}

	for child := firstElementChild(node); child != nil; child = nextElementSibling(child) {
		r.cleanStyles(child)
	}
}

// getLinkDensity gets the density of links as a fraction of the content: the
// amount of text inside a link divided by the total text in the node.
// Hash-only (in-page anchor) links count for less.
func (r *Readability) getLinkDensity(element *html.Node) float64 {
	textLength := len(r.getInnerText(element, true))

	if textLength == 0 {
		return 0
	}

	linkLength := float64(0)

	r.forEachNode(getElementsByTagName(element, "a"), func(linkNode *html.Node, _ int) {
		href := getAttribute(linkNode, "href")
		coefficient := 1.0
		if strings.HasPrefix(href, "#") {
			coefficient = 0.3
		}

		linkLength += float64(len(r.getInnerText(linkNode, true))) * coefficient
	})

	return linkLength / float64(textLength)
}

// getClassWeight gets an element's class/id weight, using the positive and
// negative regexes to tell if this element looks good or bad.
func (r *Readability) getClassWeight(node *html.Node) int {
	if !r.flags.useWeightClasses {
		return 0
	}

	weight := 0

	if nodeClassName := className(node); nodeClassName != "" {
		if rxNegative.MatchString(nodeClassName) {
			weight -= 25
		}

		if rxPositive.MatchString(nodeClassName) {
			weight += 25
		}
	}

	if nodeID := id(node); nodeID != "" {
		if rxNegative.MatchString(nodeID) {
			weight -= 25
		}

		if rxPositive.MatchString(nodeID) {
			weight += 25
		}
	}

	return weight
}

// clean cleans a node of all elements of the given tag.
func (r *Readability) clean(node *html.Node, tag string) {
	isEmbed := indexOf([]string{"object", "embed", "iframe"}, tag) != -1

	r.removeNodes(getElementsByTagName(node, tag), func(element *html.Node) bool {
		if isEmbed {
			for _, attr := range element.Attr {
				if r.opts.AllowedVideoRegex.MatchString(attr.Val) {
					return false
				}
			}

			if tagName(element) == "object" && r.opts.AllowedVideoRegex.MatchString(innerHTML(element)) {
				return false
			}
		}

		return true
	})
}

// hasAncestorTag checks if a given node has one of its ancestors matching the
// provided tag name, optionally up to maxDepth levels (0 means unlimited,
// negative disables the depth cap entirely).
func (r *Readability) hasAncestorTag(node *html.Node, tag string, maxDepth int, filterFn func(*html.Node) bool) bool {
	depth := 0

	for node.Parent != nil {
		if maxDepth > 0 && depth > maxDepth {
			return false
		}

		if tagName(node.Parent) == tag && (filterFn == nil || filterFn(node.Parent)) {
			return true
		}

		node = node.Parent
		depth++
	}

	return false
}

// getRowAndColumnCount returns how many rows and columns this table has.
func (r *Readability) getRowAndColumnCount(table *html.Node) (int, int) {
	rows := 0
	columns := 0
	trs := getElementsByTagName(table, "tr")

	for i := 0; i < len(trs); i++ {
		strRowSpan := getAttribute(trs[i], "rowspan")
		rowSpan, _ := strconv.Atoi(strRowSpan)

		if rowSpan == 0 {
			rowSpan = 1
		}

		rows += rowSpan

		columnsInThisRow := 0
		cells := r.concatNodeLists(getElementsByTagName(trs[i], "td"), getElementsByTagName(trs[i], "th"))

		for j := 0; j < len(cells); j++ {
			strColSpan := getAttribute(cells[j], "colspan")
			colSpan, _ := strconv.Atoi(strColSpan)

			if colSpan == 0 {
				colSpan = 1
			}

			columnsInThisRow += colSpan
		}

		if columnsInThisRow > columns {
			columns = columnsInThisRow
		}
	}

	return rows, columns
}

// isReadabilityDataTable determines if a node is marked as a data table.
func (r *Readability) isReadabilityDataTable(node *html.Node) bool {
	return hasAttribute(node, "data-readability-table")
}

// setReadabilityDataTable marks whether a node is a data table or not.
func (r *Readability) setReadabilityDataTable(node *html.Node, isDataTable bool) {
	if isDataTable {
		setAttribute(node, "data-readability-table", "true")
		return
	}

	removeAttribute(node, "data-readability-table")
}

// markDataTables looks for "data" (as opposed to "layout") tables and marks
// them: ARIA role, caption, thead/th, cell spans, row/column counts, or a
// summary attribute all qualify a table as a data table.
func (r *Readability) markDataTables(root *html.Node) {
	tables := getElementsByTagName(root, "table")

	for i := 0; i < len(tables); i++ {
		table := tables[i]

		role := getAttribute(table, "role")
		if role == "grid" || role == "list" || role == "treegrid" {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if role == "presentation" {
			r.setReadabilityDataTable(table, false)
			continue
		}

		if getAttribute(table, "datatable") == "0" {
			r.setReadabilityDataTable(table, false)
			continue
		}

		if hasAttribute(table, "summary") {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if captions := getElementsByTagName(table, "caption"); len(captions) > 0 {
			if caption := captions[0]; caption != nil && len(childNodes(caption)) > 0 {
				r.setReadabilityDataTable(table, true)
				continue
			}
		}

		hasDataTableDescendantTags := false
		for _, descendantTag := range []string{"col", "colgroup", "tfoot", "thead", "th"} {
			descendants := getElementsByTagName(table, descendantTag)
			if len(descendants) > 0 && descendants[0] != nil {
				hasDataTableDescendantTags = true
				break
			}
		}

		if hasDataTableDescendantTags {
			r.setReadabilityDataTable(table, true)
			continue
		}

		hasCellSpans := r.someNode(r.concatNodeLists(getElementsByTagName(table, "td"), getElementsByTagName(table, "th")), func(cell *html.Node) bool {
			rowSpan, _ := strconv.Atoi(getAttribute(cell, "rowspan"))
			colSpan, _ := strconv.Atoi(getAttribute(cell, "colspan"))
			return rowSpan > 1 || colSpan > 1
		})

		if hasCellSpans {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if len(getElementsByTagName(table, "table")) > 0 {
			r.setReadabilityDataTable(table, false)
			continue
		}

		rows, columns := r.getRowAndColumnCount(table)

		if rows >= 10 || columns > 4 {
			r.setReadabilityDataTable(table, true)
			continue
		}

		if rows*columns > 10 {
			r.setReadabilityDataTable(table, true)
		}
	}
}

// cleanConditionally cleans an element of all descendants of the given tag
// if they look fishy, based on content length, classnames, link density, and
// the number of images, embeds and form controls.
func (r *Readability) cleanConditionally(element *html.Node, tag string) {
	if !r.flags.cleanConditionally {
		return
	}

	isList := tag == "ul" || tag == "ol"

	r.removeNodes(getElementsByTagName(element, tag), func(node *html.Node) bool {
		if tag == "table" && r.isReadabilityDataTable(node) {
			return false
		}

		if r.hasAncestorTag(node, "table", -1, r.isReadabilityDataTable) {
			return false
		}

		weight := r.getClassWeight(node)
		if weight < 0 {
			return true
		}

		if r.getCharCount(node, ",") < 10 {
			p := float64(len(getElementsByTagName(node, "p")))
			img := float64(len(getElementsByTagName(node, "img")))
			li := float64(len(getElementsByTagName(node, "li")) - 100)
			input := float64(len(getElementsByTagName(node, "input")))

			embedCount := 0
			embeds := r.concatNodeLists(
				getElementsByTagName(node, "object"),
				getElementsByTagName(node, "embed"),
				getElementsByTagName(node, "iframe"),
			)

			for _, embed := range embeds {
				for _, attr := range embed.Attr {
					if r.opts.AllowedVideoRegex.MatchString(attr.Val) {
						return false
					}
				}

				if tagName(embed) == "object" && r.opts.AllowedVideoRegex.MatchString(innerHTML(embed)) {
					return false
				}

				embedCount++
			}

			linkDensity := r.getLinkDensity(node)
			contentLength := len(r.getInnerText(node, true))
			hasFigureAncestor := r.hasAncestorTag(node, "figure", 3, nil) || r.hasAncestorTag(node, "picture", 3, nil)

			return (img > 1 && p/img < 0.5 && !hasFigureAncestor) ||
				(!isList && li > p) ||
				(input > math.Floor(p/3)) ||
				(!isList && contentLength < 25 && (img == 0 || img > 2) && !hasFigureAncestor) ||
				(!isList && weight < 25 && linkDensity > 0.2+r.opts.LinkDensityModifier) ||
				(weight >= 25 && linkDensity > 0.5+r.opts.LinkDensityModifier) ||
				((embedCount == 1 && contentLength < 75) || embedCount > 1)
		}

		return false
	})
}

// cleanMatchedNodes cleans out elements in e's subtree whose class/id
// combination matches filter.
func (r *Readability) cleanMatchedNodes(e *html.Node, filter func(*html.Node, string) bool) {
	endOfSearchMarkerNode := r.getNextNode(e, true)
	next := r.getNextNode(e, false)

	for next != nil && next != endOfSearchMarkerNode {
		if filter != nil && filter(next, className(next)+"\x20"+id(next)) {
			next = r.removeAndGetNext(next)
		} else {
			next = r.getNextNode(next, false)
		}
	}
}

// cleanHeaders cleans out spurious h1/h2 headers from e, based on classname
// weight.
func (r *Readability) cleanHeaders(e *html.Node) {
	for headerIndex := 1; headerIndex < 3; headerIndex++ {
		headerTag := fmt.Sprintf("h%d", headerIndex)

		r.removeNodes(getElementsByTagName(e, headerTag), func(header *html.Node) bool {
			return r.getClassWeight(header) < 0
		})
	}
}

// isProbablyVisible determines if a node is visible: not hidden by style, the
// hidden attribute, or aria-hidden (unless it carries a fallback-image class,
// used by lazy-loading placeholders).
func (r *Readability) isProbablyVisible(node *html.Node) bool {
	style := getAttribute(node, "style")
	isHiddenByStyle := rxDisplayNone.MatchString(style) || rxVisibilityHidden.MatchString(style)

	ariaHidden := getAttribute(node, "aria-hidden") == "true"
	hasFallbackImage := strings.Contains(className(node), "fallback-image")

	return !isHiddenByStyle && !hasAttribute(node, "hidden") && (!ariaHidden || hasFallbackImage)
}

// fixRelativeURIs converts each <a> href and <img>/<source> src/srcset in the
// given element to an absolute URI, ignoring #ref URIs.
func (r *Readability) fixRelativeURIs(articleContent *html.Node) {
	links := r.getAllNodesWithTag(articleContent, "a")

	r.forEachNode(links, func(link *html.Node, _ int) {
		href := getAttribute(link, "href")

		if href == "" {
			return
		}

		if strings.HasPrefix(href, "javascript:") {
			text := createTextNode(textContent(link))
			replaceNode(link, text)
			return
		}

		newHref := toAbsoluteURI(href, r.documentURI)

		if newHref == "" {
			removeAttribute(link, "href")
			return
		}

		setAttribute(link, "href", newHref)
	})

	imgs := r.getAllNodesWithTag(articleContent, "img", "source")

	r.forEachNode(imgs, func(img *html.Node, _ int) {
		src := getAttribute(img, "src")

		if src != "" {
			if newSrc := toAbsoluteURI(src, r.documentURI); newSrc == "" {
				removeAttribute(img, "src")
			} else {
				setAttribute(img, "src", newSrc)
			}
		}

		if srcset := getAttribute(img, "srcset"); srcset != "" {
			setAttribute(img, "srcset", r.absolutizeSrcset(srcset))
		}
	})
}

// absolutizeSrcset resolves every URL candidate inside a srcset attribute
// value against the document's base URI.
func (r *Readability) absolutizeSrcset(srcset string) string {
	return absoluteSrcset(srcset, r.documentURI)
}

// cleanClasses removes the class attribute from every element in the subtree,
// except tokens listed in ClassesToPreserve, unless KeepClasses is set.
func (r *Readability) cleanClasses(node *html.Node) {
	if r.opts.KeepClasses {
		return
	}

	nodeClassName := className(node)
	var preserved []string

	for _, class := range strings.Fields(nodeClassName) {
		if indexOf(r.opts.ClassesToPreserve, class) != -1 {
			preserved = append(preserved, class)
		}
	}

	if len(preserved) > 0 {
		setAttribute(node, "class", strings.Join(preserved, "\x20"))
	} else {
		removeAttribute(node, "class")
	}

	for child := firstElementChild(node); child != nil; child = nextElementSibling(child) {
		r.cleanClasses(child)
	}
}

// clearReadabilityAttr removes the synthetic scratch attributes the parser
// used for scoring and data-table marking.
func (r *Readability) clearReadabilityAttr(node *html.Node) {
	removeAttribute(node, "data-readability-score")
	removeAttribute(node, "data-readability-table")

	for child := firstElementChild(node); child != nil; child = nextElementSibling(child) {
		r.clearReadabilityAttr(child)
	}
}

// postProcessContent runs post-process modifications to the article content:
// absolutize URLs, scrub classes, collapse nested divs, and clear scratch
// attributes.
func (r *Readability) postProcessContent(articleContent *html.Node) {
	r.fixRelativeURIs(articleContent)
	r.cleanClasses(articleContent)
	r.simplifyNestedDivs(articleContent)
	r.clearReadabilityAttr(articleContent)
}

// simplifyNestedDivs collapses a <div> whose only child is another <div>
// into a single element, with the inner element's attributes and children
// winning.
func (r *Readability) simplifyNestedDivs(node *html.Node) {
	for child := firstElementChild(node); child != nil; {
		next := nextElementSibling(child)

		if tagName(child) == "div" {
			for r.hasSingleTagInsideElement(child, "div") {
				inner := firstElementChild(child)
				child.Attr = inner.Attr

				moveChildren := childNodes(inner)
				for child.FirstChild != nil {
					child.RemoveChild(child.FirstChild)
				}
				for _, mc := range moveChildren {
					appendChild(child, mc)
				}
			}
		}

		r.simplifyNestedDivs(child)
		child = next
	}
}

// Parse parses input and finds the main readable content, returning the
// extracted Article.
func (r *Readability) Parse(input io.Reader, pageURL string) (Article, error) {
	var err error

	r.articleTitle = ""
	r.articleByline = ""
	r.articleDir = ""
	r.articleLang = ""
	r.attempts = []parseAttempt{}
	r.flags.stripUnlikelys = true
	r.flags.useWeightClasses = true
	r.flags.cleanConditionally = true

	if r.documentURI, err = url.ParseRequestURI(pageURL); err != nil {
		return Article{}, fmt.Errorf("failed to parse URL: %w", err)
	}

	if r.doc, err = html.Parse(input); err != nil {
		return Article{}, fmt.Errorf("failed to parse input: %w", err)
	}

	if r.opts.MaxElemsToParse > 0 {
		numTags := len(getElementsByTagName(r.doc, "*"))

		if numTags > r.opts.MaxElemsToParse {
			return Article{}, fmt.Errorf("too many elements: %d", numTags)
		}
	}

	if root := documentElement(r.doc); root != nil {
		r.articleDir = getAttribute(root, "dir")
		r.articleLang = getAttribute(root, "lang")
	}

	r.prepDocument()

	metadata := r.getArticleMetadata()
	r.articleTitle = metadata.Title

	r.removeScripts(r.doc)

	finalHTMLContent := ""
	finalTextContent := ""
	readableNode := &html.Node{}
	articleContent := r.grabArticle()

	if articleContent != nil {
		r.postProcessContent(articleContent)

		if metadata.Excerpt == "" {
			paragraphs := getElementsByTagName(articleContent, "p")

			if len(paragraphs) > 0 {
				metadata.Excerpt = strings.TrimSpace(textContent(paragraphs[0]))
			}
		}

		readableNode = firstElementChild(articleContent)
		finalHTMLContent = innerHTML(articleContent)
		finalTextContent = strings.TrimSpace(textContent(articleContent))
	}

	finalByline := metadata.Byline
	if finalByline == "" {
		finalByline = r.articleByline
	}

	return Article{
		Title:         r.articleTitle,
		Byline:        finalByline,
		Dir:           r.articleDir,
		Lang:          r.articleLang,
		Node:          readableNode,
		Content:       finalHTMLContent,
		TextContent:   finalTextContent,
		Length:        len(finalTextContent),
		Excerpt:       metadata.Excerpt,
		SiteName:      metadata.SiteName,
		PublishedTime: metadata.PublishedTime,
		Image:         metadata.Image,
		Favicon:       metadata.Favicon,
	}, nil
}

// IsReadable decides whether the document is probably usable without running
// the full extraction, delegating to IsProbablyReaderable with the default
// ReaderableOptions.
func (r *Readability) IsReadable(input io.Reader) bool {
	doc, err := html.Parse(input)
	if err != nil {
		return false
	}

	return IsProbablyReaderable(doc, DefaultReaderableOptions())
}
