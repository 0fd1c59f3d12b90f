package readability

import (
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	rxPropertyPattern      = regexp.MustCompile(`(?i)\s*(dc|dcterm|og|twitter|article)\s*:\s*(author|creator|description|title|site_name|image\S*|published_time)\s*`)
	rxNamePattern          = regexp.MustCompile(`(?i)^\s*(?:(dc|dcterm|og|twitter|weibo:(article|webpage))\s*[\.:]\s*)?(author|creator|description|title|site_name|image)\s*$`)
	rxTitleSeparator       = regexp.MustCompile(`(?i) [\|\-\\/>»] `)
	rxTitleHierarchicalSep = regexp.MustCompile(`(?i) [\\/>»] `)
	rxTitleAnySeparator    = regexp.MustCompile(`(?i)[\|\-\\/>»]+`)
	rxFaviconSize          = regexp.MustCompile(`(?i)(\d+)x(\d+)`)

	rxJSONLDArticleTypes = regexp.MustCompile(`^(Advertiser)?(Article|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference)$`)
	rxSchemaDotOrg        = regexp.MustCompile(`(?i)^https?://schema\.org/?$`)
	rxJSONLDCDATA         = regexp.MustCompile(`(?i)^\s*<!\[CDATA\[|\]\]>\s*$`)
)

// articleMetadata is the result of the metadata-discovery pass: the <meta>
// tag scan, the <title> heuristic, the favicon heuristic, and (unless
// disabled) the JSON-LD pass, which wins over the others for any field it
// populates.
type articleMetadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime string
	Image         string
	Favicon       string
}

// getArticleMetadata attempts to get excerpt and byline metadata for the
// article, scanning <meta> tag combinations of name/property first, then
// layering the JSON-LD pass on top (JSON-LD wins when present), and finally
// falling back to getArticleTitle/getArticleFavicon for anything still
// missing.
func (r *Readability) getArticleMetadata() articleMetadata {
	values := map[string]string{}
	metaElements := getElementsByTagName(r.doc, "meta")

	for i := 0; i < len(metaElements); i++ {
		element := metaElements[i]
		elementName := getAttribute(element, "name")
		elementProperty := getAttribute(element, "property")
		content := getAttribute(element, "content")

		if content == "" {
			continue
		}

		if elementProperty != "" {
			matches := rxPropertyPattern.FindAllString(elementProperty, -1)
			for _, match := range matches {
				name := strings.ToLower(strings.Join(strings.Fields(match), ""))
				values[name] = strings.TrimSpace(content)
			}
		}

		if elementName != "" && rxNamePattern.MatchString(elementName) {
			name := strings.ToLower(elementName)
			name = strings.Join(strings.Fields(name), "")
			name = strings.ReplaceAll(name, ".", ":")
			values[name] = strings.TrimSpace(content)
		}
	}

	metadata := articleMetadata{
		Title:         firstNonEmpty(values["dc:title"], values["dcterm:title"], values["og:title"], values["twitter:title"], values["title"], values["weibo:article:title"], values["weibo:webpage:title"]),
		Byline:        firstNonEmpty(values["dc:creator"], values["dcterm:creator"], values["author"]),
		Excerpt:       firstNonEmpty(values["dc:description"], values["dcterm:description"], values["og:description"], values["twitter:description"], values["description"]),
		SiteName:      values["og:site_name"],
		PublishedTime: firstNonEmpty(values["article:published_time"], values["og:published_time"]),
		Image:         firstNonEmpty(values["og:image"], values["og:image:url"], values["twitter:image"]),
	}

	if metadata.Title == "" {
		metadata.Title = r.getArticleTitle()
	}

	metadata.Title = strings.TrimSpace(metadata.Title)

	if !r.opts.DisableJSONLD {
		if jsonLD := r.getJSONLD(); jsonLD != nil {
			metadata.Title = firstNonEmpty(jsonLD.Title, metadata.Title)
			metadata.Byline = firstNonEmpty(jsonLD.Byline, metadata.Byline)
			metadata.Excerpt = firstNonEmpty(jsonLD.Excerpt, metadata.Excerpt)
			metadata.SiteName = firstNonEmpty(jsonLD.SiteName, metadata.SiteName)
			metadata.PublishedTime = firstNonEmpty(jsonLD.PublishedTime, metadata.PublishedTime)
			metadata.Image = firstNonEmpty(jsonLD.Image, metadata.Image)
		}
	}

	metadata.Favicon = r.getArticleFavicon()

	return metadata
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// getArticleTitle derives the article title from the <title> element,
// stripping a trailing or leading site-name segment separated by "|", "-",
// "\", "/", ">" or "»", and falling back to a lone <h1> when the title looks
// too short or too long.
func (r *Readability) getArticleTitle() string {
	doc := r.doc
	curTitle := ""
	origTitle := ""

	if titles := getElementsByTagName(doc, "title"); len(titles) > 0 {
		origTitle = r.getInnerText(titles[0], false)
		curTitle = origTitle
	}

	titleHadHierarchicalSeparators := false

	switch {
	case rxTitleSeparator.MatchString(curTitle):
		titleHadHierarchicalSeparators = rxTitleHierarchicalSep.MatchString(curTitle)

		if matches := rxTitleSeparator.FindAllStringIndex(origTitle, -1); len(matches) > 0 {
			lastSeparator := matches[len(matches)-1]
			curTitle = origTitle[:lastSeparator[0]]
		}

		if wordCount(curTitle) < 3 {
			if matches := rxTitleSeparator.FindStringIndex(origTitle); matches != nil {
				curTitle = origTitle[matches[1]:]
			}
		}
	case strings.Contains(curTitle, ": "):
		headings := r.concatNodeLists(getElementsByTagName(doc, "h1"), getElementsByTagName(doc, "h2"))
		trimmedTitle := strings.TrimSpace(curTitle)

		match := r.someNode(headings, func(heading *html.Node) bool {
			return strings.TrimSpace(r.getInnerText(heading, false)) == trimmedTitle
		})

		if !match {
			lastColon := strings.LastIndex(origTitle, ":")
			if lastColon != -1 {
				curTitle = origTitle[lastColon+1:]

				if wordCount(curTitle) < 3 {
					firstColon := strings.Index(origTitle, ":")
					if firstColon != -1 {
						curTitle = origTitle[firstColon+1:]

						if wordCount(origTitle[:firstColon]) > 5 {
							curTitle = origTitle
						}
					}
				}
			}
		}
	case len(curTitle) > 150 || len(curTitle) < 15:
		if hOnes := getElementsByTagName(doc, "h1"); len(hOnes) == 1 {
			curTitle = r.getInnerText(hOnes[0], false)
		}
	}

	curTitle = strings.TrimSpace(curTitle)
	curTitle = rxNormalize.ReplaceAllString(curTitle, "\x20")

	curTitleWordCount := wordCount(curTitle)
	strippedWordCount := wordCount(rxTitleAnySeparator.ReplaceAllString(origTitle, "")) - 1

	if curTitleWordCount <= 4 && (!titleHadHierarchicalSeparators || curTitleWordCount != strippedWordCount) {
		curTitle = origTitle
	}

	return curTitle
}

// getArticleFavicon attempts to get high quality favicon that used in
// article. It will only pick favicon in PNG format, so small favicon that
// uses ico file won't be picked. Works for both standard rel="icon" and
// rel="shortcut icon", preferring the largest declared size.
func (r *Readability) getArticleFavicon() string {
	favicon := ""
	faviconSize := -1
	linkElements := getElementsByTagName(r.doc, "link")

	r.forEachNode(linkElements, func(link *html.Node, _ int) {
		elementRel := getAttribute(link, "rel")
		elementType := getAttribute(link, "type")

		if elementRel != "shortcut icon" && elementRel != "icon" {
			return
		}

		href := getAttribute(link, "href")
		if href == "" {
			return
		}

		if elementType != "image/png" && !strings.HasSuffix(strings.ToLower(href), ".png") {
			return
		}

		size := 0
		sizesAttr := getAttribute(link, "sizes")
		if matches := rxFaviconSize.FindStringSubmatch(sizesAttr); len(matches) == 3 {
			w := atoiSafe(matches[1])
			h := atoiSafe(matches[2])
			if w == h {
				size = w
			}
		}

		if size > faviconSize {
			faviconSize = size
			favicon = toAbsoluteURI(href, r.documentURI)
		}
	})

	return favicon
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// jsonLDMetadata is the subset of schema.org Article fields this module
// understands.
type jsonLDMetadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime string
	Image         string
}

// getJSONLD extracts metadata from a <script type="application/ld+json">
// object describing a schema.org Article (or one of its subtypes). Only the
// first matching script is used, mirroring the single-document assumption
// the rest of the metadata pass makes.
func (r *Readability) getJSONLD() *jsonLDMetadata {
	scripts := getElementsByTagName(r.doc, "script")

	for _, script := range scripts {
		if getAttribute(script, "type") != "application/ld+json" {
			continue
		}

		content := textContent(script)
		content = rxJSONLDCDATA.ReplaceAllString(content, "")
		content = strings.TrimSpace(content)

		if content == "" {
			continue
		}

		parsed, ok := decodeJSONLDArticle(content)
		if !ok {
			continue
		}

		if !jsonLDContextIsSchemaOrg(parsed) {
			continue
		}

		if _, hasType := parsed["@type"]; !hasType {
			if graph, ok := parsed["@graph"].([]interface{}); ok {
				found := false
				for _, item := range graph {
					if itemMap, ok := item.(map[string]interface{}); ok {
						if itemType, ok := itemMap["@type"].(string); ok && rxJSONLDArticleTypes.MatchString(itemType) {
							parsed = itemMap
							found = true
							break
						}
					}
				}

				if !found {
					continue
				}
			}
		}

		itemType, _ := parsed["@type"].(string)
		if !rxJSONLDArticleTypes.MatchString(itemType) {
			continue
		}

		metadata := &jsonLDMetadata{}

		if name, ok := parsed["name"].(string); ok && name != "" {
			metadata.Title = strings.TrimSpace(name)
		} else if headline, ok := parsed["headline"].(string); ok && headline != "" {
			metadata.Title = strings.TrimSpace(headline)
		}

		metadata.Byline = jsonLDAuthorName(parsed["author"])

		if description, ok := parsed["description"].(string); ok {
			metadata.Excerpt = strings.TrimSpace(description)
		}

		if publisher, ok := parsed["publisher"].(map[string]interface{}); ok {
			if publisherName, ok := publisher["name"].(string); ok {
				metadata.SiteName = strings.TrimSpace(publisherName)
			}
		}

		if datePublished, ok := parsed["datePublished"].(string); ok {
			metadata.PublishedTime = strings.TrimSpace(datePublished)
		}

		switch image := parsed["image"].(type) {
		case string:
			metadata.Image = strings.TrimSpace(image)
		case map[string]interface{}:
			if url, ok := image["url"].(string); ok {
				metadata.Image = strings.TrimSpace(url)
			}
		case []interface{}:
			if len(image) > 0 {
				if s, ok := image[0].(string); ok {
					metadata.Image = strings.TrimSpace(s)
				}
			}
		}

		return metadata
	}

	return nil
}

// decodeJSONLDArticle decodes a JSON-LD payload that may be a bare object or
// an array of objects, returning the first entry whose @type matches the
// Article family when given an array.
func decodeJSONLDArticle(content string) (map[string]interface{}, bool) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(content), &parsed); err == nil {
		return parsed, true
	}

	var parsedArray []map[string]interface{}
	if err := json.Unmarshal([]byte(content), &parsedArray); err != nil {
		return nil, false
	}

	for _, item := range parsedArray {
		if itemType, ok := item["@type"].(string); ok && rxJSONLDArticleTypes.MatchString(itemType) {
			return item, true
		}
	}

	return nil, false
}

func jsonLDContextIsSchemaOrg(parsed map[string]interface{}) bool {
	switch context := parsed["@context"].(type) {
	case string:
		return rxSchemaDotOrg.MatchString(context)
	case map[string]interface{}:
		if vocab, ok := context["@vocab"].(string); ok {
			return rxSchemaDotOrg.MatchString(vocab)
		}
	}

	return false
}

// jsonLDAuthorName extracts an author display name from either a single
// author object or an array of author objects, joining multiple names with
// a comma.
func jsonLDAuthorName(author interface{}) string {
	switch v := author.(type) {
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	case []interface{}:
		var names []string
		for _, a := range v {
			if authorMap, ok := a.(map[string]interface{}); ok {
				if name, ok := authorMap["name"].(string); ok {
					names = append(names, strings.TrimSpace(name))
				}
			}
		}

		return strings.Join(names, ", ")
	case string:
		return strings.TrimSpace(v)
	}

	return ""
}
