package readability

import (
	"strings"

	"golang.org/x/net/html"
)

// lazySrcAttrs is the attribute priority list consulted when an <img>'s
// real src is missing or is a tiny placeholder: the first of these that
// looks like a URL wins.
var lazySrcAttrs = []string{"data-src", "data-original", "data-lazy-src"}

// lazySrcsetAttrs mirrors lazySrcAttrs for the srcset attribute.
var lazySrcsetAttrs = []string{"data-srcset", "data-lazy-srcset"}

// unwrapNoscriptImages handles <noscript> elements whose text content parses
// as a single <img>. When the noscript immediately follows an element that
// is (or wraps) a single image (the common
// "<img loading=lazy><noscript><img></noscript>" pattern), that element is
// replaced by the noscript's image, which takes over any non-empty
// src/srcset/data-src/data-srcset it lacks, and the noscript is removed.
// Otherwise the noscript itself is replaced by its image. If the image
// instead follows the noscript, it is moved ahead of it first so the same
// check applies.
func (r *Readability) unwrapNoscriptImages(top *html.Node) {
	noscripts := getElementsByTagName(top, "noscript")

	r.forEachNode(noscripts, func(noscript *html.Node, _ int) {
		content := textContent(noscript)

		tmpDoc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return
		}

		bodies := getElementsByTagName(tmpDoc, "body")
		if len(bodies) == 0 || !isSingleImage(bodies[0]) {
			return
		}

		if next := nextElementSibling(noscript); next != nil && isSingleImage(next) && noscript.Parent != nil {
			noscript.Parent.InsertBefore(cloneNode(next), noscript)
			noscript.Parent.RemoveChild(next)
		}

		replacement := firstElementChild(bodies[0])
		if replacement == nil || noscript.Parent == nil {
			return
		}

		prev := previousElementSibling(noscript)
		if prev == nil || !isSingleImage(prev) {
			replaceNode(noscript, replacement)
			return
		}

		prevImg := getElementsByTagName(prev, "img")[0]
		newImg := getElementsByTagName(replacement, "img")[0]
		for _, key := range []string{"src", "srcset", "data-src", "data-srcset"} {
			if v := getAttribute(prevImg, key); v != "" && getAttribute(newImg, key) == "" {
				setAttribute(newImg, key, v)
			}
		}

		replaceNode(prev, replacement)
		noscript.Parent.RemoveChild(noscript)
	})
}

// isSingleImage reports whether node is an <img>, or wraps nothing but a
// single descendant chain that bottoms out at one.
func isSingleImage(node *html.Node) bool {
	if tagName(node) == "img" {
		return true
	}

	childs := children(node)
	if len(childs) != 1 || strings.TrimSpace(textContent(node)) != "" {
		return false
	}

	return isSingleImage(childs[0])
}

// fixLazyImages normalizes lazy-loaded <img>, <picture> and <figure>
// subtrees: when an <img>'s src is empty or looks like a tiny base64
// placeholder, it is replaced with the first lazy-loading attribute
// (data-src, then data-srcset, then any other attribute ending in "src" or
// "srcset" whose value looks like a URL).
func (r *Readability) fixLazyImages(top *html.Node) {
	imgs := r.getAllNodesWithTag(top, "img", "picture", "figure")

	r.forEachNode(imgs, func(elem *html.Node, _ int) {
		src := getAttribute(elem, "src")

		if src != "" && !isTinyPlaceholder(src) {
			return
		}

		if v := firstURLAttribute(elem, lazySrcAttrs...); v != "" {
			setAttribute(elem, "src", v)
		}

		if v := firstAttribute(elem, lazySrcsetAttrs...); v != "" {
			setAttribute(elem, "srcset", v)
		}

		if getAttribute(elem, "src") == "" && getAttribute(elem, "srcset") == "" {
			for _, attr := range elem.Attr {
				if attr.Key == "src" || attr.Key == "srcset" {
					continue
				}

				if strings.HasSuffix(attr.Key, "src") && looksLikeURL(attr.Val) {
					setAttribute(elem, "src", attr.Val)
					break
				}

				if strings.HasSuffix(attr.Key, "srcset") && looksLikeURL(attr.Val) {
					setAttribute(elem, "srcset", attr.Val)
					break
				}
			}
		}
	})

	r.convertPictureNodes(top)
}

// isTinyPlaceholder reports whether src is a minuscule base64-encoded
// placeholder image (the typical lazy-loading "blank" src), rather than a
// genuine image worth keeping over a data-src fallback.
func isTinyPlaceholder(src string) bool {
	if !strings.HasPrefix(src, "data:image/") {
		return false
	}

	idx := strings.Index(src, ",")
	return idx != -1 && len(src)-idx < 200
}

// convertPictureNodes collapses <picture> elements into a single <img> by
// merging every <source srcset> (and the <img>'s own src/srcset) into the
// img's srcset, then replacing the <picture> with that img. Images kept
// inside a <figure> have their class/id stripped instead, so later
// class-weight heuristics don't discard the figure as boilerplate.
func (r *Readability) convertPictureNodes(top *html.Node) {
	r.forEachNode(getElementsByTagName(top, "picture"), func(picture *html.Node, _ int) {
		imgs := getElementsByTagName(picture, "img")

		var img *html.Node
		if len(imgs) == 0 {
			img = createElement("img")
		} else {
			img = imgs[0]
		}

		var set []string
		for _, source := range getElementsByTagName(picture, "source") {
			if hasAttribute(source, "srcset") {
				set = append(set, getAttribute(source, "srcset"))
			}
		}

		if hasAttribute(img, "srcset") {
			set = append(set, getAttribute(img, "srcset"))
		}

		if hasAttribute(img, "src") {
			set = append(set, getAttribute(img, "src"))
		}

		if len(set) > 0 {
			setAttribute(img, "srcset", strings.Join(set, ", "))
		}

		if picture.Parent != nil {
			replaceNode(picture, img)
		}
	})

	r.forEachNode(getElementsByTagName(top, "figure"), func(figure *html.Node, _ int) {
		if len(getElementsByTagName(figure, "img")) == 0 {
			return
		}

		removeAttribute(figure, "class")
		removeAttribute(figure, "id")

		for child := firstElementChild(figure); child != nil; child = nextElementSibling(child) {
			removeAttribute(child, "class")
			removeAttribute(child, "id")
		}
	})
}
