package scrape

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
)

// extractMetadata looks up each optional head field independently. Every
// lookup is absent-tolerant: a missing element, or one without a content
// value, simply omits its key. Open Graph fields go through the
// opengraph parser first, with a direct meta-tag lookup as fallback.
func extractMetadata(doc *goquery.Document, raw []byte) Metadata {
	meta := Metadata{}

	if title := doc.Find("title").First().Text(); title != "" {
		meta[MetaTitle] = title
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		meta[MetaDescription] = desc
	}
	if keywords, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok && keywords != "" {
		meta[MetaKeywords] = keywords
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(raw)); err == nil {
		if og.Title != "" {
			meta[MetaOGTitle] = og.Title
		}
		if og.Description != "" {
			meta[MetaOGDescription] = og.Description
		}
	}
	if _, ok := meta[MetaOGTitle]; !ok {
		if title, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && title != "" {
			meta[MetaOGTitle] = title
		}
	}
	if _, ok := meta[MetaOGDescription]; !ok {
		if desc, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok && desc != "" {
			meta[MetaOGDescription] = desc
		}
	}

	return meta
}
