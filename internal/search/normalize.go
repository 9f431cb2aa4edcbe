package search

import (
	"fmt"
	"strconv"
	"strings"

	"bookfolio/internal/platform/googlebooks"
	"bookfolio/internal/platform/openlibrary"
)

// Sentinels applied when a provider record carries no usable value.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// NormalizeVolume maps a raw Google Books volume onto the canonical record.
// All default and fallback rules live here so the mapping stays a pure,
// total function.
func NormalizeVolume(v googlebooks.Volume) SearchResult {
	info := v.VolumeInfo

	isbn := pickISBN(info.IndustryIdentifiers)

	cover := bestImageLink(info.ImageLinks)
	if cover == "" && isbn != "" {
		cover = openlibrary.CoverURLByISBN(isbn, openlibrary.CoverLarge)
	}
	cover = upgradeCoverURL(cover)

	title := info.Title
	if title == "" {
		title = UnknownTitle
	}
	author := strings.Join(info.Authors, ", ")
	if author == "" {
		author = UnknownAuthor
	}

	return SearchResult{
		ID:            v.ID,
		Title:         title,
		Author:        author,
		Cover:         cover,
		CoverLarge:    cover,
		Genre:         first(info.Categories),
		Description:   info.Description,
		ISBN:          isbn,
		PublishedDate: info.PublishedDate,
		PageCount:     max(info.PageCount, 0),
		Source:        SourceGoogle,
		RatingsCount:  info.RatingsCount,
		AverageRating: info.AverageRating,
	}
}

// NormalizeDoc maps a raw Open Library doc onto the canonical record. Docs
// without a numeric cover id are not viable (Open Library returns many
// coverless records) and are reported with ok=false.
func NormalizeDoc(d openlibrary.Doc) (SearchResult, bool) {
	if d.CoverID <= 0 {
		return SearchResult{}, false
	}

	cover := openlibrary.CoverURLByID(d.CoverID, openlibrary.CoverLarge)

	id := d.Key
	if id == "" {
		id = fmt.Sprintf("ol-%d", d.CoverID)
	}

	title := d.Title
	if title == "" {
		title = UnknownTitle
	}
	author := strings.Join(d.AuthorNames, ", ")
	if author == "" {
		author = UnknownAuthor
	}

	published := ""
	if d.FirstPublishYear != 0 {
		published = strconv.Itoa(d.FirstPublishYear)
	}

	return SearchResult{
		ID:            id,
		Title:         title,
		Author:        author,
		Cover:         cover,
		CoverLarge:    cover,
		Genre:         first(d.Subjects),
		ISBN:          first(d.ISBN),
		PublishedDate: published,
		PageCount:     max(d.PagesMedian, 0),
		Source:        SourceOpenLibrary,
	}, true
}

// bestImageLink picks the richest cover variant Google supplied.
func bestImageLink(links *googlebooks.ImageLinks) string {
	if links == nil {
		return ""
	}
	for _, u := range []string{links.ExtraLarge, links.Large, links.Medium, links.Thumbnail, links.SmallThumbnail} {
		if u != "" {
			return u
		}
	}
	return ""
}

// pickISBN prefers ISBN-13 over ISBN-10.
func pickISBN(ids []googlebooks.IndustryIdentifier) string {
	var isbn10 string
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}
	return isbn10
}

// upgradeCoverURL forces HTTPS, requests a larger zoom level for cropped
// thumbnails, and strips the page-curl effect Google adds to some covers.
func upgradeCoverURL(u string) string {
	u = strings.Replace(u, "http://", "https://", 1)
	u = strings.Replace(u, "&zoom=1", "&zoom=3", 1)
	u = strings.Replace(u, "&edge=curl", "", 1)
	return u
}

// hasUsableCover reports whether a cover URL points at a real image rather
// than a known placeholder.
func hasUsableCover(r SearchResult) bool {
	if r.Cover == "" {
		return false
	}
	if strings.Contains(r.Cover, "no-cover") || strings.Contains(r.Cover, "placeholder") {
		return false
	}
	return true
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
