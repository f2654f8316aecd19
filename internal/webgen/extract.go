package webgen

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageContent is the reusable part of a rendered resume page: its inline
// stylesheet and its body markup, with per-page scripts and the language
// switcher removed so the bundle can supply its own.
type PageContent struct {
	Style string
	Body  string
}

// ExtractContent pulls the first inline <style> block and the cleaned
// body markup out of a rendered HTML page.
func ExtractContent(htmlSource string) (PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSource))
	if err != nil {
		return PageContent{}, fmt.Errorf("%w: %v", ErrExtractHTML, err)
	}

	style := doc.Find("style").First().Text()

	body := doc.Find("body")
	body.Find("script").Remove()
	body.Find("#lang-switcher").Remove()

	bodyHTML, err := body.Html()
	if err != nil {
		return PageContent{}, fmt.Errorf("%w: %v", ErrExtractHTML, err)
	}

	return PageContent{Style: style, Body: bodyHTML}, nil
}
