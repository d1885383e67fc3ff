package entities

import "strings"

// Page is one of the public sections media can be attached to.
type Page string

const (
	PageHome      Page = "home"
	PageAbout     Page = "about"
	PageServices  Page = "services"
	PagePortfolio Page = "portfolio"
)

// Pages lists the sections in the order the admin panel shows them.
var Pages = []Page{PageHome, PageAbout, PageServices, PagePortfolio}

func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageAbout, PageServices, PagePortfolio:
		return true
	}
	return false
}

func (p Page) String() string {
	return string(p)
}

// ParsePage returns fallback for any value outside the fixed set.
func ParsePage(value string, fallback Page) Page {
	p := Page(strings.TrimSpace(value))
	if p.IsValid() {
		return p
	}
	return fallback
}
