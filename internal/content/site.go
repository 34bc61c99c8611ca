// Package content loads the site's static copy: navigation entries,
// section text, services and testimonials.
package content

import (
	"github.com/nfrund/gogoz/internal/nav"
)

// Site is the full set of copy rendered on the page.
type Site struct {
	Brand        string       `yaml:"brand" validate:"required"`
	Tagline      string       `yaml:"tagline"`
	Lang         string       `yaml:"lang" validate:"omitempty,bcp47_language_tag"`
	Nav          []NavItem    `yaml:"nav" validate:"required,min=1,dive"`
	Hero         Hero         `yaml:"hero"`
	About        About        `yaml:"about"`
	Services     Services     `yaml:"services"`
	Testimonials Testimonials `yaml:"testimonials"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

// NavItem is a navigation entry as written in the content file.
type NavItem struct {
	Label  string `yaml:"label" validate:"required"`
	Anchor string `yaml:"anchor" validate:"required,startswith=#"`
	Icon   string `yaml:"icon"`
}

type Hero struct {
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	Video    string `yaml:"video"`
}

// About paragraphs are markdown; HTML holds the sanitised rendering.
type About struct {
	Title      string   `yaml:"title" validate:"required"`
	Paragraphs []string `yaml:"paragraphs" validate:"dive,required"`
	HTML       []string `yaml:"-"`
}

type Services struct {
	Title string    `yaml:"title" validate:"required"`
	Items []Service `yaml:"items" validate:"dive"`
}

type Service struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Testimonials struct {
	Title string        `yaml:"title" validate:"required"`
	Items []Testimonial `yaml:"items" validate:"required,min=1,dive"`
}

// Testimonial is one carousel entry. Image is an asset reference resolved
// through Assets.
type Testimonial struct {
	Quote  string `yaml:"quote" validate:"required"`
	Author string `yaml:"author" validate:"required"`
	Role   string `yaml:"role"`
	Image  string `yaml:"image"`
}

type Contact struct {
	Title              string `yaml:"title" validate:"required"`
	NameLabel          string `yaml:"name_label"`
	EmailLabel         string `yaml:"email_label"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	MessageLabel       string `yaml:"message_label"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	SubmitLabel        string `yaml:"submit_label"`
	InfoTitle          string `yaml:"info_title"`
	Address            string `yaml:"address"`
	Phone              string `yaml:"phone"`
	Email              string `yaml:"email" validate:"omitempty,email"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
	Social    []Link `yaml:"social" validate:"dive"`
}

type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// NavEntries converts the content entries into navigation entries.
func (s *Site) NavEntries() []nav.Entry {
	entries := make([]nav.Entry, 0, len(s.Nav))
	for _, item := range s.Nav {
		entries = append(entries, nav.Entry{Label: item.Label, Anchor: item.Anchor, Icon: item.Icon})
	}
	return entries
}
