// Package content holds the case studies shown on the site and the small
// text helpers their pages need.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kanefernandez/portfolio/internal/timeline"
)

//go:embed casestudies.yaml
var embeddedCatalog []byte

var ErrNotFound = errors.New("case study not found")

// Service is one of the two kinds of work on the home page.
type Service string

const (
	ServiceWebsite  Service = "Website"
	ServiceBranding Service = "Branding"
)

// ParseService maps a query value to a service, defaulting to Website.
func ParseService(s string) Service {
	if strings.EqualFold(s, string(ServiceBranding)) {
		return ServiceBranding
	}
	return ServiceWebsite
}

// Presentation is one full-width card of a branding study.
type Presentation struct {
	Image      string `yaml:"image"`
	Link       string `yaml:"link,omitempty"`
	CursorText string `yaml:"cursorText,omitempty"`
	First      bool   `yaml:"firstIndex,omitempty"`
	Last       bool   `yaml:"lastIndex,omitempty"`
}

// Edge reports whether the card is the first or last of its study. Only
// edge cards show the pointer label.
func (p Presentation) Edge() bool { return p.First || p.Last }

// CaseStudy is one project page.
type CaseStudy struct {
	Page               string              `yaml:"page"`
	Video              bool                `yaml:"video"`
	Color              string              `yaml:"color"`
	CompanyName        string              `yaml:"companyName"`
	CompanyLogo        string              `yaml:"companyLogo,omitempty"`
	Desc               string              `yaml:"desc"`
	ProjectDescription string              `yaml:"projectDescription,omitempty"`
	Src                string              `yaml:"src"`
	CTAText            string              `yaml:"ctaText,omitempty"`
	ProjectLink        string              `yaml:"projectLink,omitempty"`
	Slogan             string              `yaml:"slogan,omitempty"`
	Timeline           []timeline.RawSlide `yaml:"timeline,omitempty"`
	TestimonialText    string              `yaml:"testimonialText,omitempty"`
	TestimonialImages  []string            `yaml:"testimonialImages,omitempty"`
	TestimonialAuthor  string              `yaml:"testimonialAuthor,omitempty"`
	AnimationImages    []string            `yaml:"animationImages,omitempty"`
	Presentation       []Presentation      `yaml:"presentation,omitempty"`
}

// Slug is the lowercased last segment of the study's page path.
func (c CaseStudy) Slug() string {
	return LastSegment(c.Page)
}

// CTA is the label of the hero video link.
func (c CaseStudy) CTA() string {
	if c.CTAText == "" {
		return "View project"
	}
	return "View " + c.CTAText
}

// Slides classifies the study's timeline.
func (c CaseStudy) Slides() []timeline.Slide {
	return timeline.ClassifyAll(c.Timeline)
}

// IsVideo reports whether the study's media is a video.
func (c CaseStudy) IsVideo() bool {
	return c.Video || strings.HasSuffix(c.Src, ".mp4")
}

// LastSegment returns the lowercased final non-empty segment of a path.
func LastSegment(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}

// Catalog is every case study on the site.
type Catalog struct {
	Website  []CaseStudy `yaml:"website"`
	Branding []CaseStudy `yaml:"branding"`
}

// Load decodes and validates a catalog.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	for _, s := range append(append([]CaseStudy(nil), c.Website...), c.Branding...) {
		slug := s.Slug()
		if slug == "" {
			return fmt.Errorf("case study %q has no page", s.CompanyName)
		}
		if seen[slug] {
			return fmt.Errorf("duplicate case study slug %q", slug)
		}
		seen[slug] = true
	}
	return nil
}

// Studies lists the case studies for a service.
func (c *Catalog) Studies(s Service) []CaseStudy {
	if s == ServiceBranding {
		return c.Branding
	}
	return c.Website
}

// Find looks a slug up among website studies, then branding studies.
func (c *Catalog) Find(slug string) (CaseStudy, Service, error) {
	slug = strings.ToLower(slug)
	for _, s := range c.Website {
		if s.Slug() == slug {
			return s, ServiceWebsite, nil
		}
	}
	for _, s := range c.Branding {
		if s.Slug() == slug {
			return s, ServiceBranding, nil
		}
	}
	return CaseStudy{}, "", fmt.Errorf("%w: %q", ErrNotFound, slug)
}
