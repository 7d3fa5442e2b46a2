package content

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Fallbacks for studies without their own testimonial.
const DefaultTestimonial = "Kane is warm and friendly [img0], with passion [img1] and proven dedication [img2]."

var DefaultTestimonialImages = []string{"/image.png", "/image.png", "/image.png"}

var imgToken = regexp.MustCompile(`\[img(\d+)\]`)

// Part is a run of testimonial text or an inline image. Exactly one of
// Text and Image is set.
type Part struct {
	Text  string
	Image string
	Index int
}

// Testimonial is a quote with inline images.
type Testimonial struct {
	Parts  []Part
	Author string
}

// Testimonial builds the study's quote, falling back to the defaults.
func (c CaseStudy) Testimonial() Testimonial {
	text := c.TestimonialText
	if text == "" {
		text = DefaultTestimonial
	}
	images := c.TestimonialImages
	if images == nil {
		images = DefaultTestimonialImages
	}
	return Testimonial{Parts: ParseTestimonial(text, images), Author: c.TestimonialAuthor}
}

// ParseTestimonial splits text on [imgN] tokens. A token whose index has no
// image is dropped.
func ParseTestimonial(text string, images []string) []Part {
	var parts []Part
	last := 0
	for _, m := range imgToken.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			parts = append(parts, Part{Text: text[last:m[0]]})
		}
		last = m[1]

		idx, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || idx >= len(images) || images[idx] == "" {
			continue
		}
		parts = append(parts, Part{Image: images[idx], Index: idx})
	}
	if last < len(text) {
		parts = append(parts, Part{Text: text[last:]})
	}
	return parts
}

// SplitTwoLines breaks a slogan into two visual lines, the first holding
// the larger half of the words.
func SplitTwoLines(text string) (string, string) {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text, ""
	}
	mid := int(math.Ceil(float64(len(words)) / 2))
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}
