// Package timeline drives the case study process carousel: which slide is
// showing, how clicks and keys move through it, and how a slide is laid out.
package timeline

// Fit is how an image fills its frame.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
)

// normalize returns f when it is a known fit and cover otherwise.
func (f Fit) normalize() Fit {
	if f == FitContain {
		return FitContain
	}
	return FitCover
}

// RawSlide is a slide as written in the case study data. Its shape decides
// its kind; see Classify.
type RawSlide struct {
	Title       string    `yaml:"title,omitempty" json:"title,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Images      []string  `yaml:"image,omitempty" json:"image,omitempty"`
	Ratios      []float64 `yaml:"ratio,omitempty" json:"ratio,omitempty"`
	Fits        []Fit     `yaml:"fit,omitempty" json:"fit,omitempty"`
	Positions   []string  `yaml:"position,omitempty" json:"position,omitempty"`
	Caption     string    `yaml:"text,omitempty" json:"text,omitempty"`
}

// Kind tags the slide variants.
type Kind int

const (
	KindEmpty Kind = iota
	KindIntro
	KindSingleImage
	KindDualImage
)

func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "intro"
	case KindSingleImage:
		return "single"
	case KindDualImage:
		return "dual"
	}
	return "empty"
}

// Slide is one of Intro, SingleImage, DualImage or Empty.
type Slide interface {
	Kind() Kind
	slide()
}

// Intro is a text-only slide. The carousel cannot step back from it.
type Intro struct {
	Title       string
	Description string
}

// Frame is one image and how it sits in its box. Zero Ratio means the
// layout default.
type Frame struct {
	Image    string
	Ratio    float64
	Fit      Fit
	Position string
}

// SingleImage shows one framed image.
type SingleImage struct {
	Frame   Frame
	Caption string
}

// DualImage shows two framed images side by side.
type DualImage struct {
	Frames  [2]Frame
	Caption string
}

// Empty stands in for any slide shape that cannot be shown.
type Empty struct{}

func (Intro) Kind() Kind       { return KindIntro }
func (SingleImage) Kind() Kind { return KindSingleImage }
func (DualImage) Kind() Kind   { return KindDualImage }
func (Empty) Kind() Kind       { return KindEmpty }

func (Intro) slide()       {}
func (SingleImage) slide() {}
func (DualImage) slide()   {}
func (Empty) slide()       {}

// Classify turns a raw slide into its variant: no images is an Intro, one
// or two images are SingleImage or DualImage, anything else is Empty.
func Classify(r RawSlide) Slide {
	switch len(r.Images) {
	case 0:
		return Intro{Title: r.Title, Description: r.Description}
	case 1:
		return SingleImage{Frame: r.frame(0), Caption: r.Caption}
	case 2:
		return DualImage{Frames: [2]Frame{r.frame(0), r.frame(1)}, Caption: r.Caption}
	}
	return Empty{}
}

// ClassifyAll classifies every raw slide in order.
func ClassifyAll(raw []RawSlide) []Slide {
	out := make([]Slide, len(raw))
	for i, r := range raw {
		out[i] = Classify(r)
	}
	return out
}

func (r RawSlide) frame(i int) Frame {
	f := Frame{Image: r.Images[i]}
	if i < len(r.Ratios) && r.Ratios[i] > 0 {
		f.Ratio = r.Ratios[i]
	}
	if i < len(r.Fits) {
		f.Fit = r.Fits[i]
	}
	if i < len(r.Positions) {
		f.Position = r.Positions[i]
	}
	return f
}
