package timeline

// Default frame aspect ratios.
const (
	SingleRatio = 1248.0 / 492.0
	DualRatio   = 392.0 / 492.0

	DefaultPosition = "50% 50%"
	Placeholder     = "No process content yet."
)

// FrameView is a frame with every default filled in.
type FrameView struct {
	Src      string
	Ratio    float64
	Fit      Fit
	Position string
}

// View is everything a template needs to draw the current slide.
type View struct {
	Kind        Kind
	Title       string
	Description string
	Frames      []FrameView
	Caption     string
	Placeholder string
}

// Render lays out a slide. Dual image slides show only their first image
// when wide is false.
func Render(s Slide, wide bool) View {
	switch s := s.(type) {
	case Intro:
		if s.Title == "" && s.Description == "" {
			return emptyView()
		}
		return View{Kind: KindIntro, Title: s.Title, Description: s.Description}
	case SingleImage:
		return View{
			Kind:    KindSingleImage,
			Frames:  []FrameView{frameView(s.Frame, SingleRatio)},
			Caption: s.Caption,
		}
	case DualImage:
		frames := []FrameView{frameView(s.Frames[0], DualRatio)}
		if wide {
			frames = append(frames, frameView(s.Frames[1], DualRatio))
		}
		return View{Kind: KindDualImage, Frames: frames, Caption: s.Caption}
	case Empty:
		return emptyView()
	}
	return emptyView()
}

func emptyView() View {
	return View{Kind: KindEmpty, Placeholder: Placeholder}
}

func frameView(f Frame, ratio float64) FrameView {
	v := FrameView{Src: f.Image, Ratio: ratio, Fit: f.Fit.normalize(), Position: f.Position}
	if f.Ratio > 0 {
		v.Ratio = f.Ratio
	}
	if v.Position == "" {
		v.Position = DefaultPosition
	}
	return v
}
