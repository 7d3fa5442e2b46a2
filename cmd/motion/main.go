//go:build js && wasm

// Command motion runs the slogan sequencer, the process carousel and the
// hero cursor in the browser. Build it with GOOS=js GOARCH=wasm.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"syscall/js"

	"github.com/kanefernandez/portfolio/internal/host"
	"github.com/kanefernandez/portfolio/internal/motion"
	"github.com/kanefernandez/portfolio/internal/timeline"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("motion: ")

	doc := js.Global().Get("document")
	env := newPage(doc)
	out := &renderer{doc: doc}

	var layers []string
	for _, el := range out.all("[data-slogan-layer]") {
		layers = append(layers, el.Get("src").String())
	}
	slides, index, err := readTimeline(doc)
	if err != nil {
		log.Printf("timeline disabled: %v", err)
	}

	d := host.NewDriver(env, out, layers, slides, index)
	if err := d.Start(); err != nil {
		log.Printf("start: %v", err)
		return
	}
	js.Global().Set("motionDriven", true)

	done := make(chan struct{})
	release := jsTarget{js.Global()}.Listen("pagehide", func(host.Event) {
		d.Close()
		js.Global().Set("motionDriven", false)
		close(done)
	})
	<-done
	release()
}

// readTimeline decodes the slide data the server embedded in the carousel.
func readTimeline(doc js.Value) ([]timeline.Slide, int, error) {
	carousel := doc.Call("querySelector", "[data-carousel]")
	if carousel.IsNull() {
		return nil, 0, nil
	}
	index, _ := strconv.Atoi(carousel.Get("dataset").Get("index").String())

	data := carousel.Call("querySelector", "[data-timeline]")
	if data.IsNull() {
		return nil, index, nil
	}
	var raw []timeline.RawSlide
	if err := json.Unmarshal([]byte(data.Get("textContent").String()), &raw); err != nil {
		return nil, index, fmt.Errorf("decode slides: %w", err)
	}
	return timeline.ClassifyAll(raw), index, nil
}

// jsTarget adapts a DOM EventTarget.
type jsTarget struct{ v js.Value }

func (t jsTarget) Listen(event string, fn host.Listener) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(toEvent(event, args[0]))
		} else {
			fn(host.Event{Type: event})
		}
		return nil
	})
	t.v.Call("addEventListener", event, cb)
	return func() {
		t.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func toEvent(typ string, ev js.Value) host.Event {
	e := host.Event{
		Type:    typ,
		Prevent: func() { ev.Call("preventDefault") },
		Stop:    func() { ev.Call("stopPropagation") },
	}
	if k := ev.Get("key"); k.Type() == js.TypeString {
		e.Key = k.String()
	}
	if x := ev.Get("clientX"); x.Type() == js.TypeNumber {
		e.X = x.Float()
		e.Y = ev.Get("clientY").Float()
	}
	if m := ev.Get("matches"); m.Type() == js.TypeBoolean {
		e.Matches = m.Bool()
	}
	if t := ev.Get("target"); t.Type() == js.TypeObject && t.Get("closest").Type() == js.TypeFunction {
		e.Interactive = !t.Call("closest", interactiveSelector).IsNull()
	}
	return e
}

// interactiveSelector matches elements that act on Enter or Space themselves.
const interactiveSelector = "a[href], button, input, select, textarea, summary, [contenteditable]"


// page is the browser environment.
type page struct {
	win, doc js.Value
	targets  map[string]js.Value
	motion   js.Value
}

func newPage(doc js.Value) *page {
	win := js.Global()
	p := &page{win: win, doc: doc, targets: map[string]js.Value{host.TargetWindow: win}}
	for name, sel := range map[string]string{
		host.TargetCarousel: "[data-carousel]",
		host.TargetNext:     "[data-next]",
		host.TargetPrev:     "[data-prev]",
		host.TargetHero:     "[data-hero]",
	} {
		if el := doc.Call("querySelector", sel); !el.IsNull() {
			p.targets[name] = el
		}
	}
	if mm := win.Get("matchMedia"); mm.Type() == js.TypeFunction {
		p.motion = win.Call("matchMedia", "(prefers-reduced-motion: reduce)")
		p.targets[host.TargetReducedMotion] = p.motion
	}
	return p
}

func (p *page) Target(name string) host.EventTarget {
	v, ok := p.targets[name]
	if !ok {
		return nil
	}
	return jsTarget{v}
}

func (p *page) RequestFrame(fn func(now float64)) func() {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn(args[0].Float())
		return nil
	})
	id := p.win.Call("requestAnimationFrame", cb)
	return func() {
		p.win.Call("cancelAnimationFrame", id)
		cb.Release()
	}
}

func (p *page) Metrics() host.Metrics {
	m := host.Metrics{
		ScrollY:        p.win.Get("scrollY").Float(),
		ViewportWidth:  p.win.Get("innerWidth").Float(),
		ViewportHeight: p.win.Get("innerHeight").Float(),
	}
	if region := p.doc.Call("querySelector", "[data-slogan]"); !region.IsNull() {
		m.RegionTop = region.Call("getBoundingClientRect").Get("top").Float() + m.ScrollY
		m.RegionHeight = region.Get("offsetHeight").Float()
	}
	if intro := p.doc.Call("querySelector", "[data-intro]"); !intro.IsNull() {
		m.IntroTop = intro.Call("getBoundingClientRect").Get("top").Float() + m.ScrollY
		m.IntroHeight = intro.Get("offsetHeight").Float()
		m.DocumentHeight = p.doc.Get("documentElement").Get("scrollHeight").Float()
	}
	if c, ok := p.targets[host.TargetCarousel]; ok {
		r := c.Call("getBoundingClientRect")
		m.Carousel = timeline.Region{Left: r.Get("left").Float(), Width: r.Get("width").Float()}
	}
	return m
}

func (p *page) PrefersReducedMotion() bool {
	if p.doc.Get("cookie").Call("includes", "reduced_motion=1").Bool() {
		return true
	}
	if p.motion.IsUndefined() {
		return false
	}
	return p.motion.Get("matches").Bool()
}

// renderer writes core output into inline styles and attributes.
type renderer struct {
	doc    js.Value
	layers []js.Value
	panels []js.Value
	pinned bool
}

func (r *renderer) all(sel string) []js.Value {
	list := r.doc.Call("querySelectorAll", sel)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func (r *renderer) Layers(states []motion.LayerState) {
	if r.layers == nil {
		r.layers = r.all("[data-slogan-layer]")
	}
	for i, st := range states {
		if i >= len(r.layers) {
			break
		}
		style := r.layers[i].Get("style")
		style.Set("opacity", strconv.FormatFloat(st.Opacity, 'f', 3, 64))
		style.Set("transform", fmt.Sprintf("translateY(%.1fpx) scale(%.3f)", st.VerticalOffset, st.Scale))
	}
}

func (r *renderer) Slide(index int, view timeline.View, chrome host.SlideChrome) {
	for _, el := range r.all("[data-slide]") {
		i, _ := strconv.Atoi(el.Get("dataset").Get("slide").String())
		el.Set("hidden", i != index)
		if i != index {
			continue
		}
		if second := el.Call("querySelector", `[data-frame="1"]`); !second.IsNull() {
			second.Get("classList").Call("toggle", "hidden", len(view.Frames) < 2)
		}
	}

	if carousel := r.doc.Call("querySelector", "[data-carousel]"); !carousel.IsNull() {
		carousel.Get("dataset").Set("index", index)
	}
	if prev := r.doc.Call("querySelector", "[data-prev]"); !prev.IsNull() {
		prev.Call("setAttribute", "aria-disabled", strconv.FormatBool(!chrome.PreviousEnabled))
		prev.Get("classList").Call("toggle", "opacity-40", !chrome.PreviousEnabled)
		if chrome.PreviousEnabled {
			prev.Call("setAttribute", "href", slideHref(chrome.Previous))
		} else {
			prev.Call("removeAttribute", "href")
		}
	}
	if next := r.doc.Call("querySelector", "[data-next]"); !next.IsNull() {
		next.Call("setAttribute", "href", slideHref(chrome.Next))
	}
	if cue := r.doc.Call("querySelector", "[data-cue]"); !cue.IsNull() {
		cue.Get("classList").Call("toggle", "hidden", !chrome.Hovering)
		cue.Get("style").Set("position", "fixed")
		cue.Get("style").Set("left", fmt.Sprintf("%.0fpx", chrome.Pointer.X))
		cue.Get("style").Set("top", fmt.Sprintf("%.0fpx", chrome.Pointer.Y))
		cue.Get("style").Set("transform", fmt.Sprintf("translate(-50%%, -50%%) rotate(%ddeg)", chrome.Cue))
	}
}

func slideHref(i int) string { return fmt.Sprintf("?slide=%d#process", i) }

func (r *renderer) Intro(st motion.IntroState, pinned bool) {
	section := r.doc.Call("querySelector", "[data-intro]")
	if section.IsNull() {
		return
	}
	if r.panels == nil {
		r.panels = r.all("[data-panel]")
	}
	if pinned != r.pinned {
		r.pinned = pinned
		section.Call("toggleAttribute", "data-pinned", pinned)
		if !pinned {
			st = motion.StackedIntro()
		}
	} else if !pinned {
		return
	}

	for i, el := range r.panels {
		if i >= len(st.Panels) {
			break
		}
		p := st.Panels[i]
		style := el.Get("style")
		style.Set("opacity", strconv.FormatFloat(p.Opacity, 'f', 3, 64))
		style.Set("transform", fmt.Sprintf("translateY(%.1fpx)", p.Y))
		style.Set("zIndex", strconv.Itoa(p.ZIndex))
		el.Get("classList").Call("toggle", "pointer-events-none", !p.Interactive)
	}
	if arrows := section.Call("querySelector", "[data-arrows]"); !arrows.IsNull() {
		arrows.Get("style").Set("transform", fmt.Sprintf("translateY(%.1fpx)", st.ArrowY))
	}
}

func (r *renderer) Cursor(at motion.Point, visible bool) {
	label := r.doc.Call("querySelector", "[data-hero-cursor]")
	if label.IsNull() {
		return
	}
	label.Get("classList").Call("toggle", "hidden", !visible)
	label.Get("style").Set("transform", fmt.Sprintf("translate(%.1fpx, %.1fpx)", at.X, at.Y))
}
