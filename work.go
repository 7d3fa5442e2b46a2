package main

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/kanefernandez/portfolio/internal/content"
	"github.com/kanefernandez/portfolio/internal/motion"
	"github.com/kanefernandez/portfolio/internal/timeline"
)

func setupWorkRoutes(r *gin.Engine, s *site) {
	work := r.Group("/work")
	{
		work.GET("/:slug", s.caseStudy)
		// HTMX carousel fallback when the motion module is not running
		work.POST("/:slug/timeline", s.timeline)
		work.GET("/:slug/slogan", s.slogan)
		work.GET("/:slug/share.png", s.share)
	}
}

// lookup finds the study named in the URL. ok is false when the slug is
// unknown.
func (s *site) lookup(c *gin.Context) (study content.CaseStudy, service content.Service, ok bool) {
	study, service, err := s.catalog.Find(c.Param("slug"))
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			log.Printf("Error finding case study: %v", err)
		}
		return study, service, false
	}
	return study, service, true
}

func (s *site) caseStudy(c *gin.Context) {
	study, service, ok := s.lookup(c)
	if !ok {
		s.notFound(c)
		return
	}
	reduced := prefersReducedMotion(c)

	data := gin.H{
		"title":         study.CompanyName + " | " + SiteTitle,
		"description":   study.Desc,
		"study":         study,
		"service":       service,
		"branding":      service == content.ServiceBranding,
		"reducedMotion": reduced,
	}

	switch service {
	case content.ServiceBranding:
		first, second := content.SplitTwoLines(study.Slogan)
		seq := motion.NewSequencer(study.AnimationImages, motion.SequencerOptions{
			ViewportHeight: s.cfg.ViewportHeight,
			ReducedMotion:  reduced,
		})
		data["sloganLines"] = []string{first, second}
		data["layers"] = sloganLayers(seq, 0)
	default:
		index, _ := strconv.Atoi(c.Query("slide"))
		nav := timeline.Restore(study.Slides(), index)
		data["carousel"] = newCarousel(study, nav)
		data["testimonial"] = study.Testimonial()
	}

	c.HTML(http.StatusOK, "work.html", data)
}

type timelineForm struct {
	Index int     `form:"index"`
	Event string  `form:"event" binding:"required,oneof=key click next prev move"`
	Key   string  `form:"key"`
	X     float64 `form:"x"`
	Width float64 `form:"width"`
}

func (s *site) timeline(c *gin.Context) {
	study, service, ok := s.lookup(c)
	if !ok || service != content.ServiceWebsite {
		c.String(http.StatusNotFound, "Case study not found")
		return
	}

	var form timelineForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid timeline request")
		return
	}

	nav := timeline.Restore(study.Slides(), form.Index)
	applyTimelineEvent(nav, form)
	c.HTML(http.StatusOK, "timeline", newCarousel(study, nav))
}

func applyTimelineEvent(nav *timeline.Navigator, form timelineForm) {
	region := timeline.Region{Width: form.Width}
	switch form.Event {
	case "key":
		nav.HandleKey(form.Key)
	case "click":
		nav.Click(form.X, region)
	case "next":
		nav.Next()
	case "prev":
		nav.Previous()
	case "move":
		nav.PointerEnter()
		nav.PointerMove(form.X, region)
	}
}

func (s *site) slogan(c *gin.Context) {
	study, _, ok := s.lookup(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "case study not found"})
		return
	}

	progress, err := strconv.ParseFloat(c.DefaultQuery("progress", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be a number"})
		return
	}
	vh, err := strconv.Atoi(c.DefaultQuery("vh", strconv.Itoa(s.cfg.ViewportHeight)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vh must be an integer"})
		return
	}
	progress = motion.Clamp01(progress)

	seq := motion.NewSequencer(study.AnimationImages, motion.SequencerOptions{
		ViewportHeight: vh,
		ReducedMotion:  prefersReducedMotion(c),
	})
	c.JSON(http.StatusOK, gin.H{
		"slug":          study.Slug(),
		"slogan":        study.Slogan,
		"progress":      progress,
		"startY":        seq.StartY(),
		"reducedMotion": seq.ReducedMotion(),
		"layers":        seq.Layers(),
		"targets":       seq.Targets(progress),
	})
}

func (s *site) share(c *gin.Context) {
	study, _, ok := s.lookup(c)
	if !ok {
		c.String(http.StatusNotFound, "Case study not found")
		return
	}

	link := study.ProjectLink
	switch {
	case link == "":
		link = absoluteURL(c, "/work/"+study.Slug())
	case strings.HasPrefix(link, "/"):
		link = absoluteURL(c, link)
	}
	png, err := qrcode.Encode(link, qrcode.Medium, s.cfg.ShareQRSize)
	if err != nil {
		log.Printf("Error encoding share code for %s: %v", study.Slug(), err)
		c.String(http.StatusInternalServerError, "Could not create share code")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + path
}

type layerView struct {
	Source string
	Style  template.CSS
}

func sloganLayers(seq *motion.Sequencer, progress float64) []layerView {
	targets := seq.Targets(progress)
	layers := make([]layerView, len(targets))
	for i, l := range seq.Layers() {
		st := targets[i]
		layers[i] = layerView{
			Source: l.Source,
			Style: template.CSS(fmt.Sprintf("opacity:%.3f;transform:translateY(%.1fpx) scale(%.3f)",
				st.Opacity, st.VerticalOffset, st.Scale)),
		}
	}
	return layers
}

// carousel is everything the timeline template draws. Every slide is
// rendered and all but the current one are hidden, so the motion module
// can switch slides without a round trip.
type carousel struct {
	Slug            string
	Index           int
	Next            int
	Previous        int
	PreviousEnabled bool
	Hovering        bool
	Cue             int
	Slides          []slideView
	Data            []timeline.RawSlide
}

type slideView struct {
	Index   int
	Current bool
	timeline.View
	Frames []frameView
}

type frameView struct {
	Src   string
	Style template.CSS
}

func newCarousel(study content.CaseStudy, nav *timeline.Navigator) carousel {
	previous, next := nav.Neighbours()
	c := carousel{
		Slug:            study.Slug(),
		Index:           nav.Index(),
		Next:            next,
		Previous:        previous,
		PreviousEnabled: nav.PreviousEnabled(),
		Hovering:        nav.Hovering(),
		Cue:             nav.Cue(),
		Data:            study.Timeline,
	}

	slides := study.Slides()
	if len(slides) == 0 {
		slides = []timeline.Slide{timeline.Intro{}}
	}
	for i, sl := range slides {
		v := timeline.Render(sl, true)
		sv := slideView{Index: i, Current: i == c.Index, View: v}
		for _, f := range v.Frames {
			sv.Frames = append(sv.Frames, frameView{
				Src: f.Src,
				Style: template.CSS(fmt.Sprintf("aspect-ratio:%.4f;object-fit:%s;object-position:%s",
					f.Ratio, f.Fit, f.Position)),
			})
		}
		c.Slides = append(c.Slides, sv)
	}
	return c
}
