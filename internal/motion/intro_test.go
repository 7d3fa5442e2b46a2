package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinnedIntro_TargetsAcrossScroll(t *testing.T) {
	pi := NewPinnedIntro(900, false)

	top := pi.Targets(0, 0)
	assert.Equal(t, 1.0, top.Panel(PanelHero).Opacity)
	assert.Equal(t, 100, top.Panel(PanelHero).ZIndex)
	assert.False(t, top.Panel(PanelHero).Interactive)
	assert.Equal(t, 0.0, top.Panel(PanelAbout).Opacity)
	assert.Equal(t, 0.0, top.Panel(PanelServices).Opacity)

	about := pi.Targets(0.35, 0)
	assert.Equal(t, 0.0, about.Panel(PanelHero).Opacity)
	assert.Equal(t, 1.0, about.Panel(PanelAbout).Opacity)
	assert.True(t, about.Panel(PanelAbout).Interactive)
	assert.False(t, about.Panel(PanelServices).Interactive)

	end := pi.Targets(1, 1)
	assert.Equal(t, 0.0, end.Panel(PanelAbout).Opacity)
	assert.Equal(t, 1.0, end.Panel(PanelServices).Opacity)
	assert.True(t, end.Panel(PanelServices).Interactive)
	// services y is keyed out to progress 2, so at 1 it is a third of the way
	assert.InDelta(t, 14-34.0/3, end.Panel(PanelServices).Y, 1e-9)
	assert.Equal(t, ArrowTravel(900), end.ArrowY)
}

func TestPinnedIntro_ReducedMotionHasNoLag(t *testing.T) {
	pi := NewPinnedIntro(900, true)
	got := pi.Update(0.35, 0.5, 1.0/60)
	assert.Equal(t, pi.Targets(0.35, 0.5), got)
}

func TestPinnedIntro_UpdateLags(t *testing.T) {
	pi := NewPinnedIntro(900, false)
	got := pi.Update(0.35, 0, 1.0/60)
	assert.Greater(t, got.Panel(PanelHero).Opacity, 0.0)
	assert.Less(t, got.Panel(PanelAbout).Opacity, 1.0)

	for range 900 {
		got = pi.Update(0.35, 0, 1.0/60)
	}
	assert.Equal(t, pi.Targets(0.35, 0), got)
}

func TestArrowTravel(t *testing.T) {
	assert.Equal(t, 0.0, ArrowTravel(0))
	assert.Equal(t, 0.0, ArrowTravel(250))
	assert.Equal(t, float64(1000-96-36-144), ArrowTravel(1000))

	pi := NewPinnedIntro(0, false)
	pi.SetViewport(1000)
	assert.Equal(t, ArrowTravel(1000)/2, pi.Targets(0, 0.5).ArrowY)
}

func TestPanel_String(t *testing.T) {
	assert.Equal(t, "hero", PanelHero.String())
	assert.Equal(t, "services", PanelServices.String())
	assert.Equal(t, "unknown", Panel(9).String())
}

func TestTextCursor(t *testing.T) {
	c := NewTextCursor("View website", Point{X: 12, Y: 16}, false)
	assert.False(t, c.Visible())

	c.Show(Point{X: 100, Y: 50})
	assert.True(t, c.Visible())
	assert.Equal(t, Point{X: 112, Y: 66}, c.Position())

	c.Move(Point{X: 200, Y: 50})
	p := c.Step(1.0 / 60)
	assert.Greater(t, p.X, 112.0)
	assert.Less(t, p.X, 212.0)

	for range 600 {
		p = c.Step(1.0 / 60)
	}
	assert.Equal(t, Point{X: 212, Y: 66}, p)

	c.Hide()
	assert.False(t, c.Visible())
}

func TestTextCursor_ReducedMotionSnaps(t *testing.T) {
	c := NewTextCursor("Open", Point{Y: 12}, true)
	c.Show(Point{})
	c.Move(Point{X: 40, Y: 40})
	assert.Equal(t, Point{X: 40, Y: 52}, c.Step(1.0/60))
}

func TestStackedIntro(t *testing.T) {
	st := StackedIntro()
	for p := range panelCount {
		assert.Equal(t, PanelState{Opacity: 1, ZIndex: 100, Interactive: true}, st.Panel(p), p.String())
	}
	assert.Zero(t, st.ArrowY)
}
