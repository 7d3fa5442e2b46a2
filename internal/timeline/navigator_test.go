package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(src string) Slide {
	return SingleImage{Frame: Frame{Image: src}}
}

var region = Region{Left: 100, Width: 800}

func TestNavigator_WrapsForwardAndBack(t *testing.T) {
	n := NewNavigator([]Slide{single("a"), single("b"), single("c")})

	for range 3 {
		n.Advance()
	}
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, 3, n.RawIndex())

	n = NewNavigator([]Slide{single("a"), single("b"), single("c")})
	assert.True(t, n.Retreat())
	assert.Equal(t, 2, n.Index())
	assert.Equal(t, -1, n.RawIndex())
}

func TestNavigator_NegativeIndexWraps(t *testing.T) {
	n := Restore([]Slide{single("a"), single("b"), single("c")}, -7)
	assert.Equal(t, 2, n.Index())
	assert.Equal(t, single("c"), n.Current())
}

func TestNavigator_IntroBlocksRetreat(t *testing.T) {
	n := NewNavigator([]Slide{Intro{Title: "Process"}, single("a")})

	assert.False(t, n.Retreat())
	assert.Equal(t, 0, n.Index())

	assert.False(t, n.HandleKey(KeyArrowLeft))
	assert.Equal(t, 0, n.Index())

	assert.False(t, n.Previous())
	assert.False(t, n.PreviousEnabled())
	assert.Equal(t, 0, n.Index())
}

func TestNavigator_KeyScenario(t *testing.T) {
	n := NewNavigator([]Slide{Intro{Title: "Process"}, single("a"), single("b")})

	require.True(t, n.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, n.Index())
	assert.Equal(t, KindSingleImage, n.Current().Kind())

	require.True(t, n.HandleKey(KeyArrowLeft))
	assert.Equal(t, 0, n.Index())
	assert.True(t, n.OnIntro())
}

func TestNavigator_Keys(t *testing.T) {
	cases := []struct {
		key      string
		consumed bool
		want     int
	}{
		{KeyArrowRight, true, 2},
		{KeyEnter, true, 2},
		{KeySpace, true, 2},
		{KeySpaceName, true, 2},
		{KeyArrowLeft, true, 0},
		{KeyEscape, false, 1},
		{"a", false, 1},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			n := Restore([]Slide{single("a"), single("b"), single("c")}, 1)
			assert.Equal(t, c.consumed, n.HandleKey(c.key))
			assert.Equal(t, c.want, n.Index())
		})
	}
}

func TestNavigator_Click(t *testing.T) {
	slides := []Slide{Intro{Title: "Process"}, single("a"), single("b")}

	n := NewNavigator(slides)
	n.Click(110, region) // left half, but intros always advance
	assert.Equal(t, 1, n.Index())

	n.Click(600, region)
	assert.Equal(t, 2, n.Index())

	n.Click(499, region)
	assert.Equal(t, 1, n.Index())

	n.Click(500, region) // midpoint counts as right
	assert.Equal(t, 2, n.Index())
}

func TestNavigator_Buttons(t *testing.T) {
	n := NewNavigator([]Slide{Intro{}, single("a")})
	n.Next()
	assert.Equal(t, 1, n.Index())
	assert.True(t, n.PreviousEnabled())
	assert.True(t, n.Previous())
	assert.Equal(t, 0, n.Index())
}

func TestNavigator_Neighbours(t *testing.T) {
	slides := []Slide{single("a"), single("b"), single("c"), Intro{Title: "Launch"}, single("d")}

	prev, next := Restore(slides, 0).Neighbours()
	assert.Equal(t, 4, prev, "back from the first slide wraps to the last")
	assert.Equal(t, 1, next)

	prev, next = Restore(slides, 3).Neighbours()
	assert.Equal(t, 3, prev, "an intro has nowhere to go back to")
	assert.Equal(t, 4, next)

	prev, next = Restore(slides, 4).Neighbours()
	assert.Equal(t, 3, prev)
	assert.Equal(t, 0, next)

	// Neighbours agrees with what the buttons actually do
	for i := range slides {
		want, _ := Restore(slides, i).Neighbours()
		n := Restore(slides, i)
		n.Previous()
		assert.Equal(t, want, n.Index(), "slide %d", i)
	}
}

func TestNavigator_PointerTracking(t *testing.T) {
	n := NewNavigator([]Slide{Intro{Title: "x"}, single("a")})
	assert.Equal(t, SideRight, n.PointerSide())

	n.PointerMove(120, region)
	assert.Equal(t, SideRight, n.PointerSide(), "intro ignores pointer movement")
	assert.Equal(t, -90, n.Cue())

	n.Advance()
	n.PointerMove(120, region)
	assert.Equal(t, SideLeft, n.PointerSide())
	assert.Equal(t, 90, n.Cue())
	assert.Equal(t, 1, n.Index(), "moving never navigates")

	n.PointerMove(880, region)
	assert.Equal(t, SideRight, n.PointerSide())
	assert.Equal(t, -90, n.Cue())

	assert.False(t, n.Hovering())
	n.PointerEnter()
	assert.True(t, n.Hovering())
	n.PointerLeave()
	assert.False(t, n.Hovering())
}

func TestNavigator_EmptyListGetsIntro(t *testing.T) {
	n := NewNavigator(nil)
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, Intro{}, n.Current())

	n.Advance()
	assert.Equal(t, 0, n.Index())
	assert.False(t, n.Retreat())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "right", SideRight.String())
}
