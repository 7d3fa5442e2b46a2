package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanefernandez/portfolio/internal/timeline"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Studies(ServiceWebsite), 3)
	assert.Len(t, c.Studies(ServiceBranding), 1)

	tlc, svc, err := c.Find("thelittlechihuahua")
	require.NoError(t, err)
	assert.Equal(t, ServiceWebsite, svc)
	assert.Equal(t, "The Little Chihuahua", tlc.CompanyName)
	assert.Equal(t, "View website", tlc.CTA())
	assert.True(t, tlc.IsVideo())

	slides := tlc.Slides()
	require.Len(t, slides, 5)
	assert.Equal(t, timeline.KindIntro, slides[0].Kind())
	assert.Equal(t, timeline.KindSingleImage, slides[1].Kind())
	assert.Equal(t, timeline.KindDualImage, slides[2].Kind())

	k2, svc, err := c.Find("K2")
	require.NoError(t, err)
	assert.Equal(t, ServiceBranding, svc)
	assert.Len(t, k2.AnimationImages, 3)
	require.Len(t, k2.Presentation, 7)
	assert.True(t, k2.Presentation[0].Edge())
	assert.False(t, k2.Presentation[3].Edge())
	assert.True(t, k2.Presentation[6].Edge())
}

func TestFind_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, _, err = c.Find("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_RejectsDuplicateSlugs(t *testing.T) {
	doc := `
website:
  - page: /work/a
branding:
  - page: /other/A/
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate case study slug "a"`)
}

func TestLoad_RejectsMissingPage(t *testing.T) {
	_, err := Load(strings.NewReader("website:\n  - companyName: Nameless\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no page")
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("website:\n  - page: /work/a\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("branding:\n  - page: /work/x\n    slogan: Hi there\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	s, _, err := c.Find("x")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", s.Slogan)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "k2", LastSegment("/work/K2"))
	assert.Equal(t, "k2", LastSegment("/work/k2/"))
	assert.Equal(t, "", LastSegment("/"))
	assert.Equal(t, "", LastSegment(""))
}

func TestParseService(t *testing.T) {
	assert.Equal(t, ServiceBranding, ParseService("branding"))
	assert.Equal(t, ServiceBranding, ParseService("Branding"))
	assert.Equal(t, ServiceWebsite, ParseService(""))
	assert.Equal(t, ServiceWebsite, ParseService("other"))
}

func TestCTA_Default(t *testing.T) {
	assert.Equal(t, "View project", CaseStudy{}.CTA())
}
