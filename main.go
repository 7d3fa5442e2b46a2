//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/motion.wasm ./cmd/motion"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/"

package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanefernandez/portfolio/internal/config"
	"github.com/kanefernandez/portfolio/internal/content"
	"github.com/kanefernandez/portfolio/internal/motion"
)

type site struct {
	cfg     config.Config
	catalog *content.Catalog
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load case studies: ", err)
	}

	r := setupRouter(cfg, catalog)
	log.Printf("Serving %d website and %d branding case studies on :%s",
		len(catalog.Website), len(catalog.Branding), cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(cfg config.Config) (*content.Catalog, error) {
	if cfg.ContentFile == "" {
		return content.Default()
	}
	log.Printf("Loading case studies from %s", cfg.ContentFile)
	return content.LoadFile(cfg.ContentFile)
}

func setupRouter(cfg config.Config, catalog *content.Catalog) *gin.Engine {
	s := &site{cfg: cfg, catalog: catalog}

	r := gin.Default()
	r.Use(reducedMotionMiddleware(cfg.ReducedMotion))
	r.LoadHTMLGlob(cfg.TemplateGlob)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	// Home page route
	r.GET("/", s.home)

	// HTMX fragment for the service switch on the home page
	r.GET("/case-studies", func(c *gin.Context) {
		service := content.ParseService(c.Query("service"))
		c.HTML(http.StatusOK, "studies", gin.H{
			"service": service,
			"studies": s.catalog.Studies(service),
		})
	})

	r.POST("/preferences/motion", setMotionPreference)

	setupWorkRoutes(r, s)

	r.NoRoute(s.notFound)
	return r
}

func (s *site) home(c *gin.Context) {
	service := content.ParseService(c.Query("service"))
	// The intro renders stacked and readable. The motion module pins it
	// when it runs and motion is allowed.
	intro := motion.StackedIntro()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":          SiteTitle,
		"description":    MetaDescription,
		"heroLines":      HeroLines,
		"aboutMeContent": AboutMe,
		"services":       Services,
		"service":        service,
		"studies":        s.catalog.Studies(service),
		"panels":         introPanels(intro),
		"arrowStyle":     translateY(intro.ArrowY),
		"reducedMotion":  prefersReducedMotion(c),
	})
}

func (s *site) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not-found.html", gin.H{
		"title":       "Page not found | " + SiteTitle,
		"description": MetaDescription,
	})
}

type panelView struct {
	Name        string
	Style       template.CSS
	Interactive bool
}

func introPanels(st motion.IntroState) []panelView {
	panels := make([]panelView, 0, len(st.Panels))
	for i, p := range st.Panels {
		panels = append(panels, panelView{
			Name: motion.Panel(i).String(),
			Style: template.CSS(fmt.Sprintf("opacity:%.3f;transform:translateY(%.1fpx);z-index:%d",
				p.Opacity, p.Y, p.ZIndex)),
			Interactive: p.Interactive,
		})
	}
	return panels
}

func translateY(y float64) template.CSS {
	return template.CSS(fmt.Sprintf("transform:translateY(%.1fpx)", y))
}
