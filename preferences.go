package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	reducedMotionKey    = "reducedMotion"
	reducedMotionCookie = "reduced_motion"
	reducedMotionHint   = "Sec-CH-Prefers-Reduced-Motion"
)

// Middleware that works out whether the visitor asked for reduced motion
func reducedMotionMiddleware(def bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Static files never render motion
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		reduced := def
		switch strings.ToLower(strings.TrimSpace(c.GetHeader(reducedMotionHint))) {
		case "reduce":
			reduced = true
		case "no-preference":
			reduced = false
		}
		// An explicit choice on the site beats the browser setting
		if v, err := c.Cookie(reducedMotionCookie); err == nil {
			reduced = v == "1"
		}

		c.Header("Accept-CH", reducedMotionHint)
		c.Header("Vary", reducedMotionHint)
		c.Set(reducedMotionKey, reduced)
		c.Next()
	}
}

func prefersReducedMotion(c *gin.Context) bool {
	return c.GetBool(reducedMotionKey)
}

// Stores the visitor's motion choice and sends them back where they were
func setMotionPreference(c *gin.Context) {
	value := "0"
	if c.PostForm("reduced") == "1" {
		value = "1"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(reducedMotionCookie, value, 365*24*60*60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, backTo(c.GetHeader("Referer")))
}

// backTo keeps redirects on this site.
func backTo(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
