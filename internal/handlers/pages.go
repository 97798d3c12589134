package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages registers the page routes the route guard acts on. Rendering lives in
// the web frontend; these placeholders exist so the guard has a surface and
// the service answers page URLs directly.
func (h HandlerSet) Pages(engine *gin.Engine) {
	page := func(title string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Header("Content-Type", "text/html; charset=utf-8")
			c.String(http.StatusOK, "<!DOCTYPE html><html><head><title>%s | AI Shield</title></head><body><h1>%s</h1></body></html>", title, title)
		}
	}

	engine.GET("/", page("AI Shield"))
	engine.GET("/login", page("Log in"))
	engine.GET("/register", page("Create account"))

	dashboardPages := map[string]string{
		"/dashboard":                   "Dashboard",
		"/dashboard/request-scan":      "Request a scan",
		"/dashboard/scan-results":      "Scan results",
		"/dashboard/takedown-requests": "Takedown requests",
		"/dashboard/ai-bot":            "AI bot",
		"/dashboard/my-plan":           "My plan",
		"/dashboard/support":           "Support",
	}
	for path, title := range dashboardPages {
		engine.GET(path, page(title))
	}
}
