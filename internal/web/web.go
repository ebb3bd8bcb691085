// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/locker-booking-backend/internal/station"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page template. Templates are addressed by file
// name, e.g. "confirm.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type Handler struct {
	inventory station.Inventory
}

func NewHandler(inventory station.Inventory) *Handler {
	return &Handler{inventory: inventory}
}

// Home renders the booking form with the known stations.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Stations": h.inventory.Names(),
	})
}

// Login renders the login page. There is no authentication behind it.
func (h *Handler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// RegisterRoutes registers the static pages.
func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.Home)
	r.GET("/login", h.Login)
}
