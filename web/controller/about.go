package controller

import (
	"net/http"

	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// AboutController handles the singleton about document.
type AboutController struct {
	BaseController

	aboutService service.AboutService
}

// NewAboutController creates a new AboutController and sets up its routes.
func NewAboutController(g *gin.RouterGroup) *AboutController {
	a := &AboutController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *AboutController) initRouter(g *gin.RouterGroup) {
	g.GET("/about", a.getAbout)
	g.PUT("/about", a.checkToken, a.upsertAbout)
}

// getAbout returns the about document, or a null payload when it has never
// been written.
func (a *AboutController) getAbout(c *gin.Context) {
	about, err := a.aboutService.GetAbout()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, about)
}

// upsertAbout updates the sole about document, creating it on first write.
func (a *AboutController) upsertAbout(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid about data", err)
		return
	}
	about, err := a.aboutService.UpsertAbout(fields)
	if err != nil {
		jsonServiceError(c, "About not found", err)
		return
	}
	jsonData(c, http.StatusOK, about)
}
