package controller

import (
	"net/http"

	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// HeroController handles the singleton hero document.
type HeroController struct {
	BaseController

	heroService service.HeroService
}

// NewHeroController creates a new HeroController and sets up its routes.
func NewHeroController(g *gin.RouterGroup) *HeroController {
	a := &HeroController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *HeroController) initRouter(g *gin.RouterGroup) {
	g.GET("/hero", a.getHero)
	g.PUT("/hero", a.checkToken, a.upsertHero)
}

func (a *HeroController) getHero(c *gin.Context) {
	hero, err := a.heroService.GetHero()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, hero)
}

func (a *HeroController) upsertHero(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid hero data", err)
		return
	}
	hero, err := a.heroService.UpsertHero(fields)
	if err != nil {
		jsonServiceError(c, "Hero not found", err)
		return
	}
	jsonData(c, http.StatusOK, hero)
}
