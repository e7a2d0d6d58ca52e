package controller

import (
	"net/http"
	"strconv"

	"portfolio/logger"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// AdminController exposes token-gated operational endpoints: process status
// and recent log lines.
type AdminController struct {
	BaseController

	serverService service.ServerService
}

// NewAdminController creates a new AdminController and sets up its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.GET("/admin/status", a.checkToken, a.status)
	g.GET("/admin/logs", a.checkToken, a.getLogs)
}

func (a *AdminController) status(c *gin.Context) {
	jsonData(c, http.StatusOK, a.serverService.GetStatus())
}

func (a *AdminController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count <= 0 {
		count = 50
	}
	level := c.DefaultQuery("level", "info")
	jsonData(c, http.StatusOK, logger.GetLogs(count, level))
}
