package controller

import (
	"net/http"
	"strconv"

	"portfolio/database/model"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// ExperienceController handles HTTP requests for work experience entries.
type ExperienceController struct {
	BaseController

	experienceService service.ExperienceService
}

// NewExperienceController creates a new ExperienceController and sets up its routes.
func NewExperienceController(g *gin.RouterGroup) *ExperienceController {
	a := &ExperienceController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *ExperienceController) initRouter(g *gin.RouterGroup) {
	g.GET("/experiences", a.getExperiences)
	g.GET("/experiences/:id", a.getExperience)
	g.POST("/experiences", a.checkToken, a.addExperience)
	g.PUT("/experiences/:id", a.checkToken, a.updateExperience)
	g.DELETE("/experiences/:id", a.checkToken, a.deleteExperience)
}

func (a *ExperienceController) getExperiences(c *gin.Context) {
	experiences, err := a.experienceService.GetExperiences()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, experiences)
}

func (a *ExperienceController) getExperience(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Experience not found", nil)
		return
	}
	experience, err := a.experienceService.GetExperience(id)
	if err != nil {
		jsonServiceError(c, "Experience not found", err)
		return
	}
	jsonData(c, http.StatusOK, experience)
}

func (a *ExperienceController) addExperience(c *gin.Context) {
	experience := &model.Experience{}
	if err := c.ShouldBindJSON(experience); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid experience data", err)
		return
	}
	if err := a.experienceService.AddExperience(experience); err != nil {
		jsonServiceError(c, "Experience not found", err)
		return
	}
	jsonData(c, http.StatusCreated, experience)
}

func (a *ExperienceController) updateExperience(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Experience not found", nil)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid experience data", err)
		return
	}
	experience, err := a.experienceService.UpdateExperience(id, fields)
	if err != nil {
		jsonServiceError(c, "Experience not found", err)
		return
	}
	jsonData(c, http.StatusOK, experience)
}

func (a *ExperienceController) deleteExperience(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Experience not found", nil)
		return
	}
	deleted, err := a.experienceService.DeleteExperience(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "Experience not found", nil)
		return
	}
	jsonData(c, http.StatusOK, true)
}
