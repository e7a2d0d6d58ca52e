package controller

import (
	"net/http"
	"strconv"

	"portfolio/database/model"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// SkillController handles HTTP requests for skill categories.
type SkillController struct {
	BaseController

	skillService service.SkillService
}

// NewSkillController creates a new SkillController and sets up its routes.
func NewSkillController(g *gin.RouterGroup) *SkillController {
	a := &SkillController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *SkillController) initRouter(g *gin.RouterGroup) {
	g.GET("/skills", a.getSkills)
	g.GET("/skills/:id", a.getSkill)
	g.POST("/skills", a.checkToken, a.addSkill)
	g.PUT("/skills/:id", a.checkToken, a.updateSkill)
	g.DELETE("/skills/:id", a.checkToken, a.deleteSkill)
}

func (a *SkillController) getSkills(c *gin.Context) {
	skills, err := a.skillService.GetSkills()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, skills)
}

func (a *SkillController) getSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Skill not found", nil)
		return
	}
	skill, err := a.skillService.GetSkill(id)
	if err != nil {
		jsonServiceError(c, "Skill not found", err)
		return
	}
	jsonData(c, http.StatusOK, skill)
}

func (a *SkillController) addSkill(c *gin.Context) {
	skill := &model.Skill{}
	if err := c.ShouldBindJSON(skill); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid skill data", err)
		return
	}
	if err := a.skillService.AddSkill(skill); err != nil {
		jsonServiceError(c, "Skill not found", err)
		return
	}
	jsonData(c, http.StatusCreated, skill)
}

func (a *SkillController) updateSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Skill not found", nil)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid skill data", err)
		return
	}
	skill, err := a.skillService.UpdateSkill(id, fields)
	if err != nil {
		jsonServiceError(c, "Skill not found", err)
		return
	}
	jsonData(c, http.StatusOK, skill)
}

func (a *SkillController) deleteSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Skill not found", nil)
		return
	}
	deleted, err := a.skillService.DeleteSkill(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "Skill not found", nil)
		return
	}
	jsonData(c, http.StatusOK, true)
}
