package controller

import (
	"net/http"
	"strconv"

	"portfolio/database/model"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// ProjectController handles HTTP requests for portfolio projects.
type ProjectController struct {
	BaseController

	projectService service.ProjectService
}

// NewProjectController creates a new ProjectController and sets up its routes.
func NewProjectController(g *gin.RouterGroup) *ProjectController {
	a := &ProjectController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *ProjectController) initRouter(g *gin.RouterGroup) {
	g.GET("/projects", a.getProjects)
	g.GET("/projects/:id", a.getProject)
	g.POST("/projects", a.checkToken, a.addProject)
	g.PUT("/projects/:id", a.checkToken, a.updateProject)
	g.DELETE("/projects/:id", a.checkToken, a.deleteProject)
}

func (a *ProjectController) getProjects(c *gin.Context) {
	projects, err := a.projectService.GetProjects()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, projects)
}

func (a *ProjectController) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	project, err := a.projectService.GetProject(id)
	if err != nil {
		jsonServiceError(c, "Project not found", err)
		return
	}
	jsonData(c, http.StatusOK, project)
}

func (a *ProjectController) addProject(c *gin.Context) {
	project := &model.Project{}
	if err := c.ShouldBindJSON(project); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid project data", err)
		return
	}
	if err := a.projectService.AddProject(project); err != nil {
		jsonServiceError(c, "Project not found", err)
		return
	}
	jsonData(c, http.StatusCreated, project)
}

func (a *ProjectController) updateProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid project data", err)
		return
	}
	project, err := a.projectService.UpdateProject(id, fields)
	if err != nil {
		jsonServiceError(c, "Project not found", err)
		return
	}
	jsonData(c, http.StatusOK, project)
}

func (a *ProjectController) deleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	deleted, err := a.projectService.DeleteProject(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	jsonData(c, http.StatusOK, true)
}
