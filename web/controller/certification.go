package controller

import (
	"net/http"
	"strconv"

	"portfolio/database/model"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// CertificationController handles HTTP requests for certifications.
type CertificationController struct {
	BaseController

	certificationService service.CertificationService
}

// NewCertificationController creates a new CertificationController and sets up its routes.
func NewCertificationController(g *gin.RouterGroup) *CertificationController {
	a := &CertificationController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *CertificationController) initRouter(g *gin.RouterGroup) {
	g.GET("/certifications", a.getCertifications)
	g.GET("/certifications/:id", a.getCertification)
	g.POST("/certifications", a.checkToken, a.addCertification)
	g.PUT("/certifications/:id", a.checkToken, a.updateCertification)
	g.DELETE("/certifications/:id", a.checkToken, a.deleteCertification)
}

func (a *CertificationController) getCertifications(c *gin.Context) {
	certifications, err := a.certificationService.GetCertifications()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	jsonData(c, http.StatusOK, certifications)
}

func (a *CertificationController) getCertification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Certification not found", nil)
		return
	}
	certification, err := a.certificationService.GetCertification(id)
	if err != nil {
		jsonServiceError(c, "Certification not found", err)
		return
	}
	jsonData(c, http.StatusOK, certification)
}

func (a *CertificationController) addCertification(c *gin.Context) {
	certification := &model.Certification{}
	if err := c.ShouldBindJSON(certification); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid certification data", err)
		return
	}
	if err := a.certificationService.AddCertification(certification); err != nil {
		jsonServiceError(c, "Certification not found", err)
		return
	}
	jsonData(c, http.StatusCreated, certification)
}

func (a *CertificationController) updateCertification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Certification not found", nil)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusInternalServerError, "Invalid certification data", err)
		return
	}
	certification, err := a.certificationService.UpdateCertification(id, fields)
	if err != nil {
		jsonServiceError(c, "Certification not found", err)
		return
	}
	jsonData(c, http.StatusOK, certification)
}

func (a *CertificationController) deleteCertification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "Certification not found", nil)
		return
	}
	deleted, err := a.certificationService.DeleteCertification(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}
	if !deleted {
		jsonError(c, http.StatusNotFound, "Certification not found", nil)
		return
	}
	jsonData(c, http.StatusOK, true)
}
