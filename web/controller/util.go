package controller

import (
	"net"
	"net/http"
	"strings"

	"portfolio/database"
	"portfolio/logger"
	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonData sends the success envelope with the given payload.
func jsonData(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, entity.ApiResponse{
		Success: true,
		Data:    data,
	})
}

// jsonError sends the failure envelope. The diagnostic detail is included
// only when err is non-nil; auth failures pass nil to keep messages generic.
func jsonError(c *gin.Context, statusCode int, msg string, err error) {
	resp := entity.ApiResponse{
		Error: msg,
	}
	if err != nil {
		resp.Details = err.Error()
		logger.Warning(msg+":", err)
	}
	c.JSON(statusCode, resp)
}

// jsonServiceError maps a store failure onto the envelope: missing documents
// answer 404, schema violations and store errors both answer 500.
func jsonServiceError(c *gin.Context, notFoundMsg string, err error) {
	if database.IsNotFound(err) {
		jsonError(c, http.StatusNotFound, notFoundMsg, nil)
		return
	}
	if service.IsValidation(err) {
		jsonError(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	jsonError(c, http.StatusInternalServerError, "Server error", err)
}
