// Package controller provides the HTTP handlers of the portfolio API: public
// content reads and token-gated mutations over the six content resources.
package controller

import (
	"net/http"

	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

const tokenUserKey = "tokenUser"

// BaseController provides the bearer-token gate shared by all controllers.
type BaseController struct {
	authService *service.AuthService
}

func newBaseController() BaseController {
	return BaseController{
		authService: service.NewAuthService(),
	}
}

// checkToken verifies the bearer token before any handler runs. A missing or
// invalid token aborts with a generic 401; the store is never touched.
func (a *BaseController) checkToken(c *gin.Context) {
	token := service.ExtractBearerToken(c)
	if token == "" {
		jsonError(c, http.StatusUnauthorized, "Unauthorized", nil)
		c.Abort()
		return
	}

	user, err := a.authService.VerifyToken(token)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "Unauthorized", nil)
		c.Abort()
		return
	}

	c.Set(tokenUserKey, user)
	c.Next()
}

// tokenUser returns the verified identity set by checkToken.
func tokenUser(c *gin.Context) *entity.TokenUser {
	if obj, exists := c.Get(tokenUserKey); exists {
		if user, ok := obj.(*entity.TokenUser); ok {
			return user
		}
	}
	return nil
}
