package controller

import (
	"net/http"

	"portfolio/logger"
	"portfolio/web/entity"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles login and token verification.
type AuthController struct {
	BaseController

	userService service.UserService
}

// NewAuthController creates a new AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{
		BaseController: newBaseController(),
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/auth/login", a.login)
	g.GET("/auth/verify", a.checkToken, a.verify)
}

// login authenticates the administrator and issues a bearer token. Unknown
// usernames and wrong passwords answer with the same generic message.
func (a *AuthController) login(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Username and password are required", nil)
		return
	}
	if form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	admin := a.userService.CheckAdmin(form.Username, form.Password)
	if admin == nil {
		logger.Warningf("failed login for username \"%s\", IP: %s", form.Username, getRemoteIp(c))
		jsonError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := a.authService.IssueToken(admin)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Server error", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", admin.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, entity.LoginResponse{
		Success: true,
		Token:   token,
		User: entity.TokenUser{
			Id:       admin.Id,
			Username: admin.Username,
			Email:    admin.Email,
		},
	})
}

// verify confirms the presented bearer token and echoes its identity.
func (a *AuthController) verify(c *gin.Context) {
	c.JSON(http.StatusOK, entity.VerifyResponse{
		Success: true,
		User:    tokenUser(c),
	})
}
