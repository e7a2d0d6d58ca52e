package service

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"portfolio/database"
	"portfolio/logger"
	"portfolio/web/cache"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.ERROR)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
	cache.Init("")
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
	cache.Close()
}

func TestLoginIssueVerifyRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	authService := NewAuthService()

	// Seeded credentials
	admin := userService.CheckAdmin("admin", "admin123")
	assert.NotNil(t, admin)

	token, err := authService.IssueToken(admin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := authService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, admin.Id, user.Id)
	assert.Equal(t, "admin", user.Username)
}

func TestCheckAdminFailuresIndistinguishable(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	unknownUser := userService.CheckAdmin("nobody", "admin123")
	wrongPassword := userService.CheckAdmin("admin", "wrong")

	assert.Nil(t, unknownUser)
	assert.Nil(t, wrongPassword)
}

func TestVerifyExpiredToken(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()

	claims := jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"iat":      time.Now().Add(-2 * TokenValidity).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(authService.secret)
	assert.NoError(t, err)

	user, err := authService.VerifyToken(expired)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	authService := NewAuthService()

	admin := userService.CheckAdmin("admin", "admin123")
	assert.NotNil(t, admin)

	token, err := authService.IssueToken(admin)
	assert.NoError(t, err)

	// Flip the first character of the signature segment
	dot := strings.LastIndex(token, ".")
	tampered := []byte(token)
	if tampered[dot+1] == 'x' {
		tampered[dot+1] = 'y'
	} else {
		tampered[dot+1] = 'x'
	}

	user, err := authService.VerifyToken(string(tampered))
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		user, err := authService.VerifyToken(token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/auth/verify", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		return c
	}

	assert.Equal(t, "abc", ExtractBearerToken(newCtx("Bearer abc")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("abc")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("Basic abc")))
}
