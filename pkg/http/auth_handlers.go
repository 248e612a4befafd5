package http

import (
	"net/http"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (rs *RestfulServer) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, token, maxAge, "/", "", rs.SecureCookie, true)
}

func (rs *RestfulServer) Login(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameAuth)

	if !rs.CheckLimiter(logify.LoginScopeKey(c.ClientIP())) {
		rs.fail(c, logify.ErrRateLimited)
		return
	}

	var req LoginRequest
	if !rs.parseBody(c, loginRequestSchema, &req, logify.ErrMissingFields) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		rs.fail(c, logify.ErrMissingFields)
		return
	}

	user, err := rs.Logify.User.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		rs.fail(c, err)
		return
	}

	token, _, err := rs.JWT.Generate(user)
	if err != nil {
		rs.fail(c, err)
		return
	}

	rs.setTokenCookie(c, token, int(rs.JWT.TTL().Seconds()))
	logger.Info("User logged in", zap.String("user_id", user.ID))

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: toUserResponse(*user)})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	rs.setTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) Me(c *gin.Context) {
	user, err := rs.Logify.User.GetUser(c.Request.Context(), mustActor(c).ID)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}
