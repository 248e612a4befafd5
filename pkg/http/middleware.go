package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/auth"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/models"
)

const (
	TokenCookieName = "token"
	actorContextKey = "logify.actor"

	disabledContextKey = "logify.disabled"
)

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate attaches the Actor of a valid token, with the role currently stored for that user.
// Requests without one continue as visitors. A disabled account is remembered so protected
// routes answer ACCOUNT_DISABLED instead of UNAUTHENTICATED.
func (rs *RestfulServer) Authenticate() gin.HandlerFunc {
	logger := common.GetLoggerWith(common.LoggerNameAuth)

	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" || rs.JWT == nil {
			c.Next()
			return
		}

		claims, err := rs.JWT.Verify(token)
		if err != nil {
			logger.Debug("token rejected", zap.Error(err), zap.String("path", c.FullPath()))
			c.Next()
			return
		}

		user, err := rs.Logify.User.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if logify.KindOf(err) == logify.KindInternal {
				rs.fail(c, err)
				return
			}
			logger.Debug("token user gone", zap.String("userId", claims.UserID), zap.Error(err))
			c.Next()
			return
		}
		if !user.IsActive {
			c.Set(disabledContextKey, true)
			c.Next()
			return
		}

		c.Set(actorContextKey, &models.Actor{ID: user.ID, Role: user.Role})
		c.Next()
	}
}

func actorFrom(c *gin.Context) *models.Actor {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, _ := value.(*models.Actor)
	return actor
}

// mustActor is only safe behind Require or RequireSession.
func mustActor(c *gin.Context) models.Actor {
	return *actorFrom(c)
}

func (rs *RestfulServer) failNoActor(c *gin.Context) {
	if c.GetBool(disabledContextKey) {
		rs.fail(c, logify.ErrAccountDisabled)
		return
	}
	rs.fail(c, logify.ErrUnauthenticated)
}

func (rs *RestfulServer) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorFrom(c) == nil {
			rs.failNoActor(c)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor == nil {
			rs.failNoActor(c)
			return
		}
		if rs.Gate == nil {
			rs.fail(c, logify.ErrForbidden)
			return
		}

		decision := rs.Gate.Authorize(actor, resource, action)
		if !decision.Allowed {
			if decision.Reason == auth.ReasonUnauthenticated {
				rs.fail(c, logify.ErrUnauthenticated)
			} else {
				rs.fail(c, logify.ErrForbidden)
			}
			return
		}
		c.Next()
	}
}
