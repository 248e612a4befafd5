package http

import (
	"errors"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func statusOf(kind logify.ErrorKind) int {
	switch kind {
	case logify.KindUnauthenticated:
		return http.StatusUnauthorized
	case logify.KindForbidden:
		return http.StatusForbidden
	case logify.KindValidation:
		return http.StatusBadRequest
	case logify.KindNotFound:
		return http.StatusNotFound
	case logify.KindConflict:
		return http.StatusConflict
	case logify.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// fail aborts the request. Business errors keep their code; anything else is logged and hidden.
func (rs *RestfulServer) fail(c *gin.Context, err error) {
	var e *logify.Error
	if errors.As(err, &e) {
		c.AbortWithStatusJSON(statusOf(e.Kind), ErrorResponse{Message: e.Message, Code: e.Code})
		return
	}

	common.GetLoggerWith(common.LoggerNameRestfulServer).Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
		Code:    "INTERNAL",
	})
}

// parseBody runs the zog schema over the request body and answers with onFail when it does not validate.
func (rs *RestfulServer) parseBody(c *gin.Context, schema *z.StructSchema, dest any, onFail *logify.Error) bool {
	if issues := schema.Parse(zhttp.Request(c.Request), dest); issues != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Debug("request body rejected",
			zap.String("path", c.FullPath()),
			zap.Any("issues", issues),
		)
		rs.fail(c, onFail)
		return false
	}
	return true
}
