package middleware

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/pkg/logger"
	"github.com/d60-Lab/softspace/pkg/response"
)

// Recovery 捕获 panic，上报 Sentry 并返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("path", c.FullPath())
				hub.CaptureException(err)
				logger.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.Any("panic", r), zap.Stack("stack"))
				response.InternalError(c, err)
			}
		}()
		c.Next()
	}
}
