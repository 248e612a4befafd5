package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/logify-service/pkg/auth"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/markdown"
	"liyu1981.xyz/logify-service/pkg/upload"
)

type RestfulServer struct {
	Server           *gin.Engine
	Logify           *logify.Logify
	RateLimiterStore *logify.RateLimiterStore
	JWT              *auth.JWTService
	Gate             *auth.Gate
	Markdown         markdown.Renderer
	Uploader         *upload.Uploader
	// UploadDir, when set, is served read-only under /uploads.
	UploadDir    string
	SecureCookie bool
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	if rs.UploadDir != "" {
		rs.Server.Static(upload.LocalURLPrefix, rs.UploadDir)
	}

	api := rs.Server.Group("/api")
	api.Use(rs.Authenticate())

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", rs.Login)
		authRoutes.POST("/logout", rs.Logout)
		authRoutes.GET("/me", rs.RequireSession(), rs.Me)
	}

	tickets := api.Group("/tickets")
	{
		tickets.GET("", rs.ListTickets)
		tickets.POST("", rs.Require(auth.ResourceTickets, auth.ActionWrite), rs.CreateTicket)
		tickets.GET("/:id", rs.GetTicket)
		tickets.PATCH("/:id", rs.Require(auth.ResourceTickets, auth.ActionWrite), rs.UpdateTicket)
		tickets.GET("/:id/comments", rs.ListComments)
		tickets.POST("/:id/comments", rs.Require(auth.ResourceComments, auth.ActionWrite), rs.AddComment)
	}

	admin := api.Group("/admin")
	{
		users := admin.Group("/users", rs.Require(auth.ResourceUsers, auth.ActionManage))
		users.GET("", rs.ListUsers)
		users.POST("", rs.CreateUser)
		users.PATCH("/:id", rs.UpdateUser)
		users.PATCH("/:id/status", rs.SetUserStatus)

		admin.GET("/audit-logs", rs.Require(auth.ResourceAudit, auth.ActionRead), rs.ListAuditLogs)
	}

	meters := api.Group("/meters")
	{
		meters.GET("/electricity", rs.ListElectricityMeters)
		meters.POST("/electricity", rs.CreateElectricityMeter)
		meters.GET("/electricity/:id", rs.ListElectricityReadings)
		meters.POST("/electricity/:id", rs.PostElectricityReading)
		meters.GET("/:type", rs.ListMeterReadings)
		meters.POST("/:type", rs.PostMeterReading)
	}

	api.POST("/upload", rs.Require(auth.ResourceUploads, auth.ActionWrite), rs.Upload)
}
