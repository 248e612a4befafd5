package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/models"
)

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	users, err := rs.Logify.User.ListUsers(c.Request.Context())
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(users, toUserResponse))
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var createUserRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
	"Role":     z.String(),
})

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !rs.parseBody(c, createUserRequestSchema, &req, logify.ErrMissingFields) {
		return
	}

	user, err := rs.Logify.User.CreateUser(c.Request.Context(), mustActor(c), &models.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*user))
}

type UpdateUserRequest struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

func (rs *RestfulServer) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.fail(c, logify.ErrInvalidBody)
		return
	}

	patch := &models.UserPatch{IsActive: req.IsActive}
	if req.Role != nil {
		role := models.Role(*req.Role)
		patch.Role = &role
	}

	user, err := rs.Logify.User.UpdateUser(c.Request.Context(), mustActor(c), c.Param("id"), patch)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

type UserStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (rs *RestfulServer) SetUserStatus(c *gin.Context) {
	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.fail(c, logify.ErrInvalidBody)
		return
	}
	if req.IsActive == nil {
		rs.fail(c, logify.ErrMissingFields)
		return
	}

	user, err := rs.Logify.User.SetUserStatus(c.Request.Context(), mustActor(c), c.Param("id"), *req.IsActive)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (rs *RestfulServer) ListAuditLogs(c *gin.Context) {
	limit := logify.MaxAuditLogs
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rs.fail(c, logify.ErrInvalidBody)
			return
		}
		limit = parsed
	}

	logs, err := rs.Logify.Audit.ListRecent(c.Request.Context(), limit)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(logs, toAuditLog))
}
