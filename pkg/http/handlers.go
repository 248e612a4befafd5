package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/models"
)

type CreateTicketRequest struct {
	Title               string   `json:"title"`
	DescriptionMarkdown string   `json:"descriptionMarkdown"`
	Images              []string `json:"images"`
}

var createTicketRequestSchema = z.Struct(z.Shape{
	"Title":               z.String().Required(),
	"DescriptionMarkdown": z.String().Required(),
	"Images":              z.Slice(z.String()),
})

func (rs *RestfulServer) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if !rs.parseBody(c, createTicketRequestSchema, &req, logify.ErrMissingFields) {
		return
	}

	ticket, err := rs.Logify.Ticket.CreateTicket(c.Request.Context(), mustActor(c), &models.TicketInput{
		Title:               req.Title,
		DescriptionMarkdown: req.DescriptionMarkdown,
		Images:              req.Images,
	})
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, rs.toTicket(*ticket))
}

func (rs *RestfulServer) ListTickets(c *gin.Context) {
	tickets, err := rs.Logify.Ticket.ListTickets(c.Request.Context())
	if err != nil {
		rs.fail(c, err)
		return
	}

	actor := actorFrom(c)
	c.JSON(http.StatusOK, common.Mapper(tickets, func(t models.Ticket) any {
		return rs.projectTicket(actor, t)
	}))
}

func (rs *RestfulServer) GetTicket(c *gin.Context) {
	ticket, err := rs.Logify.Ticket.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rs.projectTicket(actorFrom(c), *ticket))
}

// UpdateTicketRequest uses pointers so an omitted field is distinguishable from a zero value.
type UpdateTicketRequest struct {
	Title               *string  `json:"title"`
	DescriptionMarkdown *string  `json:"descriptionMarkdown"`
	Status              *string  `json:"status"`
	Images              []string `json:"images"`
	Version             *int     `json:"version"`
}

func (rs *RestfulServer) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.fail(c, logify.ErrInvalidBody)
		return
	}

	patch := &models.TicketPatch{
		Title:               req.Title,
		DescriptionMarkdown: req.DescriptionMarkdown,
		Images:              req.Images,
		Version:             req.Version,
	}
	if req.Status != nil {
		status := models.TicketStatus(*req.Status)
		patch.Status = &status
	}

	ticket, err := rs.Logify.Ticket.UpdateTicket(c.Request.Context(), mustActor(c), c.Param("id"), patch)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rs.toTicket(*ticket))
}

type CommentRequest struct {
	Message string `json:"message"`
}

var commentRequestSchema = z.Struct(z.Shape{
	"Message": z.String(),
})

func (rs *RestfulServer) AddComment(c *gin.Context) {
	var req CommentRequest
	if !rs.parseBody(c, commentRequestSchema, &req, logify.ErrEmptyComment) {
		return
	}

	comment, err := rs.Logify.Ticket.AddComment(c.Request.Context(), mustActor(c), c.Param("id"), req.Message)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toComment(true)(*comment))
}

func (rs *RestfulServer) ListComments(c *gin.Context) {
	comments, err := rs.Logify.Ticket.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(comments, toComment(actorFrom(c) != nil)))
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
