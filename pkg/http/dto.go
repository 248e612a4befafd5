package http

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserRef(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	ref := toUserResponse(*u)
	return &ref
}

type CommentResponse struct {
	ID        uint          `json:"id"`
	Message   string        `json:"message"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type StatusChangeResponse struct {
	Status    models.TicketStatus `json:"status"`
	ChangedBy *UserResponse       `json:"changedBy"`
	ChangedAt time.Time           `json:"changedAt"`
}

// PublicTicketResponse is what a visitor sees: no identities.
type PublicTicketResponse struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	DescriptionMarkdown string              `json:"descriptionMarkdown"`
	DescriptionHTML     string              `json:"descriptionHtml"`
	Images              []string            `json:"images"`
	Status              models.TicketStatus `json:"status"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

type TicketResponse struct {
	PublicTicketResponse
	CreatedBy     *UserResponse          `json:"createdBy"`
	MarkedDownBy  *UserResponse          `json:"markedDownBy"`
	MarkedDownAt  *time.Time             `json:"markedDownAt"`
	Comments      []CommentResponse      `json:"comments"`
	StatusHistory []StatusChangeResponse `json:"statusHistory"`
	Version       int                    `json:"version"`
}

func (rs *RestfulServer) renderDescription(markdown string) string {
	if rs.Markdown == nil {
		return ""
	}
	out, err := rs.Markdown.ToHTMLSanitized(markdown)
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("failed to render description", zap.Error(err))
		return ""
	}
	return out
}

func (rs *RestfulServer) toPublicTicket(t models.Ticket) PublicTicketResponse {
	images := []string(t.Images)
	if images == nil {
		images = []string{}
	}
	return PublicTicketResponse{
		ID:                  t.ID,
		Title:               t.Title,
		DescriptionMarkdown: t.DescriptionMarkdown,
		DescriptionHTML:     rs.renderDescription(t.DescriptionMarkdown),
		Images:              images,
		Status:              t.Status,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func toComment(withAuthor bool) func(models.Comment) CommentResponse {
	return func(c models.Comment) CommentResponse {
		resp := CommentResponse{
			ID:        c.ID,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		}
		if withAuthor {
			resp.Author = toUserRef(c.Author)
		}
		return resp
	}
}

func (rs *RestfulServer) toTicket(t models.Ticket) TicketResponse {
	history := common.Mapper(t.StatusHistory, func(s models.StatusChange) StatusChangeResponse {
		return StatusChangeResponse{
			Status:    s.Status,
			ChangedBy: toUserRef(s.ChangedBy),
			ChangedAt: s.ChangedAt,
		}
	})

	return TicketResponse{
		PublicTicketResponse: rs.toPublicTicket(t),
		CreatedBy:            toUserRef(t.CreatedBy),
		MarkedDownBy:         toUserRef(t.MarkedDownBy),
		MarkedDownAt:         t.MarkedDownAt,
		Comments:             common.Mapper(t.Comments, toComment(true)),
		StatusHistory:        history,
		Version:              t.Version,
	}
}

// projectTicket picks the projection by whether the caller has a session.
func (rs *RestfulServer) projectTicket(actor *models.Actor, t models.Ticket) any {
	if actor == nil {
		return rs.toPublicTicket(t)
	}
	return rs.toTicket(t)
}

type AuditLogResponse struct {
	ID          uint           `json:"id"`
	Action      string         `json:"action"`
	PerformedBy *UserResponse  `json:"performedBy"`
	TargetType  string         `json:"targetType"`
	TargetID    string         `json:"targetId"`
	Details     map[string]any `json:"details"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func toAuditLog(l models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:          l.ID,
		Action:      l.Action,
		PerformedBy: toUserRef(l.PerformedBy),
		TargetType:  l.TargetType,
		TargetID:    l.TargetID,
		Details:     l.Details,
		CreatedAt:   l.CreatedAt,
	}
}

type MeterReadingResponse struct {
	ID          string           `json:"id"`
	Type        models.MeterType `json:"type"`
	Value       float64          `json:"value"`
	ReadingDate time.Time        `json:"readingDate"`
}

func toMeterReading(r models.MeterReading) MeterReadingResponse {
	return MeterReadingResponse{ID: r.ID, Type: r.Type, Value: r.Value, ReadingDate: r.ReadingDate}
}

type ElectricityMeterResponse struct {
	ID          string    `json:"id"`
	MeterNumber string    `json:"meterNumber"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toElectricityMeter(m models.ElectricityMeter) ElectricityMeterResponse {
	return ElectricityMeterResponse{ID: m.ID, MeterNumber: m.MeterNumber, Location: m.Location, CreatedAt: m.CreatedAt}
}

type ElectricityReadingResponse struct {
	ID          string    `json:"id"`
	MeterID     string    `json:"meterId"`
	Value       float64   `json:"value"`
	ReadingDate time.Time `json:"readingDate"`
}

func toElectricityReading(r models.ElectricityReading) ElectricityReadingResponse {
	return ElectricityReadingResponse{ID: r.ID, MeterID: r.MeterID, Value: r.Value, ReadingDate: r.ReadingDate}
}
