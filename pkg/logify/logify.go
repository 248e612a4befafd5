package logify

import (
	"context"
	"time"

	"liyu1981.xyz/logify-service/pkg/db"
	"liyu1981.xyz/logify-service/pkg/models"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . ITicket,IUser,IAudit,IMeter,IElectricity

type ITicket interface {
	CreateTicket(ctx context.Context, actor models.Actor, input *models.TicketInput) (*models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	UpdateTicket(ctx context.Context, actor models.Actor, id string, patch *models.TicketPatch) (*models.Ticket, error)
	AddComment(ctx context.Context, actor models.Actor, ticketID string, message string) (*models.Comment, error)
	ListComments(ctx context.Context, ticketID string) ([]models.Comment, error)
}

type IUser interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, actor models.Actor, input *models.UserInput) (*models.User, error)
	BootstrapAdmin(ctx context.Context, input *models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, actor models.Actor, id string, patch *models.UserPatch) (*models.User, error)
	SetUserStatus(ctx context.Context, actor models.Actor, id string, isActive bool) (*models.User, error)
	Authenticate(ctx context.Context, email string, password string) (*models.User, error)
}

type IAudit interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type IMeter interface {
	ListReadings(ctx context.Context, meterType models.MeterType) ([]models.MeterReading, error)
	AddReading(ctx context.Context, meterType models.MeterType, value float64) (*models.MeterReading, error)
}

type IElectricity interface {
	ListMeters(ctx context.Context) ([]models.ElectricityMeter, error)
	CreateMeter(ctx context.Context, meterNumber string, location string) (*models.ElectricityMeter, error)
	ListReadings(ctx context.Context, meterID string) ([]models.ElectricityReading, error)
	AddReading(ctx context.Context, meterID string, value float64) (*models.ElectricityReading, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type Logify struct {
	Db     db.DB
	Hasher PasswordHasher
	// Now is the server clock; nil means time.Now.
	Now func() time.Time

	Ticket      ITicket
	User        IUser
	Audit       IAudit
	Meter       IMeter
	Electricity IElectricity
}

type ServiceOpts struct {
	Ticket      ITicket
	User        IUser
	Audit       IAudit
	Meter       IMeter
	Electricity IElectricity
}

func (i *Logify) WithServices(opts ServiceOpts) *Logify {
	if opts.Ticket != nil {
		i.Ticket = opts.Ticket
	}
	if opts.User != nil {
		i.User = opts.User
	}
	if opts.Audit != nil {
		i.Audit = opts.Audit
	}
	if opts.Meter != nil {
		i.Meter = opts.Meter
	}
	if opts.Electricity != nil {
		i.Electricity = opts.Electricity
	}
	return i
}

// WithDefaultServices wires every service to its database-backed implementation.
func (i *Logify) WithDefaultServices() *Logify {
	return i.WithServices(ServiceOpts{
		Ticket:      i.GetITicket(),
		User:        i.GetIUser(),
		Audit:       i.GetIAudit(),
		Meter:       i.GetIMeter(),
		Electricity: i.GetIElectricity(),
	})
}

func (i *Logify) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}
