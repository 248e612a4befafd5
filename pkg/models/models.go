package models

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TECHNICIAN"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusMarkedDown TicketStatus = "MARKED_DOWN"
	TicketStatusResolved   TicketStatus = "RESOLVED"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusMarkedDown, TicketStatusResolved:
		return true
	}
	return false
}

// IsMarkedDown reports whether the status carries a markedDownBy/markedDownAt stamp.
func (s TicketStatus) IsMarkedDown() bool {
	return s == TicketStatusMarkedDown || s == TicketStatusResolved
}

type MeterType string

const (
	MeterTypeGas   MeterType = "GAS"
	MeterTypeWater MeterType = "WATER"
)

func (t MeterType) IsValid() bool {
	return t == MeterTypeGas || t == MeterTypeWater
}

// Actor is the verified identity behind a request. A nil *Actor is a visitor.
type Actor struct {
	ID   string
	Role Role
}
