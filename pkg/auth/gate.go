package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

const (
	ResourceTickets  = "tickets"
	ResourceComments = "comments"
	ResourceUploads  = "uploads"
	ResourceUsers    = "users"
	ResourceAudit    = "audit"

	ActionWrite  = "write"
	ActionManage = "manage"
	ActionRead   = "read"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the full role table; any authenticated role may comment.
var DefaultPolicies = [][]string{
	{string(models.RoleAdmin), ResourceTickets, ActionWrite},
	{string(models.RoleTechnician), ResourceTickets, ActionWrite},
	{string(models.RoleAdmin), ResourceComments, ActionWrite},
	{string(models.RoleTechnician), ResourceComments, ActionWrite},
	{string(models.RoleAdmin), ResourceUploads, ActionWrite},
	{string(models.RoleTechnician), ResourceUploads, ActionWrite},
	{string(models.RoleAdmin), ResourceUsers, ActionManage},
	{string(models.RoleAdmin), ResourceAudit, ActionRead},
}

type DenyReason string

const (
	ReasonNone            DenyReason = ""
	ReasonUnauthenticated DenyReason = "UNAUTHENTICATED"
	ReasonForbidden       DenyReason = "FORBIDDEN"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

var (
	allow = Decision{Allowed: true}
)

type Gate struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

// NewGate builds the enforcer over the casbin_rule table in conn and makes sure
// every default policy is present.
func NewGate(conn *gorm.DB) (*Gate, error) {
	adapter, err := gormadapter.NewAdapterByDB(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	for _, policy := range DefaultPolicies {
		if _, err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return nil, fmt.Errorf("failed to seed policy %v: %w", policy, err)
		}
	}

	return &Gate{
		enforcer: enforcer,
		logger:   common.GetLoggerWith(common.LoggerNameAuth),
	}, nil
}

func (g *Gate) Authorize(actor *models.Actor, resource, action string) Decision {
	if actor == nil {
		return Decision{Reason: ReasonUnauthenticated}
	}

	allowed, err := g.enforcer.Enforce(string(actor.Role), resource, action)
	if err != nil {
		g.logger.Error("permission check failed",
			zap.Error(err),
			zap.String("user_id", actor.ID),
			zap.String("resource", resource),
			zap.String("action", action),
		)
		return Decision{Reason: ReasonForbidden}
	}
	if !allowed {
		return Decision{Reason: ReasonForbidden}
	}
	return allow
}
