package logify

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/logify-service/pkg/db"
	"liyu1981.xyz/logify-service/pkg/logify/mocks"
	"liyu1981.xyz/logify-service/pkg/models"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "plain:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

func GetMockLogifyWithMemorySqliteDialector(t *testing.T, useMockIAudit bool) (
	*gomock.Controller,
	*Logify,
	*mocks.MockIAudit,
) {
	ctrl := gomock.NewController(t)

	mockIAudit := mocks.NewMockIAudit(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	logifyInstance := (&Logify{Db: *dbInstance, Hasher: plainHasher{}}).WithDefaultServices()

	if useMockIAudit {
		logifyInstance.WithServices(ServiceOpts{Audit: mockIAudit})
	}

	return ctrl, logifyInstance, mockIAudit
}

// seedUser inserts an active user straight into the table.
func seedUser(t *testing.T, l *Logify, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "user " + string(role),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "plain:secret",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, l.Db.Conn.Create(user).Error)
	return user
}

func actorOf(u *models.User) models.Actor {
	return models.Actor{ID: u.ID, Role: u.Role}
}

func seedTicket(t *testing.T, l *Logify, author *models.User) *models.Ticket {
	t.Helper()
	ticket, err := l.Ticket.CreateTicket(context.Background(), actorOf(author), &models.TicketInput{
		Title:               "Leaking pipe",
		DescriptionMarkdown: "Water under the **sink**",
	})
	require.NoError(t, err)
	return ticket
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
