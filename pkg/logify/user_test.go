package logify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
	_ "liyu1981.xyz/logify-service/pkg/testing"
)

func TestCreateUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, _ := GetMockLogifyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	admin := seedUser(t, logifyObj, models.RoleAdmin)
	email := uuid.NewString() + "@Example.COM"

	user, err := logifyObj.User.CreateUser(context.Background(), actorOf(admin), &models.UserInput{
		Name:     "Tess",
		Email:    "  " + email + " ",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, common.NormalizeEmail(email), user.Email)
	assert.Equal(t, models.RoleTechnician, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "plain:hunter2", user.PasswordHash)

	var audit models.AuditLog
	require.NoError(t, logifyObj.Db.Conn.Where("target_id = ?", user.ID).First(&audit).Error)
	assert.Equal(t, models.AuditActionUserCreated, audit.Action)
	assert.Equal(t, admin.ID, *audit.PerformedByID)
}

func TestCreateUser_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, _ := GetMockLogifyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	admin := seedUser(t, logifyObj, models.RoleAdmin)
	ctx := context.Background()

	_, err := logifyObj.User.CreateUser(ctx, actorOf(admin), &models.UserInput{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = logifyObj.User.CreateUser(ctx, actorOf(admin), &models.UserInput{
		Name: "x", Email: uuid.NewString() + "@example.com", Password: "p", Role: "MANAGER",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)

	email := uuid.NewString() + "@example.com"
	_, err = logifyObj.User.CreateUser(ctx, actorOf(admin), &models.UserInput{Name: "a", Email: email, Password: "p"})
	require.NoError(t, err)
	_, err = logifyObj.User.CreateUser(ctx, actorOf(admin), &models.UserInput{Name: "b", Email: " " + email, Password: "p"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, KindConflict, KindOf(err))

	logifyObj.Hasher = nil
	_, err = logifyObj.User.CreateUser(ctx, actorOf(admin), &models.UserInput{
		Name: "c", Email: uuid.NewString() + "@example.com", Password: "p",
	})
	assert.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestBootstrapAdmin(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, mockIAudit := GetMockLogifyWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	mockIAudit.
		EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Nil(t, entry.PerformedByID)
			return errors.New("audit table gone")
		}).
		Times(1)

	admin, err := logifyObj.User.BootstrapAdmin(context.Background(), &models.UserInput{
		Name:     "Root",
		Email:    uuid.NewString() + "@example.com",
		Password: "changeme",
		Role:     models.RoleTechnician,
	})
	require.NoError(t, err, "audit failure must not fail the write")
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestUpdateUserSelfGuard(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, _ := GetMockLogifyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	admin := seedUser(t, logifyObj, models.RoleAdmin)
	ctx := context.Background()

	_, err := logifyObj.User.UpdateUser(ctx, actorOf(admin), admin.ID, &models.UserPatch{Role: ptr(models.RoleTechnician)})
	assert.ErrorIs(t, err, ErrOwnRole)

	// own-role check runs before role validation
	_, err = logifyObj.User.UpdateUser(ctx, actorOf(admin), admin.ID, &models.UserPatch{Role: ptr(models.Role("BOSS"))})
	assert.ErrorIs(t, err, ErrOwnRole)

	_, err = logifyObj.User.SetUserStatus(ctx, actorOf(admin), admin.ID, false)
	assert.ErrorIs(t, err, ErrOwnStatus)

	reloaded, err := logifyObj.User.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
	assert.True(t, reloaded.IsActive)
}

func TestUpdateUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, _ := GetMockLogifyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	admin := seedUser(t, logifyObj, models.RoleAdmin)
	tech := seedUser(t, logifyObj, models.RoleTechnician)
	ctx := context.Background()

	updated, err := logifyObj.User.UpdateUser(ctx, actorOf(admin), tech.ID, &models.UserPatch{Role: ptr(models.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = logifyObj.User.UpdateUser(ctx, actorOf(admin), tech.ID, &models.UserPatch{Role: ptr(models.Role("BOSS"))})
	assert.ErrorIs(t, err, ErrInvalidRole)

	updated, err = logifyObj.User.SetUserStatus(ctx, actorOf(admin), tech.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	var actions []string
	require.NoError(t, logifyObj.Db.Conn.Model(&models.AuditLog{}).
		Where("target_id = ?", tech.ID).
		Order("id asc").
		Pluck("action", &actions).Error)
	assert.Equal(t, []string{models.AuditActionUserUpdated, models.AuditActionUserStatusChanged}, actions)

	_, err = logifyObj.User.UpdateUser(ctx, actorOf(admin), uuid.NewString(), &models.UserPatch{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, logifyObj, _ := GetMockLogifyWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	admin := seedUser(t, logifyObj, models.RoleAdmin)
	tech := seedUser(t, logifyObj, models.RoleTechnician)
	ctx := context.Background()

	user, err := logifyObj.User.Authenticate(ctx, "  "+tech.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, tech.ID, user.ID)

	_, err = logifyObj.User.Authenticate(ctx, tech.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = logifyObj.User.Authenticate(ctx, "ghost@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = logifyObj.User.SetUserStatus(ctx, actorOf(admin), tech.ID, false)
	require.NoError(t, err)
	_, err = logifyObj.User.Authenticate(ctx, tech.Email, "secret")
	assert.ErrorIs(t, err, ErrAccountDisabled)
	assert.Equal(t, KindForbidden, KindOf(err))
}
