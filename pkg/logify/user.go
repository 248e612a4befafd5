package logify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

func userLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyUser),
	)
}

func (i *Logify) listUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := i.Db.Conn.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

func (i *Logify) getUser(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var user models.User
	err := i.Db.Conn.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (i *Logify) insertUser(ctx context.Context, performedBy *string, input *models.UserInput) (*models.User, error) {
	logger := userLogger()

	name := strings.TrimSpace(input.Name)
	email := common.NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = models.RoleTechnician
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := i.Db.Conn.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	if i.Hasher == nil {
		return nil, fmt.Errorf("password hasher not available")
	}
	hash, err := i.Hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := i.now()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := i.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	logger.Info("User created", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	i.audit(ctx, logger, &models.AuditLog{
		Action:        models.AuditActionUserCreated,
		PerformedByID: performedBy,
		TargetType:    models.AuditTargetUser,
		TargetID:      user.ID,
		Details:       datatypes.JSONMap{"email": user.Email, "role": string(user.Role)},
	})

	return &user, nil
}

func (i *Logify) createUser(ctx context.Context, actor models.Actor, input *models.UserInput) (*models.User, error) {
	return i.insertUser(ctx, &actor.ID, input)
}

func (i *Logify) bootstrapAdmin(ctx context.Context, input *models.UserInput) (*models.User, error) {
	admin := *input
	admin.Role = models.RoleAdmin
	return i.insertUser(ctx, nil, &admin)
}

// applyUserPatch enforces the self-modification guard before touching the row.
func (i *Logify) applyUserPatch(ctx context.Context, actor models.Actor, id string, patch *models.UserPatch) (*models.User, datatypes.JSONMap, error) {
	user, err := i.getUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	isSelf := user.ID == actor.ID
	updates := map[string]any{}
	details := datatypes.JSONMap{}

	if patch.Role != nil {
		if isSelf {
			return nil, nil, ErrOwnRole
		}
		if !patch.Role.IsValid() {
			return nil, nil, ErrInvalidRole
		}
		if *patch.Role != user.Role {
			updates["role"] = *patch.Role
			details["role"] = string(*patch.Role)
		}
	}

	if patch.IsActive != nil {
		if isSelf {
			return nil, nil, ErrOwnStatus
		}
		if *patch.IsActive != user.IsActive {
			updates["is_active"] = *patch.IsActive
			details["isActive"] = *patch.IsActive
		}
	}

	if len(updates) == 0 {
		return user, details, nil
	}

	updates["updated_at"] = i.now()
	if err := i.Db.Conn.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return nil, nil, err
	}

	user, err = i.getUser(ctx, user.ID)
	return user, details, err
}

func (i *Logify) updateUser(ctx context.Context, actor models.Actor, id string, patch *models.UserPatch) (*models.User, error) {
	logger := userLogger()

	user, details, err := i.applyUserPatch(ctx, actor, id, patch)
	if err != nil {
		return nil, err
	}

	if len(details) > 0 {
		logger.Info("User updated", zap.String("user_id", user.ID), zap.Any("changes", details))
		i.audit(ctx, logger, &models.AuditLog{
			Action:        models.AuditActionUserUpdated,
			PerformedByID: &actor.ID,
			TargetType:    models.AuditTargetUser,
			TargetID:      user.ID,
			Details:       details,
		})
	}
	return user, nil
}

func (i *Logify) setUserStatus(ctx context.Context, actor models.Actor, id string, isActive bool) (*models.User, error) {
	logger := userLogger()

	user, details, err := i.applyUserPatch(ctx, actor, id, &models.UserPatch{IsActive: &isActive})
	if err != nil {
		return nil, err
	}

	if len(details) > 0 {
		logger.Info("User status changed", zap.String("user_id", user.ID), zap.Bool("is_active", user.IsActive))
		i.audit(ctx, logger, &models.AuditLog{
			Action:        models.AuditActionUserStatusChanged,
			PerformedByID: &actor.ID,
			TargetType:    models.AuditTargetUser,
			TargetID:      user.ID,
			Details:       details,
		})
	}
	return user, nil
}

func (i *Logify) authenticate(ctx context.Context, email string, password string) (*models.User, error) {
	logger := userLogger()

	var user models.User
	err := i.Db.Conn.WithContext(ctx).First(&user, "email = ?", common.NormalizeEmail(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if i.Hasher == nil {
		return nil, fmt.Errorf("password hasher not available")
	}
	if err := i.Hasher.Verify(password, user.PasswordHash); err != nil {
		logger.Info("Login rejected", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return &user, nil
}

type IUserImpl struct {
	logify *Logify
}

func (iu *IUserImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	return iu.logify.listUsers(ctx)
}

func (iu *IUserImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	return iu.logify.getUser(ctx, id)
}

func (iu *IUserImpl) CreateUser(ctx context.Context, actor models.Actor, input *models.UserInput) (*models.User, error) {
	return iu.logify.createUser(ctx, actor, input)
}

func (iu *IUserImpl) BootstrapAdmin(ctx context.Context, input *models.UserInput) (*models.User, error) {
	return iu.logify.bootstrapAdmin(ctx, input)
}

func (iu *IUserImpl) UpdateUser(ctx context.Context, actor models.Actor, id string, patch *models.UserPatch) (*models.User, error) {
	return iu.logify.updateUser(ctx, actor, id, patch)
}

func (iu *IUserImpl) SetUserStatus(ctx context.Context, actor models.Actor, id string, isActive bool) (*models.User, error) {
	return iu.logify.setUserStatus(ctx, actor, id, isActive)
}

func (iu *IUserImpl) Authenticate(ctx context.Context, email string, password string) (*models.User, error) {
	return iu.logify.authenticate(ctx, email, password)
}

func (i *Logify) GetIUser() IUser {
	return &IUserImpl{logify: i}
}
