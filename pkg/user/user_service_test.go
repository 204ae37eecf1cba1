package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/jwt"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.RecipeSubmission{},
	))
	return db
}

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email:     "Alice@Example.com",
		Password:  "correcthorse",
		FirstName: "Alice",
		LastName:  "Baker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, string(domain.RoleUser), res.User.Role)

	login, err := service.Login(ctx, domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Email:     "bob@example.com",
		Password:  "password123",
		FirstName: "Bob",
		LastName:  "Cook",
	}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	// case-insensitive: same address, different casing
	req.Email = "BOB@example.com"
	_, err = service.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, domain.RegisterRequest{
		Email:     "carol@example.com",
		Password:  "password123",
		FirstName: "Carol",
		LastName:  "Dane",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateRole(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	admin, err := service.Register(ctx, domain.RegisterRequest{
		Email:     "admin@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Min",
	})
	require.NoError(t, err)

	target, err := service.Register(ctx, domain.RegisterRequest{
		Email:     "dave@example.com",
		Password:  "password123",
		FirstName: "Dave",
		LastName:  "Eden",
	})
	require.NoError(t, err)

	updated, err := service.UpdateRole(ctx, admin.User.ID, target.User.ID, "contributor")
	require.NoError(t, err)
	assert.Equal(t, "contributor", updated.Role)

	_, err = service.UpdateRole(ctx, admin.User.ID, target.User.ID, "chef")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = service.UpdateRole(ctx, admin.User.ID, admin.User.ID, "user")
	assert.ErrorIs(t, err, domain.ErrCannotChangeOwnRole)

	_, err = service.UpdateRole(ctx, admin.User.ID, uuid.NewString(), "contributor")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email:     "erin@example.com",
		Password:  "password123",
		FirstName: "Erin",
		LastName:  "Frost",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, res.User.ID))

	_, err = service.Me(ctx, res.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, service.DeleteUser(ctx, res.User.ID), domain.ErrUserNotFound)
}
