package authenticating

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	pgmocks "github.com/boraedu/bora-hub-api/infrastructure/database/postgres/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	service    *Service
	users      *mocks.MockUserRepository
	tenants    *mocks.MockTenantRepository
	transactor *pgmocks.MockTransactor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:      mocks.NewMockUserRepository(ctrl),
		tenants:    mocks.NewMockTenantRepository(ctrl),
		transactor: pgmocks.NewMockTransactor(ctrl),
	}
	f.service = NewService(f.users, f.tenants, f.transactor, &config.Config{
		SecretKey: "segredo-de-teste",
		Auth:      config.Auth{TokenTTL: time.Hour},
	}).(*Service)
	return f
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("gera token com o tenant do usuário", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@bora.com").Return(&domain.User{
			ID:           10,
			TenantID:     "tenant-1",
			Name:         "Ana",
			Email:        "ana@bora.com",
			PasswordHash: hash(t, "Senha@123"),
			Active:       true,
			RoleID:       domain.RoleManager,
		}, nil)

		token, err := f.service.LoginUser(ctx, " Ana@Bora.com ", "Senha@123")
		require.NoError(t, err)

		claims, err := f.service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 10, claims.UserID)
		assert.Equal(t, "tenant-1", claims.TenantID)
		assert.True(t, claims.CanManage())
		assert.False(t, claims.IsAdmin())
	})

	t.Run("usuário inativo", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@bora.com").Return(&domain.User{ID: 10, Active: false}, nil)

		_, err := f.service.LoginUser(ctx, "ana@bora.com", "qualquer")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@bora.com").Return(&domain.User{
			ID:           10,
			Active:       true,
			PasswordHash: hash(t, "Senha@123"),
		}, nil)

		_, err := f.service.LoginUser(ctx, "ana@bora.com", "errada")
		assert.True(t, IsCredentialsError(err))

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, 10, authErr.UserID)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "nao@existe.com").Return(nil, nil)

		_, err := f.service.LoginUser(ctx, "nao@existe.com", "x")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken_Expirado(t *testing.T) {
	f := newFixture(t)
	f.service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := f.service.generateJWT(&domain.User{ID: 1, TenantID: "tenant-1"})
	require.NoError(t, err)

	_, err = f.service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRegisterTenant(t *testing.T) {
	ctx := context.Background()
	req := &domain.RegisterTenantRequest{
		Name:          "BORA",
		Slug:          "Bora",
		AdminName:     "Ana",
		AdminLastname: "Lima",
		AdminEmail:    "ana@bora.com",
		AdminPassword: "Senha@123",
	}

	t.Run("cria tenant e administrador na mesma transação", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@bora.com").Return(nil, nil)
		f.transactor.EXPECT().RunInTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) })
		f.tenants.EXPECT().WithTx(gomock.Any()).Return(f.tenants)
		f.users.EXPECT().WithTx(gomock.Any()).Return(f.users)
		f.tenants.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			assert.Equal(t, "bora", tenant.Slug)
			assert.NotEmpty(t, tenant.ID)
			return nil
		})
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleAdmin, user.RoleID)
			assert.True(t, user.Active)
			user.ID = 1
			return user, nil
		})

		tenant, admin, err := f.service.RegisterTenant(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, admin.TenantID)
		assert.Empty(t, admin.PasswordHash)
	})

	t.Run("slug duplicado", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@bora.com").Return(nil, nil)
		f.transactor.EXPECT().RunInTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) })
		f.tenants.EXPECT().WithTx(gomock.Any()).Return(f.tenants)
		f.tenants.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrConflict)

		_, _, err := f.service.RegisterTenant(ctx, req)
		assert.ErrorIs(t, err, ErrTenantAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		f := newFixture(t)
		weak := *req
		weak.AdminPassword = "fraca"

		_, _, err := f.service.RegisterTenant(ctx, &weak)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("somente administradores", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GenerateStrongPassword(ctx, &domain.Claims{UserID: 2, TenantID: "t", UserRoleID: domain.RoleManager}, 5)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("gera senha válida para usuário do mesmo tenant", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, "t", 5).Return(&domain.User{ID: 5, TenantID: "t"}, nil)
		f.users.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		password, err := f.service.GenerateStrongPassword(ctx, &domain.Claims{UserID: 1, TenantID: "t", UserRoleID: domain.RoleAdmin}, 5)
		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, f.service.ValidatePasswordStrength(password))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	s := &Service{}
	assert.Error(t, s.ValidatePasswordStrength("Ab1!"))
	assert.Error(t, s.ValidatePasswordStrength("abcdefg1!"))
	assert.Error(t, s.ValidatePasswordStrength("ABCDEFG1!"))
	assert.Error(t, s.ValidatePasswordStrength("Abcdefgh!"))
	assert.Error(t, s.ValidatePasswordStrength("Abcdefgh1"))
	assert.NoError(t, s.ValidatePasswordStrength("Abcdefg1!"))
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.users.EXPECT().GetUserByID(ctx, "t", 3).Return(&domain.User{ID: 3, PasswordHash: hash(t, "Atual@123")}, nil).Times(2)

	err := f.service.ChangePassword(ctx, "t", 3, "Atual@123", "Atual@123")
	assert.ErrorIs(t, err, ErrSamePassword)

	f.users.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
	assert.NoError(t, f.service.ChangePassword(ctx, "t", 3, "Atual@123", "Nova@1234"))
}
