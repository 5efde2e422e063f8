//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"grooming-salon/internal/domain/user"
	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/pkg/password"
	"grooming-salon/internal/pkg/ptr"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.FixedNow)

	t.Run("create hashes the password", func(t *testing.T) {
		uow := newMemUoW()
		id, err := commands.NewUserCommands(uow, clk).Create(ctx, reqdto.CreateUserRequest{
			Email: "new@salon.kr", Name: "박미용", Password: "longenough", Role: "groomer",
		})
		require.NoError(t, err)

		u := uow.users[id]
		assert.Equal(t, user.RoleGroomer, u.Role())
		assert.NotEqual(t, "longenough", u.PasswordHash())
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), "longenough"))
	})

	t.Run("create rejects short passwords and unknown roles", func(t *testing.T) {
		cmds := commands.NewUserCommands(newMemUoW(), clk)

		_, err := cmds.Create(ctx, reqdto.CreateUserRequest{Email: "a@salon.kr", Name: "a", Password: "short", Role: "groomer"})
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = cmds.Create(ctx, reqdto.CreateUserRequest{Email: "a@salon.kr", Name: "a", Password: "longenough", Role: "owner"})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("duplicate email", func(t *testing.T) {
		uow := newMemUoW()
		uow.failWrite = infra.WrapRepoErr(slog.Default(), "insert", &pgconn.PgError{Code: "23505"})

		_, err := commands.NewUserCommands(uow, clk).Create(ctx, reqdto.CreateUserRequest{
			Email: "dup@salon.kr", Name: "중복", Password: "longenough", Role: "admin",
		})
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		uow := newMemUoW()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		uow.users[u.ID()] = u

		require.NoError(t, commands.NewUserCommands(uow, clk).Update(ctx, u.ID(), reqdto.UpdateUserRequest{Role: ptr.Of("admin")}))
		assert.Equal(t, "김미용", uow.users[u.ID()].Name())
		assert.Equal(t, user.RoleAdmin, uow.users[u.ID()].Role())
	})

	t.Run("reset password", func(t *testing.T) {
		uow := newMemUoW()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		uow.users[u.ID()] = u

		require.NoError(t, commands.NewUserCommands(uow, clk).ResetPassword(ctx, u.ID(), reqdto.ResetPasswordRequest{Password: "brand-new-pw"}))
		assert.NoError(t, password.ComparePassword(uow.users[u.ID()].PasswordHash(), "brand-new-pw"))
	})

	t.Run("delete", func(t *testing.T) {
		uow := newMemUoW()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		uow.users[u.ID()] = u
		cmds := commands.NewUserCommands(uow, clk)

		assert.ErrorIs(t, cmds.Delete(ctx, u.ID(), u.ID()), commands.ErrCannotDeleteSelf)
		require.NoError(t, cmds.Delete(ctx, u.ID(), uuid.New()))
		assert.ErrorIs(t, cmds.Delete(ctx, u.ID(), uuid.New()), commands.ErrUserNotFound)
	})
}
