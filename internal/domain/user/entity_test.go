//go:build unit

package user_test

import (
	"testing"
	"time"

	"grooming-salon/internal/domain/user"
	"grooming-salon/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("groomer@example.com")
		expected, err := user.NewUser(email, "김미용", "hashed_password", user.RoleGroomer, builder.FixedNow)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "groomer@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleGroomer, actual.Role())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid address", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "upper case is normalized", mutate: func(b *builder.UserBuilder) { b.WithEmail("Admin@Example.COM") }},
			{name: "empty address", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "groomer", mutate: func(b *builder.UserBuilder) { b.WithRole("groomer") }},
			{name: "viewer is not a salon role", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }, errIs: user.ErrInvalidRole},
			{name: "empty role", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.UserBuilder) { b.WithName("  ") }, errIs: user.ErrEmptyName},
		})
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	later := builder.FixedNow.Add(time.Hour)
	require.NoError(t, u.UpdateProfile("박원장", user.RoleAdmin, later))
	assert.Equal(t, "박원장", u.Name())
	assert.Equal(t, user.RoleAdmin, u.Role())
	assert.Equal(t, later, u.UpdatedAt())

	assert.ErrorIs(t, u.UpdateProfile("", user.RoleAdmin, later), user.ErrEmptyName)
	assert.ErrorIs(t, u.UpdateProfile("박원장", user.Role("owner"), later), user.ErrInvalidRole)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleGroomer))
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
	assert.True(t, user.RoleGroomer.AtLeast(user.RoleGroomer))
	assert.False(t, user.RoleGroomer.AtLeast(user.RoleAdmin))
	assert.False(t, user.Role("viewer").AtLeast(user.RoleGroomer))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
