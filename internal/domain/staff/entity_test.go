//go:build unit

package staff_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(staff.Staff{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.StaffBuilder)
	errIs  error
}

func TestStaff(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewStaffBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := staff.NewEmail("desk@example.com")
		expected := staff.NewStaff("Front Desk", email, "hashed_password", staff.RoleManager, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Staff mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "desk@example.com", actual.Email().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.StaffBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case is folded",
				mutate: func(b *builder.StaffBuilder) { b.WithEmail("  Desk@Example.COM ") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.StaffBuilder) { b.WithEmail("") },
				errIs:  staff.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.StaffBuilder) { b.WithEmail("deskexample.com") },
				errIs:  staff.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "manager",
				mutate: func(b *builder.StaffBuilder) { b.WithRole("manager") },
			},
			{
				name:   "clerk",
				mutate: func(b *builder.StaffBuilder) { b.WithRole("clerk") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.StaffBuilder) { b.WithRole("owner") },
				errIs:  staff.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.StaffBuilder) { b.WithRole("") },
				errIs:  staff.ErrInvalidRole,
			},
		})
	})
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, staff.RoleManager.AtLeast(staff.RoleClerk))
	assert.True(t, staff.RoleManager.AtLeast(staff.RoleManager))
	assert.True(t, staff.RoleClerk.AtLeast(staff.RoleClerk))
	assert.False(t, staff.RoleClerk.AtLeast(staff.RoleManager))
	assert.False(t, staff.Role("owner").AtLeast(staff.RoleClerk))
}

func TestCredentials(t *testing.T) {
	c, err := staff.NewCredentials("desk@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", c.Password().Value())

	_, err = staff.NewCredentials("desk@example.com", "short")
	assert.ErrorIs(t, err, staff.ErrPasswordTooWeak)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewStaffBuilder().With(c.mutate).BuildDomain()

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
