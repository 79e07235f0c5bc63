package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagarseva/apperr"
	"nagarseva/models"
	"nagarseva/utils"
)

func newAccountFixture(t *testing.T) (*AccountService, *fakeUserStore, *fakeOfficerStore, *fakeAdminStore) {
	t.Helper()
	users := newFakeUserStore()
	officers := newFakeOfficerStore()
	admins := newFakeAdminStore()

	require.NoError(t, users.Create(&models.User{Name: "Asha", Email: "a@x.com", PasswordHash: "h", City: "Pune", WardNo: "5"}))
	require.NoError(t, officers.Create(&models.Officer{Name: "Ravi", Email: "fo@x.com", PasswordHash: "h", Role: models.RoleFieldOfficer, City: "Pune"}))
	admins.admins[1] = &models.Admin{AdminID: 1, Name: "Meera", Email: "m@x.com", PasswordHash: "h", City: "Pune"}

	return NewAccountService(users, officers, admins), users, officers, admins
}

func TestAccountGet_DispatchesByRole(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)

	account, err := svc.Get(1, models.RoleCitizen)
	require.NoError(t, err)
	user, ok := account.(*models.User)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user.Email)

	account, err = svc.Get(1, models.RoleFieldOfficer)
	require.NoError(t, err)
	officer, ok := account.(*models.Officer)
	require.True(t, ok)
	assert.Equal(t, "fo@x.com", officer.Email)

	account, err = svc.Get(1, models.RoleAdmin)
	require.NoError(t, err)
	admin, ok := account.(*models.Admin)
	require.True(t, ok)
	assert.Equal(t, "m@x.com", admin.Email)
}

func TestAccountGet_RoleMismatch(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)

	// Officer 1 is a field officer; asking for them as call_center misses.
	_, err := svc.Get(1, models.RoleCallCenter)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(99, models.RoleCitizen)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAccountUpdate_PartialFields(t *testing.T) {
	svc, users, _, _ := newAccountFixture(t)

	newCity := "Mumbai"
	_, err := svc.Update(&models.UpdateAccountRequest{ID: 1, Role: "citizen", City: &newCity})
	require.NoError(t, err)

	user, err := users.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", user.City)
	assert.Equal(t, "Asha", user.Name, "untouched fields keep their value")
	assert.Equal(t, "h", user.PasswordHash, "password untouched when absent")
}

func TestAccountUpdate_RehashesPassword(t *testing.T) {
	svc, users, _, _ := newAccountFixture(t)

	newPassword := "fresh-secret"
	_, err := svc.Update(&models.UpdateAccountRequest{ID: 1, Role: "citizen", Password: &newPassword})
	require.NoError(t, err)

	user, err := users.GetByID(1)
	require.NoError(t, err)
	assert.NotEqual(t, "fresh-secret", user.PasswordHash)
	assert.NoError(t, utils.CheckPassword("fresh-secret", user.PasswordHash))
}

func TestAccountUpdate_EmailInUse(t *testing.T) {
	svc, users, _, _ := newAccountFixture(t)
	require.NoError(t, users.Create(&models.User{Name: "B", Email: "b@x.com", PasswordHash: "h"}))

	taken := "b@x.com"
	_, err := svc.Update(&models.UpdateAccountRequest{ID: 1, Role: "citizen", Email: &taken})
	assert.ErrorIs(t, err, apperr.ErrEmailInUse)
}

func TestAccountUpdate_InvalidRole(t *testing.T) {
	svc, _, _, _ := newAccountFixture(t)

	_, err := svc.Update(&models.UpdateAccountRequest{ID: 1, Role: "wizard"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateOwnProfile_IgnoresPayloadIdentity(t *testing.T) {
	svc, users, officers, _ := newAccountFixture(t)

	// The payload claims to be citizen 1; the principal is officer 1.
	newName := "Ravi Kumar"
	_, err := svc.UpdateOwnProfile(
		models.Principal{ID: 1, Role: models.RoleFieldOfficer, City: "Pune"},
		&models.UpdateAccountRequest{ID: 1, Role: "citizen", Name: &newName},
	)
	require.NoError(t, err)

	officer, err := officers.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", officer.Name)

	user, err := users.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name, "citizen record untouched")
}
