package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/mock"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/internal/utils"
	"github.com/lingualeap/lingualeap/models"
)

var testClock = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// newTestAccountSvc builds an accountService over mocked repositories with a
// fixed clock and a real sha256 hasher.
func newTestAccountSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*accountService,
	*mock.MockUserRepository,
	*mock.MockStatsRepository,
	*mock.MockStreakRepository,
) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockStats := mock.NewMockStatsRepository(ctrl)
	mockStreaks := mock.NewMockStreakRepository(ctrl)

	hasher, err := utils.NewPasswordHasher("sha256", 16)
	require.NoError(t, err)

	svc := &accountService{
		users:              mockUsers,
		stats:              mockStats,
		streaks:            mockStreaks,
		hasher:             hasher,
		delivery:           NewLogDelivery(logger.Nop()),
		tempPasswordLength: 12,
		now:                func() time.Time { return testClock },
		logger:             logger.Nop(),
	}

	return svc, mockUsers, mockStats, mockStreaks
}

// storedUser returns a user whose hash and salt match password under the
// service's hasher.
func storedUser(t *testing.T, svc *accountService, password string) models.User {
	t.Helper()

	hash, salt, err := svc.hasher.HashWithNewSalt(password)
	require.NoError(t, err)

	return models.User{
		ID:           7,
		Username:     "learner",
		Email:        "learner@example.com",
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockStats, mockStreaks := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "newbie").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().FindUserByEmail(ctx, "newbie@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	var persisted models.User
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			persisted = u
			u.ID = 42
			return u, nil
		})
	mockStats.EXPECT().InitForUser(ctx, int64(42)).Return(nil)
	mockStreaks.EXPECT().InitForUser(ctx, int64(42)).Return(nil)

	created, err := svc.Register(ctx, "newbie", "newbie@example.com", "Secret123")
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "newbie", persisted.Username)
	assert.Equal(t, "newbie@example.com", persisted.Email)
	assert.Equal(t, testClock, persisted.RegistrationDate)
	assert.False(t, persisted.IsAdmin)
	assert.True(t, persisted.IsActive)

	// The plaintext must not be stored; the stored pair must verify.
	assert.NotEqual(t, "Secret123", persisted.PasswordHash)
	assert.True(t, svc.hasher.Verify("Secret123", persisted.PasswordHash, persisted.Salt))
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "learner").Return(models.User{ID: 7}, nil)

	// A weak password alongside a taken username still reports the
	// username conflict; checks run in order and the first failure wins.
	_, err := svc.Register(ctx, "learner", "other@example.com", "weak")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "newbie").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().FindUserByEmail(ctx, "learner@example.com").Return(models.User{ID: 7}, nil)

	_, err := svc.Register(ctx, "newbie", "learner@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "newbie").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().FindUserByEmail(ctx, "newbie@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Register(ctx, "newbie", "newbie@example.com", "nodigits")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAccountService_Register_InsertRaceMapsConstraint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "newbie").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().FindUserByEmail(ctx, "newbie@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(ctx, "newbie", "newbie@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "Secret123")
	mockUsers.EXPECT().FindUserByUsername(ctx, "learner").Return(user, nil)
	mockUsers.EXPECT().UpdateLastLogin(ctx, gomock.Any()).Return(nil)

	got, err := svc.Authenticate(ctx, "learner", "Secret123")
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, testClock, *got.LastLogin)
}

func TestAccountService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	_, unknownErr := svc.Authenticate(ctx, "ghost", "Secret123")

	user := storedUser(t, svc, "Secret123")
	mockUsers.EXPECT().FindUserByUsername(ctx, "learner").Return(user, nil)
	_, wrongErr := svc.Authenticate(ctx, "learner", "WrongPass1")

	// Unknown username and wrong password must produce the same error so
	// the response does not reveal which accounts exist.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccountService_Authenticate_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "Secret123")
	user.IsActive = false
	mockUsers.EXPECT().FindUserByUsername(ctx, "learner").Return(user, nil)

	// Correct password, but the account is deactivated.
	_, err := svc.Authenticate(ctx, "learner", "Secret123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "OldSecret1")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	var newHash, newSalt string
	mockUsers.EXPECT().UpdatePassword(ctx, user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash, salt string) error {
			newHash, newSalt = hash, salt
			return nil
		})

	err := svc.ChangePassword(ctx, user.ID, "OldSecret1", "NewSecret2")
	require.NoError(t, err)

	assert.True(t, svc.hasher.Verify("NewSecret2", newHash, newSalt))
	assert.False(t, svc.hasher.Verify("OldSecret1", newHash, newSalt))
	assert.NotEqual(t, user.Salt, newSalt, "salt must be regenerated on password change")
}

func TestAccountService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "OldSecret1")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	// No UpdatePassword expectation: the stored hash must stay untouched.
	err := svc.ChangePassword(ctx, user.ID, "NotTheOldOne1", "NewSecret2")
	assert.ErrorIs(t, err, ErrInvalidCurrentPassword)
}

func TestAccountService_ChangePassword_WeakNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "OldSecret1")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	err := svc.ChangePassword(ctx, user.ID, "OldSecret1", "weak")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAccountService_ChangePassword_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, int64(99)).Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.ChangePassword(ctx, 99, "OldSecret1", "NewSecret2")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// recordingDelivery captures what the reset flow hands to the delivery
// channel.
type recordingDelivery struct {
	user models.User
	temp string
}

func (d *recordingDelivery) Deliver(_ context.Context, user models.User, temp string) error {
	d.user = user
	d.temp = temp
	return nil
}

func TestAccountService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	delivery := &recordingDelivery{}
	svc.delivery = delivery
	ctx := context.Background()

	user := storedUser(t, svc, "OldSecret1")
	mockUsers.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	var newHash, newSalt string
	mockUsers.EXPECT().UpdatePassword(ctx, user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash, salt string) error {
			newHash, newSalt = hash, salt
			return nil
		})

	temp, err := svc.ResetPassword(ctx, user.Email)
	require.NoError(t, err)

	assert.Len(t, temp, 12)
	assert.True(t, svc.hasher.Verify(temp, newHash, newSalt), "stored hash must match the issued temporary password")
	assert.False(t, svc.hasher.Verify("OldSecret1", newHash, newSalt), "old password must stop working")
	assert.Equal(t, temp, delivery.temp)
	assert.Equal(t, user.ID, delivery.user.ID)
}

func TestAccountService_ResetPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.ResetPassword(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestAccountService_UpdateProfile_ChangeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "Secret123")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mockUsers.EXPECT().FindUserByEmail(ctx, "fresh@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	mockUsers.EXPECT().UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) error {
			assert.Equal(t, "fresh@example.com", u.Email)
			assert.Equal(t, user.Username, u.Username)
			return nil
		})

	updated, err := svc.UpdateProfile(ctx, user.ID, "", "fresh@example.com")
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", updated.Email)
}

func TestAccountService_UpdateProfile_UsernameConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "Secret123")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mockUsers.EXPECT().FindUserByUsername(ctx, "someoneelse").Return(models.User{ID: 8}, nil)

	_, err := svc.UpdateProfile(ctx, user.ID, "someoneelse", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAccountService_UpdateProfile_SameValuesAreNotConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	user := storedUser(t, svc, "Secret123")
	mockUsers.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	// Re-submitting the current username and email triggers no uniqueness
	// lookups, only the write.
	mockUsers.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

	_, err := svc.UpdateProfile(ctx, user.ID, user.Username, user.Email)
	assert.NoError(t, err)
}

func TestAccountService_UpdateProfile_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("disk on fire")
	mockUsers.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{}, storageErr)

	_, err := svc.UpdateProfile(ctx, 7, "new", "")
	assert.ErrorIs(t, err, storageErr)
}
