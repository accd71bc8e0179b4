package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_RemoteFirst(t *testing.T) {
	uc, m := setupAgentUCTest(t, false)

	resp := &models.AuthResponse{
		Identity:     &models.Identity{Role: models.RoleAdmin},
		SessionToken: "remote-jwt",
	}
	m.authorityGW.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil)
	m.sessions.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.Session) error {
			assert.Equal(t, models.SessionModeOnline, session.Mode)
			return nil
		})

	got, err := uc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "remote-jwt", got.SessionToken)
}

func TestLogin_RemoteDenialPropagates(t *testing.T) {
	uc, m := setupAgentUCTest(t, false)

	m.authorityGW.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	_, err := uc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_OfflineAdminFromConfig(t *testing.T) {
	uc, m := setupAgentUCTest(t, true)
	uc.cfg.Admin = models.AdminConfig{Username: "admin", Password: "local-secret"}

	m.sessions.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.Session) error {
			assert.Equal(t, models.SessionModeOffline, session.Mode)
			return nil
		})

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "local-secret",
		Role:     models.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.Identity.Role)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestLogin_OfflineAdminWrongPassword(t *testing.T) {
	uc, _ := setupAgentUCTest(t, true)
	uc.cfg.Admin = models.AdminConfig{Username: "admin", Password: "local-secret"}

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "wrong",
		Role:     models.RoleAdmin,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_OfflineStudentFromRegistry(t *testing.T) {
	uc, m := setupAgentUCTest(t, true)

	m.students.EXPECT().
		GetStudent(gomock.Any(), "JAMB/2026/1234").
		Return(&models.StudentRecord{
			FullName:     "Ada Obi",
			RegNumber:    "JAMB/2026/1234",
			PasswordHash: hashPassword(t, "student-pass"),
			ExamType:     models.ExamTypeJAMB,
		}, nil)
	m.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "JAMB/2026/1234",
		Password: "student-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, resp.Identity.Role)
	assert.Equal(t, "JAMB/2026/1234", resp.Identity.RegNumber)
}

func TestLogin_OfflineStudentWrongPassword(t *testing.T) {
	uc, m := setupAgentUCTest(t, true)

	m.students.EXPECT().
		GetStudent(gomock.Any(), "JAMB/2026/1234").
		Return(&models.StudentRecord{
			RegNumber:    "JAMB/2026/1234",
			PasswordHash: hashPassword(t, "student-pass"),
		}, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "JAMB/2026/1234",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	uc, _ := setupAgentUCTest(t, true)

	_, err := uc.Login(context.Background(), &models.LoginRequest{Username: "  ", Password: ""})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterStudent_RemoteFirst(t *testing.T) {
	uc, m := setupAgentUCTest(t, false)

	identity := &models.Identity{Role: models.RoleStudent, RegNumber: "JAMB/2026/1234"}
	m.authorityGW.EXPECT().RegisterStudent(gomock.Any(), gomock.Any()).Return(identity, nil)

	got, err := uc.RegisterStudent(context.Background(), &models.RegisterStudentRequest{
		FullName:  "Ada Obi",
		RegNumber: "JAMB/2026/1234",
		Password:  "student-pass",
		ExamType:  models.ExamTypeJAMB,
	})

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestRegisterStudent_RemoteDuplicatePropagates(t *testing.T) {
	uc, m := setupAgentUCTest(t, false)

	m.authorityGW.EXPECT().
		RegisterStudent(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrDuplicateAccount)

	_, err := uc.RegisterStudent(context.Background(), &models.RegisterStudentRequest{
		FullName:  "Ada Obi",
		RegNumber: "JAMB/2026/1234",
		Password:  "student-pass",
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateAccount)
}

func TestRegisterStudent_FallbackStoresLocally(t *testing.T) {
	uc, m := setupAgentUCTest(t, false)

	m.authorityGW.EXPECT().
		RegisterStudent(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrNetworkUnavailable)

	m.students.EXPECT().
		SaveStudent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, student *models.StudentRecord) error {
			assert.Equal(t, "JAMB/2026/1234", student.RegNumber)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(student.PasswordHash), []byte("student-pass")))
			assert.WithinDuration(t, time.Now(), student.CreatedAt, time.Second)
			return nil
		})

	identity, err := uc.RegisterStudent(context.Background(), &models.RegisterStudentRequest{
		FullName:  "Ada Obi",
		RegNumber: "JAMB/2026/1234",
		Password:  "student-pass",
		ExamType:  models.ExamTypeJAMB,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, identity.Role)
	assert.Equal(t, "JAMB/2026/1234", identity.RegNumber)
}

func TestRegisterStudent_MissingFields(t *testing.T) {
	uc, _ := setupAgentUCTest(t, true)

	_, err := uc.RegisterStudent(context.Background(), &models.RegisterStudentRequest{
		FullName: "Ada Obi",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
