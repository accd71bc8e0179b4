package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/internal/utils"
	"github.com/acecbt/acetoken/services/authority/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 60,
			Issuer:     "acetoken-test",
		},
		Token: models.TokenConfig{
			Prefix:              "ACE",
			BindingValidityDays: 365,
		},
	}
}

func setupTokenUCTest(t *testing.T) (*TokenAuthorityUC, *mocks.MockTokenRepo, *mocks.MockAccountRepo, *mocks.MockTokenGW) {
	ctrl := gomock.NewController(t)
	mockTokenRepo := mocks.NewMockTokenRepo(ctrl)
	mockAccountRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockTokenGW(ctrl)

	uc := NewTokenAuthorityUC(mockTokenRepo, mockAccountRepo, mockGW, testConfig())
	return uc, mockTokenRepo, mockAccountRepo, mockGW
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateToken(t *testing.T) {
	uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

	var created *models.Token
	mockTokenRepo.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *models.Token) error {
			created = token
			return nil
		})
	mockGW.EXPECT().
		PublishTokenEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
			assert.Equal(t, models.TokenEventCreated, event.Type)
			return nil
		})

	code, err := uc.CreateToken(context.Background(), &models.CreateTokenRequest{
		ExamType: models.ExamTypeJAMB,
		FullName: "Ada Obi",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.Code, code)
	assert.NoError(t, utils.ValidateAccessCode(code))
	assert.True(t, created.IsActive)
	assert.Nil(t, created.ExpiresAt)
	assert.Equal(t, models.TokenSourceAdmin, created.GeneratedBy)
}

func TestCreateToken_EventFailureDoesNotFailOperation(t *testing.T) {
	uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

	mockTokenRepo.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTokenEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	code, err := uc.CreateToken(context.Background(), &models.CreateTokenRequest{
		ExamType: models.ExamTypeWAEC,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, code)
}

func TestVerifyAndBind_StateMachine(t *testing.T) {
	const code = "ACE-ABCD-EFGH-JKLM"
	const fingerprint = "fp-device-1"

	testCases := []struct {
		name       string
		req        *models.VerifyRequest
		mockSetup  func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW)
		assertFunc func(t *testing.T, resp *models.VerifyResponse, err error)
	}{
		{
			name: "Unknown Code",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(nil, apperrors.ErrInvalidCode)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
			},
		},
		{
			name: "Malformed Code Rejected Without Lookup",
			req:  &models.VerifyRequest{Code: "not-a-code", DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
			},
		},
		{
			name: "Missing Fingerprint",
			req:  &models.VerifyRequest{Code: code},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrDeviceUnverified)
			},
		},
		{
			name: "Deactivated Dominates Expiry And Binding",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:              code,
					IsActive:          false,
					DeviceFingerprint: strPtr(fingerprint),
					ExpiresAt:         timePtr(time.Now().Add(-time.Hour)),
				}, nil)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrDeactivated)
			},
		},
		{
			name: "Expired Token",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:              code,
					IsActive:          true,
					DeviceFingerprint: strPtr(fingerprint),
					ExpiresAt:         timePtr(time.Now().Add(-time.Hour)),
				}, nil)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrExpired)
			},
		},
		{
			name: "Bound To Same Device Admits Without Rebinding",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:              code,
					IsActive:          true,
					DeviceFingerprint: strPtr(fingerprint),
					ExpiresAt:         timePtr(time.Now().Add(24 * time.Hour)),
					FullName:          "Ada Obi",
					ExamType:          models.ExamTypeJAMB,
				}, nil)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.False(t, resp.RequiresBinding)
				require.NotNil(t, resp.Identity)
				assert.Equal(t, models.RoleStudent, resp.Identity.Role)
				assert.Equal(t, code, resp.Identity.RegNumber)
				assert.Equal(t, "Ada Obi", resp.Identity.FullName)
				assert.NotEmpty(t, resp.SessionToken)
			},
		},
		{
			name: "Bound To Another Device",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: "fp-device-2"},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:              code,
					IsActive:          true,
					DeviceFingerprint: strPtr(fingerprint),
				}, nil)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrDeviceMismatch)
			},
		},
		{
			name: "Unbound Without Confirmation Requests Binding",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:     code,
					IsActive: true,
				}, nil)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.True(t, resp.RequiresBinding)
				assert.Nil(t, resp.Identity)
				assert.Empty(t, resp.SessionToken)
			},
		},
		{
			name: "Unbound With Confirmation Binds And Admits",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint, ConfirmBinding: true},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:     code,
					IsActive: true,
					FullName: "Ada Obi",
					ExamType: models.ExamTypeBoth,
				}, nil)
				repo.EXPECT().
					BindToken(gomock.Any(), code, fingerprint, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, code, fp string, boundAt, expiresAt time.Time) (*models.Token, error) {
						wantExpiry := boundAt.AddDate(0, 0, 365)
						assert.WithinDuration(t, wantExpiry, expiresAt, time.Second)
						return &models.Token{
							Code:              code,
							IsActive:          true,
							DeviceFingerprint: &fp,
							BoundAt:           &boundAt,
							ExpiresAt:         &expiresAt,
							FullName:          "Ada Obi",
							ExamType:          models.ExamTypeBoth,
						}, nil
					})
				gw.EXPECT().
					PublishTokenEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
						assert.Equal(t, models.TokenEventBound, event.Type)
						assert.Equal(t, fingerprint, event.DeviceFingerprint)
						return nil
					})
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.False(t, resp.RequiresBinding)
				require.NotNil(t, resp.Identity)
				assert.Equal(t, models.ExamTypeBoth, resp.Identity.ExamType)
				assert.NotEmpty(t, resp.SessionToken)
			},
		},
		{
			name: "Binding Race Lost",
			req:  &models.VerifyRequest{Code: code, DeviceFingerprint: fingerprint, ConfirmBinding: true},
			mockSetup: func(repo *mocks.MockTokenRepo, gw *mocks.MockTokenGW) {
				repo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
					Code:     code,
					IsActive: true,
				}, nil)
				repo.EXPECT().
					BindToken(gomock.Any(), code, fingerprint, gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrDeviceMismatch)
			},
			assertFunc: func(t *testing.T, resp *models.VerifyResponse, err error) {
				assert.ErrorIs(t, err, apperrors.ErrDeviceMismatch)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)
			tc.mockSetup(mockTokenRepo, mockGW)

			resp, err := uc.VerifyAndBind(context.Background(), tc.req)
			tc.assertFunc(t, resp, err)
		})
	}
}

func TestVerifyAndBind_RebindKeepsExpiry(t *testing.T) {
	uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

	code := "ACE-ABCD-EFGH-JKLM"
	fingerprint := "fp-replacement"
	firstExpiry := time.Now().Add(48 * time.Hour)

	// A token whose device was reset keeps the expiry from its first
	// binding, so rebinding must not start a fresh validity window
	mockTokenRepo.EXPECT().GetTokenByCode(gomock.Any(), code).Return(&models.Token{
		Code:      code,
		IsActive:  true,
		ExpiresAt: timePtr(firstExpiry),
		FullName:  "Ada Obi",
		ExamType:  models.ExamTypeBoth,
	}, nil)
	mockTokenRepo.EXPECT().
		BindToken(gomock.Any(), code, fingerprint, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code, fp string, boundAt, expiresAt time.Time) (*models.Token, error) {
			assert.WithinDuration(t, firstExpiry, expiresAt, time.Second)
			return &models.Token{
				Code:              code,
				IsActive:          true,
				DeviceFingerprint: &fp,
				BoundAt:           &boundAt,
				ExpiresAt:         &expiresAt,
				FullName:          "Ada Obi",
				ExamType:          models.ExamTypeBoth,
			}, nil
		})
	mockGW.EXPECT().PublishTokenEvent(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.VerifyAndBind(context.Background(), &models.VerifyRequest{
		Code:              code,
		DeviceFingerprint: fingerprint,
		ConfirmBinding:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.RequiresBinding)
	require.NotNil(t, resp.Identity)
}

func TestVerifyAndBind_NormalizesCode(t *testing.T) {
	uc, mockTokenRepo, _, _ := setupTokenUCTest(t)

	mockTokenRepo.EXPECT().
		GetTokenByCode(gomock.Any(), "ACE-ABCD-EFGH-JKLM").
		Return(nil, apperrors.ErrInvalidCode)

	_, err := uc.VerifyAndBind(context.Background(), &models.VerifyRequest{
		Code:              "  ace-abcd-efgh-jklm ",
		DeviceFingerprint: "fp-device-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
}

func TestSetTokenActive(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

		mockTokenRepo.EXPECT().SetTokenActive(gomock.Any(), "ACE-ABCD-EFGH-JKLM", false).Return(nil)
		mockGW.EXPECT().
			PublishTokenEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
				assert.Equal(t, models.TokenEventDeactivated, event.Type)
				return nil
			})

		err := uc.SetTokenActive(context.Background(), "ACE-ABCD-EFGH-JKLM", false)
		assert.NoError(t, err)
	})

	t.Run("Reactivate", func(t *testing.T) {
		uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

		mockTokenRepo.EXPECT().SetTokenActive(gomock.Any(), "ACE-ABCD-EFGH-JKLM", true).Return(nil)
		mockGW.EXPECT().
			PublishTokenEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
				assert.Equal(t, models.TokenEventReactivated, event.Type)
				return nil
			})

		err := uc.SetTokenActive(context.Background(), "ACE-ABCD-EFGH-JKLM", true)
		assert.NoError(t, err)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		uc, mockTokenRepo, _, _ := setupTokenUCTest(t)

		mockTokenRepo.EXPECT().
			SetTokenActive(gomock.Any(), "ACE-XXXX-XXXX-XXXX", false).
			Return(apperrors.ErrInvalidCode)

		err := uc.SetTokenActive(context.Background(), "ACE-XXXX-XXXX-XXXX", false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
	})
}

func TestResetTokenDevice(t *testing.T) {
	uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

	mockTokenRepo.EXPECT().ResetTokenDevice(gomock.Any(), "ACE-ABCD-EFGH-JKLM").Return(nil)
	mockGW.EXPECT().
		PublishTokenEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
			assert.Equal(t, models.TokenEventReset, event.Type)
			return nil
		})

	err := uc.ResetTokenDevice(context.Background(), "ACE-ABCD-EFGH-JKLM")
	assert.NoError(t, err)
}

func TestDeleteToken(t *testing.T) {
	uc, mockTokenRepo, _, mockGW := setupTokenUCTest(t)

	mockTokenRepo.EXPECT().DeleteToken(gomock.Any(), "ACE-ABCD-EFGH-JKLM").Return(nil)
	mockGW.EXPECT().
		PublishTokenEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TokenEvent) error {
			assert.Equal(t, models.TokenEventDeleted, event.Type)
			return nil
		})

	err := uc.DeleteToken(context.Background(), "ACE-ABCD-EFGH-JKLM")
	assert.NoError(t, err)
}

func TestListTokens(t *testing.T) {
	uc, mockTokenRepo, _, _ := setupTokenUCTest(t)

	expiry := time.Now().Add(100 * 24 * time.Hour)
	mockTokenRepo.EXPECT().ListTokens(gomock.Any()).Return([]*models.Token{
		{Code: "ACE-AAAA-AAAA-AAAA", IsActive: true},
		{Code: "ACE-BBBB-BBBB-BBBB", IsActive: true, DeviceFingerprint: strPtr("fp-1"), ExpiresAt: &expiry},
		{Code: "ACE-CCCC-CCCC-CCCC", IsActive: false},
	}, nil)

	summaries, err := uc.ListTokens(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "unused", summaries[0].Status)
	assert.Equal(t, "in use", summaries[1].Status)
	assert.InDelta(t, 99, summaries[1].RemainingDays, 1)
	assert.Equal(t, "deactivated", summaries[2].Status)
}
