package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
)

var tokenColumns = []string{
	"code", "is_active", "device_fingerprint", "bound_at", "expires_at",
	"created_at", "exam_type", "full_name", "phone_number", "email",
	"payment_ref", "amount_paid", "generated_by",
}

func setupTokenRepoTest(t *testing.T) (*TokenRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TokenRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func unboundTokenRow(code string) *sqlmock.Rows {
	return sqlmock.NewRows(tokenColumns).
		AddRow(code, true, nil, nil, nil,
			time.Now(), "JAMB", "Ada Obi", "+2348012345678", "ada@example.com",
			"PAY-001", 5000.0, "ADMIN")
}

func boundTokenRow(code, fingerprint string) *sqlmock.Rows {
	boundAt := time.Now().Add(-time.Hour)
	expiresAt := boundAt.AddDate(0, 0, 365)
	return sqlmock.NewRows(tokenColumns).
		AddRow(code, true, fingerprint, boundAt, expiresAt,
			time.Now().Add(-2*time.Hour), "JAMB", "Ada Obi", "+2348012345678", "ada@example.com",
			"PAY-001", 5000.0, "ADMIN")
}

func TestCreateToken(t *testing.T) {
	repo, mock, cleanup := setupTokenRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO tokens").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateToken(context.Background(), &models.Token{
		Code:        "ACE-ABCD-EFGH-JKLM",
		IsActive:    true,
		ExamType:    models.ExamTypeJAMB,
		FullName:    "Ada Obi",
		GeneratedBy: models.TokenSourceAdmin,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokenByCode(t *testing.T) {
	testCases := []struct {
		name       string
		code       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, token *models.Token, err error)
	}{
		{
			name: "Success - Unbound Token",
			code: "ACE-ABCD-EFGH-JKLM",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-ABCD-EFGH-JKLM").
					WillReturnRows(unboundTokenRow("ACE-ABCD-EFGH-JKLM"))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.NoError(t, err)
				require.NotNil(t, token)
				assert.Equal(t, "ACE-ABCD-EFGH-JKLM", token.Code)
				assert.False(t, token.IsBound())
				assert.Nil(t, token.ExpiresAt)
			},
		},
		{
			name: "Success - Bound Token",
			code: "ACE-ABCD-EFGH-JKLM",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-ABCD-EFGH-JKLM").
					WillReturnRows(boundTokenRow("ACE-ABCD-EFGH-JKLM", "fp-device-1"))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.NoError(t, err)
				require.NotNil(t, token)
				assert.True(t, token.BoundTo("fp-device-1"))
				assert.NotNil(t, token.ExpiresAt)
			},
		},
		{
			name: "Unknown Code",
			code: "ACE-XXXX-XXXX-XXXX",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-XXXX-XXXX-XXXX").
					WillReturnRows(sqlmock.NewRows(tokenColumns))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
				assert.Nil(t, token)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTokenRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			token, err := repo.GetTokenByCode(context.Background(), tc.code)
			tc.assertFunc(t, token, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBindToken(t *testing.T) {
	boundAt := time.Now()
	expiresAt := boundAt.AddDate(0, 0, 365)

	testCases := []struct {
		name        string
		fingerprint string
		mockSetup   func(mock sqlmock.Sqlmock)
		assertFunc  func(t *testing.T, token *models.Token, err error)
	}{
		{
			name:        "Success - First Binding",
			fingerprint: "fp-device-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tokens SET device_fingerprint").
					WithArgs("fp-device-1", boundAt, expiresAt, "ACE-ABCD-EFGH-JKLM").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-ABCD-EFGH-JKLM").
					WillReturnRows(boundTokenRow("ACE-ABCD-EFGH-JKLM", "fp-device-1"))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.NoError(t, err)
				require.NotNil(t, token)
				assert.True(t, token.BoundTo("fp-device-1"))
			},
		},
		{
			name:        "Idempotent - Already Bound To Same Device",
			fingerprint: "fp-device-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tokens SET device_fingerprint").
					WithArgs("fp-device-1", boundAt, expiresAt, "ACE-ABCD-EFGH-JKLM").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-ABCD-EFGH-JKLM").
					WillReturnRows(boundTokenRow("ACE-ABCD-EFGH-JKLM", "fp-device-1"))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.NoError(t, err)
				require.NotNil(t, token)
				assert.True(t, token.BoundTo("fp-device-1"))
			},
		},
		{
			name:        "Device Mismatch",
			fingerprint: "fp-device-2",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE tokens SET device_fingerprint").
					WithArgs("fp-device-2", boundAt, expiresAt, "ACE-ABCD-EFGH-JKLM").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT (.+) FROM tokens WHERE code").
					WithArgs("ACE-ABCD-EFGH-JKLM").
					WillReturnRows(boundTokenRow("ACE-ABCD-EFGH-JKLM", "fp-device-1"))
			},
			assertFunc: func(t *testing.T, token *models.Token, err error) {
				assert.ErrorIs(t, err, apperrors.ErrDeviceMismatch)
				assert.Nil(t, token)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTokenRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			token, err := repo.BindToken(context.Background(), "ACE-ABCD-EFGH-JKLM", tc.fingerprint, boundAt, expiresAt)
			tc.assertFunc(t, token, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetTokenActive(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTokenRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE tokens SET is_active").
			WithArgs(false, "ACE-ABCD-EFGH-JKLM").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetTokenActive(context.Background(), "ACE-ABCD-EFGH-JKLM", false)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Code", func(t *testing.T) {
		repo, mock, cleanup := setupTokenRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE tokens SET is_active").
			WithArgs(true, "ACE-XXXX-XXXX-XXXX").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetTokenActive(context.Background(), "ACE-XXXX-XXXX-XXXX", true)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
	})
}

func TestResetTokenDevice(t *testing.T) {
	repo, mock, cleanup := setupTokenRepoTest(t)
	defer cleanup()

	// Only the binding columns are cleared; expires_at is left untouched
	mock.ExpectExec(`SET device_fingerprint = NULL, bound_at = NULL\s+WHERE code`).
		WithArgs("ACE-ABCD-EFGH-JKLM").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResetTokenDevice(context.Background(), "ACE-ABCD-EFGH-JKLM")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteToken(t *testing.T) {
	repo, mock, cleanup := setupTokenRepoTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM tokens").
		WithArgs("ACE-ABCD-EFGH-JKLM").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteToken(context.Background(), "ACE-ABCD-EFGH-JKLM")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTokens(t *testing.T) {
	repo, mock, cleanup := setupTokenRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(tokenColumns).
		AddRow("ACE-ABCD-EFGH-JKLM", true, nil, nil, nil,
			time.Now(), "JAMB", "Ada Obi", "+2348012345678", "ada@example.com",
			"PAY-001", 5000.0, "ADMIN").
		AddRow("ACE-NPQR-STUV-WXYZ", false, "fp-device-1", time.Now(), time.Now().AddDate(0, 0, 100),
			time.Now(), "WAEC", "Chidi Eze", "+2348098765432", "chidi@example.com",
			"PAY-002", 5000.0, "STUDENT")
	mock.ExpectQuery("^SELECT (.+) FROM tokens").
		WillReturnRows(rows)

	tokens, err := repo.ListTokens(context.Background())
	assert.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "ACE-ABCD-EFGH-JKLM", tokens[0].Code)
	assert.True(t, tokens[1].IsBound())
}
