package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acecbt/acetoken/internal/pkg/apperrors"
	"github.com/acecbt/acetoken/internal/pkg/models"
	"github.com/acecbt/acetoken/services/agent/mocks"
)

func TestAgentCreateToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccessUC(ctrl)
	handler := NewTokenHandler(mockUC)

	c, rec := newAgentTestContext(http.MethodPost, "/admin/tokens",
		`{"exam_type":"WAEC","full_name":"Ada Obi"}`)

	mockUC.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return("ACE-ABCD-EFGH-JKLM", nil)

	err := handler.CreateToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ACE-ABCD-EFGH-JKLM", data["code"])
}

func TestAgentListTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccessUC(ctrl)
	handler := NewTokenHandler(mockUC)

	c, rec := newAgentTestContext(http.MethodGet, "/admin/tokens", "")

	mockUC.EXPECT().
		ListTokens(gomock.Any()).
		Return([]models.TokenSummary{
			{Code: "ACE-ABCD-EFGH-JKLM", Status: "unused", CreatedAt: time.Now()},
		}, nil)

	err := handler.ListTokens(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
}

func TestAgentDeactivateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccessUC(ctrl)
	handler := NewTokenHandler(mockUC)

	c, rec := newAgentTestContext(http.MethodPut, "/admin/tokens/ACE-ABCD-EFGH-JKLM/deactivate", "")
	c.SetParamNames("code")
	c.SetParamValues("ACE-ABCD-EFGH-JKLM")

	mockUC.EXPECT().
		SetTokenActive(gomock.Any(), "ACE-ABCD-EFGH-JKLM", false).
		Return(nil)

	err := handler.DeactivateToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAgentResetTokenDevice_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccessUC(ctrl)
	handler := NewTokenHandler(mockUC)

	c, rec := newAgentTestContext(http.MethodPut, "/admin/tokens/ACE-XXXX-XXXX-XXXX/reset-device", "")
	c.SetParamNames("code")
	c.SetParamValues("ACE-XXXX-XXXX-XXXX")

	mockUC.EXPECT().
		ResetTokenDevice(gomock.Any(), "ACE-XXXX-XXXX-XXXX").
		Return(apperrors.ErrInvalidCode)

	err := handler.ResetTokenDevice(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAgentDeleteToken_MissingParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccessUC(ctrl)
	handler := NewTokenHandler(mockUC)

	c, rec := newAgentTestContext(http.MethodDelete, "/admin/tokens/", "")

	err := handler.DeleteToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
