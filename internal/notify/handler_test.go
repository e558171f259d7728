package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.Notify(rec, req)
	return rec
}

func TestGetUserEmailAction(t *testing.T) {
	repo := &stubProviderRepo{users: map[string]string{"u-1": "ali@example.com"}}
	h := NewHandler(newTestService(&scriptedSender{}, repo), repo, nil)

	rec := postJSON(t, h, map[string]string{"action": "get_user_email", "userId": "u-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getUserEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Email)
	assert.Equal(t, "ali@example.com", *resp.Email)
}

func TestGetUserEmailMissingUserStillOK(t *testing.T) {
	repo := &stubProviderRepo{}
	h := NewHandler(newTestService(&scriptedSender{}, repo), repo, nil)

	rec := postJSON(t, h, map[string]string{"action": "get_user_email", "userId": "ghost"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getUserEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Email)
	assert.Empty(t, resp.Error)
}

func TestNotifyUnknownTypeReturns500(t *testing.T) {
	h := NewHandler(newTestService(&scriptedSender{}, nil), nil, nil)

	rec := postJSON(t, h, map[string]string{"type": "fax"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "fax")
}

func TestNotifyLabOrderSummary(t *testing.T) {
	h := NewHandler(newTestService(&scriptedSender{}, &stubProviderRepo{}), nil, nil)

	rec := postJSON(t, h, Request{
		Type:        EventOrder,
		OrderID:     "LAB-0001",
		PatientName: "Ali Khan",
		LabName:     "City Lab",
		TotalAmount: 1500,
		Tests:       sampleTests,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.Success)
	assert.True(t, summary.PDFGenerated)
	assert.NotNil(t, summary.AdminEmail)
	assert.Nil(t, summary.CustomerEmail)
	assert.Nil(t, summary.ProviderEmail)
}

func TestNotifyPartialFailureReturns502(t *testing.T) {
	sender := &scriptedSender{fail: func(EmailMessage) error {
		return errors.New("delivery provider down")
	}}
	h := NewHandler(newTestService(sender, nil), nil, nil)

	rec := postJSON(t, h, Request{Type: EventMedicineOrder, OrderID: "MED-7"})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.False(t, summary.Success)
	require.NotNil(t, summary.AdminEmail)
	assert.Contains(t, summary.AdminEmail.Primary.Error, "delivery provider down")
}

func TestNotifyMalformedBodyReturns500(t *testing.T) {
	h := NewHandler(newTestService(&scriptedSender{}, nil), nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Notify(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
