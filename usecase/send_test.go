package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AzielCF/wa-cloud-bridge/config"
	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	"github.com/AzielCF/wa-cloud-bridge/infrastructure/meta"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSendService(t *testing.T, upstreamStatus int) domainSend.ISendUsecase {
	t.Helper()

	orig := config.Global
	t.Cleanup(func() { config.Global = orig })

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	cfg.Whatsapp.PhoneNumberID = "200000000000000"
	cfg.Whatsapp.AccessToken = "test-token"
	config.Global = cfg

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(upstreamStatus)
		_, _ = w.Write([]byte(`{"error":{"message":"something upstream"}}`))
	}))
	t.Cleanup(srv.Close)

	return NewSendService(meta.NewClientWithBaseURL(srv.URL))
}

func TestSendText_NonOKIsBestEffortByDefault(t *testing.T) {
	service := setupSendService(t, http.StatusInternalServerError)

	response, err := service.SendText(context.Background(), domainSend.TextRequest{
		To:      "111",
		Message: "hola",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Contains(t, response.Response, "error")
}

func TestSendText_NonOKRaisesWhenConfigured(t *testing.T) {
	service := setupSendService(t, http.StatusInternalServerError)
	config.Global.Whatsapp.RaiseOnSendError = true

	response, err := service.SendText(context.Background(), domainSend.TextRequest{
		To:      "111",
		Message: "hola",
	})

	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, "UPSTREAM_ERROR", generic.ErrCode())
	// The upstream verdict still comes back alongside the error.
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
}

func TestSendText_OKNeverRaises(t *testing.T) {
	service := setupSendService(t, http.StatusOK)
	config.Global.Whatsapp.RaiseOnSendError = true

	response, err := service.SendText(context.Background(), domainSend.TextRequest{
		To:      "111",
		Message: "hola",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestSendText_MissingRecipientIsValidationError(t *testing.T) {
	service := setupSendService(t, http.StatusOK)

	_, err := service.SendText(context.Background(), domainSend.TextRequest{Message: "hola"})

	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, "VALIDATION_ERROR", generic.ErrCode())
}
