package validations

import (
	"context"
	"testing"

	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateChat(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, ValidateChat(ctx, domainChat.ChatRequest{Prompt: "hi"}))

	err := ValidateChat(ctx, domainChat.ChatRequest{})
	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, 400, generic.StatusCode())
}

func TestValidateSendText(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, ValidateSendText(ctx, domainSend.TextRequest{To: "111", Message: "hello"}))
	assert.Error(t, ValidateSendText(ctx, domainSend.TextRequest{Message: "hello"}))
	assert.Error(t, ValidateSendText(ctx, domainSend.TextRequest{To: "111"}))
}
