package usecase

import (
	"context"
	"testing"

	"github.com/AzielCF/wa-cloud-bridge/config"
	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatConfig(t *testing.T) {
	t.Helper()
	orig := config.Global
	t.Cleanup(func() { config.Global = orig })

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	config.Global = cfg
}

func TestChat_EmptyPromptIsValidationError(t *testing.T) {
	setupChatConfig(t)
	service := NewChatService()

	_, err := service.Chat(context.Background(), domainChat.ChatRequest{})

	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, "VALIDATION_ERROR", generic.ErrCode())
}

func TestChat_MissingAPIKeyIsConfigError(t *testing.T) {
	setupChatConfig(t)
	t.Setenv("GPT_API", "")
	t.Setenv("OPENAI_API_KEY", "")

	service := NewChatService()
	_, err := service.Chat(context.Background(), domainChat.ChatRequest{Prompt: "hi"})

	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	assert.Equal(t, "CONFIG_ERROR", generic.ErrCode())
}

func TestResolveAPIKey_FallbackOrder(t *testing.T) {
	setupChatConfig(t)

	t.Setenv("GPT_API", "primary")
	t.Setenv("OPENAI_API_KEY", "fallback")
	key, err := resolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "primary", key)

	t.Setenv("GPT_API", "")
	key, err = resolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "fallback", key)
}
