package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/AzielCF/wa-cloud-bridge/config"
	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/AzielCF/wa-cloud-bridge/validations"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"
)

const systemInstruction = "You are a helpful assistant."

type serviceChat struct{}

func NewChatService() domainChat.IChatUsecase {
	return &serviceChat{}
}

// resolveAPIKey reads the key at call time, primary env var first, so a
// missing credential surfaces from the adapter, not at startup.
func resolveAPIKey() (string, error) {
	cfg := config.Global.OpenAI
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		apiKey = os.Getenv(cfg.APIKeyFallbackEnv)
	}
	if apiKey == "" {
		return "", pkgError.ConfigError(fmt.Sprintf("%s or %s not found in environment variables",
			cfg.APIKeyEnv, cfg.APIKeyFallbackEnv))
	}
	return apiKey, nil
}

func (service *serviceChat) Chat(ctx context.Context, request domainChat.ChatRequest) (domainChat.ChatResponse, error) {
	if err := validations.ValidateChat(ctx, request); err != nil {
		return domainChat.ChatResponse{}, err
	}

	apiKey, err := resolveAPIKey()
	if err != nil {
		return domainChat.ChatResponse{}, err
	}

	cfg := config.Global.OpenAI
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(cfg.RequestTimeout),
	)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(request.Prompt),
		},
		Temperature: openai.Float(cfg.Temperature),
	})
	if err != nil {
		logrus.WithError(err).Error("[CHAT] completion request failed")
		return domainChat.ChatResponse{}, pkgError.UpstreamError(err.Error())
	}
	if len(completion.Choices) == 0 {
		return domainChat.ChatResponse{}, pkgError.UpstreamError("completion returned no choices")
	}

	return domainChat.ChatResponse{
		Status:   "success",
		Response: completion.Choices[0].Message.Content,
	}, nil
}
