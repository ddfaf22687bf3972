package chat

import "context"

type ChatRequest struct {
	Prompt string `json:"prompt" form:"prompt"`
}

type ChatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// IChatUsecase issues a single-turn completion for a prompt.
type IChatUsecase interface {
	Chat(ctx context.Context, request ChatRequest) (ChatResponse, error)
}
