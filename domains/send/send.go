package send

import "context"

type TextRequest struct {
	To               string `json:"to" form:"to"`
	Message          string `json:"message" form:"message"`
	ContextMessageID string `json:"context_message_id" form:"context_message_id"`
}

// APIResponse carries the Cloud API's own verdict back to the caller.
// StatusCode is returned as-is; callers decide whether non-2xx matters.
type APIResponse struct {
	StatusCode int            `json:"status_code"`
	Response   map[string]any `json:"response"`
}

type ISendUsecase interface {
	SendText(ctx context.Context, request TextRequest) (APIResponse, error)
	MarkAsRead(ctx context.Context, messageID string) (APIResponse, error)
	TypingIndicator(ctx context.Context, messageID string) (APIResponse, error)
}
