package validations

import (
	"context"

	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateChat(ctx context.Context, request domainChat.ChatRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Prompt, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
