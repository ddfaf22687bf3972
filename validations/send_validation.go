package validations

import (
	"context"

	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateSendText(ctx context.Context, request domainSend.TextRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.To, validation.Required),
		validation.Field(&request.Message, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
