package usecase

import (
	"context"
	"fmt"

	"github.com/AzielCF/wa-cloud-bridge/config"
	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	"github.com/AzielCF/wa-cloud-bridge/infrastructure/meta"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/AzielCF/wa-cloud-bridge/validations"
	"github.com/sirupsen/logrus"
)

type serviceSend struct {
	client *meta.Client
}

func NewSendService(client *meta.Client) domainSend.ISendUsecase {
	return &serviceSend{client: client}
}

func (service *serviceSend) SendText(ctx context.Context, request domainSend.TextRequest) (domainSend.APIResponse, error) {
	if err := validations.ValidateSendText(ctx, request); err != nil {
		return domainSend.APIResponse{}, err
	}

	status, body, err := service.client.SendText(ctx, request.To, request.Message, request.ContextMessageID)
	if err != nil {
		return domainSend.APIResponse{}, err
	}

	response := domainSend.APIResponse{StatusCode: status, Response: body}

	logrus.WithFields(logrus.Fields{
		"to":          request.To,
		"status_code": status,
	}).Info("[SEND] text message submitted")

	if config.Global.Whatsapp.RaiseOnSendError && (status < 200 || status >= 300) {
		return response, pkgError.UpstreamError(fmt.Sprintf("cloud api send returned status %d", status))
	}

	return response, nil
}

func (service *serviceSend) MarkAsRead(ctx context.Context, messageID string) (domainSend.APIResponse, error) {
	status, body, err := service.client.MarkAsRead(ctx, messageID)
	if err != nil {
		return domainSend.APIResponse{}, err
	}
	return domainSend.APIResponse{StatusCode: status, Response: body}, nil
}

func (service *serviceSend) TypingIndicator(ctx context.Context, messageID string) (domainSend.APIResponse, error) {
	status, body, err := service.client.TypingIndicator(ctx, messageID)
	if err != nil {
		return domainSend.APIResponse{}, err
	}
	return domainSend.APIResponse{StatusCode: status, Response: body}, nil
}
