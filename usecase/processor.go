package usecase

import (
	"context"

	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	domainWebhook "github.com/AzielCF/wa-cloud-bridge/domains/webhook"
	"github.com/AzielCF/wa-cloud-bridge/pkg/alert"
	"github.com/AzielCF/wa-cloud-bridge/pkg/dedupe"
	"github.com/sirupsen/logrus"
)

// FallbackReply is what the sender receives when any pipeline step fails.
const FallbackReply = "Its not you... Its us.. \nWill be back soon"

// Processor runs the background pipeline for one inbound message:
// dedup claim, read receipt, typing indicator, completion, reply.
// It never propagates errors upward; the webhook was acked long ago.
type Processor struct {
	chatService domainChat.IChatUsecase
	sendService domainSend.ISendUsecase
	registry    *dedupe.Registry
	notifier    *alert.Notifier
}

// NewProcessor wires the pipeline. notifier may be nil (alerting off).
func NewProcessor(chatService domainChat.IChatUsecase, sendService domainSend.ISendUsecase, registry *dedupe.Registry, notifier *alert.Notifier) *Processor {
	return &Processor{
		chatService: chatService,
		sendService: sendService,
		registry:    registry,
		notifier:    notifier,
	}
}

func (p *Processor) Process(ctx context.Context, msg domainWebhook.InboundMessage) {
	if !p.registry.TryClaim(msg.MessageID) {
		logrus.Debugf("[PROCESSOR] duplicate delivery of %s, skipping", msg.MessageID)
		return
	}

	if err := p.reply(ctx, msg); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sender":     msg.Sender,
			"message_id": msg.MessageID,
		}).Error("[PROCESSOR] pipeline failed, sending fallback reply")

		if p.notifier != nil {
			p.notifier.Notify(err.Error())
		}

		// The claim is deliberately not released: the sender gets the
		// apology for this delivery, not a retried completion.
		_, sendErr := p.sendService.SendText(ctx, domainSend.TextRequest{
			To:               msg.Sender,
			Message:          FallbackReply,
			ContextMessageID: msg.MessageID,
		})
		if sendErr != nil {
			logrus.WithError(sendErr).Errorf("[PROCESSOR] fallback reply failed for %s", msg.MessageID)
		}
	}
}

func (p *Processor) reply(ctx context.Context, msg domainWebhook.InboundMessage) error {
	// Both status signals are discarded on success; a transport failure
	// here aborts into the fallback path with everything else.
	if _, err := p.sendService.MarkAsRead(ctx, msg.MessageID); err != nil {
		return err
	}
	if _, err := p.sendService.TypingIndicator(ctx, msg.MessageID); err != nil {
		return err
	}

	chatResponse, err := p.chatService.Chat(ctx, domainChat.ChatRequest{Prompt: msg.Text})
	if err != nil {
		return err
	}

	_, err = p.sendService.SendText(ctx, domainSend.TextRequest{
		To:               msg.Sender,
		Message:          chatResponse.Response,
		ContextMessageID: msg.MessageID,
	})
	return err
}
