package rest

import (
	"context"

	"github.com/AzielCF/wa-cloud-bridge/config"
	domainWebhook "github.com/AzielCF/wa-cloud-bridge/domains/webhook"
	"github.com/AzielCF/wa-cloud-bridge/pkg/msgworker"
	"github.com/AzielCF/wa-cloud-bridge/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Webhook struct {
	Processor *usecase.Processor
	Pool      *msgworker.Pool
}

func InitRestWebhook(app fiber.Router, processor *usecase.Processor, pool *msgworker.Pool) Webhook {
	rest := Webhook{Processor: processor, Pool: pool}
	app.Get("/webhook", rest.Verify)
	app.Post("/webhook", rest.Receive)
	return rest
}

// Verify answers the platform's subscription handshake: echo the
// challenge when the shared token matches, refuse otherwise.
func (handler *Webhook) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == config.Global.Whatsapp.VerifyToken {
		logrus.Info("[WEBHOOK] subscription verified")
		return c.Type("txt").SendString(challenge)
	}

	logrus.Warn("[WEBHOOK] subscription verification failed")
	return c.Status(fiber.StatusForbidden).SendString("Verification failed")
}

// Receive ingests an event delivery. The platform expects a fast 200 for
// every structurally valid delivery (status callbacks included), so all
// real work is handed to the pool and the ack goes out immediately.
func (handler *Webhook) Receive(c *fiber.Ctx) error {
	message, outcome, reason := domainWebhook.ParseEvent(c.Body())

	switch outcome {
	case domainWebhook.EventMalformed:
		logrus.Debugf("[WEBHOOK] malformed delivery swallowed: %s", reason)
		return c.JSON(fiber.Map{"status": "ignored"})
	case domainWebhook.EventIgnored:
		logrus.Debugf("[WEBHOOK] acked without action: %s", reason)
		return c.JSON(fiber.Map{"status": "received"})
	}

	if !handler.Pool.TryDispatch(msgworker.Job{
		Sender: message.Sender,
		Handler: func(ctx context.Context) error {
			handler.Processor.Process(ctx, message)
			return nil
		},
	}) {
		// The delivery is still acked; the platform will redeliver and
		// the dedup registry has not claimed the id yet.
		logrus.Warnf("[WEBHOOK] pool rejected job for message %s", message.MessageID)
	}

	return c.JSON(fiber.Map{"status": "received"})
}
