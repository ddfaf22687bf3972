package rest

import (
	domainSend "github.com/AzielCF/wa-cloud-bridge/domains/send"
	"github.com/AzielCF/wa-cloud-bridge/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Send struct {
	Service domainSend.ISendUsecase
}

func InitRestSend(app fiber.Router, service domainSend.ISendUsecase) Send {
	rest := Send{Service: service}
	app.Post("/whatsapp", rest.SendText)
	return rest
}

// SendText relays a text message to the Cloud API and mirrors the
// upstream status code and body back to the caller.
func (handler *Send) SendText(c *fiber.Ctx) error {
	var request domainSend.TextRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
			Status:  fiber.StatusBadRequest,
			Code:    "INVALID_BODY",
			Message: err.Error(),
		})
	}

	response, err := handler.Service.SendText(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(response)
}
