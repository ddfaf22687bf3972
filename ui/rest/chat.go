package rest

import (
	domainChat "github.com/AzielCF/wa-cloud-bridge/domains/chat"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/AzielCF/wa-cloud-bridge/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Chat struct {
	Service domainChat.IChatUsecase
}

func InitRestChat(app fiber.Router, service domainChat.IChatUsecase) Chat {
	rest := Chat{Service: service}
	app.Post("/chat/", rest.Chat)
	return rest
}

func (handler *Chat) Chat(c *fiber.Ctx) error {
	var request domainChat.ChatRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
			Status:  fiber.StatusBadRequest,
			Code:    "INVALID_BODY",
			Message: err.Error(),
		})
	}

	response, err := handler.Service.Chat(c.UserContext(), request)
	if err != nil {
		return sendErrorResponse(c, err)
	}

	return c.JSON(response)
}

func sendErrorResponse(c *fiber.Ctx, err error) error {
	if typed, ok := err.(pkgError.GenericError); ok {
		return c.Status(typed.StatusCode()).JSON(utils.ResponseData{
			Status:  typed.StatusCode(),
			Code:    typed.ErrCode(),
			Message: typed.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ResponseData{
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL_SERVER_ERROR",
		Message: err.Error(),
	})
}
