package handlers

import (
	"errors"

	"github.com/ardakaya/secondbrain-backend/internal/dto"
	"github.com/ardakaya/secondbrain-backend/internal/identity"
	"github.com/ardakaya/secondbrain-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ShareHandler struct {
	shareService *services.ShareService
}

func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

func (h *ShareHandler) CreateLink(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	link, err := h.shareService.GetOrCreateLink(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create share link",
		})
	}

	return c.JSON(dto.ShareLinkResponse{ShareLink: link})
}

func (h *ShareHandler) ResolveLink(c *fiber.Ctx) error {
	shareID := c.Params("shareId")

	username, items, err := h.shareService.Resolve(c.UserContext(), shareID)
	if err != nil {
		if errors.Is(err, services.ErrShareNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid share link",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch shared content",
		})
	}

	return c.JSON(dto.SharedBrainResponse{
		Username: username,
		Content:  dto.NewContentList(items),
	})
}
