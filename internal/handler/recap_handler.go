package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/recap"
)

type RecapHandler struct {
	engine *recap.Engine
}

func NewRecapHandler(engine *recap.Engine) *RecapHandler {
	return &RecapHandler{engine: engine}
}

// StartRecap, etkinlik için yeni bir gösterim oturumu açar. Kareler
// websocket akışından gelir; burada yalnızca oturum kimliği döner.
func (h *RecapHandler) StartRecap(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	session, err := h.engine.Start(eventID)
	if err != nil {
		if errors.Is(err, recap.ErrNoPhotos) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("No photos in this event yet"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"session_id": session.ID,
		"event_id":   session.EventID,
		"total":      session.PhotoCount(),
		"state":      session.State(),
	}, "Recap started"))
}

// TogglePlay, oynat/duraklat durumunu çevirir ve yeni durumu döner.
func (h *RecapHandler) TogglePlay(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	state, err := h.engine.TogglePlay(sessionID)
	if err != nil {
		if errors.Is(err, recap.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Recap session not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"state": state}, "Playback toggled"))
}

// CloseRecap, oturumu kapatır. Bilinmeyen oturum da başarılı döner;
// kapatma istemci tarafında birden fazla kez tetiklenebilir.
func (h *RecapHandler) CloseRecap(c *fiber.Ctx) error {
	h.engine.Close(c.Params("sessionId"))
	return c.JSON(models.SuccessResponse(nil, "Recap closed"))
}
