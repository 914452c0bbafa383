package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/service"
	"github.com/momentu-app/momentu-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) JoinEvent(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var req models.JoinEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.JoinEvent(userID, req.Code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	return c.JSON(models.SuccessResponse(event, "Joined event successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) GetUserEvents(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	events, err := h.eventService.GetUserEvents(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

// GetJoinQR, davet kodunu içeren QR görselini PNG olarak döner.
func (h *EventHandler) GetJoinQR(c *fiber.Ctx) error {
	size, err := strconv.Atoi(c.Query("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		size = 256
	}

	png, err := h.eventService.GetJoinQR(c.Params("eventId"), size)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
