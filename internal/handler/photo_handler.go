package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/service"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
)

type PhotoHandler struct {
	captureService *service.CaptureService
	feedService    *service.FeedService
	userService    *service.UserService
	deviceStore    *devicestore.Store
}

func NewPhotoHandler(
	captureService *service.CaptureService,
	feedService *service.FeedService,
	userService *service.UserService,
	deviceStore *devicestore.Store,
) *PhotoHandler {
	return &PhotoHandler{
		captureService: captureService,
		feedService:    feedService,
		userService:    userService,
		deviceStore:    deviceStore,
	}
}

// submitter, gönderen anlık görüntüsünü cihaz deposundan okur; yoksa
// profilden kurup depoya yazar.
func (h *PhotoHandler) submitter(c *fiber.Ctx) (models.Submitter, error) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return models.Submitter{}, errors.New("missing user context")
	}

	deviceID := c.Get("X-Device-ID")
	if deviceID != "" {
		if snapshot, ok := h.deviceStore.GetSnapshot(deviceID); ok {
			return snapshot, nil
		}
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		return models.Submitter{}, errors.New("user not found")
	}

	snapshot := user.Snapshot()
	if deviceID != "" {
		h.deviceStore.PutSnapshot(deviceID, snapshot)
	}
	return snapshot, nil
}

// captureSource, istekten yakalama kaynağını çıkarır: multipart "file"
// alanı (galeri) ya da JSON gövdedeki base64 kamera karesi.
func (h *PhotoHandler) captureSource(c *fiber.Ctx) (service.CaptureSource, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return service.CaptureSource{}, "", err
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return service.CaptureSource{}, "", err
		}

		return service.CaptureSource{
			Data:     data,
			MimeType: file.Header.Get("Content-Type"),
			Filename: file.Filename,
		}, c.FormValue("caption"), nil
	}

	var req models.SubmitCaptureRequest
	if err := c.BodyParser(&req); err != nil {
		return service.CaptureSource{}, "", errors.New("no file or snapshot provided")
	}
	if req.Snapshot == "" {
		return service.CaptureSource{}, "", errors.New("no file or snapshot provided")
	}

	data, err := service.DecodeSnapshot(req.Snapshot)
	if err != nil {
		return service.CaptureSource{}, "", err
	}

	return service.CaptureSource{
		Data:       data,
		MimeType:   "image/jpeg",
		FromCamera: true,
	}, req.Caption, nil
}

// SubmitCapture, yakalama hattının tamamını tek istekte koşar.
func (h *PhotoHandler) SubmitCapture(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	submitter, err := h.submitter(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	source, caption, err := h.captureSource(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photo, err := h.captureService.SubmitCapture(c.Context(), source, eventID, submitter, caption)
	if err != nil {
		return captureErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(photo, "Photo uploaded successfully"))
}

// StageCapture, kaynağı hazırlayıp bekleyen gönderim olarak saklar.
func (h *PhotoHandler) StageCapture(c *fiber.Ctx) error {
	eventID := c.Params("eventId")
	sessionID := c.Get("X-Capture-Session")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("X-Capture-Session header is required"))
	}

	submitter, err := h.submitter(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	source, caption, err := h.captureSource(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pending, err := h.captureService.Stage(sessionID, source, eventID, submitter, caption)
	if err != nil {
		return captureErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"session_id": pending.SessionID,
		"heic":       pending.IsHEIC,
		"converted":  pending.TranscodedBytes != nil,
		"size":       len(pending.CompressedBytes),
		"quality":    pending.Quality,
	}, "Capture staged"))
}

// SendCapture, bekleyen gönderimi yükler; başarısız denemeler aynı
// oturumla tekrarlanabilir.
func (h *PhotoHandler) SendCapture(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	photo, err := h.captureService.Submit(c.Context(), sessionID)
	if err != nil {
		return captureErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(photo, "Photo uploaded successfully"))
}

// CancelCapture, bekleyen gönderimi backend çağrısı yapmadan atar.
func (h *PhotoHandler) CancelCapture(c *fiber.Ctx) error {
	h.captureService.Cancel(c.Params("sessionId"))
	return c.JSON(models.SuccessResponse(nil, "Capture discarded"))
}

func (h *PhotoHandler) GetEventFeed(c *fiber.Ctx) error {
	eventID := c.Params("eventId")
	viewerID, _ := c.Locals("userID").(string)

	feed, err := h.feedService.GetEventFeed(eventID, viewerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(feed, "Feed retrieved successfully"))
}

func (h *PhotoHandler) ToggleLike(c *fiber.Ctx) error {
	photoID := c.Params("id")
	userID, _ := c.Locals("userID").(string)

	result, err := h.feedService.ToggleLike(photoID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(result, "Like toggled"))
}

// captureErrorResponse, yapısal hattın hatasını HTTP koduna çevirir.
func captureErrorResponse(c *fiber.Ctx, err error) error {
	var capErr *service.CaptureError
	if errors.As(err, &capErr) {
		status := fiber.StatusInternalServerError
		if capErr.Step == service.StepValidate {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(models.Response{
			Success: false,
			Error:   capErr.Error(),
			Data:    fiber.Map{"step": string(capErr.Step)},
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}
