package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/potluck/recipebook/internal/store"
)

type ImageHandler struct {
	images store.ImageStore
}

func NewImageHandler(images store.ImageStore) *ImageHandler {
	return &ImageHandler{images: images}
}

// GetImage serves a recipe image blob with its stored content type.
func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	data, contentType, err := h.images.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Image cannot be found!"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
