package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/learnhub/auth-service/internal/dto"
	"github.com/learnhub/auth-service/internal/models"
	"gorm.io/gorm"
)

// LogsHandler exposes recent system logs to admins.
type LogsHandler struct {
	db *gorm.DB
}

func NewLogsHandler(db *gorm.DB) *LogsHandler {
	return &LogsHandler{db: db}
}

func (h *LogsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var logs []models.SystemLog
	if err := h.db.Order("timestamp DESC").Limit(limit).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load logs",
		})
	}

	return c.JSON(logs)
}
