package dto

import (
	"time"

	"github.com/google/uuid"

	m "transportscolaire_backend/internals/features/notifications/model"
)

/* =============== REQUESTS =============== */

type MarkReadRequest struct {
	NotificationID uuid.UUID `json:"notification_id" validate:"required"`
}

/* =============== RESPONSES =============== */

type NotificationResponse struct {
	NotificationID         uuid.UUID  `json:"notification_id"`
	NotificationSenderID   *uuid.UUID `json:"notification_sender_id,omitempty"`
	NotificationSenderType string     `json:"notification_sender_type"`
	NotificationType       string     `json:"notification_type"`
	NotificationTitle      string     `json:"notification_title"`
	NotificationMessage    string     `json:"notification_message"`
	NotificationIsRead     bool       `json:"notification_is_read"`
	NotificationCreatedAt  time.Time  `json:"notification_created_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:         x.NotificationID,
		NotificationSenderID:   x.NotificationSenderID,
		NotificationSenderType: x.NotificationSenderType,
		NotificationType:       x.NotificationType,
		NotificationTitle:      x.NotificationTitle,
		NotificationMessage:    x.NotificationMessage,
		NotificationIsRead:     x.NotificationIsRead,
		NotificationCreatedAt:  x.NotificationCreatedAt,
	}
}

func FromModels(list []m.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
