package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel : table append-only, consommee par tous les
// dashboards. Pas de FK sur le destinataire : recipient_id peut etre la
// chaine litterale "admin".
type NotificationModel struct {
	NotificationID            uuid.UUID  `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationRecipientID   string     `gorm:"column:notification_recipient_id;type:varchar(40);not null;index:idx_notification_recipient" json:"notification_recipient_id"`
	NotificationRecipientType string     `gorm:"column:notification_recipient_type;type:varchar(20);not null;index:idx_notification_recipient" json:"notification_recipient_type"`
	NotificationSenderID      *uuid.UUID `gorm:"column:notification_sender_id;type:uuid" json:"notification_sender_id,omitempty"`
	NotificationSenderType    string     `gorm:"column:notification_sender_type;type:varchar(20);not null" json:"notification_sender_type"`
	NotificationType          string     `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"` // validation|payment|absence|accident|raise_request|raise_response
	NotificationTitle         string     `gorm:"column:notification_title;type:varchar(200);not null" json:"notification_title"`
	NotificationMessage       string     `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationIsRead        bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime;index" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
