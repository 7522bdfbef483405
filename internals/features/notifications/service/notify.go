package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/notifications/model"
)

// Destinataire special : les notifications adressees a l'administration
// portent la chaine litterale "admin" (pas de FK).
const AdminRecipient = "admin"

// Push insere une notification dans la transaction du workflow appelant.
// Si l'insertion echoue, tout le workflow est annule (couplage voulu).
func Push(tx *gorm.DB, n model.NotificationModel) error {
	if n.NotificationID == uuid.Nil {
		n.NotificationID = uuid.New()
	}
	return tx.Create(&n).Error
}

// PushToRole adresse une notification a un acteur identifie par son id
// d'extension de role (tutor_id, driver_id, ...).
func PushToRole(tx *gorm.DB, recipientID uuid.UUID, recipientType string, senderID *uuid.UUID, senderType, notifType, title, message string) error {
	return Push(tx, model.NotificationModel{
		NotificationRecipientID:   recipientID.String(),
		NotificationRecipientType: recipientType,
		NotificationSenderID:      senderID,
		NotificationSenderType:    senderType,
		NotificationType:          notifType,
		NotificationTitle:         title,
		NotificationMessage:       message,
	})
}

// PushToAdmin adresse une notification a l'administration.
func PushToAdmin(tx *gorm.DB, senderID *uuid.UUID, senderType, notifType, title, message string) error {
	return Push(tx, model.NotificationModel{
		NotificationRecipientID:   AdminRecipient,
		NotificationRecipientType: AdminRecipient,
		NotificationSenderID:      senderID,
		NotificationSenderType:    senderType,
		NotificationType:          notifType,
		NotificationTitle:         title,
		NotificationMessage:       message,
	})
}
