package model

import "time"

// NotificationType represents the visual style of a notification bar
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypePromo   NotificationType = "promo"
)

// ValidNotificationType reports whether t is a known notification type
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypePromo:
		return true
	}
	return false
}

// NotificationBar represents a site-wide banner shown on the public pages
type NotificationBar struct {
	ID        int64            `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}
