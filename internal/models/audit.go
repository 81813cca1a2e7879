package models

import "time"

// AuditEntry is one row of the audit log.
type AuditEntry struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   int       `json:"resource_id"`
	Details      string    `json:"details"`
	CreatedAt    time.Time `json:"created_at"`
}
