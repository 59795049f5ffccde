package models

import (
	"encoding/json"
	"time"
)

// AuditLog records one successful mutation of a store's catalog.
type AuditLog struct {
	ID        string          `json:"id" db:"id"`
	StoreID   string          `json:"storeId" db:"store_id"`
	Entity    string          `json:"entity" db:"entity"`
	RecordID  string          `json:"recordId" db:"record_id"`
	Action    string          `json:"action" db:"action"`
	ActorID   string          `json:"actorId" db:"actor_id"`
	Values    json.RawMessage `json:"values,omitempty" db:"values"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// Action constants for audit logs
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionExport = "EXPORT"
)

// Entity names as recorded in audit logs
const (
	EntityStore     = "store"
	EntityBillboard = "billboard"
	EntityCategory  = "category"
	EntityColor     = "color"
	EntitySize      = "size"
	EntityProduct   = "product"
	EntityExport    = "export"
)

// AuditLogFilter pages through a store's audit trail.
type AuditLogFilter struct {
	Entity string `query:"entity"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
