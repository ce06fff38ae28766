package model

import (
	"time"
)

// AuditFields carries the store-maintained timestamps. Engine logic never
// reads them.
type AuditFields struct {
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
