package entity

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// VendorService is the legacy flat table keyed naturally by
// (vendor_id, service_name).
type VendorService struct {
	bun.BaseModel `bun:"table:vendor_services"`

	ID           int     `json:"id"            bun:"id,pk,autoincrement"`
	VendorID     *int    `json:"vendor_id"     bun:"vendor_id"`
	Email        *string `json:"email"         bun:"email"`
	ServiceName  *string `json:"service_name"  bun:"service_name"`
	ServicePrice *string `json:"service_price" bun:"service_price"`
}

// VendorServiceFlat is the normalized catalog row, unique on
// (vendor_id, lower(category), lower(subcategory)) with upsert semantics.
type VendorServiceFlat struct {
	bun.BaseModel `bun:"table:vendor_services_flat"`

	ID          int             `json:"id"          bun:"id,pk,autoincrement"`
	VendorID    int             `json:"vendor_id"   bun:"vendor_id"`
	Category    string          `json:"category"    bun:"category"`
	Subcategory string          `json:"subcategory" bun:"subcategory"`
	Price       float64         `json:"price"       bun:"price"`
	Meta        json.RawMessage `json:"meta"        bun:"meta,type:jsonb,nullzero"`
	UpdatedAt   time.Time       `json:"updated_at"  bun:"updated_at"`
}
