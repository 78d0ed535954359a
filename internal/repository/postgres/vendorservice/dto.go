package vendorservice

import (
	"encoding/json"
)

// ServiceEntry is one member of a legacy batch add.
type ServiceEntry struct {
	ServiceName  *string     `json:"service_name"  form:"service_name"`
	ServicePrice interface{} `json:"service_price" form:"service_price"`
}

type AddServicesRequest struct {
	VendorID *int           `json:"vendor_id" form:"vendor_id"`
	Email    *string        `json:"email"     form:"email"`
	Services []ServiceEntry `json:"services"  form:"services"`
}

// FlatServiceEntry is one member of an upsert batch. Price is kept loose
// on purpose: callers send numbers or numeric strings and validation
// happens per batch member inside the transaction.
type FlatServiceEntry struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Price       interface{}     `json:"price"`
	Meta        json.RawMessage `json:"meta"`
}

type AddFlatServicesRequest struct {
	VendorID *int               `json:"vendor_id" form:"vendor_id"`
	Services []FlatServiceEntry `json:"services"  form:"services"`
}

type GetServicesRequest struct {
	ID    *int    `json:"id"    form:"id"`
	Email *string `json:"email" form:"email"`
}

type ServiceRow struct {
	ServiceName  string `json:"service_name"`
	ServicePrice string `json:"service_price"`
}

type GetServicesResponse struct {
	VendorIdentifier string       `json:"vendor_identifier"`
	Services         []ServiceRow `json:"services"`
}

type GroupedSubcategory struct {
	ID          int             `json:"id"`
	Subcategory string          `json:"subcategory"`
	Price       float64         `json:"price"`
	Meta        json.RawMessage `json:"meta"`
}

type GroupedCategory struct {
	Category      string               `json:"category"`
	Subcategories []GroupedSubcategory `json:"subcategories"`
}

type GetGroupedResponse struct {
	VendorID           int               `json:"vendor_id"`
	ServicesByCategory []GroupedCategory `json:"services_by_category"`
}

type DeleteServiceRequest struct {
	Email       *string `json:"email"        form:"email"`
	ServiceName *string `json:"service_name" form:"service_name"`
}

type DeleteFlatRequest struct {
	ID          *int    `json:"id"          form:"id"`
	VendorID    *int    `json:"vendor_id"   form:"vendor_id"`
	Category    *string `json:"category"    form:"category"`
	Subcategory *string `json:"subcategory" form:"subcategory"`
}

type DeletedFlatService struct {
	ID          int             `json:"id"`
	VendorID    int             `json:"vendor_id"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Price       float64         `json:"price"`
	Meta        json.RawMessage `json:"meta"`
}
