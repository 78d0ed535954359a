package vendorservice

import (
	"context"

	"evfleet/backend/internal/repository/postgres/vendorservice"
)

type VendorService interface {
	AddServices(ctx context.Context, request vendorservice.AddServicesRequest) error
	AddOrUpdateFlat(ctx context.Context, request vendorservice.AddFlatServicesRequest) error
	GetByEmailOrID(ctx context.Context, request vendorservice.GetServicesRequest) (vendorservice.GetServicesResponse, error)
	GetGrouped(ctx context.Context, vendorID int) (vendorservice.GetGroupedResponse, error)
	DeleteLegacy(ctx context.Context, request vendorservice.DeleteServiceRequest) error
	DeleteFlat(ctx context.Context, request vendorservice.DeleteFlatRequest) (vendorservice.DeletedFlatService, error)
}
