package location

import (
	"context"

	"evfleet/backend/internal/repository/postgres/location"
)

type Location interface {
	Create(ctx context.Context, request location.CreateRequest) (location.CreateResponse, error)
	GetByID(ctx context.Context, id int) (location.GetDetailResponse, error)
	GetAddresses(ctx context.Context) ([]location.GetAddressResponse, int, error)
}
