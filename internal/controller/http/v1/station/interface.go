package station

import (
	"context"

	"evfleet/backend/internal/repository/postgres/station"
)

type Station interface {
	Create(ctx context.Context, request station.CreateRequest) (station.CreateResponse, error)
	GetAll(ctx context.Context) ([]station.GetDetailResponse, int, error)
	GetByID(ctx context.Context, id string) (station.GetDetailResponse, error)
	Update(ctx context.Context, request station.UpdateRequest) (station.GetDetailResponse, error)
	Delete(ctx context.Context, id string) (station.GetDetailResponse, error)
}
