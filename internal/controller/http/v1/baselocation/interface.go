package baselocation

import (
	"context"

	"evfleet/backend/internal/repository/postgres/baselocation"
)

type BaseLocation interface {
	Create(ctx context.Context, request baselocation.CreateRequest) (baselocation.CreateResponse, error)
}
