package baselocation

import (
	"context"
	"net/http"
	"time"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/entity"
	"evfleet/backend/internal/pkg/repository/postgresql"
	"evfleet/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Shared with the attendance repository: base locations feed the same
// report, so writes here invalidate the same key.
const reportCacheKey = "report:daily_distance"

type Repository struct {
	*postgresql.Database
	cache *redis.Client
}

func NewRepository(database *postgresql.Database, cache *redis.Client) *Repository {
	return &Repository{Database: database, cache: cache}
}

// Create records the employee's first login position of the day. The
// unique index on (employee_id, date(created_date_time)) rejects a second
// row for the same calendar day atomically.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "EmployeeID", "StationID", "Latitude", "Longitude"); err != nil {
		return CreateResponse{}, err
	}

	row := entity.BaseLocation{
		EmployeeID:      request.EmployeeID,
		StationID:       request.StationID,
		Latitude:        request.Latitude,
		Longitude:       request.Longitude,
		CreatedDateTime: time.Now(),
	}

	_, err := r.NewInsert().Model(&row).Returning("id, created_date_time").Exec(ctx, &row.ID, &row.CreatedDateTime)
	if postgres.IsUniqueViolation(err) {
		return CreateResponse{}, web.NewRequestError(errors.New("employee already logged in for today"), http.StatusForbidden)
	}
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating base location"), http.StatusInternalServerError)
	}

	r.invalidateReport(ctx)

	return CreateResponse{
		ID:              row.ID,
		EmployeeID:      row.EmployeeID,
		StationID:       row.StationID,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		CreatedDateTime: row.CreatedDateTime,
	}, nil
}

func (r Repository) invalidateReport(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Del(ctx, reportCacheKey)
}
