package station

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/entity"
	"evfleet/backend/internal/pkg/repository/postgresql"
	"evfleet/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	listCacheKey = "ev_station:list"
	listCacheTTL = time.Minute
)

type Repository struct {
	*postgresql.Database
	cache *redis.Client
}

func NewRepository(database *postgresql.Database, cache *redis.Client) *Repository {
	return &Repository{Database: database, cache: cache}
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "StationID", "Name", "Location", "Latitude", "Longitude", "Address"); err != nil {
		return CreateResponse{}, err
	}

	row := entity.Station{
		StationID: request.StationID,
		Name:      request.Name,
		Location:  request.Location,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Address:   request.Address,
	}

	_, err := r.NewInsert().Model(&row).Exec(ctx)
	if postgres.IsUniqueViolation(err) {
		return CreateResponse{}, web.NewRequestError(errors.New("ev station already exists"), http.StatusConflict)
	}
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating ev station"), http.StatusInternalServerError)
	}

	r.invalidateList(ctx)

	return CreateResponse{
		StationID: row.StationID,
		Name:      row.Name,
		Location:  row.Location,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		Address:   row.Address,
	}, nil
}

func (r Repository) GetAll(ctx context.Context) ([]GetDetailResponse, int, error) {
	if list, ok := r.cachedList(ctx); ok {
		return list, len(list), nil
	}

	query := `
		SELECT
			evstationid,
			name,
			location,
			latitude,
			longitude,
			address
		FROM ev_station
		ORDER BY evstationid
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting ev stations"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetDetailResponse
	for rows.Next() {
		var detail GetDetailResponse
		if err = rows.Scan(
			&detail.StationID,
			&detail.Name,
			&detail.Location,
			&detail.Latitude,
			&detail.Longitude,
			&detail.Address); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning ev station list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading ev station list"), http.StatusInternalServerError)
	}

	r.storeList(ctx, list)

	return list, len(list), nil
}

func (r Repository) GetByID(ctx context.Context, id string) (GetDetailResponse, error) {
	query := `
		SELECT
			evstationid,
			name,
			location,
			latitude,
			longitude,
			address
		FROM ev_station
		WHERE evstationid = $1
	`

	var detail GetDetailResponse
	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.StationID,
		&detail.Name,
		&detail.Location,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailResponse{}, web.NewRequestError(errors.New("ev station not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetDetailResponse{}, web.NewRequestError(errors.Wrap(err, "selecting ev station"), http.StatusInternalServerError)
	}

	return detail, nil
}

// Update merges only the supplied fields; COALESCE keeps the stored value
// for everything the caller left out.
func (r Repository) Update(ctx context.Context, request UpdateRequest) (GetDetailResponse, error) {
	query := `
		UPDATE ev_station
		SET name = COALESCE($1, name),
		    location = COALESCE($2, location),
		    latitude = COALESCE($3, latitude),
		    longitude = COALESCE($4, longitude),
		    address = COALESCE($5, address)
		WHERE evstationid = $6
		RETURNING evstationid, name, location, latitude, longitude, address
	`

	var detail GetDetailResponse
	err := r.QueryRowContext(ctx, query,
		request.Name,
		request.Location,
		request.Latitude,
		request.Longitude,
		request.Address,
		request.StationID,
	).Scan(
		&detail.StationID,
		&detail.Name,
		&detail.Location,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailResponse{}, web.NewRequestError(errors.New("ev station not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetDetailResponse{}, web.NewRequestError(errors.Wrap(err, "updating ev station"), http.StatusInternalServerError)
	}

	r.invalidateList(ctx)

	return detail, nil
}

func (r Repository) Delete(ctx context.Context, id string) (GetDetailResponse, error) {
	query := `
		DELETE FROM ev_station
		WHERE evstationid = $1
		RETURNING evstationid, name, location, latitude, longitude, address
	`

	var detail GetDetailResponse
	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.StationID,
		&detail.Name,
		&detail.Location,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailResponse{}, web.NewRequestError(errors.New("ev station not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetDetailResponse{}, web.NewRequestError(errors.Wrap(err, "deleting ev station"), http.StatusInternalServerError)
	}

	r.invalidateList(ctx)

	return detail, nil
}

func (r Repository) cachedList(ctx context.Context) ([]GetDetailResponse, bool) {
	if r.cache == nil {
		return nil, false
	}

	payload, err := r.cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var list []GetDetailResponse
	if err = json.Unmarshal(payload, &list); err != nil {
		return nil, false
	}

	return list, true
}

func (r Repository) storeList(ctx context.Context, list []GetDetailResponse) {
	if r.cache == nil {
		return
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return
	}

	r.cache.Set(ctx, listCacheKey, payload, listCacheTTL)
}

func (r Repository) invalidateList(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Del(ctx, listCacheKey)
}
