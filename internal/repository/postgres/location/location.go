package location

import (
	"context"
	"database/sql"
	"net/http"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/entity"
	"evfleet/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Latitude", "Longitude", "Address", "PinCode"); err != nil {
		return CreateResponse{}, err
	}

	row := entity.Location{
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Address:   request.Address,
		PinCode:   request.PinCode,
	}

	_, err := r.NewInsert().Model(&row).Returning("location_id").Exec(ctx, &row.LocationID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating location"), http.StatusInternalServerError)
	}

	return CreateResponse{
		LocationID: row.LocationID,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		Address:    row.Address,
		PinCode:    row.PinCode,
	}, nil
}

func (r Repository) GetByID(ctx context.Context, id int) (GetDetailResponse, error) {
	query := `
		SELECT
			location_id,
			latitude,
			longitude,
			address,
			pin_code
		FROM locationmaster
		WHERE location_id = $1
	`

	var detail GetDetailResponse
	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.LocationID,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Address,
		&detail.PinCode,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailResponse{}, web.NewRequestError(errors.New("location not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetDetailResponse{}, web.NewRequestError(errors.Wrap(err, "selecting location"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetAddresses(ctx context.Context) ([]GetAddressResponse, int, error) {
	query := `
		SELECT
			latitude,
			longitude,
			address,
			pin_code
		FROM locationmaster
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting addresses"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetAddressResponse
	for rows.Next() {
		var detail GetAddressResponse
		if err = rows.Scan(
			&detail.Latitude,
			&detail.Longitude,
			&detail.Address,
			&detail.PinCode); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning address list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading address list"), http.StatusInternalServerError)
	}

	return list, len(list), nil
}
