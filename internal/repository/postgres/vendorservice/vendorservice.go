package vendorservice

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/entity"
	"evfleet/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// parsePrice accepts the loose price representations the API has always
// taken (JSON number or numeric string) and rejects anything that is not
// a finite number.
func parsePrice(v interface{}) (float64, error) {
	var price float64

	switch value := v.(type) {
	case float64:
		price = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, errors.Errorf("price %q is not numeric", value)
		}
		price = parsed
	case nil:
		return 0, errors.New("price is required")
	default:
		return 0, errors.Errorf("price has unsupported type %T", v)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.New("price must be a finite number")
	}

	return price, nil
}

// AddServices is the legacy batch insert: the whole batch lives in one
// transaction and a duplicate (vendor_id, service_name) aborts all of it.
func (r Repository) AddServices(ctx context.Context, request AddServicesRequest) error {
	if err := r.ValidateStruct(&request, "VendorID", "Email", "Services"); err != nil {
		return err
	}

	return r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, service := range request.Services {
			if service.ServiceName == nil || strings.TrimSpace(*service.ServiceName) == "" {
				return web.NewRequestError(errors.New("each service needs a service_name"), http.StatusBadRequest)
			}

			var exists bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM vendor_services WHERE vendor_id = $1 AND service_name = $2)`,
				*request.VendorID, *service.ServiceName,
			).Scan(&exists)
			if err != nil {
				return web.NewRequestError(errors.Wrap(err, "checking existing service"), http.StatusInternalServerError)
			}
			if exists {
				return web.NewRequestError(
					errors.Errorf("service '%s' already exists for this vendor", *service.ServiceName),
					http.StatusConflict)
			}

			price := fmt.Sprint(service.ServicePrice)
			row := entity.VendorService{
				VendorID:     request.VendorID,
				Email:        request.Email,
				ServiceName:  service.ServiceName,
				ServicePrice: &price,
			}
			if _, err = tx.NewInsert().Model(&row).Exec(ctx); err != nil {
				return web.NewRequestError(errors.Wrap(err, "inserting vendor service"), http.StatusInternalServerError)
			}
		}

		return nil
	})
}

// AddOrUpdateFlat validates every batch member before any of them is
// visible: one bad entry rolls the whole transaction back. Rows are
// upserted on (vendor_id, lower(category), lower(subcategory)).
func (r Repository) AddOrUpdateFlat(ctx context.Context, request AddFlatServicesRequest) error {
	if err := r.ValidateStruct(&request, "VendorID", "Services"); err != nil {
		return err
	}

	return r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, service := range request.Services {
			category := strings.TrimSpace(service.Category)
			subcategory := strings.TrimSpace(service.Subcategory)

			if category == "" || subcategory == "" {
				return web.NewRequestError(
					errors.New("each service needs category, subcategory and numeric price"),
					http.StatusBadRequest)
			}

			price, err := parsePrice(service.Price)
			if err != nil {
				return web.NewRequestError(
					errors.Wrap(err, "each service needs category, subcategory and numeric price"),
					http.StatusBadRequest)
			}

			row := entity.VendorServiceFlat{
				VendorID:    *request.VendorID,
				Category:    category,
				Subcategory: subcategory,
				Price:       price,
				Meta:        service.Meta,
				UpdatedAt:   time.Now(),
			}

			_, err = tx.NewInsert().Model(&row).
				On("CONFLICT (vendor_id, lower(category), lower(subcategory)) DO UPDATE").
				Set("price = EXCLUDED.price").
				Set("meta = EXCLUDED.meta").
				Set("updated_at = now()").
				Exec(ctx)
			if err != nil {
				return web.NewRequestError(errors.Wrap(err, "upserting vendor service"), http.StatusInternalServerError)
			}
		}

		return nil
	})
}

// GetByEmailOrID looks services up by vendor id when given, otherwise by
// email.
func (r Repository) GetByEmailOrID(ctx context.Context, request GetServicesRequest) (GetServicesResponse, error) {
	if request.ID == nil && request.Email == nil {
		return GetServicesResponse{}, web.NewRequestError(errors.New("either vendor ID or email is required"), http.StatusBadRequest)
	}

	var (
		query      string
		arg        interface{}
		identifier string
	)
	if request.ID != nil {
		query = `SELECT service_name, service_price FROM vendor_services WHERE vendor_id = $1`
		arg = *request.ID
		identifier = strconv.Itoa(*request.ID)
	} else {
		query = `SELECT service_name, service_price FROM vendor_services WHERE email = $1`
		arg = *request.Email
		identifier = *request.Email
	}

	rows, err := r.QueryContext(ctx, query, arg)
	if err != nil {
		return GetServicesResponse{}, web.NewRequestError(errors.Wrap(err, "selecting vendor services"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var services []ServiceRow
	for rows.Next() {
		var row ServiceRow
		if err = rows.Scan(&row.ServiceName, &row.ServicePrice); err != nil {
			return GetServicesResponse{}, web.NewRequestError(errors.Wrap(err, "scanning vendor service"), http.StatusInternalServerError)
		}
		services = append(services, row)
	}
	if err = rows.Err(); err != nil {
		return GetServicesResponse{}, web.NewRequestError(errors.Wrap(err, "reading vendor services"), http.StatusInternalServerError)
	}

	if len(services) == 0 {
		return GetServicesResponse{}, web.NewRequestError(errors.New("no services found for the given vendor"), http.StatusNotFound)
	}

	return GetServicesResponse{VendorIdentifier: identifier, Services: services}, nil
}

// GetGrouped returns the flat catalog nested by category, categories and
// subcategories in alphabetical order.
func (r Repository) GetGrouped(ctx context.Context, vendorID int) (GetGroupedResponse, error) {
	query := `
		SELECT id, category, subcategory, price, meta
		FROM vendor_services_flat
		WHERE vendor_id = $1
		ORDER BY category, subcategory
	`

	rows, err := r.QueryContext(ctx, query, vendorID)
	if err != nil {
		return GetGroupedResponse{}, web.NewRequestError(errors.Wrap(err, "selecting grouped services"), http.StatusInternalServerError)
	}
	defer rows.Close()

	response := GetGroupedResponse{VendorID: vendorID, ServicesByCategory: []GroupedCategory{}}

	for rows.Next() {
		var (
			sub      GroupedSubcategory
			category string
			meta     sql.NullString
		)
		if err = rows.Scan(&sub.ID, &category, &sub.Subcategory, &sub.Price, &meta); err != nil {
			return GetGroupedResponse{}, web.NewRequestError(errors.Wrap(err, "scanning grouped service"), http.StatusInternalServerError)
		}
		if meta.Valid {
			sub.Meta = []byte(meta.String)
		}

		n := len(response.ServicesByCategory)
		if n == 0 || response.ServicesByCategory[n-1].Category != category {
			response.ServicesByCategory = append(response.ServicesByCategory, GroupedCategory{Category: category})
			n++
		}
		response.ServicesByCategory[n-1].Subcategories = append(response.ServicesByCategory[n-1].Subcategories, sub)
	}
	if err = rows.Err(); err != nil {
		return GetGroupedResponse{}, web.NewRequestError(errors.Wrap(err, "reading grouped services"), http.StatusInternalServerError)
	}

	return response, nil
}

// DeleteLegacy removes a legacy row matched case-insensitively on email
// and service name, in a single statement.
func (r Repository) DeleteLegacy(ctx context.Context, request DeleteServiceRequest) error {
	if err := r.ValidateStruct(&request, "Email", "ServiceName"); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(*request.Email))
	serviceName := strings.ToLower(strings.TrimSpace(*request.ServiceName))

	result, err := r.ExecContext(ctx,
		`DELETE FROM vendor_services WHERE LOWER(TRIM(email)) = $1 AND LOWER(TRIM(service_name)) = $2`,
		email, serviceName,
	)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting vendor service"), http.StatusInternalServerError)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if rowsAffected == 0 {
		return web.NewRequestError(errors.New("service not found for this vendor"), http.StatusNotFound)
	}

	return nil
}

// DeleteFlat removes a flat row by id when given, otherwise by the
// case-insensitive (vendor_id, category, subcategory) triple.
func (r Repository) DeleteFlat(ctx context.Context, request DeleteFlatRequest) (DeletedFlatService, error) {
	var (
		query string
		args  []interface{}
	)

	if request.ID != nil {
		query = `
			DELETE FROM vendor_services_flat
			WHERE id = $1
			RETURNING id, vendor_id, category, subcategory, price, meta`
		args = []interface{}{*request.ID}
	} else {
		if request.VendorID == nil || request.Category == nil || request.Subcategory == nil {
			return DeletedFlatService{}, web.NewRequestError(
				errors.New("provide id OR vendor_id + category + subcategory"),
				http.StatusBadRequest)
		}
		query = `
			DELETE FROM vendor_services_flat
			WHERE vendor_id = $1 AND lower(category) = lower($2) AND lower(subcategory) = lower($3)
			RETURNING id, vendor_id, category, subcategory, price, meta`
		args = []interface{}{*request.VendorID, strings.TrimSpace(*request.Category), strings.TrimSpace(*request.Subcategory)}
	}

	var (
		deleted DeletedFlatService
		meta    sql.NullString
	)
	err := r.QueryRowContext(ctx, query, args...).Scan(
		&deleted.ID,
		&deleted.VendorID,
		&deleted.Category,
		&deleted.Subcategory,
		&deleted.Price,
		&meta,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DeletedFlatService{}, web.NewRequestError(errors.New("service not found"), http.StatusNotFound)
	}
	if err != nil {
		return DeletedFlatService{}, web.NewRequestError(errors.Wrap(err, "deleting vendor service"), http.StatusInternalServerError)
	}
	if meta.Valid {
		deleted.Meta = []byte(meta.String)
	}

	return deleted, nil
}
