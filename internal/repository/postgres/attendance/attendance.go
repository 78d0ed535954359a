package attendance

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

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	reportCacheKey = "report:daily_distance"
	reportCacheTTL = time.Minute
)

type Repository struct {
	*postgresql.Database
	cache *redis.Client
}

func NewRepository(database *postgresql.Database, cache *redis.Client) *Repository {
	return &Repository{Database: database, cache: cache}
}

// PunchIn opens a new attendance window. The partial unique index on
// attendancemaster(employee_id) WHERE punchout_time IS NULL makes the
// "one open record per employee" invariant atomic: a second punch-in
// surfaces as a unique violation, not a racy pre-check.
func (r Repository) PunchIn(ctx context.Context, request PunchRequest) (PunchResponse, error) {
	flag := FlagPunchIn
	row := entity.Attendance{
		EmployeeID:  request.EmployeeID,
		StationID:   request.StationID,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Address:     request.Address,
		PunchinTime: request.AttendanceTime,
		Flag:        &flag,
		CreatedAt:   time.Now(),
	}

	_, err := r.NewInsert().Model(&row).Returning("attendance_id").Exec(ctx, &row.AttendanceID)
	if postgres.IsUniqueViolation(err) {
		return PunchResponse{}, web.NewRequestError(errors.New("employee already punched in"), http.StatusConflict)
	}
	if err != nil {
		return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "creating punch-in"), http.StatusInternalServerError)
	}

	r.invalidateReport(ctx)

	return PunchResponse{
		AttendanceID: row.AttendanceID,
		EmployeeID:   row.EmployeeID,
		StationID:    row.StationID,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		Address:      row.Address,
		PunchinTime:  row.PunchinTime,
		Flag:         FlagPunchIn,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// PunchOut closes the open window in a single conditional update; zero
// rows updated means there was nothing open.
func (r Repository) PunchOut(ctx context.Context, request PunchRequest) (PunchResponse, error) {
	query := `
		UPDATE attendancemaster
		SET punchout_time = $1, flag = $2
		WHERE employee_id = $3
		  AND punchout_time IS NULL
		RETURNING attendance_id, employee_id, evstationid, latitude, longitude, address, punchin_time, punchout_time, created_at
	`

	var response PunchResponse
	err := r.QueryRowContext(ctx, query, request.AttendanceTime, FlagPunchOut, *request.EmployeeID).Scan(
		&response.AttendanceID,
		&response.EmployeeID,
		&response.StationID,
		&response.Latitude,
		&response.Longitude,
		&response.Address,
		&response.PunchinTime,
		&response.PunchoutTime,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return PunchResponse{}, web.NewRequestError(errors.New("no active punch-in found"), http.StatusNotFound)
	}
	if err != nil {
		return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "closing punch-in"), http.StatusInternalServerError)
	}
	response.Flag = FlagPunchOut

	r.invalidateReport(ctx)

	return response, nil
}

func (r Repository) GetAll(ctx context.Context) ([]GetListResponse, int, error) {
	return r.list(ctx, `
		SELECT
			attendance_id,
			employee_id,
			evstationid,
			latitude,
			longitude,
			address,
			punchin_time,
			punchout_time,
			flag,
			created_at
		FROM attendancemaster
		ORDER BY punchin_time DESC
	`)
}

func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) ([]GetListResponse, int, error) {
	list, count, err := r.list(ctx, `
		SELECT
			attendance_id,
			employee_id,
			evstationid,
			latitude,
			longitude,
			address,
			punchin_time,
			punchout_time,
			flag,
			created_at
		FROM attendancemaster
		WHERE employee_id = $1
		ORDER BY punchin_time DESC
	`, employeeID)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, web.NewRequestError(errors.New("no attendance found for this employee"), http.StatusNotFound)
	}

	return list, count, nil
}

func (r Repository) list(ctx context.Context, query string, args ...interface{}) ([]GetListResponse, int, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.AttendanceID,
			&detail.EmployeeID,
			&detail.StationID,
			&detail.Latitude,
			&detail.Longitude,
			&detail.Address,
			&detail.PunchinTime,
			&detail.PunchoutTime,
			&detail.Flag,
			&detail.CreatedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading attendance list"), http.StatusInternalServerError)
	}

	return list, len(list), nil
}

// GetDailyDistanceReport sums great-circle distances (haversine, earth
// radius 6371 km) between each attendance position and the employee's
// base location of the same day, one row per employee per day.
func (r Repository) GetDailyDistanceReport(ctx context.Context) ([]DistanceReportRow, int, error) {
	if list, ok := r.cachedReport(ctx); ok {
		return list, len(list), nil
	}

	query := `
		SELECT
			a.employee_id,
			DATE(a.punchin_time)::text AS attendance_date,
			COUNT(DISTINCT a.evstationid) AS stations_visited,
			ROUND(
				SUM(
					6371 * acos(
						LEAST(1.0,
							cos(radians(b.latitude)) * cos(radians(a.latitude)) *
							cos(radians(a.longitude) - radians(b.longitude)) +
							sin(radians(b.latitude)) * sin(radians(a.latitude))
						)
					)
				)::numeric, 2
			) AS total_distance_km
		FROM attendancemaster a
		JOIN base_location b
			ON a.employee_id::integer = b.employee_id::integer
			AND DATE(b.created_date_time) = DATE(a.punchin_time)
		GROUP BY a.employee_id, DATE(a.punchin_time)
		ORDER BY a.employee_id, attendance_date
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting daily distance report"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []DistanceReportRow
	for rows.Next() {
		var detail DistanceReportRow
		var attendanceDate string

		if err = rows.Scan(
			&detail.EmployeeID,
			&attendanceDate,
			&detail.StationsVisited,
			&detail.TotalDistanceKm); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning distance report"), http.StatusInternalServerError)
		}

		day, err := date.ParseDate(attendanceDate)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting attendance_date"), http.StatusInternalServerError)
		}
		detail.AttendanceDate = &day

		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading distance report"), http.StatusInternalServerError)
	}

	r.storeReport(ctx, list)

	return list, len(list), nil
}

func (r Repository) cachedReport(ctx context.Context) ([]DistanceReportRow, bool) {
	if r.cache == nil {
		return nil, false
	}

	payload, err := r.cache.Get(ctx, reportCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var list []DistanceReportRow
	if err = json.Unmarshal(payload, &list); err != nil {
		return nil, false
	}

	return list, true
}

func (r Repository) storeReport(ctx context.Context, list []DistanceReportRow) {
	if r.cache == nil {
		return
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return
	}

	r.cache.Set(ctx, reportCacheKey, payload, reportCacheTTL)
}

func (r Repository) invalidateReport(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Del(ctx, reportCacheKey)
}
