package attendance

import (
	"context"
	"database/sql"
	"math"
	"net/http"
	"os"
	"testing"
	"time"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/commands"
	"evfleet/backend/internal/pkg/repository/postgresql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Integration tests run against a real postgres when EVFLEET_TEST_DB_DSN
// is set and are skipped otherwise.
func testDatabase(t *testing.T) *postgresql.Database {
	t.Helper()

	dsn := os.Getenv("EVFLEET_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("EVFLEET_TEST_DB_DSN not set")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := &postgresql.Database{DB: bun.NewDB(sqldb, pgdialect.New())}
	t.Cleanup(func() { db.Close() })

	commands.Migrate(db)

	return db
}

func clearEmployeeRows(t *testing.T, db *postgresql.Database, employeeID string) {
	t.Helper()

	for _, query := range []string{
		`DELETE FROM attendancemaster WHERE employee_id = $1`,
		`DELETE FROM base_location WHERE employee_id = $1`,
	} {
		if _, err := db.ExecContext(context.Background(), query, employeeID); err != nil {
			t.Fatalf("clearing rows for %s: %v", employeeID, err)
		}
	}
}

func punchRequest(employeeID, stationID string, lat, lng float64, at time.Time) PunchRequest {
	address := "test address"
	return PunchRequest{
		EmployeeID:     &employeeID,
		StationID:      &stationID,
		Latitude:       &lat,
		Longitude:      &lng,
		Address:        &address,
		AttendanceTime: &at,
	}
}

func TestPunchLifecycleIntegration(t *testing.T) {
	db := testDatabase(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	employeeID := "7042"
	clearEmployeeRows(t, db, employeeID)
	t.Cleanup(func() { clearEmployeeRows(t, db, employeeID) })

	in := time.Now()
	request := punchRequest(employeeID, "EVT1", 12.97, 77.59, in)

	opened, err := repo.PunchIn(ctx, request)
	if err != nil {
		t.Fatalf("punch in: %v", err)
	}
	if opened.AttendanceID == 0 {
		t.Fatalf("expected a generated attendance id")
	}

	// The partial unique index rejects a second open window.
	_, err = repo.PunchIn(ctx, request)
	webErr, ok := web.IsRequestError(err)
	if !ok || webErr.Status != http.StatusConflict {
		t.Fatalf("expected 409 on double punch-in, got %v", err)
	}

	out := in.Add(8 * time.Hour)
	closed, err := repo.PunchOut(ctx, punchRequest(employeeID, "EVT1", 12.97, 77.59, out))
	if err != nil {
		t.Fatalf("punch out: %v", err)
	}
	if closed.PunchoutTime == nil {
		t.Fatalf("expected punchout_time to be set")
	}

	var open int
	err = db.QueryRowContext(ctx,
		`SELECT count(*) FROM attendancemaster WHERE employee_id = $1 AND punchout_time IS NULL`,
		employeeID,
	).Scan(&open)
	if err != nil {
		t.Fatalf("counting open windows: %v", err)
	}
	if open != 0 {
		t.Fatalf("expected no open windows, got %d", open)
	}

	_, err = repo.PunchOut(ctx, punchRequest(employeeID, "EVT1", 12.97, 77.59, out))
	webErr, ok = web.IsRequestError(err)
	if !ok || webErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 on punch-out without open window, got %v", err)
	}
}

func TestDailyDistanceReportIntegration(t *testing.T) {
	db := testDatabase(t)
	repo := NewRepository(db, nil)
	ctx := context.Background()

	employeeID := "7043"
	clearEmployeeRows(t, db, employeeID)
	t.Cleanup(func() { clearEmployeeRows(t, db, employeeID) })

	_, err := db.ExecContext(ctx,
		`INSERT INTO base_location (employee_id, evstationid, latitude, longitude, created_date_time)
		 VALUES ($1, $2, 0, 0, now())`,
		employeeID, "EVT1",
	)
	if err != nil {
		t.Fatalf("inserting base location: %v", err)
	}

	now := time.Now()
	for _, stop := range []struct {
		station string
		lng     float64
	}{
		{"EVT1", 1},
		{"EVT2", 2},
	} {
		if _, err = repo.PunchIn(ctx, punchRequest(employeeID, stop.station, 0, stop.lng, now)); err != nil {
			t.Fatalf("punch in at %s: %v", stop.station, err)
		}
		if _, err = repo.PunchOut(ctx, punchRequest(employeeID, stop.station, 0, stop.lng, now.Add(time.Hour))); err != nil {
			t.Fatalf("punch out at %s: %v", stop.station, err)
		}
	}

	report, _, err := repo.GetDailyDistanceReport(ctx)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	var row *DistanceReportRow
	for i := range report {
		if report[i].EmployeeID == employeeID {
			row = &report[i]
			break
		}
	}
	if row == nil {
		t.Fatalf("no report row for employee %s", employeeID)
	}
	if row.StationsVisited != 2 {
		t.Fatalf("expected 2 stations visited, got %d", row.StationsVisited)
	}

	// One degree of longitude on the equator is ~111.19 km, so the two
	// stops are ~111.19 + ~222.39 km from the base location.
	want := 333.58
	if math.Abs(row.TotalDistanceKm-want) > 0.05 {
		t.Fatalf("expected total distance ~%v km, got %v", want, row.TotalDistanceKm)
	}
}
