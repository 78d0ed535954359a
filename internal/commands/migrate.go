package commands

import (
	"evfleet/backend/internal/pkg/repository/postgresql"
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{

	{
		Index:       1,
		Description: "Create table: ev_station.",
		Query: `
        CREATE TABLE IF NOT EXISTS ev_station (
            evstationid varchar(50) primary key,
            name text not null,
            location text,
            latitude double precision,
            longitude double precision,
            address text
        );`,
	},
	{
		Index:       2,
		Description: "Create table: employemaster.",
		Query: `
        CREATE TABLE IF NOT EXISTS employemaster (
            employee_id varchar(10) primary key,
            name text not null,
            age int,
            gender varchar(20),
            address text,
            email varchar(255),
            phone_number varchar(20),
            password varchar(10) not null,
            latitude double precision,
            longitude double precision,
            pincode varchar(10),
            state varchar(100),
            city varchar(100)
        );`,
	},
	{
		Index:       3,
		Description: "Create table: locationmaster.",
		Query: `
        CREATE TABLE IF NOT EXISTS locationmaster (
            location_id serial primary key,
            latitude double precision not null,
            longitude double precision not null,
            address text not null,
            pin_code varchar(10) not null
        );`,
	},
	{
		Index:       4,
		Description: "Create table: attendancemaster.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendancemaster (
            attendance_id serial primary key,
            employee_id varchar(10) not null,
            evstationid varchar(50),
            latitude double precision,
            longitude double precision,
            address text,
            punchin_time timestamp,
            punchout_time timestamp,
            flag int not null default 0,
            created_at timestamp default now()
        );`,
	},
	{
		Index:       5,
		Description: "One open punch window per employee.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS attendance_open_punch_uq
        ON attendancemaster (employee_id)
        WHERE punchout_time IS NULL;`,
	},
	{
		Index:       6,
		Description: "Create table: base_location.",
		Query: `
        CREATE TABLE IF NOT EXISTS base_location (
            id serial primary key,
            employee_id varchar(10) not null,
            evstationid varchar(50),
            latitude double precision not null,
            longitude double precision not null,
            created_date_time timestamp default now()
        );`,
	},
	{
		Index:       7,
		Description: "One base location per employee per day.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS base_location_daily_uq
        ON base_location (employee_id, (date(created_date_time)));`,
	},
	{
		Index:       8,
		Description: "Create table: vendor_services.",
		Query: `
        CREATE TABLE IF NOT EXISTS vendor_services (
            id serial primary key,
            vendor_id int not null,
            email varchar(255),
            service_name text not null,
            service_price text
        );`,
	},
	{
		Index:       9,
		Description: "Create table: vendor_services_flat.",
		Query: `
        CREATE TABLE IF NOT EXISTS vendor_services_flat (
            id serial primary key,
            vendor_id int not null,
            category text not null,
            subcategory text not null,
            price numeric not null,
            meta jsonb,
            updated_at timestamp default now()
        );`,
	},
	{
		Index:       10,
		Description: "Upsert target for the flat catalog.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS vendor_services_flat_uq
        ON vendor_services_flat (vendor_id, lower(category), lower(subcategory));`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
