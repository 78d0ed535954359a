package router

import (
	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/middleware"
	"evfleet/backend/internal/pkg/repository/postgresql"
	"evfleet/backend/internal/repository/postgres/attendance"
	"evfleet/backend/internal/repository/postgres/baselocation"
	"evfleet/backend/internal/repository/postgres/employee"
	"evfleet/backend/internal/repository/postgres/location"
	"evfleet/backend/internal/repository/postgres/station"
	"evfleet/backend/internal/repository/postgres/vendorservice"

	"github.com/redis/go-redis/v9"

	attendance_controller "evfleet/backend/internal/controller/http/v1/attendance"
	auth_controller "evfleet/backend/internal/controller/http/v1/auth"
	baselocation_controller "evfleet/backend/internal/controller/http/v1/baselocation"
	location_controller "evfleet/backend/internal/controller/http/v1/location"
	station_controller "evfleet/backend/internal/controller/http/v1/station"
	vendorservice_controller "evfleet/backend/internal/controller/http/v1/vendorservice"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	stationPostgres := station.NewRepository(r.postgresDB, r.redisDB)
	employeePostgres := employee.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB, r.redisDB)
	baseLocationPostgres := baselocation.NewRepository(r.postgresDB, r.redisDB)
	locationPostgres := location.NewRepository(r.postgresDB)
	vendorServicePostgres := vendorservice.NewRepository(r.postgresDB)

	// controller
	stationController := station_controller.NewController(stationPostgres)
	authController := auth_controller.NewController(employeePostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	baseLocationController := baselocation_controller.NewController(baseLocationPostgres)
	locationController := location_controller.NewController(locationPostgres)
	vendorServiceController := vendorservice_controller.NewController(vendorServicePostgres)

	// #station
	r.Post("/create/ev-station", stationController.Create)
	r.Get("/get/ev-station", stationController.GetAll)
	r.Get("/getEvStationById/:id", stationController.GetByID)
	r.Put("/updateEvStation/:id", stationController.Update)
	r.Delete("/deleteEvStation/:id", stationController.Delete)
	r.Get("/station/qrcode", stationController.GetQrCode)
	r.Get("/station/qrcodelist", stationController.GetQrCodeList)

	// #auth
	r.Post("/signup", authController.SignUp)
	r.Post("/login", authController.SignIn)

	// #attendance
	r.Post("/attendance", attendanceController.Create)
	r.Get("/attendance", attendanceController.GetAll)
	r.Get("/attendance/export", attendanceController.Export)
	r.Get("/attendance/:employee_id", attendanceController.GetByEmployeeID)
	r.Get("/getDailyDistanceReport", attendanceController.GetDailyDistanceReport)

	// #base location
	r.Post("/createBaseLocation", baseLocationController.Create)

	// #location
	r.Post("/location", locationController.Create)
	r.Get("/location/:id", locationController.GetByID)
	r.Get("/getAddress", locationController.GetAddresses)

	// #vendor services
	r.Post("/addVendorServices", vendorServiceController.AddServices)
	r.Post("/addServicesCategry", vendorServiceController.AddOrUpdateFlat)
	r.Post("/getVendorServicesByEmail", vendorServiceController.GetByEmailOrID)
	r.Get("/getServiceCategrys", vendorServiceController.GetGrouped)
	r.Get("/getServiceCategrys/:vendor_id", vendorServiceController.GetGrouped)
	r.Post("/deleteVendorServices", vendorServiceController.DeleteLegacy)
	r.Post("/deleteVendorServiceNew", vendorServiceController.DeleteFlat)

	return r.Run(r.port)
}
