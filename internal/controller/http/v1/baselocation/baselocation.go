package baselocation

import (
	"net/http"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/baselocation"
)

type Controller struct {
	baseLocation BaseLocation
}

func NewController(baseLocation BaseLocation) *Controller {
	return &Controller{baseLocation}
}

func (uc Controller) Create(c *web.Context) error {
	var request baselocation.CreateRequest
	if err := c.BindFunc(&request, "EmployeeID", "StationID", "Latitude", "Longitude"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.baseLocation.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Base location created successfully",
		"data":    response,
	}, http.StatusCreated)
}
