package location

import (
	"net/http"
	"reflect"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/location"
)

type Controller struct {
	location Location
}

func NewController(location Location) *Controller {
	return &Controller{location}
}

func (uc Controller) Create(c *web.Context) error {
	var request location.CreateRequest
	if err := c.BindFunc(&request, "Latitude", "Longitude", "Address", "PinCode"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.location.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Location inserted successfully",
		"data":    response,
	}, http.StatusCreated)
}

func (uc Controller) GetByID(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.location.GetByID(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) GetAddresses(c *web.Context) error {
	list, count, err := uc.location.GetAddresses(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    list,
	}, http.StatusOK)
}
