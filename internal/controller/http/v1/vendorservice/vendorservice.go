package vendorservice

import (
	"net/http"
	"reflect"
	"strconv"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/vendorservice"

	"github.com/pkg/errors"
)

type Controller struct {
	vendorService VendorService
}

func NewController(vendorService VendorService) *Controller {
	return &Controller{vendorService}
}

func (uc Controller) AddServices(c *web.Context) error {
	var request vendorservice.AddServicesRequest
	if err := c.BindFunc(&request, "VendorID", "Email", "Services"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.vendorService.AddServices(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Services added successfully",
	}, http.StatusCreated)
}

func (uc Controller) AddOrUpdateFlat(c *web.Context) error {
	var request vendorservice.AddFlatServicesRequest
	if err := c.BindFunc(&request, "VendorID", "Services"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.vendorService.AddOrUpdateFlat(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Services saved/updated successfully",
	}, http.StatusCreated)
}

func (uc Controller) GetByEmailOrID(c *web.Context) error {
	var request vendorservice.GetServicesRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.vendorService.GetByEmailOrID(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"count":   len(response.Services),
		"data":    response,
	}, http.StatusOK)
}

// GetGrouped accepts vendor_id as a query parameter or path segment.
func (uc Controller) GetGrouped(c *web.Context) error {
	var vendorID int

	v, _ := c.GetQueryFunc(reflect.Int, "vendor_id").(*int)
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	if v != nil {
		vendorID = *v
	} else if raw := c.Param("vendor_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("vendor_id must be numeric"), http.StatusBadRequest))
		}
		vendorID = parsed
	} else {
		return c.RespondError(web.NewRequestError(
			errors.New("vendor_id is required (query or path param)"),
			http.StatusBadRequest))
	}

	response, err := uc.vendorService.GetGrouped(c.Ctx, vendorID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) DeleteLegacy(c *web.Context) error {
	var request vendorservice.DeleteServiceRequest
	if err := c.BindFunc(&request, "Email", "ServiceName"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.vendorService.DeleteLegacy(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Service '" + *request.ServiceName + "' deleted successfully",
	}, http.StatusOK)
}

func (uc Controller) DeleteFlat(c *web.Context) error {
	var request vendorservice.DeleteFlatRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	deleted, err := uc.vendorService.DeleteFlat(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Service deleted",
		"data":    deleted,
	}, http.StatusOK)
}
