package station

import (
	"net/http"
	"reflect"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/station"
	"evfleet/backend/internal/service"

	"github.com/pkg/errors"
)

type Controller struct {
	station Station
}

func NewController(station Station) *Controller {
	return &Controller{station}
}

func (uc Controller) Create(c *web.Context) error {
	var request station.CreateRequest
	if err := c.BindFunc(&request, "StationID", "Name", "Location", "Latitude", "Longitude", "Address"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.station.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "EV Station created successfully",
		"data":    response,
	}, http.StatusCreated)
}

func (uc Controller) GetAll(c *web.Context) error {
	list, count, err := uc.station.GetAll(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    list,
	}, http.StatusOK)
}

func (uc Controller) GetByID(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.station.GetByID(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) Update(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request station.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.StationID = id

	response, err := uc.station.Update(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "EV Station updated successfully",
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	_, err := uc.station.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "EV Station deleted successfully",
	}, http.StatusOK)
}

// GetQrCode streams a PNG QR code carrying the station id, for printing
// at the charging point.
func (uc Controller) GetQrCode(c *web.Context) error {
	stationID := c.Query("station_id")
	if stationID == "" {
		return c.RespondError(web.NewRequestError(errors.New("station_id parameter is required"), http.StatusBadRequest))
	}

	detail, err := uc.station.GetByID(c.Ctx, stationID)
	if err != nil {
		return c.RespondError(err)
	}

	png, err := service.StationQrCode(detail.StationID)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if _, err = c.Writer.Write(png); err != nil {
		return c.RespondError(err)
	}

	return nil
}

// GetQrCodeList renders one printable PDF sheet with a QR code per
// station.
func (uc Controller) GetQrCodeList(c *web.Context) error {
	list, _, err := uc.station.GetAll(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	labels := make([]service.StationLabel, 0, len(list))
	for _, detail := range list {
		name := ""
		if detail.Name != nil {
			name = *detail.Name
		}
		labels = append(labels, service.StationLabel{StationID: detail.StationID, Name: name})
	}

	pdf, err := service.StationQrCodePDF(labels)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="qr_stations.pdf"`)
	c.Status(http.StatusOK)
	if _, err = c.Writer.Write(pdf); err != nil {
		return c.RespondError(err)
	}

	return nil
}
