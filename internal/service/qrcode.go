package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type StationLabel struct {
	StationID string
	Name      string
}

// StationQrCode renders the QR image scanned at the charging point; the
// payload is just the station id.
func StationQrCode(stationID string) ([]byte, error) {
	return qrcode.Encode(stationID, qrcode.Medium, 256)
}

// StationQrCodePDF lays the station QR codes out on A4 pages, two per
// row, each captioned with the station id and name.
func StationQrCodePDF(labels []StationLabel) ([]byte, error) {
	const (
		cellSize = 60.0
		marginX  = 25.0
		marginY  = 20.0
		stepX    = 90.0
		stepY    = 80.0
		perRow   = 2
		perPage  = 6
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 11)

	for i, label := range labels {
		if i%perPage == 0 {
			pdf.AddPage()
		}

		png, err := StationQrCode(label.StationID)
		if err != nil {
			return nil, fmt.Errorf("encoding qr for station %s: %w", label.StationID, err)
		}

		imageName := "qr-" + label.StationID
		pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))

		slot := i % perPage
		x := marginX + float64(slot%perRow)*stepX
		y := marginY + float64(slot/perRow)*stepY

		pdf.ImageOptions(imageName, x, y, cellSize, cellSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.Text(x, y+cellSize+6, fmt.Sprintf("%s  %s", label.StationID, label.Name))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing qr pdf: %w", err)
	}

	return buf.Bytes(), nil
}
