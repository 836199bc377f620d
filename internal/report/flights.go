// Package report renders cached dashboard lists as printable documents.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/internal/view"
	"github.com/nikmy/flighthub/pkg/errors"
)

type column struct {
	title string
	width float64
	value func(models.Flight) string
}

var flightColumns = []column{
	{"Flight", 24, func(f models.Flight) string { return models.Text(f.Code()).Or(view.Placeholder) }},
	{"Airline", 52, func(f models.Flight) string { return f.Airline.Name.Or("Unknown") }},
	{"From", 18, func(f models.Flight) string { return f.Departure.Iata.Or(view.Placeholder) }},
	{"To", 18, func(f models.Flight) string { return f.Arrival.Iata.Or(view.Placeholder) }},
	{"Date", 28, func(f models.Flight) string { return f.FlightDate.Or(view.Placeholder) }},
	{"Dep", 18, func(f models.Flight) string { return view.Clock(f.Departure.Scheduled) }},
	{"Arr", 18, func(f models.Flight) string { return view.Clock(f.Arrival.Scheduled) }},
	{"Status", 28, func(f models.Flight) string { return f.FlightStatus.Or("unknown") }},
	{"Delay", 20, func(f models.Flight) string {
		if !f.Delayed() {
			return ""
		}
		return fmt.Sprintf("%g min", f.DelayMinutes())
	}},
}

const (
	rowHeight    = 7
	bottomMargin = 15
)

// Flights writes flights as a landscape table, one row per flight, in the
// order given.
func Flights(w io.Writer, title string, flights []models.Flight, generated time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, bottomMargin)

	pdf.SetTitle(title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 8, fmt.Sprintf("Generated %s, %d flights", generated.UTC().Format(time.RFC1123), len(flights)))
	pdf.Ln(10)

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 236, 245)
		for _, c := range flightColumns {
			pdf.CellFormat(c.width, rowHeight, c.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	header()

	_, pageHeight := pdf.GetPageSize()

	for _, f := range flights {
		if pdf.GetY()+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			header()
		}

		for _, c := range flightColumns {
			pdf.CellFormat(c.width, rowHeight, tr(c.value(f)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(flights) == 0 {
		pdf.Ln(4)
		pdf.Cell(40, 8, "No flights found. Try different search criteria.")
	}

	err := pdf.Output(w)
	if err != nil {
		return errors.WrapFail(err, "render flights pdf")
	}
	return nil
}
