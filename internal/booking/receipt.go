package booking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderReceipt returns a one-page PDF confirmation slip for b and a
// suggested file name.
func RenderReceipt(b *Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Locker Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "LOCKER BOOKING")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		"Booking ID : " + orDash(b.ID),
		"Name       : " + orDash(b.Name),
		"Mobile     : " + orDash(b.Mobile),
		"City       : " + orDash(b.City),
		"Station    : " + orDash(b.Station) + " (" + orDash(b.StationType) + ")",
		"Date       : " + orDash(b.Date) + " " + b.Day,
		fmt.Sprintf("Days       : %d", b.Days),
		fmt.Sprintf("Price      : Rs. %d", b.Price),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, "Slot: "+b.Slot.String())
	pdf.Ln(9)
	pdf.Cell(0, 9, "PIN : "+b.PIN.String())
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	if b.HasSlot() {
		pdf.MultiCell(0, 5, "Keep this PIN private. It opens your locker for the whole booking period.", "", "", false)
	} else {
		pdf.MultiCell(0, 5, "No locker was free at this station when the booking was made.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render receipt: %w", err)
	}

	name := "locker-receipt.pdf"
	if b.ID != "" {
		name = "locker-receipt-" + b.ID + ".pdf"
	}
	return buf.Bytes(), name, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
