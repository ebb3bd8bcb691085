package booking

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	tests := []struct {
		name string
		b    *Booking
	}{
		{"assigned slot", sampleBooking("Asha", 6)},
		{"no slot", &Booking{ID: "abc", Name: "Ravi", Station: "Alambagh", Days: 1, Price: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf, filename, err := RenderReceipt(tt.b)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
			assert.True(t, strings.HasSuffix(filename, tt.b.ID+".pdf"))
		})
	}
}
