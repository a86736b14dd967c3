package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		includeTime bool
		want        string
	}{
		{"iso with seconds", "2024-03-05 14:30:00", true, "03/05/2024 02:30 PM"},
		{"iso without seconds", "2024-03-05 09:05", true, "03/05/2024 09:05 AM"},
		{"already display format", "03/05/2024 02:30 PM", true, "03/05/2024 02:30 PM"},
		{"slash delimited", "2024/03/05 14:30:00", true, "03/05/2024 02:30 PM"},
		{"date only", "2024/03/05", false, "03/05/2024"},
		{"date only with time requested", "2024/03/05", true, "03/05/2024 12:00 AM"},
		{"time dropped", "2024-03-05 14:30:00", false, "03/05/2024"},
		{"unparseable passes through", "garbage", true, "garbage"},
		{"empty renders N/A", "", true, "N/A"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDateTime(tc.raw, tc.includeTime))
		})
	}
}
