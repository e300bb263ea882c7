package reporter

import "testing"

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		size     int64
		expected string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{5767168, "5.5 MB"},
		{1073741824, "1.0 GB"},
		{3221225472, "3.0 GB"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			if got := FormatSize(tc.size); got != tc.expected {
				t.Errorf("FormatSize(%d): expected %q, got %q", tc.size, tc.expected, got)
			}
		})
	}
}
