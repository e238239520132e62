package internal

import "testing"

func TestBackendURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare host and port",
			input:    "dss.example.com:11200",
			expected: "http://dss.example.com:11200/public/api",
		},
		{
			name:     "https preserved",
			input:    "https://dss.example.com",
			expected: "https://dss.example.com/public/api",
		},
		{
			name:     "trailing slash stripped",
			input:    "https://dss.example.com/",
			expected: "https://dss.example.com/public/api",
		},
		{
			name:     "existing api suffix not duplicated",
			input:    "http://dss.example.com/public/api",
			expected: "http://dss.example.com/public/api",
		},
		{
			name:     "unsupported scheme coerced to http",
			input:    "ftp://dss.example.com",
			expected: "http://dss.example.com/public/api",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := BackendURL(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parsed.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, parsed.String())
			}
		})
	}
}
