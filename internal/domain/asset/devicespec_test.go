package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSpec(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    DeviceSpec
	}{
		{
			name:        "full laptop description",
			description: `Dell, XPS 16 9640, Intel Core Ultra 9-185H, 2024, 16", 32GB RAM, 1TB SSD`,
			expected: DeviceSpec{
				Manufacturer: "Dell",
				ModelFamily:  "XPS 16 9640",
				MemoryRaw:    "32GB",
				MemoryGB:     32,
				Processor:    "Intel Core Ultra 9-185H",
				IsHighTier:   true,
			},
		},
		{
			name:        "memory before storage token",
			description: "Dell, Latitude 5520, 16GB RAM, 512GB SSD",
			expected: DeviceSpec{
				Manufacturer: "Dell",
				ModelFamily:  "Latitude 5520",
				MemoryRaw:    "16GB",
				MemoryGB:     16,
				IsHighTier:   false,
			},
		},
		{
			name:        "storage token before memory token",
			description: "Lenovo, ThinkPad, 512GB SSD, 16GB RAM",
			expected: DeviceSpec{
				Manufacturer: "Lenovo",
				ModelFamily:  "ThinkPad",
				MemoryRaw:    "16GB",
				MemoryGB:     16,
				IsHighTier:   false,
			},
		},
		{
			name:        "bare memory token without RAM suffix",
			description: "Apple, MacBook Air, Apple M2, 16GB",
			expected: DeviceSpec{
				Manufacturer: "Apple",
				ModelFamily:  "MacBook Air",
				MemoryRaw:    "16GB",
				MemoryGB:     16,
				Processor:    "Apple M2",
				IsHighTier:   false,
			},
		},
		{
			name:        "only storage tokens yields no memory",
			description: "SanDisk, Portable Drive, 512GB SSD",
			expected: DeviceSpec{
				Manufacturer: "SanDisk",
				ModelFamily:  "Portable Drive",
				IsHighTier:   false,
			},
		},
		{
			name:        "empty description yields empty spec",
			description: "",
			expected:    DeviceSpec{},
		},
		{
			name:        "single segment only sets manufacturer",
			description: "Dell",
			expected: DeviceSpec{
				Manufacturer: "Dell",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSpec(tt.description))
		})
	}
}

func TestExtractSpec_HighTierHints(t *testing.T) {
	tests := []struct {
		description string
		highTier    bool
	}{
		{"Dell, XPS 13, 8GB RAM", true},                       // premium line token
		{"Dell, Alienware m16, 16GB RAM", true},               // premium line token
		{"Apple, MacBook Pro 14, 16GB RAM", true},             // premium line token
		{"Lenovo, ThinkPad, 64GB RAM", true},                  // memory alone
		{"Lenovo, ThinkPad, Intel Core i9-13900H, 8GB", true}, // cpu alone
		{"Apple, MacBook Air, Apple M2, 8GB RAM", false},
		{"Dell, Latitude 5520, Intel Core i5, 16GB RAM", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.highTier, ExtractSpec(tt.description).IsHighTier, tt.description)
	}
}

func TestExtractSpec_Deterministic(t *testing.T) {
	description := `Apple, MacBook Pro 16", Apple M3 Max, 36GB RAM, 1TB SSD`
	first := ExtractSpec(description)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSpec(description))
	}
}
