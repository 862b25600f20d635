package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(nil)

	tests := []struct {
		name        string
		description string
		expected    DeviceClass
	}{
		{
			name:        "dell latitude is standard tier regardless of specs",
			description: `Dell, Latitude 5520, Intel Core i7, 2023, 14", 16GB RAM, 512GB SSD`,
			expected:    DeviceClassStandardTierA,
		},
		{
			name:        "dell xps with premium memory is enhanced tier",
			description: `Dell, XPS 16 9640, Intel Core Ultra 9-185H, 2024, 16", 32GB RAM, 1TB SSD`,
			expected:    DeviceClassEnhancedTierA,
		},
		{
			name:        "dell xps with high-end cpu but low memory is enhanced tier",
			description: "Dell, XPS 13 9340, Intel Core i9-13900H, 16GB RAM, 512GB SSD",
			expected:    DeviceClassEnhancedTierA,
		},
		{
			name:        "dell alienware with premium memory is enhanced tier",
			description: "Dell, Alienware m18, AMD Ryzen 9 7945HX, 64GB RAM, 2TB SSD",
			expected:    DeviceClassEnhancedTierA,
		},
		{
			name:        "dell xps without memory or high-end cpu is standard tier",
			description: "Dell, XPS 13, Intel Core i5, 8GB RAM, 256GB SSD",
			expected:    DeviceClassStandardTierA,
		},
		{
			name:        "dell vostro is standard tier",
			description: "Dell, Vostro 3520, Intel Core i5, 8GB RAM",
			expected:    DeviceClassStandardTierA,
		},
		{
			name:        "dell optiplex desktop is standard tier",
			description: "Dell, OptiPlex 7010, Intel Core i7, 32GB RAM",
			expected:    DeviceClassStandardTierA,
		},
		{
			name:        "dell inspiron is standard tier",
			description: "Dell, Inspiron 15, 16GB RAM",
			expected:    DeviceClassStandardTierA,
		},
		{
			name:        "macbook pro with max chip and premium memory is enhanced tier",
			description: `Apple, MacBook Pro 16", Apple M3 Max, 2023, 36GB RAM, 1TB SSD`,
			expected:    DeviceClassEnhancedTierB,
		},
		{
			name:        "mac studio with ultra chip and premium memory is enhanced tier",
			description: "Apple, Mac Studio, Apple M2 Ultra, 64GB RAM, 1TB SSD",
			expected:    DeviceClassEnhancedTierB,
		},
		{
			name:        "macbook air with base chip is standard tier",
			description: `Apple, MacBook Air 13", Apple M2, 2022, 16GB RAM, 256GB SSD`,
			expected:    DeviceClassStandardTierB,
		},
		{
			name:        "macbook pro with max chip but low memory is standard tier",
			description: `Apple, MacBook Pro 14", Apple M3 Max, 18GB RAM, 512GB SSD`,
			expected:    DeviceClassStandardTierB,
		},
		{
			name:        "imac is standard tier",
			description: `Apple, iMac 24", Apple M1, 8GB RAM`,
			expected:    DeviceClassStandardTierB,
		},
		{
			name:        "unrecognized manufacturer is other",
			description: "HP, EliteBook 840 G9, Intel Core i7, 32GB RAM",
			expected:    DeviceClassOther,
		},
		{
			name:        "lenovo is other",
			description: "Lenovo, ThinkPad X1 Carbon, Intel Core i9-1365U, 32GB RAM",
			expected:    DeviceClassOther,
		},
		{
			name:        "empty description is other",
			description: "",
			expected:    DeviceClassOther,
		},
		{
			name:        "monitor without family signature is other",
			description: `LG, UltraFine 27", 4K monitor`,
			expected:    DeviceClassOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.description))
		})
	}
}

func TestClassifier_ExclusionPrecedence(t *testing.T) {
	classifier := NewClassifier(nil)

	// An exclusion token ends classification even when premium tokens and
	// premium-grade specs appear elsewhere in the string, and regardless of
	// token order.
	tests := []string{
		"Dell, Latitude 7455 XPS edition, Intel Core i9-13900HX, 64GB RAM",
		"Dell, XPS-style Latitude 9450, 64GB RAM",
		"Dell, Alienware dock for OptiPlex 7010, 64GB RAM",
	}

	for _, description := range tests {
		assert.Equal(t, DeviceClassStandardTierA, classifier.Classify(description), description)
	}
}

func TestClassifier_MacNeverGetsWindowsLabel(t *testing.T) {
	classifier := NewClassifier(nil)

	// The Mac rule is ordered first: a description matching both family
	// signatures resolves to a tier B label.
	got := classifier.Classify("Apple, MacBook Pro 16, Apple M3 Max, 48GB RAM, with Dell dock")
	assert.Contains(t, []DeviceClass{DeviceClassEnhancedTierB, DeviceClassStandardTierB}, got)
	assert.Equal(t, DeviceClassEnhancedTierB, got)
}

func TestClassifier_Deterministic(t *testing.T) {
	classifier := NewClassifier(nil)
	description := "Dell, XPS 15, Intel Core Ultra 9, 32GB RAM"

	first := classifier.Classify(description)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify(description))
	}
}

func TestClassifier_Total(t *testing.T) {
	classifier := NewClassifier(nil)

	// Any input maps to exactly one of the five labels.
	inputs := []string{
		"", " ", ",,,,", "dell", "apple", "DELL APPLE",
		"ñ-ü unicode garbage 🚀", "99999GB RAM",
	}
	for _, input := range inputs {
		got := classifier.Classify(input)
		assert.True(t, got.IsValid(), "input %q yielded %q", input, got)
	}
}

func TestClassifier_ThresholdOverrides(t *testing.T) {
	// Raising the Windows threshold above 32GB demotes the canonical XPS.
	strict := NewClassifier(DefaultRuleSet().WithMemoryThresholds(64, 0))
	assert.Equal(t, DeviceClassStandardTierA,
		strict.Classify("Dell, XPS 16, Intel Core i5, 32GB RAM"))
	assert.Equal(t, DeviceClassEnhancedTierA,
		strict.Classify("Dell, XPS 16, Intel Core i5, 64GB RAM"))

	// Lowering the Mac threshold promotes a low-memory Max chip.
	lenient := NewClassifier(DefaultRuleSet().WithMemoryThresholds(0, 16))
	assert.Equal(t, DeviceClassEnhancedTierB,
		lenient.Classify("Apple, MacBook Pro 14, Apple M3 Max, 18GB RAM"))

	// Zero overrides keep the defaults.
	unchanged := DefaultRuleSet().WithMemoryThresholds(0, 0)
	assert.Equal(t, defaultPremiumMemoryGB, unchanged.PremiumMemoryGB)
	assert.Equal(t, defaultMacPremiumMemoryGB, unchanged.MacPremiumMemoryGB)
}
