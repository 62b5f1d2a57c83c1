package scale

import (
	"math"
	"testing"

	"github.com/bouwdoc/viewtype/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtractExplicitScale(t *testing.T) {
	tests := []struct {
		name      string
		texts     []string
		wantRatio string
		wantValue float64
	}{
		{
			name:      "schaal notation resolves through bare 1:N",
			texts:     []string{"schaal 1:100"},
			wantRatio: "1:100",
			wantValue: 0.01,
		},
		{
			name:      "bare notation",
			texts:     []string{"1:50"},
			wantRatio: "1:50",
			wantValue: 0.02,
		},
		{
			name:      "schaal with non-unit numerator",
			texts:     []string{"Schaal 2:50"},
			wantRatio: "2:50",
			wantValue: 0.04,
		},
		{
			name:      "scale keyword case-insensitive",
			texts:     []string{"SCALE 2:100"},
			wantRatio: "2:100",
			wantValue: 0.02,
		},
		{
			name:      "notation among unrelated fragments",
			texts:     []string{"plattegrond", "1:200", "begane grond"},
			wantRatio: "1:200",
			wantValue: 0.005,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.texts)
			if got.Source != models.ScaleSourceExplicit {
				t.Fatalf("Extract() source = %q, want %q", got.Source, models.ScaleSourceExplicit)
			}
			if got.ScaleRatio != tt.wantRatio {
				t.Errorf("Extract() ratio = %q, want %q", got.ScaleRatio, tt.wantRatio)
			}
			if got.ScaleValue == nil || !almostEqual(*got.ScaleValue, tt.wantValue) {
				t.Errorf("Extract() value = %v, want %v", got.ScaleValue, tt.wantValue)
			}
			if got.DetectedDimension != nil {
				t.Errorf("Extract() detected dimension = %v, want nil", *got.DetectedDimension)
			}
		})
	}
}

func TestExtractDimensionInference(t *testing.T) {
	tests := []struct {
		name          string
		texts         []string
		wantRatio     string
		wantValue     float64
		wantDimension float64
	}{
		{
			name:          "millimetres",
			texts:         []string{"3600 mm"},
			wantRatio:     "1:1",
			wantValue:     1.0,
			wantDimension: 3.6,
		},
		{
			name:          "centimetres",
			texts:         []string{"360 cm"},
			wantRatio:     "1:1",
			wantValue:     1.0,
			wantDimension: 3.6,
		},
		{
			name:          "metres with comma decimal separator",
			texts:         []string{"1,8 m"},
			wantRatio:     "1:2",
			wantValue:     0.5,
			wantDimension: 1.8,
		},
		{
			name:          "metres with period decimal separator",
			texts:         []string{"breedte 1.8 m"},
			wantRatio:     "1:2",
			wantValue:     0.5,
			wantDimension: 1.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.texts)
			if got.Source != models.ScaleSourceDimension {
				t.Fatalf("Extract() source = %q, want %q", got.Source, models.ScaleSourceDimension)
			}
			if got.ScaleRatio != tt.wantRatio {
				t.Errorf("Extract() ratio = %q, want %q", got.ScaleRatio, tt.wantRatio)
			}
			if got.ScaleValue == nil || !almostEqual(*got.ScaleValue, tt.wantValue) {
				t.Errorf("Extract() value = %v, want %v", got.ScaleValue, tt.wantValue)
			}
			if got.DetectedDimension == nil || !almostEqual(*got.DetectedDimension, tt.wantDimension) {
				t.Errorf("Extract() detected dimension = %v, want %v", got.DetectedDimension, tt.wantDimension)
			}
		})
	}
}

func TestExtractNotDetected(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{name: "no texts", texts: nil},
		{name: "no scale information", texts: []string{"Doorsnede A-A", "detail kozijn"}},
		{name: "zero dimension falls through", texts: []string{"0 mm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.texts)
			if got.Source != models.ScaleSourceNone {
				t.Fatalf("Extract() source = %q, want %q", got.Source, models.ScaleSourceNone)
			}
			if got.ScaleRatio != "unknown" {
				t.Errorf("Extract() ratio = %q, want %q", got.ScaleRatio, "unknown")
			}
			if got.ScaleValue != nil {
				t.Errorf("Extract() value = %v, want nil", *got.ScaleValue)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "3.6", want: 3.6},
		{in: "3,6", want: 3.6},
		{in: "3600", want: 3600},
		{in: "x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseDecimal(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDecimal(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !almostEqual(got, tt.want) {
			t.Errorf("parseDecimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
