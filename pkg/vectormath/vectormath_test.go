package vectormath

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		want    float64
		wantErr bool
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1, false},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0, false},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1, false},
		{"zero vector", []float64{0, 0}, []float64{1, 2}, 0, false},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CosineSimilarity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineDistance(t *testing.T) {
	d, err := CosineDistance([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("CosineDistance() error = %v", err)
	}
	if math.Abs(d) > 1e-9 {
		t.Errorf("distance between identical vectors = %v, want 0", d)
	}

	sim, _ := CosineSimilarity([]float64{1, 0, 1}, []float64{0, 1, 1})
	dist, _ := CosineDistance([]float64{1, 0, 1}, []float64{0, 1, 1})
	if math.Abs((1-dist)-sim) > 1e-9 {
		t.Errorf("1 - distance = %v, want similarity %v", 1-dist, sim)
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		want    float64
		wantErr bool
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 0, false},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 5, false},
		{"length mismatch", []float64{1}, []float64{1, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EuclideanDistance(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EuclideanDistance() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EuclideanDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}
