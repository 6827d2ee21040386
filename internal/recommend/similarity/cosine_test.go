// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package similarity

import (
	"context"
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/tomtom215/animerec/internal/recommend/vectorize"
)

const tolerance = 1e-9

func vec(counts ...int) vectorize.Vector {
	v := vectorize.Vector{}
	for col, n := range counts {
		if n != 0 {
			v = append(v, vectorize.Cell{Col: col, Count: n})
		}
	}
	return v
}

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b vectorize.Vector
		want float64
	}{
		{"identical", vec(1, 2), vec(1, 2), 1},
		{"scaled", vec(1, 2), vec(2, 4), 1},
		{"orthogonal", vec(1, 0), vec(0, 3), 0},
		{"partial", vec(1, 1), vec(1, 0), 1 / math.Sqrt2},
		{"zero vector", vec(0, 0), vec(1, 1), 0},
		{"both zero", vec(), vec(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > tolerance {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	m := vectorize.Matrix{Width: 3, Rows: []vectorize.Vector{
		vec(1, 1, 0),
		vec(1, 0, 0),
		vec(0, 0, 1),
		vec(),
	}}
	sim, err := Compute(context.Background(), m)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if sim.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", sim.Size())
	}

	for i := 0; i < 3; i++ {
		if math.Abs(sim.At(i, i)-1) > tolerance {
			t.Errorf("At(%d,%d) = %v, want 1", i, i, sim.At(i, i))
		}
	}
	if sim.At(3, 3) != 0 {
		t.Errorf("zero row self-similarity = %v, want 0", sim.At(3, 3))
	}
	if math.Abs(sim.At(0, 1)-1/math.Sqrt2) > tolerance {
		t.Errorf("At(0,1) = %v, want %v", sim.At(0, 1), 1/math.Sqrt2)
	}
	if sim.At(0, 2) != 0 {
		t.Errorf("At(0,2) = %v, want 0", sim.At(0, 2))
	}
	if len(sim.Row(1)) != 4 {
		t.Errorf("len(Row(1)) = %d, want 4", len(sim.Row(1)))
	}
}

func TestCompute_Empty(t *testing.T) {
	t.Parallel()

	sim, err := Compute(context.Background(), vectorize.Matrix{})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if sim.Size() != 0 {
		t.Errorf("Size() = %d, want 0", sim.Size())
	}
}

func TestCompute_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := vectorize.Matrix{Width: 1, Rows: []vectorize.Vector{vec(1), vec(1)}}
	_, err := Compute(ctx, m)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Compute() error = %v, want context.Canceled", err)
	}
}

func TestCompute_SymmetricProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 12).Draw(t, "rows")
		width := rapid.IntRange(1, 6).Draw(t, "width")
		m := vectorize.Matrix{Width: width, Rows: make([]vectorize.Vector, rows)}
		for i := range m.Rows {
			counts := rapid.SliceOfN(rapid.IntRange(0, 4), width, width).Draw(t, "counts")
			m.Rows[i] = vec(counts...)
		}

		sim, err := Compute(context.Background(), m)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < rows; j++ {
				if math.Abs(sim.At(i, j)-sim.At(j, i)) > tolerance {
					t.Fatalf("At(%d,%d)=%v != At(%d,%d)=%v", i, j, sim.At(i, j), j, i, sim.At(j, i))
				}
				if s := sim.At(i, j); s < -tolerance || s > 1+tolerance {
					t.Fatalf("At(%d,%d) = %v out of [0,1]", i, j, s)
				}
			}
		}
	})
}
