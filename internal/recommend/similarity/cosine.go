// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package similarity computes the dense all-pairs cosine similarity matrix
// of a vectorized corpus.
package similarity

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/animerec/internal/recommend/vectorize"
)

// Matrix is a square, symmetric similarity matrix stored row-major.
type Matrix struct {
	n     int
	cells []float64
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int { return m.n }

// At returns sim(i, j).
func (m *Matrix) At(i, j int) float64 { return m.cells[i*m.n+j] }

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 { return m.cells[i*m.n : (i+1)*m.n] }

// Cosine returns dot(a, b) / (|a| * |b|), or 0 when either vector is zero.
func Cosine(a, b vectorize.Vector) float64 {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return float64(dot(a, b)) / (na * nb)
}

func dot(a, b vectorize.Vector) int {
	var sum, i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Col == b[j].Col:
			sum += a[i].Count * b[j].Count
			i++
			j++
		case a[i].Col < b[j].Col:
			i++
		default:
			j++
		}
	}
	return sum
}

func norm(v vectorize.Vector) float64 {
	var sq int
	for _, c := range v {
		sq += c.Count * c.Count
	}
	return math.Sqrt(float64(sq))
}

// Compute builds the similarity matrix of m. Rows are filled concurrently;
// each worker writes the upper triangle of its rows and mirrors it, so the
// result is symmetric and independent of scheduling.
func Compute(ctx context.Context, m vectorize.Matrix) (*Matrix, error) {
	n := len(m.Rows)
	out := &Matrix{n: n, cells: make([]float64, n*n)}
	if n == 0 {
		return out, nil
	}

	norms := make([]float64, n)
	for i, row := range m.Rows {
		norms[i] = norm(row)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a := m.Rows[i]
			for j := i; j < n; j++ {
				var sim float64
				if norms[i] != 0 && norms[j] != 0 {
					sim = float64(dot(a, m.Rows[j])) / (norms[i] * norms[j])
				}
				out.cells[i*n+j] = sim
				out.cells[j*n+i] = sim
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity computation cancelled: %w", err)
	}
	return out, nil
}
