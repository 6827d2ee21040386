// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package algorithms implements the similarity algorithms behind the
// recommendation index.
//
// An algorithm is trained once on the tag corpus of a catalog and then
// answers item-to-item queries by corpus position.
//
// Thread Safety:
// Training acquires an exclusive lock while prediction uses a shared lock,
// so a trained algorithm may serve any number of goroutines.
package algorithms

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotTrained is returned by prediction before Train has succeeded.
	ErrNotTrained = errors.New("algorithm not trained")

	// ErrItemOutOfRange is returned for an item outside the trained corpus.
	ErrItemOutOfRange = errors.New("item out of range")
)

// Algorithm is an item-to-item similarity model over a tag corpus.
type Algorithm interface {
	// Name returns the algorithm identifier.
	Name() string

	// Train fits the model to corpus. Item i is corpus[i].
	Train(ctx context.Context, corpus []string) error

	// PredictSimilar returns up to limit items ordered by descending
	// similarity to item, excluding item itself.
	PredictSimilar(ctx context.Context, item, limit int) ([]int, error)

	// Score returns the similarity of items i and j.
	Score(i, j int) float64

	// IsTrained reports whether Train has completed successfully.
	IsTrained() bool

	// Version increments on every successful Train.
	Version() int

	// LastTrainedAt returns when Train last succeeded.
	LastTrainedAt() time.Time
}

// BaseAlgorithm provides the bookkeeping shared by all algorithms.
type BaseAlgorithm struct {
	name          string
	trained       bool
	version       int
	lastTrainedAt time.Time
	mu            sync.RWMutex
}

// NewBaseAlgorithm creates a base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the algorithm name.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// IsTrained returns whether the algorithm has been trained.
func (b *BaseAlgorithm) IsTrained() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.trained
}

// Version returns the training version.
func (b *BaseAlgorithm) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// LastTrainedAt returns the last training time.
func (b *BaseAlgorithm) LastTrainedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastTrainedAt
}

// markTrained records a successful training run. Caller must hold the
// write lock.
func (b *BaseAlgorithm) markTrained() {
	b.trained = true
	b.version++
	b.lastTrainedAt = time.Now()
}

func (b *BaseAlgorithm) acquireTrainLock() {
	b.mu.Lock()
}

func (b *BaseAlgorithm) releaseTrainLock() {
	b.mu.Unlock()
}

func (b *BaseAlgorithm) acquirePredictLock() {
	b.mu.RLock()
}

func (b *BaseAlgorithm) releasePredictLock() {
	b.mu.RUnlock()
}

// ContextCancelled reports whether ctx is done.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
