// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"sync"
	"sync/atomic"
	"time"
)

// snapshot is one published model. Readers always see the three fields
// together.
type snapshot struct {
	model      *Model
	generation int64
	loadedAt   time.Time
}

// Index publishes the current Model to concurrent readers. A Model is never
// mutated after BuildIndex returns; a rebuild swaps in a whole new one.
type Index struct {
	current atomic.Pointer[snapshot]
	swapMu  sync.Mutex
}

// NewIndex returns an Index serving m. m may be nil.
func NewIndex(m *Model) *Index {
	idx := &Index{}
	if m != nil {
		idx.Swap(m)
	}
	return idx
}

// Model returns the current model, or nil before the first build.
func (i *Index) Model() *Model {
	m, _ := i.Current()
	return m
}

// Current returns the served model together with its generation.
func (i *Index) Current() (*Model, int64) {
	s := i.current.Load()
	if s == nil {
		return nil, 0
	}
	return s.model, s.generation
}

// Snapshot returns the served model with its generation and publish time,
// all read from the same swap. m is nil before the first build.
func (i *Index) Snapshot() (m *Model, generation int64, loadedAt time.Time) {
	s := i.current.Load()
	if s == nil {
		return nil, 0, time.Time{}
	}
	return s.model, s.generation, s.loadedAt
}

// Ready reports whether a model is being served.
func (i *Index) Ready() bool {
	return i.current.Load() != nil
}

// Swap replaces the served model and returns the previous one.
func (i *Index) Swap(m *Model) *Model {
	i.swapMu.Lock()
	defer i.swapMu.Unlock()

	next := &snapshot{model: m, generation: 1, loadedAt: time.Now()}
	prev := i.current.Load()
	if prev != nil {
		next.generation = prev.generation + 1
	}
	i.current.Store(next)

	if prev == nil {
		return nil
	}
	return prev.model
}

// LoadedAt returns when the current model was published.
func (i *Index) LoadedAt() time.Time {
	_, _, loadedAt := i.Snapshot()
	return loadedAt
}

// Generation counts the models published so far.
func (i *Index) Generation() int64 {
	_, gen := i.Current()
	return gen
}
