// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

var (
	// ErrCatalogNotFound is returned when the catalog source does not exist.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrCatalogMalformed is returned when the catalog cannot be parsed or
	// lacks a required column.
	ErrCatalogMalformed = errors.New("catalog malformed")
)

// RequiredColumns must be present in the CSV header.
var RequiredColumns = []string{"anime_id", "title"}

// Source provides the raw catalog bytes.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Open returns a reader over the CSV content.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// LoadResult is the outcome of loading a catalog.
type LoadResult struct {
	Source  string
	Rows    int
	Skipped int
	Entries []Entry
}

// Load reads and parses the catalog provided by src.
func Load(ctx context.Context, src Source) (*LoadResult, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	res, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	res.Source = src.Name()
	return res, nil
}

// Parse decodes CSV content into entries, keeping row order.
func Parse(r io.Reader) (*LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if err := checkHeader(data); err != nil {
		return nil, err
	}

	rows := make([]*Row, 0)
	if err := gocsv.UnmarshalCSV(newCSVReader(data), &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
	}

	res := &LoadResult{Rows: len(rows), Entries: make([]Entry, 0, len(rows))}
	for _, row := range rows {
		e, ok := row.Entry()
		if !ok {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

func newCSVReader(data []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	return r
}

func checkHeader(data []byte) error {
	header, err := newCSVReader(data).Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty file", ErrCatalogMalformed)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrCatalogMalformed, strings.Join(missing, ", "))
	}
	return nil
}
