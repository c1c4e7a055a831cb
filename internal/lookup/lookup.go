// Package lookup implements the county and city store behind bigsky.
//
// Two flat files feed it: a read-only CSV of Montana counties keyed by
// license-plate prefix, and an append-only text log of user-added
// city-to-prefix mappings. Both load fully into memory; queries are map
// lookups over a few dozen records.
package lookup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrEmptyName is returned by AddCity when the name is blank after
// normalization.
var ErrEmptyName = errors.New("city name cannot be empty")

// County is one reference record: a license-plate prefix with the county
// registered under it and that county's seat. Loaded once at startup and
// never written back.
type County struct {
	Prefix int
	Name   string
	Seat   string
}

// CityMatch is the result of a city query.
type CityMatch struct {
	City   string  // normalized city name
	Prefix int     // plate prefix the city maps to
	County *County // resolved county, nil when no county has the prefix
}

// Store owns the two in-memory mappings and the files behind them.
// The mutex is there because bubbletea runs commands on their own
// goroutines; there is no multi-process coordination on the city file.
type Store struct {
	mu           sync.RWMutex
	countiesPath string
	citiesPath   string
	counties     map[int]County
	cities       map[string]int
	log          *zap.Logger
}

// New creates a store for the given data files. Nothing is read until Load.
func New(countiesPath, citiesPath string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		countiesPath: countiesPath,
		citiesPath:   citiesPath,
		counties:     make(map[int]County),
		cities:       make(map[string]int),
		log:          logger,
	}
}

// FindCounty returns the county registered under a plate prefix.
func (s *Store) FindCounty(prefix int) (County, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	county, ok := s.counties[prefix]
	return county, ok
}

// FindCity resolves a city name to its plate prefix and county. Matching
// ignores case and surrounding whitespace. A known city whose prefix has
// no county record (possible after hand edits to the city file) comes back
// with a nil County.
func (s *Store) FindCity(name string) (CityMatch, bool) {
	key := Normalize(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefix, ok := s.cities[key]
	if !ok {
		return CityMatch{}, false
	}
	match := CityMatch{City: key, Prefix: prefix}
	if county, ok := s.counties[prefix]; ok {
		match.County = &county
	}
	return match, true
}

// HasCity reports whether a mapping exists for the name.
func (s *Store) HasCity(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cities[Normalize(name)]
	return ok
}

// AddCity persists a new city-to-prefix mapping and makes it queryable
// immediately. The file is appended first; if that fails the in-memory
// mapping is left untouched so file and memory stay in sync. The prefix is
// stored as given; callers that care whether it names a real county check
// FindCounty before calling.
func (s *Store) AddCity(name string, prefix int) error {
	key := Normalize(name)
	if key == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.appendCity(key, prefix); err != nil {
		return err
	}
	s.cities[key] = prefix
	s.log.Info("city added", zap.String("city", key), zap.Int("prefix", prefix))
	return nil
}

// appendCity writes one line to the city file, creating it on first use.
func (s *Store) appendCity(key string, prefix int) error {
	// Ensure the data directory exists (first run)
	dir := filepath.Dir(s.citiesPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(s.citiesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open city file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s,%d\n", key, prefix); err != nil {
		f.Close()
		return fmt.Errorf("failed to append city: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close city file: %w", err)
	}
	return nil
}

// Counties returns every county sorted by prefix.
func (s *Store) Counties() []County {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counties := make([]County, 0, len(s.counties))
	for _, county := range s.counties {
		counties = append(counties, county)
	}
	sort.Slice(counties, func(i, j int) bool {
		return counties[i].Prefix < counties[j].Prefix
	})
	return counties
}

// Cities returns every known city mapping sorted by name, seat-derived
// entries included.
func (s *Store) Cities() []CityMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := make([]CityMatch, 0, len(s.cities))
	for name, prefix := range s.cities {
		match := CityMatch{City: name, Prefix: prefix}
		if county, ok := s.counties[prefix]; ok {
			match.County = &county
		}
		cities = append(cities, match)
	}
	sort.Slice(cities, func(i, j int) bool {
		return cities[i].City < cities[j].City
	})
	return cities
}

// CountyCount returns the number of loaded counties.
func (s *Store) CountyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counties)
}

// CityCount returns the number of known city mappings.
func (s *Store) CityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cities)
}

// Normalize maps a city name to its lookup key: lowercased, surrounding
// whitespace removed.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
