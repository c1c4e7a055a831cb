package lookup

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Load reads both data files into memory, replacing whatever was loaded
// before. Malformed lines are skipped with a warning rather than failing
// startup, and a missing city file just means no user mappings yet. A
// missing counties file is an error: the tool is useless without its
// reference data.
func (s *Store) Load() error {
	counties, err := s.loadCounties()
	if err != nil {
		return err
	}
	cities := s.loadCities()

	// County seats resolve as cities without being written to the city
	// file. Persisted entries win.
	seeded := 0
	for prefix, county := range counties {
		key := Normalize(county.Seat)
		if key == "" {
			continue
		}
		if _, exists := cities[key]; !exists {
			cities[key] = prefix
			seeded++
		}
	}

	s.mu.Lock()
	s.counties = counties
	s.cities = cities
	s.mu.Unlock()

	s.log.Info("lookup store loaded",
		zap.Int("counties", len(counties)),
		zap.Int("cities", len(cities)),
		zap.Int("seat_entries", seeded))
	return nil
}

// loadCounties parses the reference CSV: prefix, county name, county seat.
// A single leading header row is tolerated and skipped.
func (s *Store) loadCounties() (map[int]County, error) {
	f, err := os.Open(s.countiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open counties file: %w", err)
	}
	defer f.Close()

	counties := make(map[int]County)
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			s.log.Warn("skipping unreadable counties row",
				zap.Int("row", row), zap.Error(err))
			continue
		}
		if len(record) < 3 {
			s.log.Warn("skipping short counties row",
				zap.Int("row", row), zap.Int("fields", len(record)))
			continue
		}
		prefix, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			if row == 1 {
				continue // header row
			}
			s.log.Warn("skipping counties row with non-numeric prefix",
				zap.Int("row", row), zap.String("prefix", record[0]))
			continue
		}
		if _, dup := counties[prefix]; dup {
			s.log.Warn("duplicate county prefix, keeping the later row",
				zap.Int("prefix", prefix))
		}
		counties[prefix] = County{
			Prefix: prefix,
			Name:   strings.TrimSpace(record[1]),
			Seat:   strings.TrimSpace(record[2]),
		}
	}
	return counties, nil
}

// loadCities reads the append log, one "city,prefix" line per mapping.
// The file not existing yet is the normal first-run state.
func (s *Store) loadCities() map[string]int {
	cities := make(map[string]int)

	f, err := os.Open(s.citiesPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("city file unreadable, starting empty", zap.Error(err))
		}
		return cities
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) != 2 {
			s.log.Warn("skipping malformed city line", zap.Int("line", line))
			continue
		}
		prefix, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			s.log.Warn("skipping city line with bad prefix",
				zap.Int("line", line), zap.String("prefix", parts[1]))
			continue
		}
		key := Normalize(parts[0])
		if key == "" {
			s.log.Warn("skipping city line with empty name", zap.Int("line", line))
			continue
		}
		cities[key] = prefix
	}
	if err := scanner.Err(); err != nil {
		s.log.Warn("stopped reading city file early", zap.Error(err))
	}
	return cities
}
