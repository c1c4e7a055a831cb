package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/billie-coop/bigsky/internal/lookup"
)

// plate-check verifies the data files: it loads them exactly the way the
// app does and reports entries that will not resolve cleanly.
func main() {
	countiesPath := "MontanaCounties.csv"
	citiesPath := filepath.Join(".bigsky", "cities.txt")
	if len(os.Args) > 1 {
		countiesPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		citiesPath = os.Args[2]
	}

	// Development logger so load warnings (duplicate prefixes, skipped
	// rows) land on stderr.
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	store := lookup.New(countiesPath, citiesPath, logger)
	if err := store.Load(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("🔍 Bigsky Data Check")
	fmt.Println("====================")
	fmt.Println()
	fmt.Printf("Counties file: %s\n", countiesPath)
	fmt.Printf("Cities file:   %s\n", citiesPath)
	fmt.Printf("Counties:      %d\n", store.CountyCount())
	fmt.Printf("Cities:        %d (county seats included)\n", store.CityCount())
	fmt.Println()

	problems := 0

	// Cities filed under prefixes no county has.
	for _, city := range store.Cities() {
		if city.County == nil {
			fmt.Printf("⚠️  %q is filed under prefix %d, which no county has\n", city.City, city.Prefix)
			problems++
		}
	}

	// County seats shadowed by a user entry pointing elsewhere.
	for _, county := range store.Counties() {
		match, ok := store.FindCity(county.Seat)
		if !ok {
			continue
		}
		if match.Prefix != county.Prefix {
			fmt.Printf("⚠️  seat %q of %s County resolves to prefix %d instead of %d\n",
				county.Seat, county.Name, match.Prefix, county.Prefix)
			problems++
		}
	}

	fmt.Println()
	if problems == 0 {
		fmt.Println("✅ No problems found")
		return
	}
	fmt.Printf("Found %d problem(s)\n", problems)
	os.Exit(1)
}
