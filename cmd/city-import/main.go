package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/billie-coop/bigsky/internal/lookup"
)

// city-import bulk-loads "city,prefix" lines into the city file, with
// the same validation the app applies one entry at a time.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: city-import <file> [counties.csv] [cities.txt]")
		fmt.Println()
		fmt.Println("Reads city,prefix lines from <file> and appends the valid,")
		fmt.Println("not-yet-known ones to the city file.")
		os.Exit(1)
	}
	importPath := os.Args[1]

	countiesPath := "MontanaCounties.csv"
	citiesPath := filepath.Join(".bigsky", "cities.txt")
	if len(os.Args) > 2 {
		countiesPath = os.Args[2]
	}
	if len(os.Args) > 3 {
		citiesPath = os.Args[3]
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	store := lookup.New(countiesPath, citiesPath, logger)
	if err := store.Load(); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(importPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Println("📥 Bigsky City Import")
	fmt.Println("=====================")
	fmt.Println()

	var added, known, bad, failed int
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			fmt.Printf("⚠️  line %d: want city,prefix, got %q\n", lineNo, line)
			bad++
			continue
		}

		name := lookup.Normalize(parts[0])
		prefix, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || name == "" {
			fmt.Printf("⚠️  line %d: want city,prefix, got %q\n", lineNo, line)
			bad++
			continue
		}

		if store.HasCity(name) {
			known++
			continue
		}
		if _, ok := store.FindCounty(prefix); !ok {
			fmt.Printf("⚠️  line %d: no county has prefix %d, skipping %q\n", lineNo, prefix, name)
			bad++
			continue
		}

		if err := store.AddCity(name, prefix); err != nil {
			fmt.Printf("❌ line %d: %v\n", lineNo, err)
			failed++
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Printf("Added:           %d\n", added)
	fmt.Printf("Already known:   %d\n", known)
	fmt.Printf("Skipped invalid: %d\n", bad)
	if failed > 0 {
		fmt.Printf("Failed to save:  %d\n", failed)
		os.Exit(1)
	}
}
