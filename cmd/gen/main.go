package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"brcstats/pkg"

	"golang.org/x/exp/maps"
)

const SPREAD = 123

// Station means in tenths of a degree.
var baseStations = map[string]int{
	"Abha": 180, "Abidjan": 260, "Accra": 264, "Addis Ababa": 160,
	"Adelaide": 173, "Alexandria": 200, "Almaty": 100, "Amsterdam": 102,
	"Anchorage": 28, "Ankara": 120, "Athens": 192, "Baghdad": 228,
	"Bangkok": 286, "Barcelona": 182, "Beijing": 129, "Belgrade": 125,
	"Berlin": 103, "Bogotá": 156, "Bratislava": 105, "Brussels": 105,
	"Budapest": 113, "Cairo": 214, "Cape Town": 162, "Chicago": 98,
	"Copenhagen": 91, "Dakar": 240, "Dhaka": 259, "Dublin": 98,
	"Hamburg": 97, "Helsinki": 59, "Istanbul": 139, "Jakarta": 267,
	"Kyiv": 84, "Lagos": 268, "Lima": 197, "Lisbon": 175,
	"London": 113, "Madrid": 150, "Mexico City": 175, "Moscow": 58,
	"Mumbai": 271, "Nairobi": 178, "Oslo": 57, "Paris": 123,
	"Reykjavík": 43, "Riga": 62, "Rome": 152, "Santiago": 144,
	"São Paulo": 199, "Seoul": 125, "Singapore": 270, "Stockholm": 66,
	"Sydney": 177, "Tokyo": 154, "Toronto": 94, "Vienna": 104,
	"Warsaw": 85, "Wellington": 129, "Yakutsk": -88, "Zürich": 93,
}

func main() {
	tTotal := time.Now()
	flagFile := flag.String("file", "measurements.txt", "1brc file")
	flagCheck := flag.String("check", "measurements.chk", "1brc check file")
	flagN := flag.Int64("n", 1_000_000, "rows")
	flagSeed := flag.Int64("seed", 0, "rng seed")
	flag.Parse()

	log.Printf("initializing rng from seed: '%d'", *flagSeed)
	rng := rand.New(rand.NewSource(*flagSeed))

	cities := maps.Keys(baseStations)
	sort.Strings(cities)
	stats := make(map[string]*pkg.CityData, len(cities))
	for _, city := range cities {
		cd := pkg.EmptyCityData()
		stats[city] = &cd
	}

	tWrite := time.Now()
	log.Printf("creating output file '%s'", *flagFile)
	outputFile, err := os.Create(*flagFile)
	if err != nil {
		log.Fatal(fmt.Errorf("open output file '%s': %w", *flagFile, err))
	}
	w := bufio.NewWriterSize(outputFile, 1024*1024)

	printIncrement := max(*flagN/100, 1)
	for i := int64(0); i < *flagN; i++ {
		city := cities[rng.Intn(len(cities))]
		v := naiveValue(rng, baseStations[city])
		stats[city].MergeValue(v)
		w.WriteString(city)
		w.WriteByte(';')
		w.WriteString(pkg.PrintIndec(int64(v)))
		w.WriteByte('\n')
		if i%printIncrement == 0 {
			fmt.Fprint(os.Stderr, "\rgeneration progress: ", i)
		}
	}
	fmt.Fprintln(os.Stderr, "")

	if err := w.Flush(); err != nil {
		log.Fatal(fmt.Errorf("write output file: %w", err))
	}
	outputFile.Close()
	since_tWrite := time.Since(tWrite)

	tWriteCheck := time.Now()
	log.Printf("creating check file '%s'", *flagCheck)
	rows := make([]pkg.Row, 0, len(cities))
	for _, city := range cities {
		if stats[city].Count == 0 {
			continue
		}
		rows = append(rows, pkg.Row{Key: city, Data: *stats[city]})
	}

	checkFile, err := os.Create(*flagCheck)
	if err != nil {
		log.Fatal(fmt.Errorf("open check file '%s': %w", *flagCheck, err))
	}
	if err := pkg.Format(checkFile, rows); err != nil {
		log.Fatal(fmt.Errorf("write check file: %w", err))
	}
	checkFile.Close()
	since_tWriteCheck := time.Since(tWriteCheck)

	log.Printf(`
[ Write: %v
[ WriteCheck: %v
= Total: %v
			 `,
		since_tWrite,
		since_tWriteCheck,
		time.Since(tTotal),
	)
}

func naiveValue(rng *rand.Rand, target int) int32 {
	v := target + (rng.Intn(2*SPREAD+1) - SPREAD)
	return int32(min(max(v, -999), 999))
}
