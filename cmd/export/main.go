package main

import (
	"flag"
	"log"

	"koinonia/internal/export"
)

func main() {
	outDir := flag.String("out", "data", "output directory for the manifest")
	seedDir := flag.String("seed", "seed", "directory containing the seed JSON files")
	flag.Parse()

	outPath, err := export.Write(*outDir, *seedDir)
	if err != nil {
		log.Fatalf("manifest export failed: %v", err)
	}

	log.Printf("Written: %s", outPath)
}
