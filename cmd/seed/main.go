// Resets the on-device catalog storage to the built-in seed list. Useful
// after a botched edit session or when preparing a fresh device.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/storage"
)

func main() {
	path := flag.String("storage", "", "Path of the catalog storage file")
	flag.Parse()

	// Fall back to environment variable, then default
	if *path == "" {
		*path = os.Getenv("STOREFRONT_STORAGE_PATH")
	}
	if *path == "" {
		*path = "storefront.db"
	}

	bolt, err := storage.Open(*path)
	if err != nil {
		log.Fatalf("Unable to open storage: %v", err)
	}
	defer bolt.Close()

	seed := catalog.Seed()
	if err := bolt.Save(seed); err != nil {
		log.Fatalf("Unable to write seed catalog: %v", err)
	}

	log.Printf("Seeded %d catalog items into %s", len(seed), *path)
}
