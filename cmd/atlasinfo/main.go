package main

import (
	"flag"
	"fmt"
	"os"

	"tinyraycaster/internal/palette"
	"tinyraycaster/internal/texture"
)

func main() {
	tileSize := flag.Int("tile", 64, "Texture tile size in pixels")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: atlasinfo [-tile N] atlas.png [more.png ...]")
		os.Exit(2)
	}

	errors := 0
	for _, path := range flag.Args() {
		if err := describe(path, *tileSize); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
}

func describe(path string, size int) error {
	a, err := texture.Load(path, size)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d textures, %dx%d each\n", path, a.Count(), a.Size(), a.Size())
	for id := 0; id < a.Count(); id++ {
		first, err := a.Representative(id)
		if err != nil {
			return err
		}
		avg, err := a.Average(id)
		if err != nil {
			return err
		}
		fmt.Printf("  [%d] first texel %s  average %s\n", id, palette.Hex(first), palette.Hex(avg))
	}
	return nil
}
