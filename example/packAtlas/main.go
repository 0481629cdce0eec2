package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"

	"github.com/akmonengine/axisbox"
	"github.com/akmonengine/axisbox/atlas"
)

// tile génère une image unie de la taille donnée
func tile(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for p := range axisbox.Cells(axisbox.FromDim[int](axisbox.Vec2[int]{w, h})) {
		img.SetRGBA(p.X(), p.Y(), c)
	}
	return img
}

func main() {
	a, err := atlas.New(256, 256)
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(42, 7))
	used := 0
	for i := range 64 {
		w, h := 8+rng.IntN(40), 8+rng.IntN(40)
		c := color.RGBA{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256)), A: 255}

		item, err := a.Add(tile(w, h, c))
		if err != nil {
			fmt.Printf("⚠️  tile %d (%dx%d): %v\n", i, w, h, err)
			continue
		}
		used += item.Area.Volume()
		fmt.Printf("📦 tile %d -> %v tex=%v\n", i, item.Area, item.TexCoords)
	}

	size := a.Size()
	fmt.Printf("✅ %d tiles placed, %.1f%% of the atlas used\n",
		len(a.Placed()), 100*float64(used)/float64(axisbox.FromDim[int](size).Volume()))

	f, err := os.Create("atlas.png")
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, a.Image()); err != nil {
		fmt.Println("❌", err)
		return
	}
	a.ClearDirty()
}
