// Package atlas packs images incrementally into a single RGBA texture.
//
// Free space is kept as a list of rectangular slots sorted by area. Each new
// image goes into the smallest slot that fits it, and the rest of that slot
// is split into two new slots.
package atlas

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"slices"

	"github.com/akmonengine/axisbox"
)

var (
	// ErrInvalidSize indicates a non-positive atlas width or height.
	ErrInvalidSize = errors.New("atlas: width and height must be positive")
	// ErrNoSpace indicates no free slot can hold the image.
	ErrNoSpace = errors.New("atlas: no free slot fits the image")
)

// Item locates an image inside the atlas.
type Item struct {
	// Area is the pixel rectangle the image was drawn to.
	Area axisbox.Recti
	// TexCoords is Area mapped to the unit square.
	TexCoords axisbox.Rectf
}

// Atlas is an incremental texture atlas. It is not safe for concurrent use.
type Atlas struct {
	slots  []axisbox.Recti
	placed []axisbox.Recti
	img    *image.RGBA
	dirty  bool
}

// New creates an empty atlas of the given pixel size.
func New(width, height int) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Atlas{
		slots: []axisbox.Recti{axisbox.FromDim[int](axisbox.Vec2[int]{width, height})},
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Add draws src into the smallest free slot that fits it.
func (a *Atlas) Add(src image.Image) (Item, error) {
	bounds := src.Bounds()
	area, ok := a.place(axisbox.Vec2[int]{bounds.Dx(), bounds.Dy()})
	if !ok {
		return Item{}, fmt.Errorf("%w: %dx%d", ErrNoSpace, bounds.Dx(), bounds.Dy())
	}

	draw.Draw(a.img, rectangle(area), src, bounds.Min, draw.Src)

	size := a.Size()
	sx, sy := 1/float32(size.X()), 1/float32(size.Y())
	min, dim := area.Min(), area.Dim()
	tex := axisbox.NewRect(
		axisbox.Vec2[float32]{float32(min.X()) * sx, float32(min.Y()) * sy},
		axisbox.Vec2[float32]{float32(dim.X()) * sx, float32(dim.Y()) * sy},
	)

	return Item{Area: area, TexCoords: tex}, nil
}

// IsEmpty reports whether no image has been added yet.
func (a *Atlas) IsEmpty() bool {
	return len(a.placed) == 0
}

// Size returns the atlas size in pixels.
func (a *Atlas) Size() axisbox.Vec2[int] {
	b := a.img.Bounds()
	return axisbox.Vec2[int]{b.Dx(), b.Dy()}
}

// Image returns the backing image.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// Placed returns the areas of all images added so far, in insertion order.
func (a *Atlas) Placed() []axisbox.Recti {
	return slices.Clone(a.placed)
}

// IsDirty reports whether the image changed since the last ClearDirty.
func (a *Atlas) IsDirty() bool {
	return a.dirty
}

// ClearDirty marks the image as uploaded.
func (a *Atlas) ClearDirty() {
	a.dirty = false
}

// place finds the smallest slot that fits an item of the given size and
// takes it. Slots are kept sorted by area so the first fit is the smallest.
func (a *Atlas) place(size axisbox.Vec2[int]) (axisbox.Recti, bool) {
	for i, slot := range a.slots {
		item := axisbox.NewRect(slot.Min(), size)
		if !slot.ContainsBox(item) {
			continue
		}

		r1, r2 := split(size, slot)
		last := len(a.slots) - 1
		a.slots[i] = a.slots[last]
		a.slots = append(a.slots[:last], r1, r2)
		slices.SortStableFunc(a.slots, func(x, y axisbox.Recti) int {
			return cmp.Compare(x.Volume(), y.Volume())
		})

		a.placed = append(a.placed, item)
		a.dirty = true
		return item, true
	}
	return axisbox.Recti{}, false
}

// split returns the two parts of slot left free once an item of size dim is
// placed at its min corner. The cut is chosen so that the larger of the two
// parts is as big as possible.
func split(dim axisbox.Vec2[int], slot axisbox.Recti) (axisbox.Recti, axisbox.Recti) {
	pos, rd := slot.Min(), slot.Dim()
	w, h := dim.X(), dim.Y()

	vertVol := max(rd.X()*(rd.Y()-h), (rd.X()-w)*h)
	horizVol := max(w*(rd.Y()-h), (rd.X()-w)*rd.Y())

	if vertVol > horizVol {
		//     |AA
		// ----+--
		// BBBBBBB
		return axisbox.NewRect(axisbox.Vec2[int]{pos.X() + w, pos.Y()}, axisbox.Vec2[int]{rd.X() - w, h}),
			axisbox.NewRect(axisbox.Vec2[int]{pos.X(), pos.Y() + h}, axisbox.Vec2[int]{rd.X(), rd.Y() - h})
	}

	//     |BB
	// ----+BB
	// AAAA|BB
	return axisbox.NewRect(axisbox.Vec2[int]{pos.X(), pos.Y() + h}, axisbox.Vec2[int]{w, rd.Y() - h}),
		axisbox.NewRect(axisbox.Vec2[int]{pos.X() + w, pos.Y()}, axisbox.Vec2[int]{rd.X() - w, rd.Y()})
}

func rectangle(r axisbox.Recti) image.Rectangle {
	min, max := r.Min(), r.Max()
	return image.Rect(min.X(), min.Y(), max.X(), max.Y())
}
