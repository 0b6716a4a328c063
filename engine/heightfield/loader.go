package heightfield

import (
	"compress/gzip"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"

	"github.com/memmaker/heightray/engine/util"
)

/*
	TAG_Compound({
	    "width": TAG_Int(),
	    "depth": TAG_Int(),
	    "heights": TAG_List([TAG_Double(), ...]),
	    "created_with": TAG_String()
	})
*/
type heightfieldData struct {
	Width       int32     `nbt:"width"`
	Depth       int32     `nbt:"depth"`
	Heights     []float64 `nbt:"heights"`
	CreatedWith string    `nbt:"created_with"`
}

// Save writes the heightfield as a gzip-compressed NBT compound.
func (h *Heightfield) Save(filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", filename)
	}
	defer outfile.Close()

	gzipWriter := gzip.NewWriter(outfile)
	defer gzipWriter.Close()

	data := heightfieldData{
		Width:       int32(h.width),
		Depth:       int32(h.depth),
		Heights:     h.heights,
		CreatedWith: "heightray",
	}
	if err := nbt.NewEncoder(gzipWriter).Encode(data, ""); err != nil {
		return errors.Wrapf(err, "could not encode heightfield to %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("saved %dx%d heightfield to %s", h.width, h.depth, filename))
	return nil
}

// Load reads a heightfield written by Save.
func Load(filename string) (*Heightfield, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", filename)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not gzip compressed", filename)
	}
	defer gzipReader.Close()

	var data heightfieldData
	if _, err := nbt.NewDecoder(gzipReader).Decode(&data); err != nil {
		return nil, errors.Wrapf(err, "could not decode heightfield from %s", filename)
	}
	width := int(data.Width)
	depth := int(data.Depth)
	if width < 2 || depth < 2 || len(data.Heights) != width*depth {
		return nil, errors.Errorf("heightfield in %s has inconsistent dimensions %dx%d for %d samples", filename, width, depth, len(data.Heights))
	}
	util.LogIOInfo(fmt.Sprintf("loaded %dx%d heightfield from %s", width, depth, filename))
	return &Heightfield{width: width, depth: depth, heights: data.Heights}, nil
}

// LoadPNG imports a grayscale image as a heightfield. White maps to
// heightScale, black to zero.
func LoadPNG(filename string, heightScale float64) (*Heightfield, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", filename)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode image %s", filename)
	}
	bounds := img.Bounds()
	h := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gray, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			h.Set(x, y, float64(gray)/0xffff*heightScale)
		}
	}
	util.LogIOInfo(fmt.Sprintf("imported %dx%d heightfield from %s", h.width, h.depth, filename))
	return h, nil
}
