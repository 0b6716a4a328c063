package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/memmaker/heightray/engine/heightfield"
	"github.com/memmaker/heightray/engine/render"
	"github.com/memmaker/heightray/engine/util"
)

func main() {
	mapFile := flag.String("map", "", "heightfield to render, .png or .nbt, empty generates a paraboloid")
	size := flag.Int("size", 100, "edge length of the generated paraboloid")
	heightScale := flag.Float64("height-scale", 50, "vertical scale applied to PNG heightmaps")
	width := flag.Int("width", 80, "rays per row")
	height := flag.Int("height", 120, "rays per column")
	aperture := flag.Float64("aperture", 1.2, "total ray fan angle in radians")
	workers := flag.Int("workers", 0, "render workers, 0 uses one per CPU")
	outFile := flag.String("out", "render.png", "output image path")
	outScale := flag.Int("out-scale", 1, "integer upscale factor for the output image")
	originFlag := flag.String("origin", "", "camera origin as x,y,z, empty picks a spot south of the terrain")
	directionFlag := flag.String("direction", "0,1,0.5", "camera view direction as x,y,z")
	preview := flag.Bool("preview", false, "print an ASCII preview to the terminal")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		util.GLOBAL_LOG_LEVEL = util.LogLevelInfo
		util.GLOBAL_LOG_CATEGORIES |= util.LogHeightfield | util.LogRaycast
	}

	surface, err := loadSurface(*mapFile, *size, *heightScale)
	if err != nil {
		fatal(err)
	}

	camera := &render.Camera{Aperture: *aperture}
	camera.Direction, err = parseVec3(*directionFlag)
	if err != nil {
		fatal(err)
	}
	if *originFlag == "" {
		n := float64(surface.Width())
		camera.Origin = mgl64.Vec3{n / 2, -2 * n, 0}
	} else {
		camera.Origin, err = parseVec3(*originFlag)
		if err != nil {
			fatal(err)
		}
	}

	renderer := render.NewRenderer(*width, *height)
	if *workers > 0 {
		renderer.Workers = *workers
	}

	timer := util.NewTimer()
	var buffer *render.DepthBuffer
	timer.Measure("render", func() {
		buffer = renderer.Render(camera, surface)
	})
	var writeErr error
	timer.Measure("encode", func() {
		writeErr = writeImage(buffer, *outFile, *outScale)
	})
	if writeErr != nil {
		fatal(writeErr)
	}
	fmt.Println(timer.String())
	util.LogSystemInfo(fmt.Sprintf("wrote %s", *outFile))

	if *preview {
		printPreview(buffer)
	}
}

func loadSurface(mapFile string, size int, heightScale float64) (*heightfield.Heightfield, error) {
	if mapFile == "" {
		return heightfield.NewParaboloid(size), nil
	}
	switch filepath.Ext(mapFile) {
	case ".png":
		return heightfield.LoadPNG(mapFile, heightScale)
	case ".nbt":
		return heightfield.Load(mapFile)
	default:
		return nil, errors.Errorf("unsupported heightfield format %q", filepath.Ext(mapFile))
	}
}

func writeImage(buffer *render.DepthBuffer, filename string, scale int) error {
	img := buffer.ToImage()
	output := render.ScaleImage(img, buffer.Width*scale, buffer.Height*scale)

	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", filename)
	}
	defer outfile.Close()
	if err := png.Encode(outfile, output); err != nil {
		return errors.Wrapf(err, "could not encode %s", filename)
	}
	return nil
}

func printPreview(buffer *render.DepthBuffer) {
	termWidth, termHeight, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	fmt.Print(buffer.ASCII(termWidth, termHeight-2))
}

func parseVec3(text string) (mgl64.Vec3, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, errors.Errorf("expected x,y,z but got %q", text)
	}
	var result mgl64.Vec3
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, errors.Wrapf(err, "bad component %q", part)
		}
		result[i] = value
	}
	return result, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
