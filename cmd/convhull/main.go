// Command convhull builds the convex hull of an OBJ point cloud and
// exports the result.
//
// Typical run:
//
//	convhull --in model.obj --out hull.obj --png hull.png --cat
//
// The input OBJ only needs `v` lines; faces and normals are ignored.
// The hull can be re-exported as OBJ (--out), as a MATLAB verification
// script (--m), and rendered as an orthographic XY wireframe (--png),
// optionally previewed inline in the terminal (--cat).
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/holoplot/convhull-3d/hull"
	"github.com/holoplot/convhull-3d/objfile"
)

var (
	inPath   = kingpin.Flag("in", "OBJ file to read vertices from.").Required().ExistingFile()
	outPath  = kingpin.Flag("out", "Write the hull as an OBJ file.").String()
	mPath    = kingpin.Flag("m", "Write the hull as a MATLAB verification script.").String()
	onlyUsed = kingpin.Flag("only-used", "Drop input vertices the hull does not reference from the OBJ export.").Bool()
	seed     = kingpin.Flag("seed", "Perturbation noise seed.").Default("1").Int64()
	pngPath  = kingpin.Flag("png", "Render an orthographic XY wireframe to a PNG file.").String()
	cat      = kingpin.Flag("cat", "Preview the rendered PNG inline in the terminal.").Bool()
)

func main() {
	kingpin.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("convhull:"), err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	verts, err := objfile.ReadVertices(f)
	f.Close()
	if err != nil {
		return err
	}

	opts := hull.DefaultOptions()
	opts.Seed = *seed

	h, err := hull.Build3D(verts, &opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s vertices in, %s facets out\n",
		aurora.Green("hull:"),
		aurora.Cyan(fmt.Sprint(len(verts))),
		aurora.Cyan(fmt.Sprint(len(h.Faces))))

	if *outPath != "" {
		if err := writeOBJ(*outPath, verts, h); err != nil {
			return err
		}
		fmt.Println(aurora.Green("wrote:"), *outPath)
	}
	if *mPath != "" {
		if err := writeM(*mPath, verts, h); err != nil {
			return err
		}
		fmt.Println(aurora.Green("wrote:"), *mPath)
	}
	if *pngPath != "" {
		if err := renderPNG(*pngPath, verts, h); err != nil {
			return err
		}
		fmt.Println(aurora.Green("wrote:"), *pngPath)
		if *cat {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}

	return nil
}

func writeOBJ(path string, verts []hull.Vertex, h *hull.Hull) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := objfile.WriteOBJ(f, verts, h.Faces, *onlyUsed); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func writeM(path string, verts []hull.Vertex, h *hull.Hull) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := objfile.WriteM(f, verts, h.Faces); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

const (
	renderScale   = 256.0
	renderPadding = 16
)

// renderPNG strokes every hull edge projected orthographically onto the
// XY plane, origin at the bottom left.
func renderPNG(path string, verts []hull.Vertex, h *hull.Hull) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v[0])
		minY = math.Min(minY, v[1])
		maxX = math.Max(maxX, v[0])
		maxY = math.Max(maxY, v[1])
	}

	spanX, spanY := maxX-minX, maxY-minY
	scale := renderScale / math.Max(math.Max(spanX, spanY), 1e-12)
	width := int(scale*spanX) + renderPadding*2
	height := int(scale*spanY) + renderPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, face := range h.Faces {
		c.MoveTo(verts[face[0]][0], verts[face[0]][1])
		for _, vi := range face[1:] {
			c.LineTo(verts[vi][0], verts[vi][1])
		}
		c.ClosePath()
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.SavePNG(path)
}
