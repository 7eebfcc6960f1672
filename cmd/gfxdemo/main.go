// Command gfxdemo renders a scene with the gfx engine into a PNG file.
//
// Without -config it draws a built-in demo scene; with -config it reads a
// YAML scene description:
//
//	width: 240
//	height: 135
//	rotation: 1
//	background: 0x0000
//	shapes:
//	  - {type: fillcircle, coords: [60, 40, 25], color: 0xF800}
//	  - {type: roundrect, coords: [10, 10, 100, 60, 8], color: 0xFFFF}
//	text:
//	  - {x: 10, y: 80, size: 2, color: 0x07E0, string: "hello"}
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pixelgfx/gfx"
	"github.com/pixelgfx/gfx/framebuffer"
)

type shapeConfig struct {
	Type   string  `yaml:"type"`
	Coords []int16 `yaml:"coords"`
	Color  uint16  `yaml:"color"`
}

type textConfig struct {
	X      int16  `yaml:"x"`
	Y      int16  `yaml:"y"`
	Size   int16  `yaml:"size"`
	Color  uint16 `yaml:"color"`
	String string `yaml:"string"`
}

type sceneConfig struct {
	Width      int16         `yaml:"width"`
	Height     int16         `yaml:"height"`
	Rotation   uint8         `yaml:"rotation"`
	Background uint16        `yaml:"background"`
	Shapes     []shapeConfig `yaml:"shapes"`
	Text       []textConfig  `yaml:"text"`
}

func main() {
	var (
		width  = flag.Int("width", 240, "display width")
		height = flag.Int("height", 135, "display height")
		config = flag.String("config", "", "YAML scene file (overrides width/height)")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	scene := sceneConfig{
		Width:  int16(*width),
		Height: int16(*height),
	}
	if *config != "" {
		data, err := os.ReadFile(*config)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		if err := yaml.Unmarshal(data, &scene); err != nil {
			log.Fatalf("Failed to parse config: %v", err)
		}
	}

	fb := framebuffer.New(scene.Width, scene.Height)
	d := gfx.NewDisplay(fb, scene.Width, scene.Height,
		gfx.WithRotation(gfx.Rotation(scene.Rotation)))

	d.FillScreen(gfx.Color(scene.Background))
	if *config == "" {
		drawDemoScene(d)
	} else {
		if err := drawScene(d, &scene); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	if err := fb.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, d.Width(), d.Height())
}

func drawScene(d *gfx.Display, scene *sceneConfig) error {
	for i, s := range scene.Shapes {
		if err := drawShape(d, s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	for _, t := range scene.Text {
		d.SetCursor(t.X, t.Y)
		d.SetTextSize(t.Size)
		d.SetTextColor(gfx.Color(t.Color))
		d.WriteString(t.String)
	}
	return nil
}

func drawShape(d *gfx.Display, s shapeConfig) error {
	need := map[string]int{
		"pixel": 2, "line": 4, "rect": 4, "fillrect": 4,
		"circle": 3, "fillcircle": 3, "roundrect": 5, "fillroundrect": 5,
		"triangle": 6, "filltriangle": 6,
	}
	n, known := need[s.Type]
	if !known {
		return fmt.Errorf("unknown shape type %q", s.Type)
	}
	if len(s.Coords) != n {
		return fmt.Errorf("%s needs %d coords, got %d", s.Type, n, len(s.Coords))
	}

	c := gfx.Color(s.Color)
	p := s.Coords
	switch s.Type {
	case "pixel":
		d.DrawPixel(p[0], p[1], c)
	case "line":
		d.DrawLine(p[0], p[1], p[2], p[3], c)
	case "rect":
		d.DrawRect(p[0], p[1], p[2], p[3], c)
	case "fillrect":
		d.FillRect(p[0], p[1], p[2], p[3], c)
	case "circle":
		d.DrawCircle(p[0], p[1], p[2], c)
	case "fillcircle":
		d.FillCircle(p[0], p[1], p[2], c)
	case "roundrect":
		d.DrawRoundRect(p[0], p[1], p[2], p[3], p[4], c)
	case "fillroundrect":
		d.FillRoundRect(p[0], p[1], p[2], p[3], p[4], c)
	case "triangle":
		d.DrawTriangle(p[0], p[1], p[2], p[3], p[4], p[5], c)
	case "filltriangle":
		d.FillTriangle(p[0], p[1], p[2], p[3], p[4], p[5], c)
	}
	return nil
}

func drawDemoScene(d *gfx.Display) {
	w := d.Width()
	h := d.Height()

	d.FillScreen(gfx.Black)
	d.DrawRoundRect(2, 2, w-4, h-4, 8, gfx.White)
	d.FillCircle(w/4, h/2, h/4, gfx.Red)
	d.DrawCircle(w/2, h/2, h/4, gfx.Green)
	d.FillTriangle(3*w/4-20, h/2+20, 3*w/4+20, h/2+20, 3*w/4, h/2-20, gfx.Blue)

	d.SetCursor(8, 8)
	d.SetTextColor(gfx.Yellow)
	fmt.Fprintf(d, "gfx %dx%d", w, h)
}
