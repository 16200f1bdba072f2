// Command swcanvasdemo renders a sample scene exercising the canvas
// package's gradients, patterns, dashed strokes, and clip regions, and
// saves it as a PNG.
package main

import (
	"flag"
	"log"
	"math"

	canvas "github.com/davidedc/SWCanvas-sub003"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	dc := canvas.NewContext(*width, *height)

	drawGradientBackground(dc, *width, *height)
	drawShapesDemo(dc)
	drawClipDemo(dc)
	drawDashDemo(dc)
	drawPatternDemo(dc)
	drawTransformDemo(dc)

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("failed to save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawGradientBackground(dc *canvas.Context, w, h int) {
	grad := dc.CreateLinearGradient(0, 0, 0, float64(h))
	grad.AddColorStop(0, canvas.RGB(20, 24, 40))
	grad.AddColorStop(1, canvas.RGB(60, 70, 110))
	dc.SetFillPaint(grad)
	dc.FillRect(0, 0, float64(w), float64(h))
}

func drawShapesDemo(dc *canvas.Context) {
	dc.SetFillColor(canvas.RGBA(255, 80, 80, 200))
	dc.FillCircle(150, 150, 60)

	dc.SetFillColor(canvas.RGBA(80, 255, 80, 200))
	dc.FillCircle(200, 150, 60)

	dc.SetFillColor(canvas.RGBA(80, 80, 255, 200))
	dc.FillCircle(175, 200, 60)

	dc.SetFillColor(canvas.RGB(255, 200, 0))
	dc.FillRoundRect(350, 100, 120, 80, 15)

	dc.SetStrokeColor(canvas.White)
	dc.SetLineWidth(4)
	dc.StrokeRect(350, 100, 120, 80)
}

func drawClipDemo(dc *canvas.Context) {
	dc.Save()
	dc.BeginPath()
	dc.Arc(550, 400, 70, 0, 2*math.Pi, false)
	dc.Clip()

	radial := dc.CreateRadialGradient(550, 400, 0, 550, 400, 90)
	radial.AddColorStop(0, canvas.RGB(255, 240, 150))
	radial.AddColorStop(1, canvas.RGB(200, 60, 20))
	dc.SetFillPaint(radial)
	dc.FillRect(460, 310, 180, 180)
	dc.Restore()
}

func drawDashDemo(dc *canvas.Context) {
	dc.Save()
	dc.SetStrokeColor(canvas.RGB(255, 255, 255))
	dc.SetLineWidth(3)
	dc.SetLineDash(12, 8)
	dc.StrokeLine(40, 500, 760, 500)
	dc.Restore()
}

func drawPatternDemo(dc *canvas.Context) {
	tile := &canvas.Image{Width: 8, Height: 8, Pix: make([]uint8, 8*8*4)}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			if (x+y)%2 == 0 {
				tile.Pix[i], tile.Pix[i+1], tile.Pix[i+2], tile.Pix[i+3] = 30, 30, 30, 255
			} else {
				tile.Pix[i], tile.Pix[i+1], tile.Pix[i+2], tile.Pix[i+3] = 210, 210, 210, 255
			}
		}
	}

	dc.Save()
	pattern := dc.CreatePattern(tile, canvas.RepeatBoth)
	dc.SetFillPaint(pattern)
	dc.FillRoundRect(600, 450, 150, 100, 10)
	dc.Restore()
}

func drawTransformDemo(dc *canvas.Context) {
	centerX, centerY := 650.0, 150.0
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		dc.Save()
		dc.Translate(centerX, centerY)
		dc.Rotate(angle)
		dc.SetFillColor(canvas.HSL(float64(i)*45, 0.8, 0.6))
		dc.FillRect(-25, -25, 50, 50)
		dc.Restore()
	}
}
