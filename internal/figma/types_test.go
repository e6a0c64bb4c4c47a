package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaintVariants(t *testing.T) {
	black := Color{A: 1}
	stops := []ColorStop{{Color: black}, {Color: Color{R: 1, G: 1, B: 1, A: 1}, Position: 1}}

	tests := []struct {
		name      string
		paint     Paint
		wantSolid bool
		wantColor Color
		wantGrad  bool
		wantStops []ColorStop
	}{
		{name: "solid", paint: Paint{Type: PaintSolid, Color: &black}, wantSolid: true, wantColor: black},
		{name: "solid without color", paint: Paint{Type: PaintSolid}},
		{name: "linear gradient", paint: Paint{Type: PaintGradientLinear, GradientStops: stops}, wantGrad: true, wantStops: stops},
		{name: "radial gradient without stops", paint: Paint{Type: PaintGradientRadial}, wantGrad: true},
		{name: "gradient ignores stray color", paint: Paint{Type: PaintGradientAngular, Color: &black, GradientStops: stops}, wantGrad: true, wantStops: stops},
		{name: "solid ignores stray stops", paint: Paint{Type: PaintSolid, Color: &black, GradientStops: stops}, wantSolid: true, wantColor: black},
		{name: "image", paint: Paint{Type: PaintImage, Color: &black}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, ok := tt.paint.Solid()
			assert.Equal(t, tt.wantSolid, ok)
			assert.Equal(t, tt.wantColor, color)

			got, ok := tt.paint.Stops()
			assert.Equal(t, tt.wantGrad, ok)
			assert.Equal(t, tt.wantStops, got)
		})
	}
}
