package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"go-complaint-report/internal/model"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphW    = 7  // basicfont.Face7x13 advance
	lineH     = 20 // row height
	margin    = 16
	cellPad   = 6
	maxCell   = 40 // characters shown per cell
	barMaxW   = 360
	minImageW = 360
)

var (
	colorText     = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colorMuted    = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	colorHeaderBg = color.RGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xff}
	colorRule     = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	colorBar      = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
)

// RenderView draws a report view (title, table, bar chart) on a white
// canvas and scales it by scale. Scale below 1 is treated as 1.
func RenderView(view model.ReportView, scale int) *image.RGBA {
	headers := model.Headers(view.Rows)
	widths := make([]int, len(headers))
	cells := make([][]string, len(view.Rows))
	for c, h := range headers {
		widths[c] = utf8.RuneCountInString(clip(h))
	}
	for r, row := range view.Rows {
		cells[r] = make([]string, len(headers))
		for c, h := range headers {
			if v, ok := row.Get(h); ok {
				cells[r][c] = clip(fmt.Sprint(v))
			}
			if n := utf8.RuneCountInString(cells[r][c]); n > widths[c] {
				widths[c] = n
			}
		}
	}

	tableW := 0
	for _, w := range widths {
		tableW += w*glyphW + 2*cellPad
	}
	labelW, maxVal := 0, 0
	for _, b := range view.Chart {
		if n := utf8.RuneCountInString(clip(b.Label)); n > labelW {
			labelW = n
		}
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	chartW := labelW*glyphW + cellPad + barMaxW + 8*glyphW

	width := maxInt(minImageW, tableW, chartW, utf8.RuneCountInString(view.Title)*glyphW) + 2*margin
	height := margin + 2*lineH + lineH/2 + (len(view.Rows)+1)*lineH + margin
	if len(view.Chart) > 0 {
		height += lineH + len(view.Chart)*lineH
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	y := margin
	drawText(img, margin, y, view.Title, colorText)
	y += lineH
	if view.Subtitle != "" {
		drawText(img, margin, y, view.Subtitle, colorMuted)
	}
	y += lineH + lineH/2

	// table header
	fill(img, image.Rect(margin, y, margin+tableW, y+lineH), colorHeaderBg)
	x := margin
	for c, h := range headers {
		drawText(img, x+cellPad, y, clip(h), colorText)
		x += widths[c]*glyphW + 2*cellPad
	}
	y += lineH

	for r := range cells {
		x = margin
		for c := range headers {
			drawText(img, x+cellPad, y, cells[r][c], colorText)
			x += widths[c]*glyphW + 2*cellPad
		}
		y += lineH
		fill(img, image.Rect(margin, y-1, margin+tableW, y), colorRule)
	}

	if len(view.Chart) > 0 {
		y += lineH / 2
		for _, b := range view.Chart {
			drawText(img, margin, y, clip(b.Label), colorText)
			barX := margin + labelW*glyphW + cellPad
			barW := 0
			if maxVal > 0 {
				barW = b.Value * barMaxW / maxVal
			}
			fill(img, image.Rect(barX, y+4, barX+barW, y+lineH-4), colorBar)
			drawText(img, barX+barW+cellPad, y, fmt.Sprint(b.Value), colorMuted)
			y += lineH
		}
	}

	if scale <= 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// drawText writes s with its top edge at y
func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent+(lineH-basicfont.Face7x13.Height)/2),
	}
	d.DrawString(s)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxCell {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxCell-3]) + "..."
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
