package service

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/nailroom/booking-bot/internal/catalog"
	"github.com/nailroom/booking-bot/internal/model"
)

// Размеры схемы дня
const (
	dayImageWidth   = 520
	dayHeaderHeight = 50
	dayFooterPad    = 20
	dayLabelsWidth  = 70
	dayRightPad     = 20
	pixelsPerMinute = 1.4
	blockRadius     = 6.0
)

var (
	dayBgColor        = color.RGBA{245, 246, 248, 255}
	dayTextColor      = color.RGBA{80, 85, 90, 255}
	dayHourLineColor  = color.NRGBA{160, 160, 160, 255}
	dayHourLabelColor = color.RGBA{110, 115, 120, 255}
	dayFreeColor      = color.RGBA{133, 193, 85, 90}
	dayBusyColor      = color.RGBA{255, 182, 193, 255}
	dayBusyTextColor  = color.RGBA{120, 40, 50, 255}
)

// RenderDayImage рисует вертикальную шкалу рабочего дня 12:00-19:00 с
// занятыми интервалами. Подписи только из ASCII-символов: встроенный
// шрифт basicfont не содержит кириллических глифов.
func RenderDayImage(records []model.Record) ([]byte, error) {
	totalMinutes := workCloseMinutes - workOpenMinutes
	height := dayHeaderHeight + int(float64(totalMinutes)*pixelsPerMinute) + dayFooterPad

	dc := gg.NewContext(dayImageWidth, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(dayBgColor)
	dc.Clear()

	drawDayGrid(dc, totalMinutes)
	drawDayBlocks(dc, records)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode day image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawDayGrid рисует фон рабочего окна, часовые линии и подписи времени
func drawDayGrid(dc *gg.Context, totalMinutes int) {
	left := float64(dayLabelsWidth)
	right := float64(dayImageWidth - dayRightPad)

	dc.SetColor(dayFreeColor)
	dc.DrawRectangle(left, float64(dayHeaderHeight), right-left, float64(totalMinutes)*pixelsPerMinute)
	dc.Fill()

	dc.SetColor(dayTextColor)
	dc.DrawStringAnchored("12:00 - 19:00", float64(dayImageWidth)/2, float64(dayHeaderHeight)/2, 0.5, 0.5)

	for m := 0; m <= totalMinutes; m += 60 {
		y := float64(dayHeaderHeight) + float64(m)*pixelsPerMinute

		dc.SetColor(dayHourLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(left, y, right, y)
		dc.Stroke()

		dc.SetColor(dayHourLabelColor)
		dc.DrawStringAnchored(formatMinutes(workOpenMinutes+m), left-8, y, 1, 0.4)
	}
}

// drawDayBlocks рисует занятые интервалы с подписью времени начала и конца
func drawDayBlocks(dc *gg.Context, records []model.Record) {
	left := float64(dayLabelsWidth)
	width := float64(dayImageWidth-dayRightPad) - left

	for _, r := range records {
		start, ok := minutesOfDay(r.Time)
		if !ok {
			continue
		}
		dur := minutesFromHours(catalog.Duration(r.Service))
		end := start + dur

		y := float64(dayHeaderHeight) + float64(start-workOpenMinutes)*pixelsPerMinute
		h := float64(dur) * pixelsPerMinute

		dc.SetColor(dayBusyColor)
		dc.DrawRoundedRectangle(left+2, y+1, width-4, h-2, blockRadius)
		dc.Fill()

		dc.SetColor(dayBusyTextColor)
		label := formatMinutes(start) + " - " + formatMinutes(end)
		dc.DrawStringAnchored(label, left+width/2, y+h/2, 0.5, 0.4)
	}
}
