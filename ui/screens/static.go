package screens

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshcatsandevops/switchone/console"
	"github.com/zshcatsandevops/switchone/content"
	"github.com/zshcatsandevops/switchone/ui/style"
)

// drawInfoRows is the shared layout for the text-only screens: a title and
// one body row per line.
func drawInfoRows(dst *ebiten.Image, title string, rows []string) {
	style.DrawText(dst, title, style.TitleFace(), style.TitleX, style.TitleY, style.Text)
	for i, row := range rows {
		style.DrawText(dst, row, style.BodyFace(), style.BodyX, style.BodyY+i*style.RowH, style.Text)
	}
}

func drawNews(dst *ebiten.Image, v View) {
	style.DrawText(dst, "News", style.TitleFace(), style.TitleX, style.TitleY, style.Text)
	for i, headline := range content.NewsHeadlines {
		style.DrawText(dst, headline, style.BodyFace(), style.BodyX, style.BodyY+i*40, style.Text)
	}
}

func drawProfile(dst *ebiten.Image, v View) {
	style.DrawText(dst, "Profile", style.TitleFace(), style.TitleX, style.TitleY, style.Text)

	style.FillCircle(dst, float32(console.ScreenW)/2, 80, 50, color.NRGBA{0x64, 0x64, 0x64, 0xff})

	style.DrawText(dst, "User: "+content.ProfileUser, style.BodyFace(), 20, 140, style.Text)
	style.DrawText(dst, "Friends:", style.BodyFace(), 20, 160, style.Text)
	for i, friend := range content.Friends {
		style.DrawText(dst, friend, style.BodyFace(), 40, 180+i*style.RowH, style.TextDim)
	}

	style.DrawText(dst, "Virtual Game Cards:", style.BodyFace(), 240, 160, style.Text)
	for i, card := range content.VirtualGameCards {
		style.DrawText(dst, card, style.BodyFace(), 260, 180+i*style.RowH, style.TextDim)
	}
}

func drawThemes(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "Themes", []string{"Select theme: " + content.ThemeOptions})
}

func drawStats(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "Play Stats", []string{
		fmt.Sprintf("Hours played: %d", content.HoursPlayed),
		fmt.Sprintf("Games completed: %d", content.GamesCompleted),
	})
}

func drawControllers(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "Controllers", []string{
		"Paired: " + strings.Join(content.PairedControllers, ", "),
		"Find Controllers: Vibrate",
	})
}

func drawSystem(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "System Info", []string{
		"Version: " + content.SystemVersion,
		"Update available? No",
	})
}

func drawData(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "Data Management", []string{
		fmt.Sprintf("Storage: %dGB used / %dGB total", content.StorageUsedGB, content.StorageTotalGB),
	})

	bar := image.Rect(20, 90, 220, 106)
	style.FillRoundedRect(dst, bar, 8, style.Track)
	used := bar
	used.Max.X = bar.Min.X + bar.Dx()*content.StorageUsedGB/content.StorageTotalGB
	style.FillRoundedRect(dst, used, 8, style.Accent)
}

func drawHelp(dst *ebiten.Image, v View) {
	rows := make([]string, 0, len(content.FAQ))
	for _, entry := range content.FAQ {
		rows = append(rows, fmt.Sprintf("Q: %s A: %s", entry.Question, entry.Answer))
	}
	drawInfoRows(dst, "Help & FAQ", rows)
}

func drawGameChat(dst *ebiten.Image, v View) {
	drawInfoRows(dst, "GameChat", []string{"Voice chat rooms: " + content.GameChatRooms})
}
