package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"lifesim/sim"
)

const (
	lineHeight     = 18.0
	hudMargin      = 10.0
	iconSize       = 40.0
	iconSpacing    = 60.0
	iconsPerRow    = 3
	cursorRadius   = 14.0
	playerBarWidth = 200.0
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// HUDState is what the overlay shows for one frame
type HUDState struct {
	Stats       sim.Stats
	Player      *sim.Entity
	Powerups    *sim.Powerups
	Caption     string
	FPS         float64
	Drawn       int
	Cursor      sim.Vec
	SoundOn     bool
	ShowOverlay bool
	Debug       bool
}

// HUD draws the screen-space overlay
type HUD struct {
	width, height float64
}

// NewHUD creates a HUD for a screen size
func NewHUD(width, height int) *HUD {
	return &HUD{width: float64(width), height: float64(height)}
}

// StatLines returns the overlay text, bottom line last
func StatLines(st HUDState) []string {
	p := st.Player
	lines := []string{
		"Position: " + p.Pos.Rounded().String(),
		"World: " + st.Stats.World,
		fmt.Sprintf("Damage Multiplier: * %.1f", p.Player.DamageMultiplier),
		fmt.Sprintf("Health: %d/%d", int(math.Max(0, math.Round(p.Health))), int(math.Max(0, math.Round(p.MaxHealth)))),
	}
	if st.Debug {
		lines = append(lines,
			fmt.Sprintf("# Entities: %d (%d drawn)", st.Stats.Entities, st.Drawn),
			fmt.Sprintf("Contacts: %d", st.Stats.Contacts),
			fmt.Sprintf("FPS: %.1f", st.FPS),
		)
	}
	return lines
}

// Draw renders the overlay
func (h *HUD) Draw(screen *ebiten.Image, st HUDState) {
	if st.Caption != "" {
		h.drawText(screen, st.Caption, h.width/2, h.height/2-120, true)
	}

	if st.ShowOverlay {
		lines := StatLines(st)
		y := h.height - hudMargin - float64(len(lines))*lineHeight
		for _, line := range lines {
			h.drawText(screen, line, hudMargin, y, false)
			y += lineHeight
		}

		p := st.Player
		barY := h.height - hudMargin - float64(len(lines))*lineHeight - 20
		drawBar(screen, hudMargin, barY, playerBarWidth, 12, p.Health/p.MaxHealth, sim.TeamAlly)

		if p.Health <= 0 {
			h.drawText(screen, "Press R to restart", h.width/2, h.height/2+100, true)
		}

		h.drawPowerups(screen, st.Powerups)
		h.drawSoundIcon(screen, st.SoundOn)
	}

	h.drawCursor(screen, st.Cursor)
}

func (h *HUD) drawPowerups(screen *ebiten.Image, pw *sim.Powerups) {
	slot := 0
	for _, t := range sim.AllPowerups() {
		if !pw.Active(t) {
			continue
		}
		cfg := sim.GetPowerupConfig(t)
		col, row := slot%iconsPerRow, slot/iconsPerRow
		x := h.width - hudMargin - iconSize - float64(col)*iconSpacing
		y := hudMargin + float64(row)*(iconSpacing+lineHeight)

		style := GetSpriteStyle(cfg.Sprite, "")
		vector.DrawFilledRect(screen, float32(x), float32(y), iconSize, iconSize, style.Fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), iconSize, iconSize, outlineWidth, style.Outline, false)
		drawBar(screen, x, y+iconSize+4, iconSize, 5, pw.Fraction(t), sim.TeamNeutral)
		slot++
	}
}

func (h *HUD) drawSoundIcon(screen *ebiten.Image, on bool) {
	label := "SND"
	clr := colornames.White
	if !on {
		label = "OFF"
		clr = colornames.Gray
	}
	vector.StrokeRect(screen, 4, 4, float32(soundIconSize.X-8), float32(soundIconSize.Y-8), outlineWidth, clr, false)
	h.drawText(screen, label, soundIconSize.X/2, soundIconSize.Y/2-6, true)
}

func (h *HUD) drawCursor(screen *ebiten.Image, at sim.Vec) {
	x, y := float32(at.X), float32(at.Y)
	vector.StrokeCircle(screen, x, y, cursorRadius, outlineWidth, colornames.White, true)
	vector.StrokeLine(screen, x-cursorRadius-4, y, x+cursorRadius+4, y, 1, colornames.White, false)
	vector.StrokeLine(screen, x, y-cursorRadius-4, x, y+cursorRadius+4, 1, colornames.White, false)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, center bool) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(colornames.White)
	if center {
		opts.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, s, hudFace, opts)
}

func drawBar(screen *ebiten.Image, x, y, w, h, fraction float64, team sim.Team) {
	fill := colornames.White
	if team == sim.TeamAlly {
		fill = colornames.Cornflowerblue
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Dimgray, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*math.Max(0, math.Min(1, fraction))), float32(h), fill, false)
}
