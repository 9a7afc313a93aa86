package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Shape is how a sprite is drawn without image assets
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
	ShapeLine // projectiles, oriented by rotation
)

// SpriteStyle is the flat-shaded stand-in for a sprite
type SpriteStyle struct {
	Fill    color.RGBA
	Outline color.RGBA
	Shape   Shape
}

const invisibleAlpha = 60

var defaultStyle = SpriteStyle{Fill: colornames.Magenta, Outline: colornames.Black, Shape: ShapeRect}

// spriteStyles maps sprite keys to their look
var spriteStyles = map[string]SpriteStyle{
	// Props
	"tree":        {Fill: colornames.Forestgreen, Outline: colornames.Saddlebrown, Shape: ShapeEllipse},
	"city_tree":   {Fill: colornames.Olivedrab, Outline: colornames.Saddlebrown, Shape: ShapeEllipse},
	"winter_tree": {Fill: colornames.Darkslategray, Outline: colornames.Snow, Shape: ShapeEllipse},
	"rock":        {Fill: colornames.Gray, Outline: colornames.Dimgray, Shape: ShapeEllipse},
	"house":       {Fill: colornames.Peru, Outline: colornames.Maroon, Shape: ShapeRect},
	"office":      {Fill: colornames.Lightsteelblue, Outline: colornames.Slategray, Shape: ShapeRect},
	"door":        {Fill: colornames.Sienna, Outline: colornames.Black, Shape: ShapeRect},
	"cave":        {Fill: colornames.Dimgray, Outline: colornames.Black, Shape: ShapeEllipse},
	"cave_exit":   {Fill: colornames.Lightgray, Outline: colornames.Black, Shape: ShapeEllipse},
	"grave":       {Fill: colornames.Silver, Outline: colornames.Dimgray, Shape: ShapeRect},
	"poof":        {Fill: colornames.Whitesmoke, Outline: colornames.Lightgray, Shape: ShapeEllipse},

	// Creatures
	"player":       {Fill: colornames.Royalblue, Outline: colornames.Navy, Shape: ShapeRect},
	"brawler":      {Fill: colornames.Firebrick, Outline: colornames.Black, Shape: ShapeRect},
	"brawler_boss": {Fill: colornames.Darkred, Outline: colornames.Black, Shape: ShapeRect},
	"ranger":       {Fill: colornames.Darkgreen, Outline: colornames.Black, Shape: ShapeRect},
	"ranger_boss":  {Fill: colornames.Darkolivegreen, Outline: colornames.Black, Shape: ShapeRect},
	"boomer":       {Fill: colornames.Orange, Outline: colornames.Black, Shape: ShapeEllipse},
	"car_front":    {Fill: colornames.Crimson, Outline: colornames.Black, Shape: ShapeRect},
	"car_side":     {Fill: colornames.Crimson, Outline: colornames.Black, Shape: ShapeRect},
	"ally_bot":     {Fill: colornames.Deepskyblue, Outline: colornames.Black, Shape: ShapeRect},

	// Projectiles
	"bullet":    {Fill: colornames.Gold, Outline: colornames.Black, Shape: ShapeLine},
	"arrow":     {Fill: colornames.Burlywood, Outline: colornames.Black, Shape: ShapeLine},
	"grenade":   {Fill: colornames.Darkolivegreen, Outline: colornames.Black, Shape: ShapeEllipse},
	"explosion": {Fill: colornames.Orangered, Outline: colornames.Yellow, Shape: ShapeEllipse},

	// Items and powerup icons
	"apple":       {Fill: colornames.Red, Outline: colornames.Darkgreen, Shape: ShapeEllipse},
	"dmg_up":      {Fill: colornames.Darkviolet, Outline: colornames.White, Shape: ShapeRect},
	"shield":      {Fill: colornames.Steelblue, Outline: colornames.White, Shape: ShapeEllipse},
	"shotgun":     {Fill: colornames.Saddlebrown, Outline: colornames.White, Shape: ShapeRect},
	"arrows":      {Fill: colornames.Tan, Outline: colornames.White, Shape: ShapeRect},
	"speed_shoes": {Fill: colornames.Yellow, Outline: colornames.Black, Shape: ShapeRect},
	"metalsuit":   {Fill: colornames.Lightslategray, Outline: colornames.White, Shape: ShapeRect},
	"invis":       {Fill: colornames.Lavender, Outline: colornames.Gray, Shape: ShapeEllipse},
	"wrench":      {Fill: colornames.Darkgray, Outline: colornames.Black, Shape: ShapeRect},
}

// GetSpriteStyle returns the style for a sprite key and appearance variant
func GetSpriteStyle(key, variant string) SpriteStyle {
	style, ok := spriteStyles[key]
	if !ok {
		style = defaultStyle
	}

	switch variant {
	case "ow":
		style.Fill = colornames.Tomato
	case "dead":
		style.Fill = colornames.Dimgray
	case "invisible":
		style.Fill = fade(style.Fill, invisibleAlpha)
		style.Outline = fade(style.Outline, invisibleAlpha)
	case "metalsuit":
		style.Fill = colornames.Silver
		style.Outline = colornames.White
	}
	return style
}

// fade scales a premultiplied color to alpha a
func fade(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}
