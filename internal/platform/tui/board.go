package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Glyphs used on the board.
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
)

// Appearance controls how board elements are drawn.
type Appearance struct {
	SnakeColor  core.Color
	FoodColor   core.Color
	BorderColor core.Color
	DotSize     int // columns a snake segment fills
	FoodSize    int // columns the food fills
	CellWidth   int // columns per board cell
}

// AppearanceFrom derives the appearance from the configuration. Terminal
// cells are about twice as tall as wide, so a board cell spans at least two
// columns to stay roughly square.
func AppearanceFrom(cfg config.SnakeConfig) Appearance {
	dot := max(cfg.Snake.DotSize, 1)
	food := max(cfg.Food.Size, 1)
	return Appearance{
		SnakeColor:  core.Color(cfg.Snake.Color),
		FoodColor:   core.Color(cfg.Food.Color),
		BorderColor: core.ColorGray,
		DotSize:     dot,
		FoodSize:    food,
		CellWidth:   max(dot, food, 2),
	}
}

// HUD is the status line shown above the board.
type HUD struct {
	Title string
	Best  int
}

// Layout places the board on the screen.
type Layout struct {
	Board   core.Rect // frame including the border
	HUDLine int       // row of the status line
	Cells   int       // cells per axis
	CellW   int
}

// boardLayout centers the board in the screen, leaving one row above for the
// HUD. ok is false when the screen is too small.
func boardLayout(screen core.Rect, rules snake.Rules, app Appearance) (Layout, bool) {
	n := rules.CellsPerAxis()
	w := n*app.CellWidth + 2
	h := n + 2

	if screen.W < w || screen.H < h+1 {
		return Layout{}, false
	}

	area := core.NewRect(screen.X, screen.Y+1, screen.W, screen.H-1)
	board := area.Centered(w, h)
	return Layout{Board: board, HUDLine: board.Y - 1, Cells: n, CellW: app.CellWidth}, true
}

// cellOrigin returns the screen column and row of a board cell.
func (l Layout) cellOrigin(c core.Cell, rules snake.Rules) (x, y int) {
	col := (c.X - rules.Min) / rules.Step
	row := (c.Y - rules.Min) / rules.Step
	return l.Board.X + 1 + col*l.CellW, l.Board.Y + 1 + row
}

// ScreenToBoard converts a terminal position to board columns and rows so
// that drags measure distance in cells on both axes.
func (l Layout) ScreenToBoard(p core.Point) core.Point {
	if l.CellW <= 0 {
		return p
	}
	return core.Point{X: (p.X - l.Board.X - 1) / l.CellW, Y: p.Y - l.Board.Y - 1}
}

// DrawBoard draws the frame, the food and the snake.
func DrawBoard(s *core.Screen, l Layout, snap snake.Snapshot, rules snake.Rules, app Appearance) {
	s.DrawBox(l.Board, app.BorderColor)

	fx, fy := l.cellOrigin(snap.Food, rules)
	for i := range app.FoodSize {
		s.SetColor(fx+i, fy, glyphFood, app.FoodColor)
	}

	for i, c := range snap.Snake {
		glyph := glyphBody
		if i == len(snap.Snake)-1 {
			glyph = glyphHead
		}
		x, y := l.cellOrigin(c, rules)
		for j := range app.DotSize {
			s.SetColor(x+j, y, glyph, app.SnakeColor)
		}
	}
}

// DrawHUD draws the status line above the board.
func DrawHUD(s *core.Screen, l Layout, snap snake.Snapshot, hud HUD) {
	left := fmt.Sprintf(" %s ", strings.ToUpper(hud.Title))
	right := fmt.Sprintf("score %d  best %d  %dms ", snap.Score(), max(hud.Best, snap.Score()), snap.SpeedMs)

	if len(left)+len(right) <= l.Board.W {
		s.DrawText(l.Board.X, l.HUDLine, left, core.ColorYellow)
	}
	s.DrawText(l.Board.Right()-len(right), l.HUDLine, right, core.ColorWhite)
}

// DrawGameOver draws the game-over dialog in the middle of the board.
func DrawGameOver(s *core.Screen, l Layout, over snake.GameOver) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", over.Score),
		reasonText(over.Reason),
		"",
		"Enter to play again",
	}

	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	w += 4
	box := l.Board.Centered(min(w, l.Board.W), min(len(lines)+2, l.Board.H))

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.SetColor(x, y, ' ', core.ColorDefault)
		}
	}
	s.DrawBox(box, core.ColorRed)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorRed
		}
		s.DrawText(x, box.Y+1+i, line, c)
	}
}

// DrawTooSmall tells the player how large the terminal must be.
func DrawTooSmall(s *core.Screen, rules snake.Rules, app Appearance) {
	n := rules.CellsPerAxis()
	msg := fmt.Sprintf("Terminal too small: need %dx%d", n*app.CellWidth+2, n+4)
	s.DrawTextCentered(s.Height()/2, msg, core.ColorRed)
}

func reasonText(r snake.EndReason) string {
	switch r {
	case snake.ReasonSelfCollision:
		return "You ran into yourself"
	case snake.ReasonOutOfBounds:
		return "You hit the wall"
	default:
		return string(r)
	}
}
