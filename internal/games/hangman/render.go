package hangman

import (
	"fmt"
	"strings"

	"github.com/shiraezri/hanging-man/internal/core"
	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
)

const (
	minWidth  = 54
	minHeight = 17

	boxWidth  = 52
	boxHeight = 11
	panelW    = 30

	gallowsStages = 7
)

// gallows is the empty scaffold, stage 1.
var gallows = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

type bodyPart struct {
	x, y int
	r    rune
}

// bodyParts are added one per stage after the first: head, body, arms, legs.
var bodyParts = []bodyPart{
	{2, 2, 'O'},
	{2, 3, '|'},
	{1, 3, '/'},
	{3, 3, '\\'},
	{1, 4, '/'},
	{3, 4, '\\'},
}

// GallowsStage maps the wrong-guess count to a drawing stage in [1, 7].
// With the default budget of 6 it is min(wrong+1, 7).
func GallowsStage(wrong, maxWrong int) int {
	if maxWrong <= 0 {
		maxWrong = engine.DefaultMaxWrongGuesses
	}
	switch {
	case wrong <= 0:
		return 1
	case wrong >= maxWrong:
		return gallowsStages
	}
	return 1 + wrong*(gallowsStages-1)/maxWrong
}

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boxX := core.Clamp((g.screenW-boxWidth)/2, 0, g.screenW)
	boxY := 2

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(boxX, boxY, boxWidth, boxHeight), core.ColorGray)

	if g.state == nil {
		dst.DrawTextCenteredColor(boxY+boxHeight/2, fit(g.message, boxWidth-2), core.ColorYellow)
		dst.DrawTextCentered(boxY+boxHeight+1, "←/→ choose length")
		return
	}

	g.renderGallows(dst, boxX+3, boxY+2)
	g.renderPanel(dst, boxX+boxWidth-panelW-2, boxY+2)
	g.renderAlphabet(dst, boxY+boxHeight+1)

	if g.message != "" {
		dst.DrawTextCenteredColor(boxY+boxHeight+3, fit(g.message, g.screenW), core.ColorYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderHUD draws the title and the player line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, "H A N G M A N", core.ColorCyan)

	name := g.playerName
	if name == "" {
		name = "-"
	}
	dst.DrawTextCentered(1, fit(fmt.Sprintf("Player: %s   Length: ◀ %d ▶", name, g.length), g.screenW))
}

// renderGallows draws the scaffold and the body parts for the current stage.
func (g *Game) renderGallows(dst *core.Screen, x, y int) {
	for i, line := range gallows {
		dst.DrawTextColor(x, y+i, line, core.ColorWhite)
	}

	stage := GallowsStage(g.state.WrongGuesses, g.state.MaxWrong)
	color := core.ColorYellow
	if g.state.Status == engine.StatusLost {
		color = core.ColorRed
	}
	for _, p := range bodyParts[:stage-1] {
		dst.SetCell(x+p.x, y+p.y, core.Cell{Rune: p.r, Color: color})
	}
}

// renderPanel draws the word, the counters and the end-of-round banner.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	st := g.state

	// Word, letters spaced out; a lost round shows the missed letters in red
	for i := 0; i < st.Target.Len(); i++ {
		cell := core.Cell{Rune: '_', Color: core.ColorWhite}
		switch {
		case st.Revealed[i]:
			cell = core.Cell{Rune: rune(st.Target.At(i)), Color: core.ColorBrightGreen}
		case st.Status == engine.StatusLost:
			cell = core.Cell{Rune: rune(st.Target.At(i)), Color: core.ColorRed}
		}
		dst.SetCell(x+i*2, y+1, cell)
	}

	wrongColor := core.ColorDefault
	if st.WrongGuesses > 0 {
		wrongColor = core.ColorRed
	}
	dst.DrawTextColor(x, y+3, fmt.Sprintf("Wrong: %d/%d", st.WrongGuesses, st.MaxWrong), wrongColor)
	dst.DrawText(x, y+4, fit(fmt.Sprintf("Score: %d | Total: %d", g.score.Round(), g.score.Total()), panelW))

	if !st.Status.Terminal() {
		return
	}
	bannerColor := core.ColorBrightGreen
	if st.Status == engine.StatusLost {
		bannerColor = core.ColorBrightRed
	}
	dst.DrawTextColor(x, y+6, fit(g.banner(), panelW), bannerColor)
	dst.DrawText(x, y+7, fit("The word was: "+string(st.Target), panelW))
}

// renderAlphabet shows every letter, colored by whether it was tried and found.
func (g *Game) renderAlphabet(dst *core.Screen, y int) {
	width := len(engine.Alphabet)*2 - 1
	x := (g.screenW - width) / 2
	target := string(g.state.Target)

	for i := 0; i < len(engine.Alphabet); i++ {
		l := engine.Letter(engine.Alphabet[i])
		color := core.ColorDefault
		if g.state.HasGuessed(l) {
			color = core.ColorRed
			if strings.IndexByte(target, byte(l)) >= 0 {
				color = core.ColorGreen
			}
		}
		dst.SetCell(x+i*2, y, core.Cell{Rune: rune(l), Color: color})
	}
}

// fit truncates s to at most n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if n < 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}
