package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/wellfall/internal/draw"
	"github.com/tomz197/wellfall/internal/game"
)

// drawUI draws the text overlay for the current phase.
func drawUI(ctrl *Controller, v *view, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch ctrl.Phase() {
	case PhaseIdle:
		drawIdleScreen(ctrl, cw, centerX, centerY)
	case PhaseRunning:
		drawHUD(ctrl, cw, termWidth, termHeight)
		drawLabels(v, cw, canvas)
		drawBanner(v, cw, centerX, termWidth)
	case PhasePaused:
		drawHUD(ctrl, cw, termWidth, termHeight)
		drawCentered(cw, centerX, centerY-1, "P A U S E D")
		drawCentered(cw, centerX, centerY+1, "SPACE to resume, R to reset, Q to quit")
	case PhaseWon:
		drawWinScreen(ctrl, cw, centerX, centerY)
	case PhaseLost:
		drawLostScreen(ctrl, cw, centerX, centerY)
	}
}

// drawCentered writes text centered on the given column.
func drawCentered(cw *draw.ChunkWriter, centerX, row int, text string) {
	cw.WriteAt(centerX-len(text)/2, row, text)
}

// drawIdleScreen draws the title screen with tier selection and bests.
func drawIdleScreen(ctrl *Controller, cw *draw.ChunkWriter, centerX, centerY int) {
	s := ctrl.Session

	drawCentered(cw, centerX, centerY-6, "W E L L F A L L")
	drawCentered(cw, centerX, centerY-4, "Catch the falling cans and fill the well before time runs out.")

	for i, d := range game.Difficulties {
		settings := game.SettingsFor(d)
		marker := "  "
		if d == s.Difficulty {
			marker = "> "
		}
		line := fmt.Sprintf("%s[%d] %-7s %3ds  best %d%%", marker, i+1, settings.Label, settings.Timer, s.BestPct[d])
		drawCentered(cw, centerX, centerY-1+i, line)
	}

	if s.BestCombo > 0 {
		drawCentered(cw, centerX, centerY+3, fmt.Sprintf("Best combo: %d", s.BestCombo))
	}

	drawCentered(cw, centerX, centerY+5, "SPACE to start")
	drawCentered(cw, centerX, centerY+6, "A/D or arrows move, click or drag the paddle, tap cans to grab them")
	drawCentered(cw, centerX, centerY+7, "M mute, R reset, Q quit")
}

// drawHUD draws the in-game HUD: score and combo, the countdown, and the
// well fill bar along the bottom.
func drawHUD(ctrl *Controller, cw *draw.ChunkWriter, termWidth, termHeight int) {
	s := ctrl.Session

	scoreText := fmt.Sprintf("Score: %d", s.Score)
	cw.WriteAt(2, 1, scoreText)

	col := 2 + len(scoreText) + 2
	if s.Combo > 1 {
		comboText := fmt.Sprintf("x%d combo", s.Combo)
		cw.WriteAt(col, 1, comboText)
		col += len(comboText) + 2
	}
	if s.BestCombo > 1 {
		cw.WriteAt(col, 1, fmt.Sprintf("(best x%d)", s.BestCombo))
	}

	timerText := fmt.Sprintf("%ds", s.Timer)
	cw.WriteAt(termWidth-len(timerText)-1, 1, timerText)

	drawCentered(cw, termWidth/2, 1, s.Settings.Label)

	drawFillBar(ctrl, cw, termWidth, termHeight)
}

// drawFillBar draws the well fill progress along the bottom row.
func drawFillBar(ctrl *Controller, cw *draw.ChunkWriter, termWidth, termHeight int) {
	s := ctrl.Session
	pct := s.ProgressPercent()
	goal := int(s.Settings.ProgressGoal)

	barWidth := termWidth - 14
	if barWidth < 10 {
		barWidth = 10
	}
	filled := barWidth * pct / goal
	if filled > barWidth {
		filled = barWidth
	}

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled) + "]"
	cw.WriteAt(2, termHeight, bar)
	cw.WriteAt(2+len([]rune(bar))+1, termHeight, fmt.Sprintf("%d/%d%%", pct, goal))
}

// drawLabels draws floating feedback labels at their logical positions.
func drawLabels(v *view, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	for _, l := range v.labels {
		col, row := canvas.LogicalToTerminal(l.x, l.y)
		text := l.text
		if l.negative {
			text = "(" + text + ")"
		}
		cw.WriteAt(col-len(text)/2, row, text)
	}
}

// drawBanner draws the milestone fact banner near the top of the screen.
func drawBanner(v *view, cw *draw.ChunkWriter, centerX, termWidth int) {
	if v.bannerTTL <= 0 {
		return
	}
	fact := v.bannerFact
	if len(fact) > termWidth-4 {
		fact = fact[:termWidth-4]
	}
	drawCentered(cw, centerX, 3, fact)
}

// drawWinScreen draws the celebration screen.
func drawWinScreen(ctrl *Controller, cw *draw.ChunkWriter, centerX, centerY int) {
	s := ctrl.Session

	drawCentered(cw, centerX, centerY-3, "W E L L   F I L L E D !")
	drawCentered(cw, centerX, centerY-1, fmt.Sprintf("Score: %d   Best combo: %d", s.Score, s.BestCombo))
	drawCentered(cw, centerX, centerY, fmt.Sprintf("Filled %d%% on %s with %ds to spare", s.FinalPercent(), s.Settings.Label, s.Timer))
	drawCentered(cw, centerX, centerY+3, "SPACE to play again, R for menu, Q to quit")
}

// drawLostScreen draws the out-of-time screen.
func drawLostScreen(ctrl *Controller, cw *draw.ChunkWriter, centerX, centerY int) {
	s := ctrl.Session

	drawCentered(cw, centerX, centerY-3, "T I M E ' S   U P")
	drawCentered(cw, centerX, centerY-1, fmt.Sprintf("The well reached %d%% on %s", s.FinalPercent(), s.Settings.Label))
	drawCentered(cw, centerX, centerY, fmt.Sprintf("Score: %d   Best for this tier: %d%%", s.Score, s.BestPct[s.Difficulty]))
	drawCentered(cw, centerX, centerY+3, "SPACE to try again, R for menu, Q to quit")
}
