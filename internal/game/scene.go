package game

import (
	"fmt"
	"strings"

	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/highscore"
	"github.com/farmtofeast/harvest-hustle/internal/level"
)

// The device font is 6 units wide per character.
const charW = 6

func centerX(text string) int {
	return core.Max(0, (core.DeviceW-len(text)*charW)/2)
}

func dishNeedsScroll(def level.Definition) bool {
	return len(def.Dish)*charW > 120
}

func methodText(m level.Method) string {
	switch m {
	case level.MethodTilt:
		return "Tilt"
	case level.MethodShake:
		return "Shake"
	case level.MethodTouch:
		return "Catch"
	case level.MethodRotate:
		return "Rotate"
	case level.MethodTree:
		return "ShakeTree"
	}
	return ""
}

func buildTitle() core.Scene {
	s := core.Scene{}
	for i, text := range []string{"HARVEST HUSTLE", "From Farm to Feast", "in 90 Seconds!"} {
		s.Labels = append(s.Labels, core.Label{Text: text, X: centerX(text), Y: 12 + i*14})
	}
	s.Labels = append(s.Labels, core.Label{Text: "[Press to Start]", X: centerX("[Press to Start]"), Y: 58})
	return s
}

func buildMode(st *State) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "SELECT MODE", X: 30, Y: 6})
	modes := []string{"EASY 90s", "MEDIUM 60s", "HARD 45s"}
	for i, mode := range modes {
		pre := "  "
		if i == int(st.Difficulty) {
			pre = "> "
		}
		s.Labels = append(s.Labels, core.Label{Text: pre + mode, X: 20, Y: 18 + i*12})
	}
	s.Labels = append(s.Labels, core.Label{Text: "[Rotate & Press]", X: 12, Y: 54})
	return s
}

func buildLevelSelect(st *State, catalog *level.Catalog) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "SELECT LEVEL", X: 28, Y: 5})

	// Window of four levels around the cursor.
	total := catalog.Count()
	start := core.Max(0, core.Min(st.LevelSelect-1, total-4))
	end := core.Min(start+4, total)

	y := 16
	for i := start; i < end; i++ {
		def, err := catalog.Get(i)
		if err != nil {
			continue
		}
		pre := "  "
		if i == st.LevelSelect {
			pre = "> "
		}
		name := def.Name
		if len(name) > 12 {
			name = name[:11] + "."
		}
		s.Labels = append(s.Labels, core.Label{Text: fmt.Sprintf("%sL%d:%s", pre, i+1, name), X: 4, Y: y})
		y += 10
	}

	if start > 0 {
		s.Labels = append(s.Labels, core.Label{Text: "^", X: 120, Y: 16})
	}
	if end < total {
		s.Labels = append(s.Labels, core.Label{Text: "v", X: 120, Y: 46})
	}
	s.Labels = append(s.Labels, core.Label{Text: "[Rotate & Press]", X: 12, Y: 56})
	return s
}

func buildIntro(st *State, def level.Definition, morePages bool) core.Scene {
	s := core.Scene{}

	title := fmt.Sprintf("LEVEL %d", st.Level+1)
	s.Labels = append(s.Labels, core.Label{Text: title, X: centerX(title), Y: 5})
	s.Labels = append(s.Labels, core.Label{Text: def.Name, X: centerX(def.Name), Y: 16})

	ings := def.Ingredients
	if len(ings) > 3 {
		if st.IntroPage == 0 {
			ings = ings[:2]
		} else {
			ings = ings[2:]
		}
		pg := fmt.Sprintf("(%d/2)", st.IntroPage+1)
		s.Labels = append(s.Labels, core.Label{Text: pg, X: 100, Y: 5})
	}

	spacing := 12
	if len(ings) == 3 {
		spacing = 10
	}
	y := 28
	for _, ing := range ings {
		name := ing.Kind.String()
		name = strings.ToUpper(name[:1]) + name[1:]
		text := fmt.Sprintf("%sx%d(%s)", name, ing.Need, methodText(ing.Method))
		w := 10 + len(text)*charW
		sx := (core.DeviceW - w) / 2
		s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteKind(ing.Kind.String()), X: float64(sx + 4), Y: float64(y + 4)})
		s.Labels = append(s.Labels, core.Label{Text: text, X: sx + 10, Y: y + 4})
		y += spacing
	}

	prompt := "[Press Start]"
	if morePages {
		prompt = "[Press: More]"
	}
	s.Labels = append(s.Labels, core.Label{Text: prompt, X: centerX(prompt), Y: y + 4})
	return s
}

func buildPlay(st *State, def level.Definition) core.Scene {
	s := core.Scene{Background: core.BackgroundTopDown}
	if def.View == level.ViewSide {
		s.Background = core.BackgroundSide
	}

	status := fmt.Sprintf("L%d %ds", st.Level+1, int(st.TimeLeft))
	s.Labels = append(s.Labels, core.Label{Text: status, X: 0, Y: 6})
	if st.Penalty > 0 {
		s.Labels = append(s.Labels, core.Label{Text: fmt.Sprintf("-%d", st.Penalty), X: 100, Y: 6})
	}

	if def.Waves {
		for _, row := range st.WaveRows {
			for x := 0; x < core.DeviceW; x += 16 {
				s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteWave, X: float64(x + 4), Y: float64(row + 4)})
			}
		}
	}

	for i := range st.Animals {
		a := &st.Animals[i]
		s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteKind(a.Kind.String()), X: a.X, Y: a.Y})
	}
	for i := range st.Trees {
		if st.Trees[i].Visible {
			s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteTree, X: st.Trees[i].X, Y: st.Trees[i].Y})
		}
	}
	for i := range st.Items {
		it := &st.Items[i]
		s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteKind(it.Kind.String()), X: it.X, Y: it.Y})
	}

	player := core.SpritePlayer
	if def.View == level.ViewSide {
		player = core.SpriteBasket
	}
	s.Sprites = append(s.Sprites, core.Sprite{Kind: player, X: st.PX, Y: st.PY})

	if st.TouchTarget != 0 {
		progress := core.ClampF((st.Now-st.TouchStart)/TouchTime, 0, 1)
		s.Bars = append(s.Bars, core.Bar{X: 104, Y: 0, W: 22, H: 5, Progress: progress})
	}

	if st.RotateTarget != 0 {
		text := fmt.Sprintf("Rotate!%d/%d", st.RotateCount, def.RotateThreshold())
		s.Labels = append(s.Labels, core.Label{Text: text, X: 35, Y: 6})
	}

	// Collection tally along the bottom edge.
	spacing, x := 40, 2
	if len(def.Ingredients) > 3 {
		spacing, x = 31, 0
	}
	for _, ing := range def.Ingredients {
		s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteKind(ing.Kind.String()), X: float64(x + 4), Y: 59})
		tally := fmt.Sprintf("%d/%d", st.Collected[ing.Kind], ing.Need)
		s.Labels = append(s.Labels, core.Label{Text: tally, X: x + 9, Y: 60})
		x += spacing
	}

	return s
}

func buildCooking(st *State, def level.Definition) core.Scene {
	s := core.Scene{}

	name := def.CookName
	if name == "" {
		name = "Cooking..."
	}
	progress := st.CookProgress
	secondPhase := def.Cooking == level.CookDouble && st.CookProgress >= 100
	if secondPhase {
		name = def.CookName2
		if name == "" {
			name = "Finishing..."
		}
		progress = st.CookProgress2
	}

	s.Labels = append(s.Labels, core.Label{Text: name, X: centerX(name), Y: 12})

	inst := "Hold button!"
	if secondPhase {
		inst = "Rotate encoder!"
	}
	s.Labels = append(s.Labels, core.Label{Text: inst, X: centerX(inst), Y: 28})

	s.Bars = append(s.Bars, core.Bar{X: 14, Y: 38, W: 100, H: 12, Progress: float64(progress) / 100})

	pct := fmt.Sprintf("%d%%", progress)
	s.Labels = append(s.Labels, core.Label{Text: pct, X: centerX(pct), Y: 58})
	return s
}

func buildClear(st *State, def level.Definition) core.Scene {
	s := core.Scene{}
	scroll := 0
	if dishNeedsScroll(def) {
		scroll = st.ScrollOffset
	}

	s.Labels = append(s.Labels, core.Label{Text: "LEVEL CLEAR!", X: centerX("LEVEL CLEAR!") - scroll, Y: 8})

	points := fmt.Sprintf("+%dpts", st.LevelScore)
	s.Labels = append(s.Labels, core.Label{Text: points, X: centerX(points) - scroll, Y: 20})

	sx := (core.DeviceW-len(def.Ingredients)*12)/2 - scroll
	for _, ing := range def.Ingredients {
		s.Sprites = append(s.Sprites, core.Sprite{Kind: core.SpriteKind(ing.Kind.String()), X: float64(sx + 4), Y: 34})
		sx += 12
	}

	s.Labels = append(s.Labels, core.Label{Text: def.Dish, X: centerX(def.Dish) - scroll, Y: 46})
	s.Labels = append(s.Labels, core.Label{Text: "[Press Next]", X: 28, Y: 58})
	return s
}

func buildOver(st *State) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "GAME OVER", X: centerX("GAME OVER"), Y: 8})

	score := fmt.Sprintf("Score: %d", st.Score)
	s.Labels = append(s.Labels, core.Label{Text: score, X: centerX(score), Y: 22})

	retryPre, restartPre := "  ", "  "
	if st.OverChoice == 0 {
		retryPre = "> "
	} else {
		restartPre = "> "
	}
	s.Labels = append(s.Labels, core.Label{Text: retryPre + "Retry Level", X: 24, Y: 40})
	s.Labels = append(s.Labels, core.Label{Text: restartPre + "Restart Game", X: 24, Y: 54})
	return s
}

func buildWin(st *State) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "YOU WIN!", X: centerX("YOU WIN!"), Y: 10})
	s.Labels = append(s.Labels, core.Label{Text: "MASTER CHEF!", X: centerX("MASTER CHEF!"), Y: 24})

	score := fmt.Sprintf("Final Score: %d", st.Score)
	s.Labels = append(s.Labels, core.Label{Text: score, X: centerX(score), Y: 40})
	s.Labels = append(s.Labels, core.Label{Text: "[Press Continue]", X: centerX("[Press Continue]"), Y: 56})
	return s
}

func buildInitials(st *State) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "NEW HIGH SCORE!", X: centerX("NEW HIGH SCORE!"), Y: 8})

	score := fmt.Sprintf("Score: %d", st.Score)
	s.Labels = append(s.Labels, core.Label{Text: score, X: centerX(score), Y: 22})
	s.Labels = append(s.Labels, core.Label{Text: "Enter Initials:", X: centerX("Enter Initials:"), Y: 36})

	var b strings.Builder
	for i := 0; i < 3; i++ {
		switch {
		case i < len(st.Initials):
			b.WriteByte(st.Initials[i])
		case i == len(st.Initials):
			b.WriteByte(byte('A' + st.InitialChar))
		default:
			b.WriteByte('_')
		}
		b.WriteByte(' ')
	}
	entry := b.String()
	s.Labels = append(s.Labels, core.Label{Text: entry, X: centerX(entry), Y: 50})
	s.Labels = append(s.Labels, core.Label{Text: "^", X: centerX(entry) + len(st.Initials)*12, Y: 58})
	return s
}

func buildScores(board []highscore.Entry) core.Scene {
	s := core.Scene{}
	s.Labels = append(s.Labels, core.Label{Text: "HIGH SCORES", X: centerX("HIGH SCORES"), Y: 8})

	y := 22
	for i, e := range board {
		text := fmt.Sprintf("%d. %s %4d", i+1, e.Initials, e.Score)
		s.Labels = append(s.Labels, core.Label{Text: text, X: 30, Y: y})
		y += 12
	}

	s.Labels = append(s.Labels, core.Label{Text: "[Press Continue]", X: centerX("[Press Continue]"), Y: 58})
	return s
}
