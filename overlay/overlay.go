// Package overlay shows evaluated scenarios in an ebiten window, one screen at a time, re-evaluating every frame
// so animated scalars play live.
package overlay

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/solarlune/rotation3d/scenario"
)

const margin = 16

var (
	backgroundColor = color.RGBA{30, 34, 40, 255}
	textColor       = color.RGBA{230, 230, 230, 255}
	helpColor       = color.RGBA{140, 150, 160, 255}
)

// Game is the ebiten.Game driving the overlay.
type Game struct {
	Width, Height int

	scenarios []*scenario.Scenario
	current   int
	evaluator *scenario.Evaluator
	animator  *scenario.Animator
	result    *scenario.Result
	log       *zap.Logger
}

// NewGame creates a Game showing the given scenarios, starting with the first.
func NewGame(scenarios []*scenario.Scenario, width, height int, log *zap.Logger) (*Game, error) {

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("overlay: no scenarios to show")
	}

	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{
		Width:     width,
		Height:    height,
		scenarios: scenarios,
		evaluator: scenario.NewEvaluator(log),
		log:       log,
	}

	if err := g.show(0); err != nil {
		return nil, err
	}

	return g, nil

}

func (g *Game) show(index int) error {

	count := len(g.scenarios)
	g.current = ((index % count) + count) % count

	sc := g.scenarios[g.current]
	g.animator = scenario.NewAnimator(sc)
	g.log.Info("showing scenario", zap.String("scenario", sc.Name), zap.Bool("animated", g.animator.Animated()))

	return g.evaluate()

}

func (g *Game) evaluate() error {
	res, err := g.evaluator.Evaluate(g.scenarios[g.current], g.animator.Values())
	if err != nil {
		return err
	}
	g.result = res
	return nil
}

func (g *Game) Update() error {

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		return g.show(g.current + 1)
	} else if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		return g.show(g.current - 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.animator.Reset()
	}

	if !g.animator.Animated() {
		return nil
	}

	g.animator.Update(1 / float32(ebiten.TPS()))

	return g.evaluate()

}

func (g *Game) Draw(screen *ebiten.Image) {

	screen.Fill(backgroundColor)

	// Text is drawn from its baseline
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()

	for _, cell := range scenario.Cells(g.result) {
		text.Draw(screen, cell.Text, basicfont.Face7x13, margin+cell.X, margin+ascent+cell.Y, textColor)
	}

	help := fmt.Sprintf("%d / %d   Left, Right: Switch scenario   Space: Restart animation   Esc: Quit", g.current+1, len(g.scenarios))
	text.Draw(screen, help, basicfont.Face7x13, margin, g.Height-margin, helpColor)

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.Width, g.Height
}
