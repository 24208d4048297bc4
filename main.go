package main

import (
	"flag"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/deitrix/tetris-srs/board"
	"github.com/deitrix/tetris-srs/cell"
	"github.com/deitrix/tetris-srs/geom"
	"github.com/deitrix/tetris-srs/log"
	"github.com/deitrix/tetris-srs/piece"
	"github.com/deitrix/tetris-srs/round"
	"github.com/deitrix/tetris-srs/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	// cellSize is the size of each board cell in pixels
	cellSize = sprite.Size
	// previewCellSize is the size of each cell in the queue panel
	previewCellSize = 20
	// previewSlot is the vertical space given to each queued piece
	previewSlot = 3 * previewCellSize
	// boardX and boardY are the top-left corner of the field
	boardX = cellSize
	boardY = cellSize
	// panelX is the left edge of the side panel
	panelX = boardX + board.Cols*cellSize + cellSize
	// ghostOpacity is the opacity of the landing preview
	ghostOpacity = 96

	screenWidth  = panelX + 8*cellSize
	screenHeight = boardY + board.Rows*cellSize + cellSize
)

type Game struct {
	// Round is the rules engine; the game only feeds it input and draws its state
	Round *round.Round
	// TPS is the number of updates per second, used to convert frames into elapsed time
	TPS int
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
}

func NewGame(cfg round.Config, src piece.Source, tps int) *Game {
	return &Game{
		Round: round.New(cfg, src),
		TPS:   tps,
	}
}

func (g *Game) Update() error {
	pollCommands(g.Round)
	if g.Round.Quit() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(keyDebug) {
		g.ShowDebug = !g.ShowDebug
	}
	if inpututil.IsKeyJustPressed(keyCopy) {
		g.copyBoard()
	}

	g.Round.Tick(g.frameTime())
	return nil
}

// frameTime is the game time that passes in one update.
func (g *Game) frameTime() time.Duration {
	return time.Second / time.Duration(g.TPS)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawCells(screen)
	g.drawGridLines(screen)
	if !g.Round.Over() {
		g.renderPiece(screen, sprite.Ghost, g.Round.Ghost(), ghostOpacity)
		g.renderPiece(screen, sprite.Cell, g.Round.Current(), 255)
	}
	g.drawQueue(screen)
	g.drawScore(screen)
	g.drawHelp(screen)
	g.drawBanner(screen)
	g.drawDebug(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) drawCells(screen *ebiten.Image) {
	b := g.Round.Board()
	for y := 0; y < board.Rows; y++ {
		for x := 0; x < board.Cols; x++ {
			t, ok := piece.FromMarker(b.Cell(x, y))
			if !ok {
				continue
			}
			drawCell(screen, sprite.Cell, boardX+x*cellSize, boardY+y*cellSize, cellSize, cellSize, t.Tint(), 255)
		}
	}
}

func (g *Game) drawGridLines(screen *ebiten.Image) {
	c := cell.Grid.NRGBA()
	const w, h = board.Cols * cellSize, board.Rows * cellSize
	for x := 0; x <= board.Cols; x++ {
		px := float32(boardX + x*cellSize)
		vector.StrokeLine(screen, px, boardY, px, boardY+h, 1, c, false)
	}
	for y := 0; y <= board.Rows; y++ {
		py := float32(boardY + y*cellSize)
		vector.StrokeLine(screen, boardX, py, boardX+w, py, 1, c, false)
	}
}

// renderPiece draws the piece's cells that lie inside the field.
func (g *Game) renderPiece(screen, img *ebiten.Image, p piece.Piece, opacity uint8) {
	for _, c := range p.Cells(geom.Point{}) {
		if c.Y < 0 {
			continue
		}
		drawCell(screen, img, boardX+c.X*cellSize, boardY+c.Y*cellSize, cellSize, cellSize, p.Type.Tint(), opacity)
	}
}

func (g *Game) drawQueue(screen *ebiten.Image) {
	drawText(screen, sprite.Regular, "Next", 20, panelX, boardY+16, color.White)
	top := boardY + 32
	for i, p := range g.Round.Upcoming() {
		lo, _ := p.Bounds()
		w, h := p.Size()
		xoff := panelX + 2*cellSize - w*previewCellSize/2
		yoff := top + i*previewSlot + previewSlot/2 - h*previewCellSize/2
		for _, b := range p.Blocks {
			x := xoff + (b.X-lo.X)*previewCellSize
			y := yoff + (b.Y-lo.Y)*previewCellSize
			drawCell(screen, sprite.Cell, x, y, previewCellSize, previewCellSize, p.Type.Tint(), 255)
		}
	}
}

func (g *Game) drawScore(screen *ebiten.Image) {
	y := boardY + 32 + round.MaxPreview*previewSlot + 24
	drawText(screen, sprite.Regular, "Score", 20, panelX, y, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", g.Round.Score()), 20, panelX+3*cellSize, y, color.White)
	drawText(screen, sprite.Regular, "Lines", 20, panelX, y+28, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", g.Round.Lines()), 20, panelX+3*cellSize, y+28, color.White)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	y := boardY + 32 + round.MaxPreview*previewSlot + 96
	drawText(screen, sprite.Regular, strings.Join(helpText, "\n"), 14, panelX, y, color.Gray{Y: 200})
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	var title string
	var c color.Color
	switch g.Round.State() {
	case round.Paused:
		title, c = "Paused", cell.Yellow.NRGBA()
	case round.GameOver:
		title, c = "Game Over!", cell.Red.NRGBA()
	default:
		return
	}
	cx := boardX + board.Cols*cellSize/2
	cy := boardY + board.Rows*cellSize/2
	vector.DrawFilledRect(screen, boardX, float32(cy-48), board.Cols*cellSize, 80, color.NRGBA{A: 200}, false)
	drawText(screen, sprite.Regular, title, 30, cx-measure(sprite.Regular, title, 30)/2, cy-10, c)
	const hint = "Press R to Restart"
	drawText(screen, sprite.Regular, hint, 18, cx-measure(sprite.Regular, hint, 18)/2, cy+20, color.White)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if !g.ShowDebug {
		return
	}
	cur := g.Round.Current()
	drawText(screen, sprite.Monospace, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Round: %s", g.Round.ID()),
		fmt.Sprintf("State: %s", g.Round.State()),
		fmt.Sprintf("Piece: %s at %s, rotation %d", cur.Type, cur.Pos, cur.Rotation),
		fmt.Sprintf("Gravity: %s", g.Round.Config().Gravity),
	}, "\n"), 12, boardX+4, boardY+16, color.White)
}

// copyBoard puts a text snapshot of the locked cells on the system clipboard.
func (g *Game) copyBoard() {
	b := g.Round.Board()
	if err := clipboard.WriteAll(b.String()); err != nil {
		log.Warn("failed to copy board: %v", err)
		return
	}
	log.Info("copied board of round %s to clipboard", g.Round.ID())
}

type faceKey struct {
	font *opentype.Font
	size float64
}

var fontFaceCache = make(map[faceKey]font.Face)

func face(f *opentype.Font, size float64) font.Face {
	k := faceKey{font: f, size: size}
	if ff, ok := fontFaceCache[k]; ok {
		return ff
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal("failed to create face: %v", err)
	}
	fontFaceCache[k] = ff
	return ff
}

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	text.Draw(img, t, face(f, size), x, y, c)
}

func measure(f *opentype.Font, t string, size float64) int {
	return text.BoundString(face(f, size), t).Dx()
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	def := round.DefaultConfig()
	var (
		preview   = flag.Int("preview", def.Preview, "number of upcoming pieces to show (1-5)")
		gravity   = flag.Duration("gravity", def.Gravity, "time between automatic drops")
		dasDelay  = flag.Duration("das-delay", def.RepeatDelay, "how long a sideways key is held before it repeats")
		dasRepeat = flag.Duration("das-repeat", def.RepeatInterval, "time between repeated sideways moves")
		seed      = flag.Uint64("seed", 0, "random seed for piece selection, 0 picks one from the clock")
		logLevel  = flag.String("log-level", "info", "log level (error, warn, info, debug, trace)")
		tps       = flag.Int("tps", 60, "updates per second")
	)
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("invalid log level: %v", err)
	}
	log.SetLevel(level)

	if err := sprite.Load(); err != nil {
		log.Fatal("failed to load sprites: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	if *tps <= 0 {
		*tps = 60
	}
	cfg := round.Config{
		Preview:        *preview,
		Gravity:        *gravity,
		RepeatDelay:    *dasDelay,
		RepeatInterval: *dasRepeat,
	}
	log.Debug("seed %d, config %+v", *seed, cfg.Normalize())

	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	if err := ebiten.RunGame(NewGame(cfg, piece.NewRandSource(*seed), *tps)); err != nil {
		log.Fatal("failed to run game: %v", err)
	}
}
