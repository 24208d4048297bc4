package round

import (
	"time"

	"github.com/deitrix/tetris-srs/board"
	"github.com/deitrix/tetris-srs/geom"
	"github.com/deitrix/tetris-srs/log"
	"github.com/deitrix/tetris-srs/piece"
	"github.com/google/uuid"
)

type State int

const (
	Active State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Command is a discrete input from the player.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	TogglePause
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case Rotate:
		return "Rotate"
	case HardDrop:
		return "HardDrop"
	case TogglePause:
		return "TogglePause"
	case Restart:
		return "Restart"
	case Quit:
		return "Quit"
	}
	return "Unknown"
}

const (
	// lineScore is awarded for every cleared line.
	lineScore = 100
	// tripleBonus and tetrisBonus are added on top when a single lock clears three or four lines.
	tripleBonus = 100
	tetrisBonus = 200
)

// LineScore returns the points for clearing n lines with a single lock.
func LineScore(n int) int {
	score := n * lineScore
	switch n {
	case 3:
		score += tripleBonus
	case 4:
		score += tetrisBonus
	}
	return score
}

var (
	left  = geom.Point{X: -1}
	right = geom.Point{X: 1}
	down  = geom.Point{Y: 1}
)

// Round owns the board, the active piece and the upcoming queue, and advances them in response to
// commands and elapsed time. It is not safe for concurrent use; a single game loop drives it.
type Round struct {
	cfg    Config
	source piece.Source
	id     uuid.UUID

	board    board.Board
	current  piece.Piece
	upcoming []piece.Piece

	score int
	lines int
	state State
	quit  bool

	// gravityTimer is the time since the piece last fell.
	gravityTimer time.Duration
	// held is the movement command whose key is down, if holding is set. holdTimer starts at
	// -RepeatDelay when the key goes down.
	held      Command
	holding   bool
	holdTimer time.Duration
}

// New starts a round. Types of new pieces are drawn from source.
func New(cfg Config, source piece.Source) *Round {
	r := &Round{
		cfg:    cfg.Normalize(),
		source: source,
	}
	r.start()
	return r
}

func (r *Round) start() {
	r.id = uuid.New()
	r.board.Reset()
	r.score = 0
	r.lines = 0
	r.state = Active
	r.gravityTimer = 0
	r.clearHold()

	r.upcoming = r.upcoming[:0]
	for i := 0; i < r.cfg.Preview; i++ {
		r.upcoming = append(r.upcoming, piece.New(r.source.Next()))
	}
	r.current = r.nextPiece()
	log.Info("round %s started", r.id)
}

// nextPiece pops the head of the queue and refills the tail.
func (r *Round) nextPiece() piece.Piece {
	p := r.upcoming[0]
	copy(r.upcoming, r.upcoming[1:])
	r.upcoming[len(r.upcoming)-1] = piece.New(r.source.Next())
	return p
}

func (r *Round) clearHold() {
	r.holding = false
	r.holdTimer = 0
}

func (r *Round) hold(c Command) {
	r.held = c
	r.holding = true
	r.holdTimer = -r.cfg.RepeatDelay
}

// Press applies a command. Quit, TogglePause and Restart are always accepted; everything else is
// ignored unless the round is active.
func (r *Round) Press(c Command) {
	switch c {
	case Quit:
		r.quit = true
		return
	case Restart:
		log.Info("round %s restarted at score %d", r.id, r.score)
		r.start()
		return
	case TogglePause:
		r.togglePause()
		return
	}

	if r.state != Active {
		return
	}

	switch c {
	case MoveLeft:
		r.current.Move(left, &r.board)
		r.hold(c)
	case MoveRight:
		r.current.Move(right, &r.board)
		r.hold(c)
	case SoftDrop:
		r.current.Move(down, &r.board)
		r.hold(c)
	case Rotate:
		r.current.Rotate(&r.board)
	case HardDrop:
		r.hardDrop()
	}
}

// Release ends the auto-repeat of c if it is the held command.
func (r *Round) Release(c Command) {
	if r.holding && r.held == c {
		r.clearHold()
	}
}

func (r *Round) togglePause() {
	switch r.state {
	case Active:
		r.state = Paused
		// held keys do not carry over a pause
		r.clearHold()
	case Paused:
		r.state = Active
	default:
		return
	}
	log.Debug("round %s %s", r.id, r.state)
}

// Tick advances the round by dt: auto-repeat first, then gravity. Nothing happens unless the
// round is active.
func (r *Round) Tick(dt time.Duration) {
	if r.state != Active {
		return
	}
	r.autoRepeat(dt)

	r.gravityTimer += dt
	if r.gravityTimer > r.cfg.Gravity {
		r.gravityTimer = 0
		if !r.current.Move(down, &r.board) {
			r.lockAndNext()
		}
	}
}

func (r *Round) autoRepeat(dt time.Duration) {
	if !r.holding {
		return
	}
	var d geom.Point
	switch r.held {
	case MoveLeft:
		d = left
	case MoveRight:
		d = right
	default:
		return
	}
	r.holdTimer += dt
	for r.holdTimer >= r.cfg.RepeatInterval {
		r.current.Move(d, &r.board)
		r.holdTimer -= r.cfg.RepeatInterval
	}
}

func (r *Round) hardDrop() {
	for r.current.Move(down, &r.board) {
	}
	r.lockAndNext()
}

// lockAndNext writes the active piece into the board, clears full rows, scores them and promotes
// the next piece. The round ends if the promoted piece does not fit.
func (r *Round) lockAndNext() {
	for _, c := range r.current.Cells(geom.Point{}) {
		if c.Y >= 0 {
			r.board.Set(c.X, c.Y, r.current.Type.Marker())
		}
	}

	n := r.board.ClearFullRows()
	r.score += LineScore(n)
	r.lines += n
	log.Debug("round %s locked %s at %s, cleared %d", r.id, r.current.Type, r.current.Pos, n)

	r.current = r.nextPiece()
	if !r.current.Legal(&r.board) {
		r.state = GameOver
		r.clearHold()
		log.Info("round %s over, score %d, lines %d", r.id, r.score, r.lines)
	}
}

// Board returns a copy of the locked cells.
func (r *Round) Board() board.Board {
	return r.board
}

func (r *Round) Current() piece.Piece {
	return r.current
}

// Ghost returns where the active piece would land if dropped now.
func (r *Round) Ghost() piece.Piece {
	return r.current.Dropped(&r.board)
}

// Upcoming returns the queued pieces, next first.
func (r *Round) Upcoming() []piece.Piece {
	return append([]piece.Piece(nil), r.upcoming...)
}

func (r *Round) Score() int {
	return r.score
}

// Lines returns the number of lines cleared this round.
func (r *Round) Lines() int {
	return r.lines
}

func (r *Round) State() State {
	return r.state
}

func (r *Round) Paused() bool {
	return r.state == Paused
}

func (r *Round) Over() bool {
	return r.state == GameOver
}

// Quit reports whether the player asked to leave.
func (r *Round) Quit() bool {
	return r.quit
}

// ID identifies the current round in logs. It changes on restart.
func (r *Round) ID() uuid.UUID {
	return r.id
}

func (r *Round) Config() Config {
	return r.cfg
}
