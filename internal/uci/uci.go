// Package uci implements the Universal Chess Interface text protocol
// over stdin/stdout, the thin driver spec.md's component table calls
// the "Protocol front-end".
package uci

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mkjm2/lishex/internal/board"
	"github.com/mkjm2/lishex/internal/engine"
	"github.com/mkjm2/lishex/internal/logging"
)

// UCI drives one engine.Engine over the UCI text protocol.
type UCI struct {
	engine   *engine.Engine
	keys     *board.Keys
	position *board.Position

	searching     bool
	searchDone    chan struct{}
	stopRequested atomic.Bool

	useColor bool
}

// New creates a UCI handler wrapping eng. Color output for the `d`
// command is enabled only when stdout is a real terminal, the
// go-isatty gate the teacher's debug tooling doesn't need but a
// colorized board printer does.
func New(eng *engine.Engine) *UCI {
	keys := board.DefaultKeys()
	pos, _ := board.ParseFEN(board.StartFEN, keys)
	return &UCI{
		engine:   eng,
		keys:     keys,
		position: pos,
		useColor: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	u.engine.SetPosition(u.position)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleQuit()
		case "setoption":
			u.handleSetOption(args)
		case "d", "print":
			u.printBoard()
		case "perft":
			u.handlePerft(args)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name Lishex")
	fmt.Println("id author the lishex project")
	fmt.Println()
	fmt.Println("option name Hash type spin default 64 min 1 max 4096")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.engine.NewGame()
	u.position, _ = board.ParseFEN(board.StartFEN, u.keys)
	u.engine.SetPosition(u.position)
}

// handlePosition parses:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.position, _ = board.ParseFEN(board.StartFEN, u.keys)
		moveStart = 1
		for i, a := range args {
			if a == "moves" {
				moveStart = i + 1
				break
			}
		}
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		fenStr := strings.Join(args[1:fenEnd], " ")
		pos, err := board.ParseFEN(fenStr, u.keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
		u.position = pos
		moveStart = fenEnd
		if moveStart < len(args) && args[moveStart] == "moves" {
			moveStart++
		} else {
			moveStart = len(args)
		}
	default:
		return
	}

	for _, moveStr := range args[moveStart:] {
		m := u.parseMove(moveStr)
		if m == board.NoMove {
			fmt.Fprintf(os.Stderr, "info string invalid move: %s\n", moveStr)
			break
		}
		if !u.position.MakeMove(m) {
			fmt.Fprintf(os.Stderr, "info string illegal move: %s\n", moveStr)
			break
		}
	}

	u.engine.SetPosition(u.position)
}

// parseMove resolves a UCI long-algebraic string ("e2e4", "e7e8q") to a
// legal move at the current position, by generating legal moves and
// matching on origin/destination/promotion rather than synthesizing
// the encoding directly — a typo'd UCI string should fail to match
// anything rather than construct a move the position never offered.
func (u *UCI) parseMove(moveStr string) board.Move {
	if len(moveStr) < 4 {
		return board.NoMove
	}

	fromFile := int(moveStr[0] - 'a')
	fromRank := int(moveStr[1] - '1')
	toFile := int(moveStr[2] - 'a')
	toRank := int(moveStr[3] - '1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 ||
		toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return board.NoMove
	}

	from := board.NewSquare(fromFile, fromRank)
	to := board.NewSquare(toFile, toRank)

	var promo board.PieceType
	if len(moveStr) >= 5 {
		switch moveStr[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		}
	}

	moves := u.position.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promo != board.NoPieceType {
			if m.IsPromotion() && m.Promotion() == promo {
				return m
			}
			continue
		}
		if !m.IsPromotion() {
			return m
		}
	}
	return board.NoMove
}

// handleGo parses "go" parameters and runs the search on a background
// goroutine so Run's read loop can still see a "stop" command.
func (u *UCI) handleGo(args []string) {
	limits := u.parseGoLimits(args)

	u.engine.OnInfo(func(info engine.Info) {
		u.sendInfo(info)
	})

	u.searching = true
	u.stopRequested.Store(false)
	u.searchDone = make(chan struct{})

	go func() {
		defer close(u.searchDone)
		m, _ := u.engine.Go(limits)
		u.searching = false
		if m == board.NoMove {
			fmt.Println("bestmove 0000")
			return
		}
		fmt.Printf("bestmove %s\n", m.String())
	}()
}

func (u *UCI) parseGoLimits(args []string) engine.UCILimits {
	var limits engine.UCILimits

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				limits.Depth, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "nodes":
			if i+1 < len(args) {
				n, _ := strconv.ParseUint(args[i+1], 10, 64)
				limits.Nodes = n
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				limits.MoveTime, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "infinite":
			limits.Infinite = true
		case "wtime":
			if i+1 < len(args) {
				limits.Time[board.White], _ = strconv.Atoi(args[i+1])
				i++
			}
		case "btime":
			if i+1 < len(args) {
				limits.Time[board.Black], _ = strconv.Atoi(args[i+1])
				i++
			}
		case "winc":
			if i+1 < len(args) {
				limits.Inc[board.White], _ = strconv.Atoi(args[i+1])
				i++
			}
		case "binc":
			if i+1 < len(args) {
				limits.Inc[board.Black], _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movestogo":
			if i+1 < len(args) {
				limits.MovesToGo, _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}
	return limits
}

// sendInfo prints one `info` line per Info.String(), appending hashfull
// since that is driver-level UCI state the Searcher doesn't carry.
func (u *UCI) sendInfo(info engine.Info) {
	fmt.Printf("info %s hashfull %d\n", info.String(), u.engine.HashFull())
}

func (u *UCI) handleStop() {
	if u.searching {
		u.stopRequested.Store(true)
		u.engine.Stop()
		<-u.searchDone
	}
}

func (u *UCI) handleQuit() {
	u.handleStop()
	os.Exit(0)
}

func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, a := range args {
		switch a {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			if readingName {
				if name != "" {
					name += " "
				}
				name += a
			} else if readingValue {
				if value != "" {
					value += " "
				}
				value += a
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		logging.Get().Infof("setoption Hash=%s ignored: hash size is fixed at startup", value)
	}
}

// printBoard renders the board to stdout, colorizing piece letters by
// side when stdout is a terminal (`d`/`print`, the UCI debug
// extension every engine driver grows).
func (u *UCI) printBoard() {
	white := color.New(color.FgWhite, color.Bold)
	black := color.New(color.FgCyan, color.Bold)

	var b strings.Builder
	b.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(fmt.Sprintf("%d  ", rank+1))
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			p := u.position.PieceAt(sq)
			if p.IsNone() {
				b.WriteString(". ")
				continue
			}
			ch := string(p.Type().Char())
			if p.Color() == board.White {
				ch = strings.ToUpper(ch)
			}
			if u.useColor {
				if p.Color() == board.White {
					b.WriteString(white.Sprint(ch) + " ")
				} else {
					b.WriteString(black.Sprint(ch) + " ")
				}
			} else {
				b.WriteString(ch + " ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n   a b c d e f g h\n\n")
	fmt.Printf("%sFen: %s\nKey: %016x\n", b.String(), u.position.ToFEN(), u.position.Hash)
}

// handlePerft runs a divide-perft at the given depth (default 5),
// printing per-root-move node counts in sorted order followed by the
// total, the format engines traditionally use to diff against a
// reference implementation move by move.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	start := time.Now()
	divide := board.DividePerft(u.position, depth)
	elapsed := time.Since(start)

	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total int64
	for _, m := range moves {
		n := divide[m]
		total += n
		fmt.Printf("%s: %d\n", m, n)
	}

	fmt.Printf("\nNodes searched: %d\n", total)
	fmt.Printf("Time: %s\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(total)/elapsed.Seconds())
	}
}
