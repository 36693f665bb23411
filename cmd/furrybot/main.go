package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/buger/goterm"

	"furrybot/pkg/bot"
	"furrybot/pkg/engine"
	"furrybot/pkg/rules"
	"furrybot/pkg/theory"
)

var (
	depth   = flag.Int("depth", engine.DefaultDepth, "plies searched below each candidate move")
	backend = flag.String("backend", "notnil", "rules backend: notnil or dragon")
	moves   = flag.String("moves", "", "space separated move history; prints the reply and exits")
	human   = flag.String("human", "white", "color played from the terminal: white or black")
	verbose = flag.Bool("v", false, "log engine decisions to stderr")
)

func main() {
	flag.Parse()
	factory, err := factoryFor(*backend)
	if err != nil {
		log.Fatal(err)
	}
	furry := bot.NewFurryBot()
	furry.Engine.Depth = *depth
	furry.Engine.NewPosition = factory
	if *verbose {
		furry.Engine.Log = log.New(os.Stderr, "[FURRY] ", log.Ltime)
		furry.Log = furry.Engine.Log
	}

	if *moves != "" || flag.NArg() > 0 {
		history := strings.Fields(*moves)
		history = append(history, flag.Args()...)
		mv, err := furry.NextMove(history)
		if err != nil {
			log.Fatal(err)
		}
		if mv == "" {
			mv = "(none)"
		}
		fmt.Println(mv)
		return
	}

	g := &game{
		bot:     furry,
		factory: factory,
		reader:  bufio.NewReader(os.Stdin),
		human:   rules.White,
	}
	if strings.HasPrefix(strings.ToLower(*human), "b") {
		g.human = rules.Black
	}
	for {
		done, err := g.Turn()
		if err != nil {
			log.Fatal(err)
		}
		if done {
			return
		}
	}
}

func factoryFor(name string) (rules.Factory, error) {
	switch strings.ToLower(name) {
	case "notnil":
		return rules.NewNotnil, nil
	case "dragon", "dragontoothmg":
		return rules.NewDragon, nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

type game struct {
	bot     *bot.FurryBot
	factory rules.Factory
	reader  *bufio.Reader
	human   rules.Color
	history []string
}

// Turn will cause the active player to take a turn
func (g *game) Turn() (bool, error) {
	pos, err := g.factory(g.history)
	if err != nil {
		return false, err
	}
	g.draw(pos)
	switch st := pos.Status(); st {
	case rules.Checkmate:
		goterm.Println(goterm.Bold(fmt.Sprintf("%s wins by checkmate!", capital(pos.Turn().Other()))))
		goterm.Flush()
		return true, nil
	case rules.Ongoing:
	default:
		goterm.Println(goterm.Bold(fmt.Sprintf("The game is a draw (%s)", st)))
		goterm.Flush()
		return true, nil
	}

	if pos.Turn() != g.human {
		goterm.Println("FurryBot is thinking...")
		goterm.Flush()
		mv, err := g.bot.NextMove(g.history)
		if err != nil {
			return false, err
		}
		g.history = append(g.history, mv)
		return false, nil
	}

	for {
		goterm.Print("Your move: ")
		goterm.Flush()
		line, err := g.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		inp := strings.TrimSpace(line)
		if inp == "" && errors.Is(err, io.EOF) {
			return true, nil
		}
		if _, perr := g.factory(append(g.history[:len(g.history):len(g.history)], inp)); perr != nil {
			goterm.Println(goterm.Color(fmt.Sprintf("Your input was invalid, error: %v", perr), goterm.RED))
			continue
		}
		g.history = append(g.history, inp)
		return false, nil
	}
}

func (g *game) draw(pos rules.Position) {
	goterm.Clear()
	goterm.MoveCursor(1, 1)
	goterm.Println(drawBoard(pos, g.human))
	if n := len(g.history); n > 0 {
		goterm.Printf("%s played: %s\n", capital(pos.Turn().Other()), g.history[n-1])
		goterm.Printf("Board evaluation (white perspective): %d\n", engine.Evaluate(pos, 0))
		if name := theory.Name(g.history); name != "" {
			goterm.Println(name)
		}
	}
	goterm.Flush()
}

func capital(c rules.Color) string {
	name := c.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

var glyphs = map[rules.PieceKind]string{
	rules.Pawn: "p", rules.Knight: "n", rules.Bishop: "b",
	rules.Rook: "r", rules.Queen: "q", rules.King: "k",
}

// drawBoard renders the board with the viewer's pieces at the bottom
func drawBoard(pos rules.Position, viewer rules.Color) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if viewer == rules.Black {
			rank = row
		}
		fmt.Fprintf(&sb, "%d ", rank+1)
		for col := 0; col < 8; col++ {
			file := col
			if viewer == rules.Black {
				file = 7 - col
			}
			pc, ok := pos.PieceAt(rules.NewSquare(file, rank))
			switch {
			case !ok:
				sb.WriteString("- ")
			case pc.Color == rules.White:
				sb.WriteString(goterm.Bold(strings.ToUpper(glyphs[pc.Kind])) + " ")
			default:
				sb.WriteString(glyphs[pc.Kind] + " ")
			}
		}
		sb.WriteString("\n")
	}
	if viewer == rules.Black {
		sb.WriteString("  h g f e d c b a")
	} else {
		sb.WriteString("  a b c d e f g h")
	}
	return sb.String()
}
