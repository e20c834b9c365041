// Command bitplanes prints the starting position and the precomputed attack
// mask of one piece, and can draw both as SVG or PNG and record the position
// in the snapshot store.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/bitplanes/internal/board"
	"github.com/hailam/bitplanes/internal/render"
	"github.com/hailam/bitplanes/internal/storage"
)

type config struct {
	piece  string
	color  string
	square string
	class  string
	svg    string
	png    string
	db     string
	game   string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("bitplanes", flag.ContinueOnError)
	fs.StringVar(&cfg.piece, "piece", "knight", "piece type (king, knight, rook, bishop, queen, pawn)")
	fs.StringVar(&cfg.color, "color", "white", "piece color (white, black)")
	fs.StringVar(&cfg.square, "square", "e4", "origin square, e.g. e4")
	fs.StringVar(&cfg.class, "class", "all", "mask to show: capture, quiet or all")
	fs.StringVar(&cfg.svg, "svg", "", "write an SVG drawing to file")
	fs.StringVar(&cfg.png, "png", "", "write a PNG drawing to file")
	fs.StringVar(&cfg.db, "db", "", "snapshot store directory (\"default\" for the data directory)")
	fs.StringVar(&cfg.game, "game", "scratch", "game id for the stored snapshot")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// maskFor looks up the requested table entry.
func maskFor(t *board.Tables, pt board.PieceType, c board.Color, sq board.Square, class string) (board.Bitboard, error) {
	switch class {
	case "capture":
		return t.CaptureFrom(pt, c, sq)
	case "quiet":
		return t.QuietFrom(pt, c, sq)
	case "all":
		return t.Attacks(pt, c, sq.File(), sq.Rank())
	}
	return board.Empty, fmt.Errorf("unknown class %q", class)
}

func writeFile(path string, draw func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func openStore(dir string) (*storage.Storage, error) {
	if dir == "default" {
		return storage.OpenDefault()
	}
	return storage.Open(dir)
}

func run(cfg config, tables *board.Tables, out io.Writer) error {
	pt, err := board.ParsePieceType(cfg.piece)
	if err != nil {
		return err
	}
	c, err := board.ParseColor(cfg.color)
	if err != nil {
		return err
	}
	sq, err := board.ParseSquare(cfg.square)
	if err != nil {
		return err
	}
	mask, err := maskFor(tables, pt, c, sq, cfg.class)
	if err != nil {
		return err
	}

	pos := board.NewPosition()
	flags := board.NewFlags()
	fmt.Fprintf(out, "%s\n", pos)
	fmt.Fprintf(out, "%s %s on %s, %s (%d squares)\n%s", c, pt, sq, cfg.class, mask.PopCount(), mask)

	opts := render.DefaultOptions()
	if cfg.svg != "" {
		if err := writeFile(cfg.svg, func(w io.Writer) error {
			return render.SVG(w, pos, mask, opts)
		}); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		log.Printf("SVG written to %s", cfg.svg)
	}
	if cfg.png != "" {
		if err := writeFile(cfg.png, func(w io.Writer) error {
			return render.PNG(w, pos, mask, opts)
		}); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		log.Printf("PNG written to %s", cfg.png)
	}

	if cfg.db != "" {
		store, err := openStore(cfg.db)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		if err := store.Save(cfg.game, 0, storage.NewSnapshot(pos, flags)); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		log.Printf("Snapshot %016x saved as %s ply 0", board.Hash(pos, flags), cfg.game)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg, board.Shared(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}
