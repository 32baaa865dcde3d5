// mapdump generates one level offline and writes its layout as ASCII plus a
// YAML room list. Handy for eyeballing generator changes without a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/progrog/roguelike/internal/component"
	"github.com/progrog/roguelike/internal/config"
	"github.com/progrog/roguelike/internal/mapgen"
	"github.com/progrog/roguelike/internal/rng"
	"github.com/progrog/roguelike/internal/world"
)

type Room struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Layout struct {
	Seed     int64  `yaml:"seed"`
	Strategy string `yaml:"strategy"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	SpawnX   int    `yaml:"spawn_x"`
	SpawnY   int    `yaml:"spawn_y"`
	Floor    int    `yaml:"floor_tiles"`
	Rooms    []Room `yaml:"rooms"`
}

var errUsage = errors.New("usage: mapdump <seed> <output.yaml> [rect|round]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	if len(args) < 2 {
		return errUsage
	}

	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad seed: %w", err)
	}

	cfgPath := os.Getenv("PROGROG_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/progrog.toml"
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	src := rng.New(seed)
	reg := mapgen.DefaultRegistry()
	gen := reg.Pick(src)
	if len(args) > 2 {
		g, ok := reg.Lookup(args[2])
		if !ok {
			return fmt.Errorf("unknown strategy %q (have %v)", args[2], reg.Names())
		}
		gen = g
	}

	m, err := gen.Generate(cfg.Game.MapWidth, cfg.Game.MapHeight, src)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := writeASCII(stdout, m); err != nil {
		return fmt.Errorf("write map: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	layout := describe(seed, m)
	if err := writeLayout(out, layout); err != nil {
		return fmt.Errorf("write %s: %w", args[1], err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s layout with %d rooms to %s\n", m.Strategy(), len(layout.Rooms), args[1])
	return nil
}

func writeLayout(w io.Writer, l Layout) error {
	if _, err := fmt.Fprintf(w, "# Level layout, auto-generated (%d rooms)\n", len(l.Rooms)); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}

func describe(seed int64, m *world.Map) Layout {
	spawn := m.Spawn()
	l := Layout{
		Seed:     seed,
		Strategy: m.Strategy(),
		Width:    m.Width(),
		Height:   m.Height(),
		SpawnX:   spawn.X,
		SpawnY:   spawn.Y,
		Floor:    m.FloorCount(),
	}
	for _, r := range m.Rooms() {
		l.Rooms = append(l.Rooms, Room{X: r.X1, Y: r.Y1, Width: r.Width(), Height: r.Height()})
	}
	return l
}

func writeASCII(w io.Writer, m *world.Map) error {
	spawn := m.Spawn()
	row := make([]byte, m.Width()+1)
	row[m.Width()] = '\n'
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := component.Position{X: x, Y: y}
			switch {
			case p == spawn:
				row[x] = '@'
			case m.IsFloor(p):
				row[x] = '.'
			default:
				row[x] = '#'
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
