package generator

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"rpgame/pkg/engine/world"
)

// newTestGenerator returns a generator with the default config and the given seed
func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return gen
}

// addRoom validates and commits a rectangular room
func addRoom(t *testing.T, grid *world.Grid, x0, y0, x1, y1 int) *world.Element {
	t.Helper()
	room := grid.NewElement(world.KindRoom)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			room.Add(world.At(x, y, world.TileRoom))
		}
	}
	if !grid.ValidateElement(room) {
		t.Fatalf("room (%d,%d)-(%d,%d) rejected", x0, y0, x1, y1)
	}
	grid.Commit(room)
	return room
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"smallest grid", func(c *Config) { c.Rows, c.Cols = minGridSize, minGridSize }, false},
		{"too few rows", func(c *Config) { c.Rows = minGridSize - 1 }, true},
		{"too few cols", func(c *Config) { c.Cols = 2 }, true},
		{"negative fill", func(c *Config) { c.FillTarget = -1 }, true},
		{"fill over 100", func(c *Config) { c.FillTarget = 101 }, true},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, true},
		{"negative cap", func(c *Config) { c.MaxIterations = -5 }, true},
		{"no cap", func(c *Config) { c.MaxIterations = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchSize = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerator_Name(t *testing.T) {
	var gen GridGenerator = newTestGenerator(t, 1)
	if got := gen.Name(); got != "Rooms and Corridors" {
		t.Errorf("Name() = %q, want %q", got, "Rooms and Corridors")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := newTestGenerator(t, 42).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := newTestGenerator(t, 42).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	a.ForEachTile(func(row, col int, tile world.TileType) {
		if other := b.TileAt(row, col); other != tile {
			t.Fatalf("tile (%d,%d) = %v and %v for the same seed", row, col, tile, other)
		}
	})

	startA, _ := a.Start()
	startB, _ := b.Start()
	if !startA.SamePosition(startB) {
		t.Errorf("Start() = %v and %v for the same seed", startA, startB)
	}
}

func TestGenerate_SetSeedRestarts(t *testing.T) {
	gen := newTestGenerator(t, 7)
	first, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	gen.SetSeed(7)
	second, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if first.FillRate() != second.FillRate() || len(first.Elements()) != len(second.Elements()) {
		t.Errorf("SetSeed(7) did not reproduce the level: %d/%d elements",
			len(first.Elements()), len(second.Elements()))
	}
}

func TestGenerate_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		grid, err := newTestGenerator(t, seed).Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}

		if err := grid.CheckInvariants(); err != nil {
			t.Errorf("seed %d: CheckInvariants() = %v", seed, err)
		}

		start, hasStart := grid.Start()
		end, hasEnd := grid.End()
		if !hasStart || !hasEnd {
			t.Fatalf("seed %d: stairs missing (start %v, end %v)", seed, hasStart, hasEnd)
		}
		if grid.TileAt(start.Y, start.X) != world.TileStairsUp || grid.TileAt(end.Y, end.X) != world.TileStairsDown {
			t.Errorf("seed %d: stairs tiles not stamped", seed)
		}

		for _, c := range grid.Corridors() {
			if c.Len() < 2 {
				t.Errorf("seed %d: corridor %d has %d tiles", seed, c.ID(), c.Len())
			}
		}
		for _, r := range grid.Rooms() {
			w, h := r.Width()+1, r.Height()+1
			if w < minRoomSize || w > maxRoomSize || h < minRoomSize || h > maxRoomSize {
				t.Errorf("seed %d: room %d is %dx%d", seed, r.ID(), w, h)
			}
		}
	}
}

func TestPopulate_ReachesTargetOrCap(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		gen := newTestGenerator(t, seed)
		grid := world.NewGrid(gen.Config().Rows, gen.Config().Cols)

		iterations := gen.Populate(grid)
		if iterations < gen.Config().MaxIterations && grid.FillRate() < gen.Config().FillTarget {
			t.Errorf("seed %d: stopped after %d iterations at %d%%, target %d%%",
				seed, iterations, grid.FillRate(), gen.Config().FillTarget)
		}
		if iterations%gen.Config().BatchSize != 0 && iterations != gen.Config().MaxIterations {
			t.Errorf("seed %d: stopped mid-batch after %d iterations", seed, iterations)
		}
	}
}

func TestPopulate_Cap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillTarget = 100
	cfg.MaxIterations = 50
	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	grid := world.NewGrid(cfg.Rows, cfg.Cols)
	if got := gen.Populate(grid); got != 50 {
		t.Errorf("Populate() = %d, want 50", got)
	}
}

func TestPopulate_FillRateNeverDrops(t *testing.T) {
	gen := newTestGenerator(t, 3)
	grid := world.NewGrid(DefaultRows, DefaultCols)

	last := 0
	for i := 0; i < 300; i++ {
		if room, ok := gen.GenerateRoom(grid); ok {
			grid.Commit(room)
			if grid.CountKind(world.KindRoom) > 1 {
				_ = gen.CorridorFromRoom(grid, room)
			}
		}
		fill := grid.FillRate()
		if fill < last {
			t.Fatalf("iteration %d: FillRate() dropped from %d to %d", i, last, fill)
		}
		last = fill
	}
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = log.New(&buf, "", 0)

	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{"populated", "stairs up", "doors"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestGenerateRoom(t *testing.T) {
	gen := newTestGenerator(t, 11)
	grid := world.NewGrid(30, 30)

	accepted := 0
	for i := 0; i < 200; i++ {
		room, ok := gen.GenerateRoom(grid)
		if !ok {
			continue
		}
		accepted++

		if !room.IsRoom() || room.Committed() {
			t.Fatalf("GenerateRoom() returned kind %v committed %v", room.Kind(), room.Committed())
		}
		w, h := room.Width()+1, room.Height()+1
		if w < minRoomSize || w > maxRoomSize || h < minRoomSize || h > maxRoomSize {
			t.Errorf("room is %dx%d, want sides in [%d,%d]", w, h, minRoomSize, maxRoomSize)
		}
		if room.Len() != w*h {
			t.Errorf("room has %d cells, want %d", room.Len(), w*h)
		}
		first := room.First()
		if minX, minY, _, _ := room.Bounds(); first.X != minX || first.Y != minY {
			t.Errorf("First() = %v, want top-left corner (%d,%d)", first, minX, minY)
		}
	}

	if accepted == 0 {
		t.Error("GenerateRoom() never produced a room in 200 attempts on an empty grid")
	}
	if got := len(grid.Elements()); got != 0 {
		t.Errorf("GenerateRoom() committed %d elements, want 0", got)
	}
}

func TestGenerateRoom_TinyGrid(t *testing.T) {
	gen := newTestGenerator(t, 3)

	for _, size := range [][2]int{{1, 1}, {2, 2}, {2, 30}, {30, 2}, {minGridSize - 1, 10}} {
		grid := world.NewGrid(size[0], size[1])
		for i := 0; i < 20; i++ {
			if room, ok := gen.GenerateRoom(grid); ok || room != nil {
				t.Fatalf("GenerateRoom() on %dx%d = (%v, %v), want (nil, false)", size[0], size[1], room, ok)
			}
		}
	}
}
