package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Hazard-Board/internal/board"
	"github.com/Garsondee/Hazard-Board/internal/config"
)

func main() {
	var cfgPath, scenarioPath string
	var copyOut bool

	flag.StringVar(&cfgPath, "config", "", "path to config.yaml for board size")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML (standard lineup when empty)")
	flag.BoolVar(&copyOut, "copy", false, "also copy the report to the clipboard")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	sc := config.DefaultScenario()
	if scenarioPath != "" {
		if sc, err = config.LoadScenario(scenarioPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}

	report, err := buildReport(cfg.Board, sc)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(report)

	if copyOut {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("error: copy: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("(copied to clipboard)")
	}
}

// buildReport lays out the scenario on a fresh board and renders the dump
// plus per-hazard coverage.
func buildReport(bc config.BoardConfig, sc config.Scenario) (string, error) {
	opts := []board.Option{board.WithSize(bc.Rows, bc.Cols), board.WithGeometry(bc.Geometry())}
	b := board.New(append(opts, sc.Options()...)...)
	if errs := b.InitErrors(); len(errs) > 0 {
		return "", fmt.Errorf("scenario %s: %w", sc.Name, errs[0])
	}

	var sb strings.Builder
	res := b.LastResolution()
	fmt.Fprintf(&sb, "=== Hazard Board Report ===\n")
	fmt.Fprintf(&sb, "scenario=%s size=%dx%d units=%d hazards=%d covered=%d skipped=%d\n\n",
		sc.Name, b.Grid.Rows, b.Grid.Cols, len(b.Units(nil)), res.Applied, res.Covered, len(res.Skipped))
	sb.WriteString(b.Dump())

	if hs := b.Hazards(nil); len(hs) > 0 {
		sb.WriteString("\nhazards:\n")
		for _, line := range hazardLines(b) {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	if counts := spriteCounts(b); len(counts) > 0 {
		sb.WriteString("\nsprites:\n")
		for _, k := range board.CellSprites() {
			if n := counts[k]; n > 0 {
				fmt.Fprintf(&sb, "  %-16s %d\n", k.Name(), n)
			}
		}
	}
	return sb.String(), nil
}

// hazardLines describes each hazard and how many cells it still owns after
// later hazards have overwritten part of its footprint.
func hazardLines(b *board.Board) []string {
	var out []string
	for _, h := range b.Hazards(nil) {
		fp := board.Footprint(b.Grid, h)
		owned := 0
		for _, c := range fp {
			if c.Hazard == h.Kind {
				owned++
			}
		}
		out = append(out, fmt.Sprintf("%s: %d/%d cells", h, owned, len(fp)))
	}
	return out
}

func spriteCounts(b *board.Board) map[board.SpriteKey]int {
	counts := make(map[board.SpriteKey]int)
	for _, c := range b.Grid.Cells() {
		counts[c.Sprite]++
	}
	return counts
}
