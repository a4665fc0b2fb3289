// Command autotile47 generates 47-configuration blob autotile sheets
// from JSON tileset manifests or 5x4 template images.
//
// Usage:
//
//	autotile47 tileset.json -o output.png
//	autotile47 template.png -o output.png
//	autotile47 -split template.png -o tiles_dir/
//	autotile47 -output-dir generated/ 'tilesets/*.json'
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tileforge/autotile"
	"github.com/tileforge/autotile/manifest"
)

func main() {
	var (
		output      = flag.String("o", "", "output spritesheet path (default: {input}_47.png)")
		outputDir   = flag.String("output-dir", "", "output directory for batch processing")
		ronPath     = flag.String("ron", "", "RON mapping path (default: {output}.ron)")
		maxVariants = flag.Int("max-variants", 0, "max variants per configuration (0 = auto from sources)")
		seed        = flag.Int("seed", 42, "seed for deterministic variant selection")
		layoutName  = flag.String("layout", "variants_y", "spritesheet layout: variants_y (rows=47) or variants_x")
		tileSize    = flag.Int("tile-size", 0, "override tile size for templates (0 = auto = width/5)")
		preview     = flag.Bool("preview", false, "generate enlarged preview image")
		testMap     = flag.Bool("test-map", false, "generate a test tile map")
		split       = flag.Bool("split", false, "split a 5x4 template into individual tiles + JSON manifest")
		verbose     = flag.Bool("v", false, "enable verbose logging to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: autotile47 [flags] <manifest.json | template.png | dir | glob>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *outputDir != "" && *ronPath != "" {
		log.Fatal("-ron cannot be used with -output-dir")
	}

	if *verbose {
		autotile.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	layout, err := autotile.ParseLayout(*layoutName)
	if err != nil {
		log.Fatal(err)
	}

	if *split {
		runSplit(flag.Arg(0), *output, *tileSize)
		return
	}

	inputs, err := resolveInputs(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, input := range inputs {
		out := *output
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0o755); err != nil {
				log.Fatal(err)
			}
			out = filepath.Join(*outputDir, stem(input)+"_47.png")
		}

		cfg := pipelineConfig{
			input:       input,
			output:      out,
			ron:         *ronPath,
			tileSize:    *tileSize,
			layout:      layout,
			preview:     *preview,
			testMap:     *testMap,
			maxVariants: *maxVariants,
			seed:        *seed,
		}
		if err := process(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", input, err)
			failed++
		}
	}
	if failed == len(inputs) {
		os.Exit(1)
	}
}

// pipelineConfig holds the resolved settings for one input file.
type pipelineConfig struct {
	input       string
	output      string
	ron         string
	tileSize    int
	layout      autotile.Layout
	preview     bool
	testMap     bool
	maxVariants int
	seed        int
}

// process runs the full generation pipeline for one input.
func process(cfg pipelineConfig) error {
	if cfg.output == "" {
		cfg.output = filepath.Join(filepath.Dir(cfg.input), stem(cfg.input)+"_47.png")
	}
	if cfg.ron == "" {
		cfg.ron = strings.TrimSuffix(cfg.output, filepath.Ext(cfg.output)) + ".ron"
	}

	table, err := loadTable(cfg.input, cfg.tileSize)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s (tile size %dx%d)\n", cfg.input, table.TileSize(), table.TileSize())

	for _, warn := range autotile.ValidateTable(table) {
		fmt.Printf("  warning: %s\n", warn)
	}

	opts := autotile.Options{Seed: cfg.seed, MaxVariants: cfg.maxVariants}
	set, err := autotile.Build(table, opts)
	if err != nil {
		return err
	}
	fmt.Printf("  Generated %d tiles across %d configurations (%d max variants)\n",
		set.Len(), len(set.Masks()), set.MaxVariants())

	for _, msg := range autotile.VerifyVariants(set, table) {
		fmt.Printf("  %s\n", msg)
	}

	if dir := filepath.Dir(cfg.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	sheet := set.Image(cfg.layout)
	if err := sheet.SavePNG(cfg.output); err != nil {
		return err
	}
	fmt.Printf("  Saved spritesheet: %s (%dx%d)\n", cfg.output, sheet.Width(), sheet.Height())

	if err := os.WriteFile(cfg.ron, []byte(set.Mapping(cfg.layout)), 0o644); err != nil {
		return err
	}
	fmt.Printf("  Saved RON mapping: %s\n", cfg.ron)

	if cfg.preview {
		path := withSuffix(cfg.output, "_preview")
		if err := autotile.RenderPreview(set).SavePNG(path); err != nil {
			return err
		}
		fmt.Printf("  Saved preview: %s\n", path)
	}

	if cfg.testMap {
		path := withSuffix(cfg.output, "_testmap")
		if err := autotile.RenderTestMap(set).SavePNG(path); err != nil {
			return err
		}
		fmt.Printf("  Saved test map: %s\n", path)
	}

	return nil
}

// loadTable builds the role table from either a JSON manifest or a 5x4
// template image, by extension.
func loadTable(path string, tileSize int) (*autotile.RoleTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return manifest.Load(path)
	case ".png":
		return manifest.LoadTemplate(path, tileSize)
	default:
		return nil, fmt.Errorf("unsupported input format %q (expected .json or .png)", filepath.Ext(path))
	}
}

// runSplit handles -split mode: template in, per-role tiles + manifest out.
func runSplit(input, output string, tileSize int) {
	if strings.ToLower(filepath.Ext(input)) != ".png" {
		log.Fatal("-split requires a PNG template")
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input))
	}
	manifestPath, err := manifest.Split(input, output, tileSize)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Split %s -> %s/\nManifest: %s\n", input, output, manifestPath)
}

// resolveInputs expands a path argument into the list of input files: a
// directory yields its JSON and PNG files, a glob its matches, anything
// else must be an existing file.
func resolveInputs(arg string) ([]string, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		jsons, _ := filepath.Glob(filepath.Join(arg, "*.json"))
		pngs, _ := filepath.Glob(filepath.Join(arg, "*.png"))
		found := append(sortStrings(jsons), sortStrings(pngs)...)
		if len(found) == 0 {
			return nil, fmt.Errorf("no JSON/PNG files in %s", arg)
		}
		return found, nil
	}

	if strings.ContainsAny(filepath.Base(arg), "*?") {
		found, err := filepath.Glob(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no files matching %s", arg)
		}
		return sortStrings(found), nil
	}

	if _, err := os.Stat(arg); err != nil {
		return nil, fmt.Errorf("file not found: %s", arg)
	}
	return []string{arg}, nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// withSuffix inserts a suffix before a path's extension.
func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// sortStrings sorts a slice in place and returns it.
func sortStrings(s []string) []string {
	sort.Strings(s)
	return s
}
