// Command euclid evaluates a Lisp design script and writes the
// resulting solids as binary STL.
//
// Usage:
//
//	euclid [-config euclid.yaml] [-o out.stl] [-kernel bsp|sdfx] design.lisp
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ggthedev/Euclid/internal/config"
	"github.com/ggthedev/Euclid/internal/logger"
	"github.com/ggthedev/Euclid/internal/stl"
	"github.com/ggthedev/Euclid/pkg/engine"
	"github.com/ggthedev/Euclid/pkg/graph"
	"github.com/ggthedev/Euclid/pkg/kernel"
	bspkernel "github.com/ggthedev/Euclid/pkg/kernel/bsp"
	sdfxkernel "github.com/ggthedev/Euclid/pkg/kernel/sdfx"
	"github.com/ggthedev/Euclid/pkg/tessellate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "euclid:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	output := flag.String("o", "", "output STL path (overrides config)")
	kernelName := flag.String("kernel", "", "geometry backend: bsp or sdfx (overrides config)")
	segments := flag.Int("segments", 0, "sphere/cylinder resolution (overrides config)")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("expected exactly one design script, got %d arguments", flag.NArg())
	}
	scriptPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *kernelName != "" {
		cfg.Kernel = *kernelName
	}
	if *segments > 0 {
		cfg.Segments = *segments
	}

	log := logger.New(cfg.LogLevel, logger.FileConfig{Path: cfg.LogFile})
	defer log.Sync()

	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	log.Info("evaluating design", zap.String("script", scriptPath))
	g, evalErrs, err := engine.NewEngine().Evaluate(string(source))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Error("eval error", zap.Int("line", e.Line), zap.String("message", e.Message))
		}
		return fmt.Errorf("%d evaluation errors", len(evalErrs))
	}
	if g.IsEmpty() {
		return fmt.Errorf("script produced no designs; add a (design ...) form")
	}

	if errs := graph.Validate(g); len(errs) > 0 {
		for _, e := range errs {
			log.Error("invalid design graph", zap.String("problem", e.Error()))
		}
		return fmt.Errorf("%d graph validation errors", len(errs))
	}

	k, err := pickKernel(cfg.Kernel)
	if err != nil {
		return err
	}
	log.Info("tessellating",
		zap.String("kernel", cfg.Kernel),
		zap.Int("segments", cfg.Segments),
		zap.Int("roots", len(g.Roots)))

	meshes, err := tessellate.Tessellate(g, k, tessellate.Options{Segments: cfg.Segments})
	if err != nil {
		return err
	}
	for _, m := range meshes {
		min, max := m.BoundingBox()
		log.Info("solid",
			zap.String("name", m.Name),
			zap.Int("triangles", m.TriangleCount()),
			zap.Float64s("min", min[:]),
			zap.Float64s("max", max[:]))
	}

	if err := stl.WriteFile(cfg.Output, meshes); err != nil {
		return err
	}
	log.Info("wrote output", zap.String("path", cfg.Output))
	return nil
}

func pickKernel(name string) (kernel.Kernel, error) {
	switch name {
	case "bsp":
		return bspkernel.New(), nil
	case "sdfx":
		return sdfxkernel.New(), nil
	}
	return nil, fmt.Errorf("unknown kernel %q (want bsp or sdfx)", name)
}
