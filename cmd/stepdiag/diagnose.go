package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gamlab/stepdiag/dataset"
	"github.com/gamlab/stepdiag/diagnostics"
	"github.com/gamlab/stepdiag/gam"
)

var (
	dataFlag = &cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "Dataset path",
		Required: true,
	}

	modelFlag = &cli.StringFlag{
		Name:     "model",
		Aliases:  []string{"i"},
		Usage:    "Input model path",
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Output path",
		Required: true,
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Importance mode: L1 (mean absolute deviation) or L2 (variance, default)",
	}

	diagnoseCmd = &cli.Command{
		Name:   "diagnose",
		Usage:  "Rank model terms by contribution dispersion over a dataset",
		Flags:  []cli.Flag{dataFlag, modelFlag, outputFlag, modeFlag},
		Action: runDiagnose,
	}
)

func runDiagnose(c *cli.Context) error {
	modeName := c.String(modeFlag.Name)
	if modeName == "" {
		modeName = conf.Mode
	}
	mode, err := diagnostics.ParseMode(modeName)
	if err != nil {
		return err
	}

	insts, err := dataset.ReadFile(c.String(dataFlag.Name))
	if err != nil {
		return err
	}
	slog.Debug("dataset loaded", "instances", insts.Len())

	model, err := gam.ReadFile(c.String(modelFlag.Name))
	if err != nil {
		return err
	}
	slog.Debug("model loaded", "pairs", model.Len())

	list, err := diagnostics.Diagnose(model, insts, mode)
	if err != nil {
		return err
	}
	diagnostics.SortByWeight(list)

	outPath := c.String(outputFlag.Name)
	if err := writeWeights(outPath, list); err != nil {
		return err
	}

	slog.Info("diagnostics written",
		"path", outPath, "terms", len(list), "mode", mode.String())
	return nil
}

// writeWeights emits one "<term>: <weight>" line per term, in the
// order given (callers sort first).
func writeWeights(path string, list []diagnostics.TermWeight) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, tw := range list {
		fmt.Fprintf(w, "%s: %v\n", tw.Term, tw.Weight)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
