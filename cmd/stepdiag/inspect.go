package main

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/gamlab/stepdiag/gam"
	"github.com/gamlab/stepdiag/stepfn"
)

var (
	inspectModelFlag = &cli.StringFlag{
		Name:     "model",
		Aliases:  []string{"i"},
		Usage:    "Input model path",
		Required: true,
	}

	inspectCmd = &cli.Command{
		Name:   "inspect",
		Usage:  "Summarize a model: terms, rounds per term, segment counts",
		Flags:  []cli.Flag{inspectModelFlag},
		Action: runInspect,
	}
)

func runInspect(c *cli.Context) error {
	model, err := gam.ReadFile(c.String(inspectModelFlag.Name))
	if err != nil {
		return err
	}

	terms := model.Terms()
	regs := model.Regressors()

	type summary struct {
		term     gam.Term
		rounds   int
		segments int
	}
	var order []string
	byKey := make(map[string]*summary)
	for i, t := range terms {
		k := t.Key()
		s, ok := byKey[k]
		if !ok {
			s = &summary{term: t}
			byKey[k] = s
			order = append(order, k)
		}
		s.rounds++
		if f, ok := regs[i].(*stepfn.StepFn); ok {
			s.segments += f.Len()
		}
	}

	slog.Info("model summary",
		"intercept", model.Intercept(),
		"pairs", model.Len(),
		"distinct_terms", len(order))
	for _, k := range order {
		s := byKey[k]
		slog.Info("term",
			"tuple", s.term.String(),
			"rounds", s.rounds,
			"segments", s.segments)
	}
	return nil
}
