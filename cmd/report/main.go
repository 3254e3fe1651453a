// Package main is the offline report command: it aggregates a record file
// (xlsx, json or yaml) without a database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/report"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/entity"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/cli"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/recordfile"
)

type Params struct {
	File   string `descr:"Path to the record file (.xlsx, .json, .yaml)" positional:"true"`
	Kind   string `descr:"Record kind to aggregate" alts:"expense,revenue" strict:"true" default:"expense"`
	Start  string `descr:"Window start date (YYYY-MM-DD)" optional:"true"`
	End    string `descr:"Window end date (YYYY-MM-DD)" optional:"true"`
	AsOf   string `descr:"Cumulative total up to this date (YYYY-MM-DD)" optional:"true"`
	Output string `descr:"Output format" alts:"table,json" strict:"true" default:"table"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	boa.NewCmdT[Params]("report").
		WithShort("Aggregate recurring financial records over a period").
		WithLong("Expands one-time, monthly and annual records into installments and totals them by category and month. With --as-of, or no dates at all, the total is cumulative.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	kind, ok := entity.ParseRecordKind(params.Kind)
	if !ok {
		return fmt.Errorf("unknown kind %q", params.Kind)
	}

	window, err := cli.ResolveWindow(params.Start, params.End, params.AsOf, time.Now().UTC())
	if err != nil {
		return err
	}

	raws, err := recordfile.LoadFile(params.File)
	if err != nil {
		return err
	}

	output, err := report.NewComputeReportUseCase().Execute(context.Background(), report.ComputeReportInput{
		Records: cli.FilterKind(raws, kind),
		Window:  window,
	})
	if err != nil {
		return err
	}

	if params.Output == "json" {
		return cli.PrintReportJSON(os.Stdout, output)
	}

	title := "Despesas"
	if kind == entity.RecordKindRevenue {
		title = "Receitas"
	}
	cli.PrintReportTable(os.Stdout, title, output)
	return nil
}
