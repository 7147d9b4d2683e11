package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"lobbyrank/internal/lda"
	"lobbyrank/internal/model"
	"lobbyrank/internal/rank"
	"lobbyrank/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		run(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func run(args []string) {
	_ = godotenv.Load()
	cfg := lda.ConfigFromEnv()

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	year := fs.Int("year", cfg.FilingYear, "target federal fiscal year")
	out := fs.String("out", "top_filings.json", "output JSON path")
	top := fs.Int("top", 3, "number of distinct top amounts to keep (ties included)")
	limit := fs.Int("limit", 0, "limit number of entities (0 = all)")
	verbose := fs.Bool("verbose", false, "print each qualifying filing")
	fs.Parse(args)

	cfg.FilingYear = *year
	if err := runAnalysis(cfg, *out, *top, *limit, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "analysis run failed:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lobbyrank run [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options:")
	fmt.Fprintln(os.Stderr, "  -year     target federal fiscal year (default: from env)")
	fmt.Fprintln(os.Stderr, "  -out      output JSON path (default: top_filings.json)")
	fmt.Fprintln(os.Stderr, "  -top      number of distinct top amounts to keep (default: 3)")
	fmt.Fprintln(os.Stderr, "  -limit    limit number of entities (default: 0 = all)")
	fmt.Fprintln(os.Stderr, "  -verbose  print each qualifying filing")
}

func runAnalysis(cfg lda.Config, outPath string, topN, limit int, verbose bool) error {
	client, err := lda.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	entities := model.Entities()
	if limit > 0 && len(entities) > limit {
		entities = entities[:limit]
	}

	report.Header(os.Stdout, client.FilingYear())

	records := make([]model.RankedFiling, 0)
	for _, entity := range entities {
		filings, err := client.FetchFilings(ctx, entity.Name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s: %d filings\n", entity.Name, len(filings))

		for _, filing := range filings {
			record, ok := rank.Qualify(entity, filing)
			if !ok {
				continue
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "qualify ticker=%s firm=%q amount=%.0f date=%s\n",
					record.Ticker, record.Firm, record.Amount, record.Date)
			}
			records = append(records, record)
		}
	}

	selected := rank.Top(records, topN)
	report.Print(os.Stdout, selected)

	if err := report.WriteJSON(outPath, selected); err != nil {
		return err
	}
	fmt.Printf("\nSaved to %s\n", outPath)
	return nil
}
