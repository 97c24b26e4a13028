// prmetrics prints the metrics report of a repository to the terminal.
//
//	prmetrics -repo acme/widgets -from 2024-01-01 -to 2024-01-31 -status merged
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/mark47B/pr-metrics/internal/app"
	"github.com/mark47B/pr-metrics/internal/configs"
	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
	"github.com/mark47B/pr-metrics/internal/infra/github"
	"github.com/mark47B/pr-metrics/internal/logger"
	"github.com/mark47B/pr-metrics/internal/report"
)

func main() {
	var (
		repo    = flag.String("repo", "", "owner/name, defaults to GITHUB_REPO")
		from    = flag.String("from", "", "start of the created range (YYYY-MM-DD)")
		to      = flag.String("to", "", "end of the created range (YYYY-MM-DD)")
		status  = flag.String("status", "all", "all, open, closed or merged")
		authors = flag.String("author", "", "semicolon separated logins")
		perPage = flag.Int("per-page", 100, "PRs per search page")
		page    = flag.Int("page", 1, "search page")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filters := entity.SearchFilters{
		Repo:    *repo,
		From:    *from,
		To:      *to,
		Status:  entity.PRStatus(*status),
		Page:    *page,
		PerPage: *perPage,
	}
	if *authors != "" {
		filters.Authors = []string{*authors}
	}

	if err := run(ctx, filters); err != nil {
		pterm.Error.Println(err)
		if errors.Is(err, usecase.ErrValidation) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, filters entity.SearchFilters) error {
	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// В терминале нужны только предупреждения
	log, err := logger.New("warn", cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Timeout, log)
	svc := app.NewService(client, nil, nil, log, app.Options{
		DefaultRepo:       cfg.GitHub.Repo,
		DefaultToken:      cfg.GitHub.Token,
		DetailConcurrency: cfg.GitHub.DetailConcurrency,
	})

	spinner, err := pterm.DefaultSpinner.Start("Fetching pull requests")
	if err != nil {
		return fmt.Errorf("start spinner: %w", err)
	}
	rep, err := svc.GetMetrics(ctx, filters, "")
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success()

	if rep.RateLimit != nil {
		pterm.Warning.Printf("%d pull requests dropped: %s\n", rep.RateLimit.Dropped, rep.RateLimit.Message)
	}
	return report.Render(os.Stdout, rep)
}
