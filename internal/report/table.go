package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

var metricHeader = []string{"First review", "First approval", "First code update", "Time to close"}

// Render writes the per-PR table followed by the aggregates table.
func Render(w io.Writer, rep entity.MetricsReport) error {
	prs := pterm.TableData{append([]string{"#", "Title", "Author", "State"}, metricHeader...)}
	for _, pr := range rep.PullRequests {
		prs = append(prs, []string{
			strconv.Itoa(pr.Number),
			pr.Title,
			pr.Author,
			pr.State,
			FormatDuration(pr.Metrics.TimeToFirstReview),
			FormatDuration(pr.Metrics.TimeToFirstApproval),
			FormatDuration(pr.Metrics.TimeToFirstCodeUpdate),
			FormatDuration(pr.Metrics.TotalTimeToClose),
		})
	}

	prTable, err := pterm.DefaultTable.WithHasHeader().WithData(prs).Srender()
	if err != nil {
		return fmt.Errorf("render pull requests: %w", err)
	}

	agg := rep.Aggregated
	aggTable, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		append([]string{""}, metricHeader...),
		{
			"Average",
			FormatAverage(agg.TimeToFirstReview.Average),
			FormatAverage(agg.TimeToFirstApproval.Average),
			FormatAverage(agg.TimeToFirstCodeUpdate.Average),
			FormatAverage(agg.TotalTimeToClose.Average),
		},
		{
			"Median",
			FormatAverage(agg.TimeToFirstReview.Median),
			FormatAverage(agg.TimeToFirstApproval.Median),
			FormatAverage(agg.TimeToFirstCodeUpdate.Median),
			FormatAverage(agg.TotalTimeToClose.Median),
		},
	}).Srender()
	if err != nil {
		return fmt.Errorf("render aggregates: %w", err)
	}

	_, err = fmt.Fprintf(w, "Processed %d of %d pull requests\n\n%s\n\n%s\n",
		len(rep.PullRequests), rep.TotalCount, prTable, aggTable)
	return err
}
