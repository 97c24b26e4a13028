package entity

// PRMetrics are latencies in whole seconds. Nil means the event never happened.
type PRMetrics struct {
	TimeToFirstReview     *int64
	TimeToFirstApproval   *int64
	TimeToFirstCodeUpdate *int64
	TotalTimeToClose      *int64
}

type AggregatedMetric struct {
	Average *float64
	Median  *float64
}

type AggregatedData struct {
	TimeToFirstReview     AggregatedMetric
	TimeToFirstApproval   AggregatedMetric
	TimeToFirstCodeUpdate AggregatedMetric
	TotalTimeToClose      AggregatedMetric
}
