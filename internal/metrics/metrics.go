// Package metrics holds Prometheus instruments for bookcheck runs.  All
// collectors are registered with the global registry; a run can dump them
// to a node_exporter textfile with WriteTextfile.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
)

var (
	BooksConstructedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookcheck_books_constructed_total",
			Help: "Cumulative number of books that passed validation.",
		})

	BooksRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookcheck_books_rejected_total",
			Help: "Cumulative number of raw records rejected, by reason.",
		}, []string{"reason"})

	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookcheck_runs_total",
			Help: "Cumulative number of command runs, by command and result.",
		}, []string{"command", "result"})
)

func init() {
	prometheus.MustRegister(
		BooksConstructedTotal,
		BooksRejectedTotal,
		RunsTotal,
	)
}

// Rejection reasons.
const (
	ReasonSchema        = "schema"
	ReasonInvalidFormat = "invalid_format"
	ReasonOther         = "other"
)

// Observer feeds construction outcomes into the counters above.
type Observer struct{}

func (Observer) BookConstructed(domain.Book) {
	BooksConstructedTotal.Inc()
}

func (Observer) BookRejected(err error) {
	BooksRejectedTotal.WithLabelValues(RejectReason(err)).Inc()
}

// RejectReason classifies a construction error for the reason label.
func RejectReason(err error) string {
	var se *domain.SchemaError
	var fe *domain.FormatError
	switch {
	case errors.As(err, &fe):
		return ReasonInvalidFormat
	case errors.As(err, &se):
		return ReasonSchema
	}
	return ReasonOther
}

// RecordRun counts one finished command.
func RecordRun(command string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	RunsTotal.WithLabelValues(command, result).Inc()
}

// WriteTextfile writes every registered metric to path in the text
// exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
