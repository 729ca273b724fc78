package ports

import (
	"context"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
)

// RecordSource produces raw records for the schema engine.
type RecordSource interface {
	Records(ctx context.Context) ([]domain.RawRecord, error)
}
