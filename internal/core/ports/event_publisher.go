package ports

import (
	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
)

// ConstructionObserver is told about every book construction outcome.
// Implementations must be safe for concurrent use.
type ConstructionObserver interface {
	BookConstructed(book domain.Book)
	BookRejected(err error)
}
