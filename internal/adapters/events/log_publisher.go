package events

import (
	"go.uber.org/zap"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/ports"
)

// LogObserver logs construction outcomes.
type LogObserver struct {
	log *zap.Logger
}

func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) BookConstructed(book domain.Book) {
	isbn10, _ := book.ISBN10().Get()
	o.log.Debug("book constructed",
		zap.String("title", book.Title()),
		zap.String("isbn_10", isbn10),
	)
}

func (o *LogObserver) BookRejected(err error) {
	o.log.Info("book rejected", zap.Error(err))
}

// Multi fans outcomes out to every observer in order.
type Multi []ports.ConstructionObserver

func (m Multi) BookConstructed(book domain.Book) {
	for _, o := range m {
		o.BookConstructed(book)
	}
}

func (m Multi) BookRejected(err error) {
	for _, o := range m {
		o.BookRejected(err)
	}
}
