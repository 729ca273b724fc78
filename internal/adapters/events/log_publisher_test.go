package events

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
)

type countingObserver struct {
	constructed int
	rejected    int
}

func (o *countingObserver) BookConstructed(domain.Book) { o.constructed++ }
func (o *countingObserver) BookRejected(error)          { o.rejected++ }

func TestLogObserverWritesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	book, err := domain.NewBook(domain.BookInput{Title: "Go", Author: "A", Publisher: "P", Price: 1, ISBN10: domain.SomeText("0136091814")})
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	obs.BookConstructed(book)
	obs.BookRejected(errors.New("title: field required"))

	constructed := logs.FilterMessage("book constructed").All()
	if len(constructed) != 1 || constructed[0].ContextMap()["isbn_10"] != "0136091814" {
		t.Fatalf("unexpected constructed entries: %+v", constructed)
	}
	if logs.FilterMessage("book rejected").Len() != 1 {
		t.Fatal("expected one rejected entry")
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	m := Multi{a, b}

	m.BookConstructed(domain.Book{})
	m.BookRejected(errors.New("boom"))
	m.BookRejected(errors.New("boom"))

	for _, o := range []*countingObserver{a, b} {
		if o.constructed != 1 || o.rejected != 2 {
			t.Fatalf("unexpected counts: %+v", o)
		}
	}
}
