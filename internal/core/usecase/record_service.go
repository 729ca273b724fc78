package usecase

import (
	"fmt"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/ports"
)

// BookService turns raw records into validated books.
type BookService struct {
	observer ports.ConstructionObserver
}

// NewBookService returns a BookService. observer may be nil.
func NewBookService(observer ports.ConstructionObserver) *BookService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &BookService{observer: observer}
}

// Construct builds one book from raw. Field types are checked in declaration
// order before any field rule runs, and the first violation is returned: a
// *domain.SchemaError, or a *domain.FieldError wrapping a *domain.FormatError.
func (s *BookService) Construct(raw domain.RawRecord) (domain.Book, error) {
	book, err := construct(raw)
	if err != nil {
		s.observer.BookRejected(err)
		return domain.Book{}, err
	}
	s.observer.BookConstructed(book)
	return book, nil
}

// ConstructAll builds every record in raws. The first failure aborts the batch
// and no books are returned.
func (s *BookService) ConstructAll(raws []domain.RawRecord) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(raws))
	for i, raw := range raws {
		book, err := s.Construct(raw)
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", i, err)
		}
		books = append(books, book)
	}
	return books, nil
}

func construct(raw domain.RawRecord) (domain.Book, error) {
	var (
		in  domain.BookInput
		err error
	)
	if in.Title, err = raw.Text(domain.FieldTitle); err != nil {
		return domain.Book{}, err
	}
	if in.Author, err = raw.Text(domain.FieldAuthor); err != nil {
		return domain.Book{}, err
	}
	if in.Publisher, err = raw.Text(domain.FieldPublisher); err != nil {
		return domain.Book{}, err
	}
	if in.Price, err = raw.Number(domain.FieldPrice); err != nil {
		return domain.Book{}, err
	}
	if in.ISBN10, err = raw.OptionalText(domain.FieldISBN10); err != nil {
		return domain.Book{}, err
	}
	if in.ISBN13, err = raw.OptionalText(domain.FieldISBN13); err != nil {
		return domain.Book{}, err
	}
	if in.Subtitle, err = raw.OptionalText(domain.FieldSubtitle); err != nil {
		return domain.Book{}, err
	}
	return domain.NewBook(in)
}

type nopObserver struct{}

func (nopObserver) BookConstructed(domain.Book) {}
func (nopObserver) BookRejected(error)          {}
