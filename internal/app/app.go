package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atvirokodosprendimai/bookcheck/internal/adapters/events"
	"github.com/atvirokodosprendimai/bookcheck/internal/adapters/source"
	"github.com/atvirokodosprendimai/bookcheck/internal/config"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/ports"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/usecase"
	"github.com/atvirokodosprendimai/bookcheck/internal/logger"
	"github.com/atvirokodosprendimai/bookcheck/internal/metrics"
	"github.com/atvirokodosprendimai/bookcheck/schemas"
)

var (
	ErrViolations  = errors.New("lint found violations")
	ErrInvalidISBN = errors.New("invalid isbn_10 values")
)

type resourceCloser struct {
	closers []io.Closer
}

func (r resourceCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// App runs bookcheck commands against one configuration.
type App struct {
	cfg    config.Config
	log    *zap.Logger
	books  *usecase.BookService
	schema *usecase.SchemaService
	out    io.Writer
	stdin  io.Reader
}

// New wires the logger, observers and services. The returned closer writes
// the metrics textfile, when configured, and flushes the logger.
func New(cfg config.Config, out io.Writer) (*App, io.Closer, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	books := usecase.NewBookService(events.Multi{
		events.NewLogObserver(log),
		metrics.Observer{},
	})

	a := &App{
		cfg:    cfg,
		log:    log,
		books:  books,
		schema: usecase.NewSchemaService(schemas.Embedded{}, books),
		out:    out,
		stdin:  os.Stdin,
	}

	closers := []io.Closer{}
	if cfg.Metrics.Textfile != "" {
		path := cfg.Metrics.Textfile
		closers = append(closers, closerFunc(func() error {
			if err := metrics.WriteTextfile(path); err != nil {
				return fmt.Errorf("write metrics textfile: %w", err)
			}
			return nil
		}))
	}
	closers = append(closers, closerFunc(func() error {
		// Sync on a console-only logger fails for stderr on some platforms.
		_ = log.Sync()
		return nil
	}))

	return a, resourceCloser{closers: closers}, nil
}

// Load constructs every record in the input and prints the books. The first
// invalid record aborts the run and nothing is printed.
func (a *App) Load(ctx context.Context, path, format string) (err error) {
	log := a.log.With(zap.String("run_id", uuid.NewString()), zap.String("command", "load"), zap.String("input", path))
	log.Info("run started")
	defer func() {
		metrics.RecordRun("load", err)
		if err != nil {
			log.Error("run failed", zap.Error(err))
		}
	}()

	raws, err := a.source(path, format).Records(ctx)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	books, err := a.books.ConstructAll(raws)
	if err != nil {
		return err
	}

	if err := a.printBooks(books); err != nil {
		return fmt.Errorf("print books: %w", err)
	}
	log.Info("run finished", zap.Int("books", len(books)))
	return nil
}

// Lint reports every violation in the input. It returns ErrViolations when it
// found any.
func (a *App) Lint(ctx context.Context, path, format string) (err error) {
	log := a.log.With(zap.String("run_id", uuid.NewString()), zap.String("command", "lint"), zap.String("input", path))
	log.Info("run started")
	defer func() { metrics.RecordRun("lint", err) }()

	raws, err := a.source(path, format).Records(ctx)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	violations, err := a.schema.Lint(raws)
	if err != nil {
		return err
	}
	for _, v := range violations {
		if _, err := fmt.Fprintln(a.out, v.String()); err != nil {
			return err
		}
	}
	log.Info("run finished", zap.Int("records", len(raws)), zap.Int("violations", len(violations)))
	if len(violations) > 0 {
		return fmt.Errorf("%w: %d", ErrViolations, len(violations))
	}
	return nil
}

// CheckISBN validates each value with the ISBN-10 rule and prints one line per
// value.
func (a *App) CheckISBN(values []string) (err error) {
	defer func() { metrics.RecordRun("isbn", err) }()

	failed := 0
	for _, v := range values {
		line := v + ": ok"
		if _, verr := domain.ValidateISBN10(v); verr != nil {
			failed++
			line = v + ": " + verr.Error()
		}
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidISBN, failed, len(values))
	}
	return nil
}

func (a *App) source(path, format string) ports.RecordSource {
	return source.File{Path: path, Format: format, Stdin: a.stdin}
}

func (a *App) printBooks(books []domain.Book) error {
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tPUBLISHER\tPRICE\tISBN_10")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.Title(), b.Author(), b.Publisher(),
			strconv.FormatFloat(b.Price(), 'f', 2, 64),
			orDash(b.ISBN10()),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(books) > 0 {
		_, err := fmt.Fprintf(a.out, "publisher of first book: %s\n", books[0].Publisher())
		return err
	}
	return nil
}

func orDash(o domain.OptionalText) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return "-"
}
