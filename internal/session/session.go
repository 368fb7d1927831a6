// Package session runs the interactive search loop: prompt for a term, list
// classified results, then open a chosen result in the browser.
//
// An invalid selection (not a number, or a number outside the list) is
// taken as a new search term and clears the current results. This mirrors
// the long-standing behavior of the tool and surprises users who mistype a
// number; WithStrictSelection reports out-of-range numbers instead.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"github.com/gndm/itunesSearch/internal/browser"
	"github.com/gndm/itunesSearch/internal/itunes"
	"github.com/gndm/itunesSearch/internal/logging"
	"github.com/gndm/itunesSearch/internal/media"
	"github.com/gndm/itunesSearch/internal/parser"
)

// Prompts written to the output.
const (
	TermPrompt      = `Enter a search term, or "exit" to quit: `
	CountPrompt     = "How many results do you want to preview? "
	SelectionPrompt = `Enter a number for more info, or another search term, or "exit": `
	GoodbyeMessage  = "Bye!"
)

// Session is the state of one interactive run.
type Session struct {
	client  itunes.Client
	opener  browser.Opener
	in      *bufio.Reader
	out     io.Writer
	results ResultList
	state   State
	strict  bool
}

// Option configures a Session.
type Option func(*Session)

// WithStrictSelection makes out-of-range numeric selections print an error
// and keep the current results instead of starting a new search.
func WithStrictSelection(strict bool) Option {
	return func(s *Session) { s.strict = strict }
}

// New creates a Session reading answers from in and writing to out.
func New(client itunes.Client, opener browser.Opener, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		client: client,
		opener: opener,
		in:     bufio.NewReader(in),
		out:    out,
		state:  AwaitingTerm,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current loop state.
func (s *Session) State() State { return s.state }

// Results returns a copy of the current result list.
func (s *Session) Results() []itunes.Record { return s.results.Records() }

// Run drives the loop until the user exits, input ends, or ctx is done.
// End of input is treated like "exit".
func (s *Session) Run(ctx context.Context) error {
	for s.state != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch s.state {
		case AwaitingTerm:
			err = s.awaitTerm(ctx)
		case AwaitingSelection:
			err = s.awaitSelection(ctx)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			s.terminate()
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) awaitTerm(ctx context.Context) error {
	term, err := s.prompt(TermPrompt)
	if err != nil {
		return err
	}
	if parser.IsExit(term) {
		s.terminate()
		return nil
	}
	return s.Search(ctx, term)
}

func (s *Session) awaitSelection(ctx context.Context) error {
	input, err := s.prompt(SelectionPrompt)
	if err != nil {
		return err
	}
	if parser.IsExit(input) {
		s.terminate()
		return nil
	}

	if n, ok := parser.Selection(input); ok {
		u, err := s.Resolve(n)
		if err == nil {
			s.launch(ctx, u)
			return nil
		}
		logging.Debug().Err(err).Str("input", input).Msg("[session] selection not resolvable")
		if s.strict {
			if errors.Is(err, ErrSelectionInvalid) {
				fmt.Fprintf(s.out, "Invalid selection %q: choose a number between 1 and %d.\n", input, s.results.Len())
			} else {
				fmt.Fprintf(s.out, "Invalid selection %q: %v\n", input, err)
			}
			return nil
		}
	}

	// Anything that is not a usable selection starts a new search.
	return s.Search(ctx, input)
}

// Search clears the result list, asks how many results to fetch, runs the
// query and displays the results. A failed query is reported on the output
// and leaves the session awaiting a new term.
func (s *Session) Search(ctx context.Context, term string) error {
	s.results.Reset()
	s.state = AwaitingTerm

	limit, err := s.askCount()
	if err != nil {
		return err
	}

	ctx = logging.ContextWithCorrelationID(ctx, uuid.NewString()[:8])
	logging.Ctx(ctx).Info().Str("term", term).Int("limit", limit).Msg("[session] searching")

	results, err := s.client.Search(ctx, term, limit)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		logging.Ctx(ctx).Error().Err(err).Msg("[session] search failed")
		fmt.Fprintf(s.out, "Search failed: %v\n", err)
		return nil
	}

	s.Display(ctx, results)
	return nil
}

// askCount prompts until a valid result count is entered.
func (s *Session) askCount() (int, error) {
	for {
		input, err := s.prompt(CountPrompt)
		if err != nil {
			return 0, err
		}
		n, err := parser.ResultCount(input)
		if err == nil {
			return n, nil
		}
		var ce *parser.CountError
		if errors.As(err, &ce) {
			fmt.Fprintln(s.out, ce.Message)
		} else {
			fmt.Fprintln(s.out, err)
		}
	}
}

// Display prints records grouped as songs, movies then other media,
// numbering entries across all groups, and appends each printed record to
// the result list. Records that cannot be normalized are skipped and do not
// take a number. It returns the number of entries printed.
func (s *Session) Display(ctx context.Context, results []itunes.Result) int {
	buckets := make(map[media.Category][]itunes.Result, len(media.Categories))
	for _, r := range results {
		c := media.Classify(r.Record)
		buckets[c] = append(buckets[c], r)
	}

	total := 0
	for _, c := range media.Categories {
		fmt.Fprintf(s.out, "\n%s\n", c.Heading())
		shown := 0
		for _, r := range buckets[c] {
			view, err := media.Normalize(r.Record, c)
			if err != nil {
				s.logSkipped(ctx, r, c, err)
				continue
			}
			total++
			shown++
			fmt.Fprintln(s.out, media.FormatEntry(total, view))
			s.results.Append(r.Record)
		}
		if shown == 0 {
			fmt.Fprintln(s.out, c.EmptyMessage())
			if c == media.Other {
				fmt.Fprintln(s.out)
			}
		}
	}
	if total == 0 {
		fmt.Fprintln(s.out, media.NoResultsMessage)
	}

	if s.results.Len() > 0 {
		s.state = AwaitingSelection
	} else {
		s.state = AwaitingTerm
	}
	return total
}

// Resolve returns the launchable URL of the entry numbered n.
func (s *Session) Resolve(n int) (string, error) {
	rec, err := s.results.Get(n)
	if err != nil {
		return "", err
	}
	return media.ResolveURL(rec)
}

func (s *Session) launch(ctx context.Context, u string) {
	fmt.Fprintln(s.out, "Launching")
	fmt.Fprintln(s.out, u)
	fmt.Fprintln(s.out, "in web browser...")
	if err := s.opener.Open(ctx, u); err != nil {
		fmt.Fprintf(s.out, "Unable to open browser: %v\n", err)
	}
}

func (s *Session) logSkipped(ctx context.Context, r itunes.Result, c media.Category, err error) {
	if e := logging.Ctx(ctx).Warn(); e.Enabled() {
		e.Err(err).
			Str("category", c.String()).
			Str("record", r.Compact()).
			Msg("[session] skipping malformed record")
	}
	if e := logging.Ctx(ctx).Debug(); e.Enabled() {
		e.Msg("[session] skipped record:\n" + litter.Sdump(r.Record))
	}
}

func (s *Session) terminate() {
	fmt.Fprintln(s.out, GoodbyeMessage)
	s.state = Terminated
}

// prompt writes p and reads one line, without its line ending. A final
// line without a newline is returned normally; io.EOF only comes back when
// nothing was read.
func (s *Session) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
