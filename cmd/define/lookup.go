package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/presenter"
)

type resolver interface {
	Resolve(ctx context.Context, word string, lang domain.Language, opts domain.Options) (*domain.Definition, error)
	Section(ctx context.Context, word string, lang domain.Language, kind domain.SectionKind) (*domain.Section, error)
}

type request struct {
	lang    domain.Language
	opts    domain.Options
	section domain.SectionKind // empty selects the definition
	// concurrency bounds the lookups in flight.
	concurrency int
}

type result struct {
	word string
	def  *domain.Definition
	sec  *domain.Section
	err  error
}

// lookupAll resolves words concurrently. Results keep the order of words.
// A failed lookup is recorded in its result and never stops the others;
// only cancellation of ctx is returned, once the started lookups finish.
func lookupAll(ctx context.Context, svc resolver, words []string, req request) ([]result, error) {
	results := make([]result, len(words))

	var g errgroup.Group
	if req.concurrency > 0 {
		g.SetLimit(req.concurrency)
	}

	for i, word := range words {
		g.Go(func() error {
			r := result{word: word}
			if r.err = ctx.Err(); r.err != nil {
				results[i] = r
				return r.err
			}

			if req.section != "" {
				r.sec, r.err = svc.Section(ctx, word, req.lang, req.section)
			} else {
				r.def, r.err = svc.Resolve(ctx, word, req.lang, req.opts)
			}
			results[i] = r
			return nil
		})
	}

	return results, g.Wait()
}

// printResults writes one line per result and returns the number of failures.
func printResults(w io.Writer, results []result, lang domain.Language) int {
	failed := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(w, "%s: %s\n", r.word, presenter.ErrorMessage(r.err, lang))
		case r.sec != nil:
			fmt.Fprintln(w, presenter.FormatSection(r.sec, lang))
		default:
			fmt.Fprintln(w, presenter.FormatDefinition(r.def))
		}
	}
	return failed
}
