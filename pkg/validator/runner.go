package validator

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Hareramrai/missing-validators/pkg/logger"
)

// Validation binds validators to one attribute. Validators run in order.
type Validation struct {
	Attribute  string
	Validators []Validator
}

// Validates declares validators for attribute.
func Validates(attribute string, validators ...Validator) Validation {
	return Validation{Attribute: attribute, Validators: validators}
}

func (v Validation) apply(record Record) {
	value, _ := record.Attribute(v.Attribute)
	for _, validator := range v.Validators {
		validator.ValidateEach(record, v.Attribute, value)
	}
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger logs failed attributes at debug level.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConcurrency evaluates up to n validations in parallel. n <= 1 runs sequentially.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// Runner executes declared validations against a record.
type Runner struct {
	logger      *slog.Logger
	concurrency int
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies validations to record and returns the ValidationErrors added
// by this run, or nil. Messages land in record.Errors() in declaration order
// regardless of concurrency. When ctx is cancelled the context error is
// returned and record is left untouched.
func (r *Runner) Run(ctx context.Context, record Record, validations ...Validation) error {
	if record == nil {
		return ErrNilRecord
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buffers := make([]*bufferedRecord, len(validations))
	for i := range validations {
		buffers[i] = &bufferedRecord{parent: record}
	}

	if err := r.evaluate(ctx, validations, buffers); err != nil {
		r.logger.WarnContext(ctx, "validation interrupted", logger.Error(err))
		return err
	}

	var added ValidationErrors
	for i, buf := range buffers {
		errs := buf.errs.All()
		if len(errs) == 0 {
			continue
		}
		record.Errors().merge(&buf.errs)
		added = append(added, errs...)
		r.logger.DebugContext(ctx, "attribute failed validation",
			logger.Attribute(validations[i].Attribute),
			logger.Messages(errs.Get(validations[i].Attribute)),
		)
	}

	if added.IsEmpty() {
		return nil
	}
	return added
}

func (r *Runner) evaluate(ctx context.Context, validations []Validation, buffers []*bufferedRecord) error {
	if r.concurrency <= 1 {
		for i, v := range validations {
			if err := ctx.Err(); err != nil {
				return err
			}
			v.apply(buffers[i])
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, v := range validations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v.apply(buffers[i])
			return nil
		})
	}
	return g.Wait()
}
