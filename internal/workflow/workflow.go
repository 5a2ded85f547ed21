package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/luggio/console/internal/domain"
)

// Step identifies the workflow phase a failure occurred in, so the view
// can show a distinguishable message per phase.
type Step string

const (
	StepValidate Step = "validation"
	StepConfirm  Step = "confirmation"
	StepGeocode  Step = "geocoding"
	StepUpload   Step = "upload"
	StepPersist  Step = "persistence"
	StepDelete   Step = "deletion"
)

// StepError wraps a failure with the step it occurred in.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// FailedStep reports which step err failed in, if it is a StepError.
func FailedStep(err error) (Step, bool) {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step, true
	}
	return "", false
}

// ErrCancelled is returned when the user declines the confirmation gate.
// It is not a failure; the draft stays open and no effect was issued.
var ErrCancelled = errors.New("cancelled by user")

// FieldErrors carries per-field validation messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Point is a resolved coordinate pair. A zero value is a valid location,
// never a sentinel for "unresolved".
type Point struct {
	Lat float64
	Lng float64
}

// StagedFile is a file chosen in the current submission. An already
// persisted image path is never re-staged.
type StagedFile struct {
	Name    string
	Content io.Reader
}

// Input is one submission: the draft of editable fields plus the
// transient inputs that participate in the workflow but are never
// persisted.
type Input[D any] struct {
	Draft D
	// Address and DetailAddress are concatenated for geocoding.
	// Empty Address skips the geocoding step.
	Address       string
	DetailAddress string
	// File is the newly staged image, nil when none was chosen.
	File *StagedFile
}

// ConfirmFunc is the explicit user confirmation gate. Returning false
// cancels the submission without error.
type ConfirmFunc func(ctx context.Context) (bool, error)

// GeocodeFunc resolves an address to coordinates. It must return an
// error (not a zero Point) when the address cannot be resolved.
type GeocodeFunc func(ctx context.Context, address string) (Point, error)

// UploadFunc stores a staged file and returns its server path.
type UploadFunc func(ctx context.Context, file *StagedFile) (string, error)

// Config wires one entity's submission pipeline. Validate, Persist and
// Refresh are required; the rest are optional depending on whether the
// entity carries an address or an image.
type Config[D any] struct {
	Validate func(in Input[D]) error
	Confirm  ConfirmFunc
	Geocode  GeocodeFunc
	Upload   UploadFunc
	Persist  func(ctx context.Context, draft D) error
	Refresh  func()
	// ApplyPoint writes resolved coordinates into the draft.
	ApplyPoint func(draft *D, p Point)
	// ApplyPath writes the uploaded image path into the draft.
	ApplyPath func(draft *D, path string)
}

// Workflow owns one entity's create-or-edit submission: validate,
// confirm, geocode, optionally upload, persist, then refresh the owning
// list. Any step failure leaves the draft with the caller for
// correction; nothing is partially applied.
type Workflow[D any] struct {
	cfg Config[D]

	mu         sync.Mutex
	submitting bool
	lastErr    error
}

func New[D any](cfg Config[D]) *Workflow[D] {
	return &Workflow[D]{cfg: cfg}
}

// Submitting reports whether a submission is in flight.
func (w *Workflow[D]) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// LastError returns the outcome of the most recent submission.
func (w *Workflow[D]) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Submit runs the full pipeline for one submission. Only one submission
// may be in flight at a time; a second call while submitting returns an
// error without side effects.
func (w *Workflow[D]) Submit(ctx context.Context, in Input[D]) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return errors.New("submission already in progress")
	}
	w.submitting = true
	w.mu.Unlock()

	err := w.run(ctx, in)

	w.mu.Lock()
	w.submitting = false
	if errors.Is(err, ErrCancelled) {
		w.lastErr = nil
	} else {
		w.lastErr = err
	}
	w.mu.Unlock()

	return err
}

func (w *Workflow[D]) run(ctx context.Context, in Input[D]) error {
	if err := w.cfg.Validate(in); err != nil {
		return &StepError{Step: StepValidate, Err: err}
	}

	if w.cfg.Confirm != nil {
		ok, err := w.cfg.Confirm(ctx)
		if err != nil {
			return &StepError{Step: StepConfirm, Err: err}
		}
		if !ok {
			return ErrCancelled
		}
	}

	draft := in.Draft

	// Geocoding must succeed before the upload so a failed address never
	// leaves an orphaned file on the server. Entities whose config wires
	// no geocoding ignore a stray address instead of panicking on it.
	if addr := joinAddress(in.Address, in.DetailAddress); addr != "" && w.cfg.Geocode != nil && w.cfg.ApplyPoint != nil {
		point, err := w.cfg.Geocode(ctx, addr)
		if err != nil {
			if domain.IsUnresolvable(err) {
				return &StepError{Step: StepGeocode, Err: err}
			}
			return &StepError{Step: StepGeocode, Err: fmt.Errorf("resolve %q: %w", addr, err)}
		}
		w.cfg.ApplyPoint(&draft, point)
	}

	if in.File != nil && w.cfg.Upload != nil && w.cfg.ApplyPath != nil {
		path, err := w.cfg.Upload(ctx, in.File)
		if err != nil {
			return &StepError{Step: StepUpload, Err: err}
		}
		w.cfg.ApplyPath(&draft, path)
	}

	if err := w.cfg.Persist(ctx, draft); err != nil {
		return &StepError{Step: StepPersist, Err: err}
	}

	if w.cfg.Refresh != nil {
		w.cfg.Refresh()
	}
	return nil
}

func joinAddress(primary, detail string) string {
	primary = strings.TrimSpace(primary)
	detail = strings.TrimSpace(detail)
	if primary == "" {
		return ""
	}
	if detail == "" {
		return primary
	}
	return primary + " " + detail
}

// Deleter runs the delete variant: confirmation gate, one delete call,
// then a list refresh. On failure the record is not assumed deleted.
type Deleter struct {
	Confirm ConfirmFunc
	Delete  func(ctx context.Context, id uint) error
	Refresh func()
}

func (d *Deleter) Run(ctx context.Context, id uint) error {
	if d.Confirm != nil {
		ok, err := d.Confirm(ctx)
		if err != nil {
			return &StepError{Step: StepConfirm, Err: err}
		}
		if !ok {
			return ErrCancelled
		}
	}

	if err := d.Delete(ctx, id); err != nil {
		return &StepError{Step: StepDelete, Err: err}
	}

	if d.Refresh != nil {
		d.Refresh()
	}
	return nil
}
