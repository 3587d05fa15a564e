// Package history records completed assessments and answers questions about
// them: listing, lookup, comparison with earlier runs, sharing and
// aggregate stats. The whole list lives under one key of a store.KVRepo as a
// JSON array, and every change is a single read-modify-write transaction.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
	"github.com/abhisek/strengthmap/internal/logging"
	"github.com/abhisek/strengthmap/internal/scoring"
	"github.com/abhisek/strengthmap/internal/store"
)

// StorageKey is the key the assessment list is stored under.
const StorageKey = "assessments"

// DefaultSnapshotKeep is how many backups of the list are retained.
const DefaultSnapshotKeep = 10

// Snapshot reasons recorded before destructive writes.
const (
	reasonDelete  = "delete"
	reasonReset   = "reset"
	reasonImport  = "import"
	reasonRestore = "restore"
)

// Options configures a Service. Zero values select defaults.
type Options struct {
	Logger       *slog.Logger
	Now          func() time.Time
	NewID        func() (string, error)
	SnapshotKeep int
}

// Service manages the stored assessment history.
type Service struct {
	kv        store.KVRepo
	snapshots store.SnapshotRepo
	logger    *slog.Logger
	now       func() time.Time
	newID     func() (string, error)
	keep      int
}

// NewService creates a Service over the given repositories.
func NewService(kv store.KVRepo, snapshots store.SnapshotRepo, opts Options) *Service {
	s := &Service{
		kv:        kv,
		snapshots: snapshots,
		logger:    opts.Logger,
		now:       opts.Now,
		newID:     opts.NewID,
		keep:      opts.SnapshotKeep,
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = newUUID
	}
	if s.keep <= 0 {
		s.keep = DefaultSnapshotKeep
	}
	return s
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// Record scores a completed run, stores the resulting assessment and returns
// it. answers must hold one in-range answer for every catalog question.
func (s *Service) Record(ctx context.Context, answers []assessment.Answer) (assessment.Result, error) {
	if err := assessment.ValidateRun(answers, catalog.IDs()); err != nil {
		return assessment.Result{}, err
	}

	id, err := s.newID()
	if err != nil {
		return assessment.Result{}, err
	}
	analysis := scoring.Analyze(answers)
	result := assessment.Result{
		ID:        id,
		Date:      s.now().UTC(),
		Answers:   append([]assessment.Answer{}, answers...),
		Strengths: analysis.Strengths,
		Values:    analysis.Values,
	}

	err = s.update(ctx, "", func(list []assessment.Result) ([]assessment.Result, error) {
		return append(list, result), nil
	})
	if err != nil {
		return assessment.Result{}, fmt.Errorf("record assessment: %w", err)
	}

	s.logger.Info("assessment recorded",
		"id", result.ID,
		"strengths", len(result.Strengths),
		"values", len(result.Values),
	)
	return result, nil
}

// List returns every stored assessment, newest first.
func (s *Service) List(ctx context.Context) ([]assessment.Result, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

// Get returns the assessment with the given id.
func (s *Service) Get(ctx context.Context, id string) (assessment.Result, error) {
	list, err := s.load(ctx)
	if err != nil {
		return assessment.Result{}, err
	}
	for _, r := range list {
		if r.ID == id {
			return r, nil
		}
	}
	return assessment.Result{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes the assessment with the given id. The list as it was
// before the delete is kept as a snapshot.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.update(ctx, reasonDelete, func(list []assessment.Result) ([]assessment.Result, error) {
		out := make([]assessment.Result, 0, len(list))
		for _, r := range list {
			if r.ID != id {
				out = append(out, r)
			}
		}
		if len(out) == len(list) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return out, nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("assessment deleted", "id", id)
	s.prune(ctx)
	return nil
}

// Previous returns the assessment taken just before the one with the given
// id. It returns ErrNoPrevious for the oldest assessment.
func (s *Service) Previous(ctx context.Context, id string) (assessment.Result, error) {
	list, err := s.List(ctx)
	if err != nil {
		return assessment.Result{}, err
	}
	for i, r := range list {
		if r.ID != id {
			continue
		}
		if i+1 >= len(list) {
			return assessment.Result{}, ErrNoPrevious
		}
		return list[i+1], nil
	}
	return assessment.Result{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Comparison pairs two assessments with their strength changes.
type Comparison struct {
	Current  assessment.Result `json:"current"`
	Previous assessment.Result `json:"previous"`
	Items    []GrowthItem      `json:"items"`
}

// Improved returns the strengths that grew.
func (c Comparison) Improved() []GrowthItem { return Improved(c.Items) }

// Declined returns the strengths that shrank.
func (c Comparison) Declined() []GrowthItem { return Declined(c.Items) }

// CompareWithPrevious compares an assessment with the one taken before it.
func (s *Service) CompareWithPrevious(ctx context.Context, id string) (Comparison, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Comparison{}, err
	}
	previous, err := s.Previous(ctx, id)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Current: current, Previous: previous, Items: Compare(current, previous)}, nil
}

// CompareByID compares two specific assessments.
func (s *Service) CompareByID(ctx context.Context, currentID, previousID string) (Comparison, error) {
	current, err := s.Get(ctx, currentID)
	if err != nil {
		return Comparison{}, err
	}
	previous, err := s.Get(ctx, previousID)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Current: current, Previous: previous, Items: Compare(current, previous)}, nil
}

// Share returns the share summary for the assessment with the given id.
func (s *Service) Share(ctx context.Context, id string) (string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return ShareText(r), nil
}

// Reset removes every assessment and returns how many were removed. The
// previous list is kept as a snapshot so Restore can bring it back.
func (s *Service) Reset(ctx context.Context) (int, error) {
	var removed int
	err := s.update(ctx, reasonReset, func(list []assessment.Result) ([]assessment.Result, error) {
		removed = len(list)
		return []assessment.Result{}, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("history reset", "removed", removed)
	s.prune(ctx)
	return removed, nil
}

// Restore rolls the history back to the most recent snapshot and returns
// the restored list size. The list being replaced is kept as a snapshot, so
// records added since the backup are not lost and calling Restore again
// undoes it. It returns store.ErrNoSnapshot when there is no backup to
// restore.
func (s *Service) Restore(ctx context.Context) (int, error) {
	snap, err := s.snapshots.Restore(ctx, StorageKey, reasonRestore)
	if err != nil {
		if errors.Is(err, store.ErrNoSnapshot) {
			return 0, err
		}
		return 0, fmt.Errorf("restore history: %w", err)
	}
	list, err := DecodeResults([]byte(snap.Data))
	if err != nil {
		return 0, err
	}
	s.logger.Info("history restored",
		"reason", snap.Reason,
		"revision", snap.Revision,
		"records", len(list),
	)
	s.prune(ctx)
	return len(list), nil
}

// Import merges results into the stored list. Records whose id is already
// stored are skipped. It returns how many were added.
func (s *Service) Import(ctx context.Context, results []assessment.Result) (int, error) {
	for i, r := range results {
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("import record %d: %w", i, err)
		}
	}

	var added int
	err := s.update(ctx, reasonImport, func(list []assessment.Result) ([]assessment.Result, error) {
		have := make(map[string]bool, len(list))
		for _, r := range list {
			have[r.ID] = true
		}
		for _, r := range results {
			if have[r.ID] {
				continue
			}
			have[r.ID] = true
			list = append(list, r)
			added++
		}
		return list, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("assessments imported", "added", added, "skipped", len(results)-added)
	s.prune(ctx)
	return added, nil
}

// Frequency counts how often a label appeared across assessments.
type Frequency struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats summarizes the stored history.
type Stats struct {
	Count     int         `json:"count"`
	First     time.Time   `json:"first"`
	Last      time.Time   `json:"last"`
	Strengths []Frequency `json:"strengths"`
	Values    []Frequency `json:"values"`
}

// Stats computes aggregate counts over every stored assessment.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	list, err := s.load(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Count: len(list), Strengths: []Frequency{}, Values: []Frequency{}}
	strengths := newCounter()
	values := newCounter()
	for _, r := range list {
		if st.First.IsZero() || r.Date.Before(st.First) {
			st.First = r.Date
		}
		if r.Date.After(st.Last) {
			st.Last = r.Date
		}
		for _, item := range r.Strengths {
			strengths.add(item.Title)
		}
		for _, v := range r.Values {
			values.add(v)
		}
	}
	st.Strengths = strengths.ranked()
	st.Values = values.ranked()
	return st, nil
}

type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) ranked() []Frequency {
	out := make([]Frequency, len(c.order))
	for i, l := range c.order {
		out[i] = Frequency{Label: l, Count: c.counts[l]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func (s *Service) load(ctx context.Context) ([]assessment.Result, error) {
	data, _, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return DecodeResults([]byte(data))
}

// update applies fn to the stored list in one transaction. A non-empty
// reason snapshots the list before it is overwritten.
func (s *Service) update(ctx context.Context, reason string, fn func([]assessment.Result) ([]assessment.Result, error)) error {
	return s.kv.Update(ctx, StorageKey, store.UpdateOpts{SnapshotReason: reason}, func(current string, _ bool) (string, error) {
		list, err := DecodeResults([]byte(current))
		if err != nil {
			return "", err
		}
		next, err := fn(list)
		if err != nil {
			return "", err
		}
		data, err := EncodeResults(next)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}

// prune trims old snapshots. Failures are logged, not returned: the write
// that triggered the prune has already committed.
func (s *Service) prune(ctx context.Context) {
	if err := s.snapshots.Prune(ctx, StorageKey, s.keep); err != nil {
		s.logger.Warn("prune snapshots failed", "error", err)
	}
}

// sortNewestFirst orders list by date, newest first. list is in insertion
// order, so records sharing a date list the later-inserted one first.
func sortNewestFirst(list []assessment.Result) {
	slices.Reverse(list)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
}
