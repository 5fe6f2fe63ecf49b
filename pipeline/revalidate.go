package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/oklog/ulid/v2"
)

const revalidatePageSize = 500

// Revalidator re-checks stored entries against the current rule set and
// rejects, or purges, those that no longer pass. Every rejection is logged.
type Revalidator struct {
	Entries   termgate.EntryService
	Log       termgate.LogService
	Validator termgate.Validator
	Config    termgate.ValidationConfig

	// Purge deletes failing entries instead of marking them rejected.
	Purge bool

	// DryRun reports what would change without writing anything.
	DryRun bool

	Now   func() time.Time
	NewID func() string
}

// RevalidateChange describes one entry that failed revalidation.
type RevalidateChange struct {
	Entry   *termgate.Entry
	Verdict termgate.Verdict
}

// RevalidateResult summarizes a revalidation run.
type RevalidateResult struct {
	Checked  int
	Rejected int
	Purged   int
	Changes  []RevalidateChange
}

// Run revalidates every entry matching filter. Entries already marked
// rejected are left alone. A rejection is logged before the entry is
// changed, so no entry changes without a log record.
func (r *Revalidator) Run(ctx context.Context, filter termgate.EntryFilter) (*RevalidateResult, error) {
	if r.Entries == nil || r.Validator == nil || r.Log == nil {
		return nil, termgate.Errorf(termgate.EINVALID, "revalidator: invalid configuration")
	}

	entries, err := r.collect(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := &RevalidateResult{}
	for _, e := range entries {
		if e.Status == termgate.StatusRejected {
			continue
		}
		res.Checked++

		cfg := r.Config
		if cfg.Language != e.Language {
			cfg = cfg.WithLanguage(e.Language)
		}
		v := r.Validator.Validate(e.Term, cfg)
		if v.Accepted {
			continue
		}

		res.Changes = append(res.Changes, RevalidateChange{Entry: e, Verdict: v})
		if r.DryRun {
			res.Rejected++
			continue
		}

		rec := &termgate.LogRecord{
			ID:           r.newID(),
			OriginalText: e.Term,
			Term:         e.Term,
			Reason:       v.Reason,
			Rule:         v.Rule,
			Timestamp:    r.now(),
		}
		if err := r.Log.AppendRecords(ctx, []*termgate.LogRecord{rec}); err != nil {
			return res, fmt.Errorf("log revalidation of %s: %w", e.ID, err)
		}

		if r.Purge {
			if err := r.Entries.DeleteEntry(ctx, e.ID); err != nil {
				return res, fmt.Errorf("purge entry %s: %w", e.ID, err)
			}
			res.Purged++
		} else {
			if err := r.Entries.UpdateEntryStatus(ctx, e.ID, termgate.StatusRejected); err != nil {
				return res, fmt.Errorf("reject entry %s: %w", e.ID, err)
			}
			res.Rejected++
		}
	}
	return res, nil
}

// collect loads all matching entries before any is modified, so that status
// changes cannot shift the pages being read.
func (r *Revalidator) collect(ctx context.Context, filter termgate.EntryFilter) ([]*termgate.Entry, error) {
	var all []*termgate.Entry
	filter.Limit = revalidatePageSize
	for filter.Offset = 0; ; filter.Offset += revalidatePageSize {
		page, err := r.Entries.FindEntries(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("find entries: %w", err)
		}
		all = append(all, page...)
		if len(page) < revalidatePageSize {
			return all, nil
		}
	}
}

func (r *Revalidator) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}

func (r *Revalidator) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return ulid.Make().String()
}
