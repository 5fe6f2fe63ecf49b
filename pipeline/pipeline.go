// Package pipeline drives documents through normalization, extraction,
// validation, and definition synthesis, and commits the outcome.
//
// Every candidate produces exactly one verdict, and every verdict is logged.
// Every document produces either a committed batch or a skip record; a
// failed document never leaves partial entries behind.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/bloom"
	"github.com/fwojciec/termgate/normalize"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

// SkipRule is the rule name recorded on document skip records.
const SkipRule = "document"

// DefaultConcurrency is the number of documents processed in parallel when
// Processor.Concurrency is not set.
const DefaultConcurrency = 4

// Processor processes documents end to end.
type Processor struct {
	Reader      termgate.DocumentReader
	Extractor   termgate.Extractor
	Validator   termgate.Validator
	Synthesizer termgate.Synthesizer
	Writer      termgate.BatchWriter

	// Documents and Seen enable skipping documents whose content was
	// already committed. Both are optional.
	Documents termgate.DocumentService
	Seen      *bloom.Filter

	Config      termgate.ValidationConfig
	Source      termgate.Source
	Concurrency int
	Reprocess   bool
	RetryDelays []time.Duration
	Logger      LogFunc

	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}

// Input describes one document to process.
type Input struct {
	Path string

	// Pages, when set, are used instead of reading Path.
	Pages []termgate.Page

	// Source and Language override the processor defaults.
	Source   termgate.Source
	Language termgate.Language
}

// Result holds the outcome of processing one document.
type Result struct {
	Document *termgate.Document
	Accepted int
	Rejected int
	Created  int
	Merged   int

	// Unchanged is set when identical content was already committed and
	// nothing was written.
	Unchanged bool

	// Err is the document-level failure that produced a skip record.
	Err error
}

// Skipped reports whether the document was skipped because of a failure.
func (r *Result) Skipped() bool {
	return r.Document != nil && r.Document.Status == termgate.DocumentSkipped
}

// ErrNoText is reported for documents whose pages contain no text.
var ErrNoText = termgate.Errorf(termgate.EINVALID, "document contains no text")

// Process runs one document through the pipeline. Document-level failures
// are reported in Result.Err and recorded as a skip; the returned error is
// non-nil only when not even the skip record could be written.
func (p *Processor) Process(ctx context.Context, in Input) (*Result, error) {
	lang := in.Language
	if lang == "" {
		lang = p.Config.Language
	}
	source := in.Source
	if source == "" {
		source = p.Source
	}

	doc := &termgate.Document{
		ID:       uuid.New().String(),
		Path:     in.Path,
		Language: lang,
		Source:   source,
	}

	pages := in.Pages
	if pages == nil {
		var err error
		if pages, err = p.Reader.Read(ctx, in.Path); err != nil {
			return p.skip(ctx, doc, nil, fmt.Errorf("read: %w", err))
		}
	}
	doc.PageCount = len(pages)
	doc.ContentHash = ContentHash(pages)

	if !hasText(pages) {
		return p.skip(ctx, doc, nil, ErrNoText)
	}

	if prev, err := p.findCommitted(ctx, doc); err != nil {
		return nil, err
	} else if prev != nil {
		return &Result{Document: prev, Unchanged: true}, nil
	}

	configs := make(map[termgate.Language]termgate.ValidationConfig)
	configFor := func(l termgate.Language) termgate.ValidationConfig {
		cfg, ok := configs[l]
		if !ok {
			cfg = p.Config
			if cfg.Language != l {
				cfg = cfg.WithLanguage(l)
			}
			configs[l] = cfg
		}
		return cfg
	}

	batch := &termgate.Batch{Document: doc}
	entries := make(map[termgate.EntryKey]*termgate.Entry)
	result := &Result{Document: doc}

	for _, page := range pages {
		if page.Language == "" {
			page.Language = lang
		}
		page.Text = normalize.Text(page.Text)

		for _, c := range p.Extractor.Extract(page, doc.ID) {
			termLang := c.Language
			if termLang == "" {
				termLang = page.Language
			}

			term := normalize.Normalize(c.Term)
			verdict := p.Validator.Validate(term, configFor(termLang))
			batch.Records = append(batch.Records, p.newRecord(doc.ID, c.Original, term, verdict))

			if !verdict.Accepted {
				result.Rejected++
				continue
			}
			result.Accepted++

			text, err := p.Synthesizer.Synthesize(ctx, termgate.SynthesisRequest{
				Term:     term,
				Context:  c.Context,
				Sentence: c.Sentence,
				Pages:    c.Pages,
				Language: termLang,
			})
			if err != nil {
				return p.skip(ctx, doc, batch.Records, fmt.Errorf("synthesize %q: %w", term, err))
			}

			def := termgate.Definition{Text: text, Pages: c.Pages, DocumentID: doc.ID}
			key := termgate.NewEntryKey(term, termLang, source)
			if e, ok := entries[key]; ok {
				e.AddDefinition(def)
				continue
			}
			e := &termgate.Entry{
				Term:        term,
				Language:    termLang,
				Source:      source,
				Definitions: []termgate.Definition{def},
				Status:      termgate.StatusPending,
			}
			entries[key] = e
			batch.Entries = append(batch.Entries, e)
		}
	}

	doc.Status = termgate.DocumentCommitted
	doc.EntryCount = len(batch.Entries)
	doc.ProcessedAt = p.now()

	res, err := CommitWithRetryDelays(ctx, p.Writer, batch, p.Logger, p.retryDelays())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return p.skip(ctx, doc, batch.Records, fmt.Errorf("commit: %w", err))
	}
	result.Created = res.Created
	result.Merged = res.Merged

	if p.Seen != nil {
		p.Seen.Add(doc.ContentHash)
	}
	return result, nil
}

// skip writes a skip record for doc. The verdicts collected before the
// failure are kept in the log; no entries are written.
func (p *Processor) skip(ctx context.Context, doc *termgate.Document, records []*termgate.LogRecord, cause error) (*Result, error) {
	doc.Status = termgate.DocumentSkipped
	doc.Error = cause.Error()
	doc.EntryCount = 0
	doc.ProcessedAt = p.now()

	records = append(records, p.newRecord(doc.ID, doc.Path, "", termgate.Reject(SkipRule, termgate.ReasonDocumentSkipped)))
	batch := &termgate.Batch{Document: doc, Records: records}

	if _, err := CommitWithRetryDelays(ctx, p.Writer, batch, p.Logger, p.retryDelays()); err != nil {
		return nil, fmt.Errorf("record skip of %s: %w", doc.Path, errors.Join(cause, err))
	}
	return &Result{Document: doc, Err: cause}, nil
}

// findCommitted returns the committed document with the same content, source
// and language, or nil if doc must be processed.
func (p *Processor) findCommitted(ctx context.Context, doc *termgate.Document) (*termgate.Document, error) {
	if p.Reprocess || p.Documents == nil {
		return nil, nil
	}
	if p.Seen != nil && !p.Seen.Test(doc.ContentHash) {
		return nil, nil
	}

	prev, err := p.Documents.FindDocumentByHash(ctx, doc.ContentHash, doc.Source, doc.Language)
	if termgate.ErrorCode(err) == termgate.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("find document by hash: %w", err)
	}
	return prev, nil
}

// LoadSeen adds the content hashes of all committed documents to Seen.
func (p *Processor) LoadSeen(ctx context.Context) error {
	if p.Seen == nil || p.Documents == nil {
		return nil
	}
	status := termgate.DocumentCommitted
	docs, err := p.Documents.FindDocuments(ctx, termgate.DocumentFilter{Status: &status})
	if err != nil {
		return fmt.Errorf("load seen documents: %w", err)
	}
	for _, d := range docs {
		p.Seen.Add(d.ContentHash)
	}
	return nil
}

func (p *Processor) newRecord(documentID, original, term string, v termgate.Verdict) *termgate.LogRecord {
	return &termgate.LogRecord{
		ID:           p.newID(),
		DocumentID:   documentID,
		OriginalText: original,
		Term:         term,
		Accepted:     v.Accepted,
		Reason:       v.Reason,
		Rule:         v.Rule,
		Timestamp:    p.now(),
	}
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

func (p *Processor) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return ulid.Make().String()
}

func (p *Processor) retryDelays() []time.Duration {
	if p.RetryDelays != nil {
		return p.RetryDelays
	}
	return DefaultRetryDelays()
}

// Summary holds the outcome of processing a set of documents.
type Summary struct {
	Committed int
	Skipped   int
	Unchanged int
	Accepted  int
	Rejected  int
	Created   int
	Merged    int
	Results   []*Result
}

// ProgressEvent reports progress while processing documents.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Result    *Result
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

type processResult struct {
	position int
	result   *Result
}

// ProcessAll processes inputs concurrently and returns results in input
// order. The progress callback, if provided, receives events as documents
// finish; it is never called concurrently.
func (p *Processor) ProcessAll(ctx context.Context, inputs []Input, progress ProgressFunc) (*Summary, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(inputs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan processResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, in := range inputs {
			g.Go(func() error {
				res, err := p.Process(gctx, in)
				if err != nil {
					return err
				}
				resultCh <- processResult{position: i, result: res}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	summary := &Summary{Results: make([]*Result, total)}
	for r := range resultCh {
		n := int(completed.Add(1))
		summary.Results[r.position] = r.result
		summary.add(r.result)

		if progress != nil {
			typ := ProgressCompleted
			if r.result.Skipped() {
				typ = ProgressSkipped
			}
			progress(ProgressEvent{
				Type:      typ,
				Completed: n,
				Total:     total,
				Path:      inputs[r.position].Path,
				Result:    r.result,
			})
		}
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return summary, nil
}

func (s *Summary) add(r *Result) {
	switch {
	case r.Unchanged:
		s.Unchanged++
	case r.Skipped():
		s.Skipped++
	default:
		s.Committed++
	}
	s.Accepted += r.Accepted
	s.Rejected += r.Rejected
	s.Created += r.Created
	s.Merged += r.Merged
}
