package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config      termgate.ValidationConfig
	Validator   termgate.Validator
	Files       *fs.Reader
	Reader      termgate.DocumentReader
	Synthesizer termgate.Synthesizer

	Entries   termgate.EntryService
	Documents termgate.DocumentService
	Log       termgate.LogService
	Writer    termgate.BatchWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string `name:"db" env:"TERMGATE_DB" default:"${db}" help:"SQLite database path"`
	PostgresURL string `name:"postgres" env:"TERMGATE_POSTGRES_URL" help:"Postgres connection URL (overrides --db)"`
	Profile     string `short:"P" help:"YAML validation profile"`
	Language    string `short:"l" default:"en" enum:"en,de" help:"Default document language (en, de)"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`

	Ingest     IngestCmd     `cmd:"" help:"Process documents into glossary entries"`
	Check      CheckCmd      `cmd:"" help:"Validate candidate terms without storing anything"`
	Normalize  NormalizeCmd  `cmd:"" help:"Print the normalized text of a document"`
	Entries    EntriesCmd    `cmd:"" help:"List glossary entries"`
	Mark       MarkCmd       `cmd:"" help:"Set the review status of an entry"`
	Log        LogCmd        `cmd:"" help:"Show the verdict log"`
	ExportLog  ExportLogCmd  `cmd:"" name:"export-log" help:"Write the verdict log as JSON lines"`
	Revalidate RevalidateCmd `cmd:"" help:"Re-check stored entries against the current rules"`
	Status     StatusCmd     `cmd:"" help:"Show processed documents"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Paths       []string `arg:"" help:"Documents or directories to process"`
	Source      string   `short:"s" default:"internal" help:"Document source (internal, NAMUR, DIN, ASME, ISO, IEC, VDI)"`
	Reprocess   bool     `help:"Process documents even if identical content was already committed"`
	Concurrency int      `short:"c" default:"4" help:"Documents processed in parallel"`
	Gemini      bool     `help:"Generate definitions with Gemini (requires GEMINI_API_KEY)"`
	Model       string   `help:"Gemini model name"`
	RPS         float64  `name:"rps" default:"1" help:"Gemini requests per second"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Terms []string `arg:"" help:"Candidate terms"`
}

// NormalizeCmd is the "normalize" subcommand.
type NormalizeCmd struct {
	Path string `arg:"" help:"Document to normalize"`
}

// EntriesCmd is the "entries" subcommand.
type EntriesCmd struct {
	Term     string `short:"t" help:"Only entries whose term contains this text"`
	Lang     string `name:"lang" help:"Only entries in this language"`
	Source   string `help:"Only entries from this source"`
	Status   string `help:"Only entries with this status (pending, validated, rejected)"`
	Limit    int    `default:"50" help:"Maximum number of entries"`
	Offset   int    `help:"Number of entries to skip"`
	JSON     bool   `name:"json" help:"Print entries as JSON lines"`
}

// MarkCmd is the "mark" subcommand.
type MarkCmd struct {
	ID     string `arg:"" help:"Entry ID"`
	Status string `arg:"" help:"New status (pending, validated, rejected)"`
}

// LogCmd is the "log" subcommand.
type LogCmd struct {
	Document string `short:"d" help:"Only records of this document ID"`
	Rejected bool   `help:"Only rejections" xor:"verdict"`
	Accepted bool   `help:"Only acceptances" xor:"verdict"`
	Reason   string `help:"Only records with this reason code"`
	Rule     string `help:"Only records from this rule"`
	Limit    int    `default:"100" help:"Maximum number of records"`
	Offset   int    `help:"Number of records to skip"`
}

// ExportLogCmd is the "export-log" subcommand.
type ExportLogCmd struct {
	Path     string `arg:"" help:"Output file"`
	Rejected bool   `help:"Only rejections"`
	Reason   string `help:"Only records with this reason code"`
}

// RevalidateCmd is the "revalidate" subcommand.
type RevalidateCmd struct {
	Source string `help:"Only entries from this source"`
	Lang   string `name:"lang" help:"Only entries in this language"`
	Purge  bool   `help:"Delete failing entries instead of marking them rejected"`
	DryRun bool   `short:"n" help:"Show what would change without writing"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Skipped bool `help:"Only skipped documents"`
	Limit   int  `default:"20" help:"Maximum number of documents to list"`
}
