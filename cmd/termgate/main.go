package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/fs"
	"github.com/fwojciec/termgate/gemini"
	"github.com/fwojciec/termgate/goquery"
	"github.com/fwojciec/termgate/htmltomarkdown"
	"github.com/fwojciec/termgate/postgres"
	"github.com/fwojciec/termgate/readability"
	tgslog "github.com/fwojciec/termgate/slog"
	"github.com/fwojciec/termgate/sqlite"
	"github.com/fwojciec/termgate/synthesize"
	"github.com/fwojciec/termgate/trafilatura"
	"github.com/fwojciec/termgate/validate"
	"github.com/fwojciec/termgate/yaml"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default SQLite database path, used when neither --db nor
	// TERMGATE_DB is set.
	DBPath string

	// Storage opened by Run.
	DB *sqlite.DB
	PG *postgres.DB

	// GeminiAPIKey enables LLM definitions for "ingest --gemini".
	GeminiAPIKey string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.PG != nil {
		_ = m.PG.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("termgate"),
		kong.Description("Turn extracted document text into validated terminology entries."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"db": m.DBPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'termgate --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Validation profile
	lang, err := termgate.ParseLanguage(cli.Language)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", termgate.ErrorMessage(err))
		return err
	}
	deps.Config = termgate.DefaultConfig(lang)
	if cli.Profile != "" {
		if deps.Config, err = yaml.LoadProfile(cli.Profile, lang); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", termgate.ErrorMessage(err))
			return fmt.Errorf("failed to load profile %q: %w", cli.Profile, err)
		}
	}
	deps.Validator = validate.DefaultChain()
	deps.Files = fs.NewReader(newHTMLReader())
	deps.Reader = tgslog.NewLoggingReader(deps.Files, deps.Logger)

	// Commands that work on text alone need no storage.
	if cmd == "check" || cmd == "normalize" {
		return kongCtx.Run(deps)
	}

	if err := m.openStorage(ctx, cli, deps); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TERMGATE_DB or TERMGATE_POSTGRES_URL to choose the database\n")
		return err
	}
	defer m.Close()

	if cmd == "ingest" {
		var synth termgate.Synthesizer = synthesize.NewExtractive()
		if cli.Ingest.Gemini {
			if m.GeminiAPIKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  m.GeminiAPIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			g := gemini.NewSynthesizer(client, cli.Ingest.RPS, synth)
			if cli.Ingest.Model != "" {
				g.Model = cli.Ingest.Model
			}
			synth = g
		}
		deps.Synthesizer = tgslog.NewLoggingSynthesizer(synth, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openStorage opens Postgres when a URL is configured and SQLite otherwise.
func (m *Main) openStorage(ctx context.Context, cli *CLI, deps *Dependencies) error {
	if cli.PostgresURL != "" {
		m.PG = postgres.NewDB(cli.PostgresURL)
		if err := m.PG.Open(ctx); err != nil {
			return fmt.Errorf("failed to open postgres database: %w", err)
		}
		deps.Entries = postgres.NewEntryService(m.PG)
		deps.Documents = postgres.NewDocumentService(m.PG)
		deps.Log = postgres.NewLogService(m.PG)
		deps.Writer = tgslog.NewLoggingBatchWriter(postgres.NewBatchWriter(m.PG), deps.Logger)
		return nil
	}

	path := cli.DB
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Entries = sqlite.NewEntryService(m.DB)
	deps.Documents = sqlite.NewDocumentService(m.DB)
	deps.Log = sqlite.NewLogService(m.DB)
	deps.Writer = tgslog.NewLoggingBatchWriter(sqlite.NewBatchWriter(m.DB), deps.Logger)
	return nil
}

// newHTMLReader reads HTML documents with trafilatura, falling back to
// readability for pages trafilatura cannot handle.
func newHTMLReader() *goquery.Reader {
	extractor := trafilatura.NewExtractor(readability.NewExtractor())
	return goquery.NewReader(extractor, htmltomarkdown.NewConverter())
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "termgate.db"
	}
	dir := filepath.Join(home, ".termgate")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "termgate.db")
}
