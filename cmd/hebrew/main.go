// Command hebrew transliterates, tokenizes and searches pointed Hebrew text.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/internal/config"
	"github.com/FocuswithJustin/JuniperHebrew/internal/corpus"
	"github.com/FocuswithJustin/JuniperHebrew/internal/logging"
	"github.com/FocuswithJustin/JuniperHebrew/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for hebrew.
type CLI struct {
	// Global flags override the configuration file.
	Config    string `name:"config" short:"c" help:"TOML configuration file" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" help:"Log format (text, json)"`
	Corpus    string `name:"corpus" help:"Glob of book files or bundles; overrides the database"`
	Database  string `name:"db" help:"SQLite database path" type:"path"`
	Workers   int    `name:"workers" help:"Parallel workers for loading and searching"`

	Translit TranslitCmd `cmd:"" help:"Transliterate Hebrew text"`
	Clump    ClumpCmd    `cmd:"" help:"Show the grapheme clumps of Hebrew text"`
	Classify ClassifyCmd `cmd:"" help:"Classify every code point of a text"`
	Tokenize TokenizeCmd `cmd:"" help:"Split a verse into word tokens"`
	Strip    StripCmd    `cmd:"" help:"Remove cantillation or all marks from text"`
	Search   SearchCmd   `cmd:"" help:"Search the corpus by transliteration, Hebrew, English or Strong's number"`
	Strongs  StrongsCmd  `cmd:"" help:"List verses tagged with a Strong's number (database)"`
	Show     ShowCmd     `cmd:"" help:"Print a passage such as 'Gen 1:1-5'"`
	Books    BooksCmd    `cmd:"" help:"List books"`
	Ingest   IngestCmd   `cmd:"" help:"Tokenize book files into the database"`
	Export   ExportCmd   `cmd:"" help:"Write the database as a .tar.xz or .tar.gz bundle"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// app is the state shared by every command.
type app struct {
	ctx context.Context
	cfg config.Config
	out io.Writer
}

// setup merges the configuration file with the global flags and
// initializes logging.
func (cli *CLI) setup(out io.Writer) (*app, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.LogFormat = cli.LogFormat
	}
	if cli.Corpus != "" {
		cfg.Corpus = cli.Corpus
	}
	if cli.Database != "" {
		cfg.Database = cli.Database
	}
	if cli.Workers != 0 {
		cfg.Workers = cli.Workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.InitLogger(cfg.Logging())
	ctx := logging.WithRunID(context.Background(), logging.NewRunID())
	return &app{ctx: ctx, cfg: cfg, out: out}, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// openStore opens the configured database. With mustExist, a missing file
// is reported instead of created.
func (a *app) openStore(mustExist bool, translit func(string) string) (*store.Store, error) {
	if mustExist {
		if _, err := os.Stat(a.cfg.Database); os.IsNotExist(err) {
			return nil, errors.NewNotFound("database", a.cfg.Database+" (run 'hebrew ingest' first)")
		}
	}
	return store.Open(a.ctx, a.cfg.Database, store.WithTranslit(translit))
}

func (a *app) newCorpus() *corpus.Corpus {
	return corpus.New(corpus.Options{
		FixEnglish: a.cfg.FixEnglish,
		CacheSize:  a.cfg.CacheSize,
		Workers:    a.cfg.Workers,
	})
}

// loadCorpus reads the books from the corpus glob when one is configured,
// otherwise from the database.
func (a *app) loadCorpus() (*corpus.Corpus, error) {
	c := a.newCorpus()
	if a.cfg.Corpus != "" {
		if err := c.LoadGlob(a.ctx, a.cfg.Corpus); err != nil {
			return nil, err
		}
		c.LogDiagnostics(a.ctx)
		return c, nil
	}

	st, err := a.openStore(true, c.Translit)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	books, err := st.LoadAll(a.ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errors.NewNotFound("books", a.cfg.Database)
	}
	for _, b := range books {
		c.Add(b)
	}
	return c, nil
}

func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("hebrew"),
		kong.Description("Hebrew Bible transliteration and search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	a, err := cli.setup(out)
	if err != nil {
		return err
	}
	return kctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hebrew: %v\n", err)
		os.Exit(1)
	}
}
