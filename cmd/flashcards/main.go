// Command flashcards shows a deck of flashcards in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"flashcards/internal/config"
	"flashcards/internal/domain"
	"flashcards/internal/engine"
	"flashcards/internal/logger"
	"flashcards/internal/repository/file"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/service"
	"flashcards/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

var (
	deckPath   = flag.String("deck", "", "path to a JSON or YAML deck file")
	deckName   = flag.String("name", "", "deck name; defaults to the file name, required for -source postgres")
	source     = flag.String("source", "", "deck source: file or postgres")
	shuffle    = flag.Bool("shuffle", false, "shuffle the cards before showing them")
	logPath    = flag.String("log", "", "write a JSON log to this file")
	importDeck = flag.Bool("import", false, "store the -deck file in postgres under -name and exit")
	help       = flag.Bool("help", false, "show usage help and quit")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: flashcards [flags]")
	fmt.Fprintln(os.Stderr, "Supported flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return
	}
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flashcards: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg)

	log, err := logger.NewForTerminal(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	if *importDeck {
		return runImport(cfg, log)
	}

	if err := cfg.ValidateDeck(); err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	deck, err := loadDeck(cfg, log)
	if err != nil {
		return err
	}

	e := engine.New(deck.Name, deck.Cards)
	log.Info("Viewer started", zap.String("deck", deck.Name), zap.Int("cards", e.CardsLen()))

	if _, err := tea.NewProgram(tui.New(e, log), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags win over the environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "deck":
			cfg.Deck.Path = *deckPath
		case "name":
			cfg.Deck.Name = *deckName
		case "source":
			cfg.Deck.Source = *source
		case "shuffle":
			cfg.Deck.Shuffle = *shuffle
		case "log":
			cfg.Log.Path = *logPath
		}
	})
}

func loadDeck(cfg *config.Config, log *zap.Logger) (*domain.Deck, error) {
	if cfg.Deck.Source != config.SourcePostgres {
		return service.NewDeckService(file.NewDeckFile(cfg.Deck.Path), cfg.Deck.Shuffle, log).Load(cfg.Deck.Name)
	}

	db, err := postgres.Open(cfg.DSN(), log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return service.NewDeckService(postgres.NewDeckRepo(db), cfg.Deck.Shuffle, log).Load(cfg.Deck.Name)
}

// runImport copies the deck file into the database
func runImport(cfg *config.Config, log *zap.Logger) error {
	if cfg.Deck.Path == "" {
		return errors.New("-import needs -deck")
	}
	if cfg.Database.Password == "" {
		return errors.New("DB_PASSWORD is required for -import")
	}

	db, err := postgres.Open(cfg.DSN(), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db, cfg.MigrationsURL, log); err != nil {
		return err
	}

	deck, err := service.NewDeckService(file.NewDeckFile(cfg.Deck.Path), false, log).
		Import(cfg.Deck.Name, postgres.NewDeckRepo(db))
	if err != nil {
		return err
	}

	fmt.Printf("imported %q: %d cards\n", deck.Name, len(deck.Cards))
	return nil
}
