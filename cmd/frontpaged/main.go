package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/fwojciec/frontpage/goquery"
	fphttp "github.com/fwojciec/frontpage/http"
	"github.com/fwojciec/frontpage/scrape"
	fpslog "github.com/fwojciec/frontpage/slog"
)

func main() {
	// A missing .env is fine; the environment may be configured directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Addr          string        `default:"127.0.0.1:3000" env:"FRONTPAGE_ADDR" help:"Address to listen on"`
	URL           string        `default:"https://www.corriere.it" env:"FRONTPAGE_URL" help:"Homepage URL to scrape"`
	Origin        string        `default:"https://www.corriere.it" env:"FRONTPAGE_ORIGIN" help:"Origin prefixed to relative article URLs"`
	StaticDir     string        `default:"public" env:"FRONTPAGE_STATIC_DIR" help:"Directory of static assets served at /"`
	AllowedOrigin string        `default:"http://localhost:3000" env:"FRONTPAGE_CORS_ORIGIN" help:"CORS allowed origin"`
	Timeout       time.Duration `default:"10s" env:"FRONTPAGE_TIMEOUT" help:"Homepage fetch timeout"`
	RPS           float64       `default:"5" env:"FRONTPAGE_RPS" help:"Rate limit: requests per second per client"`
	Burst         int           `default:"10" env:"FRONTPAGE_BURST" help:"Rate limit: burst per client"`
}

// Run executes the CLI with the given arguments and serves until the
// context is canceled or a termination signal arrives.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("frontpaged"),
		kong.Description("Serve extracted homepage news as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// The queries are fixed constants: a compile failure here is fatal.
	queries, err := goquery.NewQuerySet()
	if err != nil {
		return fmt.Errorf("failed to compile queries: %w", err)
	}

	fetcher := fphttp.NewFetcher(fphttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	extractor := goquery.NewExtractor(queries, goquery.WithOrigin(cli.Origin))

	scraper := scrape.NewScraper(
		fpslog.NewLoggingFetcher(fetcher, logger),
		fpslog.NewLoggingExtractor(extractor, logger),
		cli.URL,
	)

	srv := fphttp.NewServer(scraper,
		fphttp.WithStaticDir(cli.StaticDir),
		fphttp.WithAllowedOrigin(cli.AllowedOrigin),
		fphttp.WithLogger(logger),
		fphttp.WithRateLimit(cli.RPS, cli.Burst),
	)

	server := &http.Server{
		Addr:    cli.Addr,
		Handler: srv.Handler(),
		// WriteTimeout must outlast the upstream fetch timeout.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cli.Timeout + 20*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cli.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
