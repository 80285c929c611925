package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	charmlog "github.com/charmbracelet/log"

	"github.com/goliatone/go-signup"
	"github.com/goliatone/go-signup/internal/config"
	"github.com/goliatone/go-signup/internal/server"
	"github.com/goliatone/go-signup/pkg/form"
	signuphtml "github.com/goliatone/go-signup/pkg/renderers/html"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	renderer := flag.String("renderer", "", "renderer to use (html, tui, live)")
	output := flag.String("output", "", "output file (stdout if empty)")
	serve := flag.Bool("serve", false, "serve the html preview instead of rendering once")
	addr := flag.String("addr", "", "preview server address")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	locale := flag.String("locale", "", "locale used to translate page copy")
	themeName := flag.String("theme", "", "theme name")
	variant := flag.String("variant", "", "theme variant")
	format := flag.String("format", "json", "tui output format (json, form, pretty)")
	engine := flag.String("engine", engineBuiltin, "html template engine (builtin, go-template)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "signup-cli: %v\n", err)
		os.Exit(1)
	}
	override(&cfg.Renderer, *renderer)
	override(&cfg.Server.Addr, *addr)
	override(&cfg.Log.Level, *logLevel)
	override(&cfg.Locale, *locale)
	override(&cfg.Theme.Name, *themeName)
	override(&cfg.Theme.Variant, *variant)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "signup-cli: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)

	htmlOpts, err := htmlOptions(*engine)
	if err != nil {
		logger.Fatal("invalid flags", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		if err := runServer(ctx, cfg, logger, htmlOpts); err != nil {
			logger.Fatal("preview server failed", "err", err)
		}
		return
	}

	if err := renderOnce(ctx, cfg, logger, htmlOpts, *output, tui.OutputFormat(*format)); err != nil {
		logger.Fatal("render failed", "renderer", cfg.Renderer, "err", err)
	}
}

func runServer(ctx context.Context, cfg config.Config, logger *charmlog.Logger, htmlOpts []signuphtml.Option) error {
	renderer, err := signuphtml.New(htmlOpts...)
	if err != nil {
		return err
	}
	opts := cfg.RenderOptions()
	if opts.AssetsPrefix == "" {
		opts.AssetsPrefix = "/assets"
	}
	srv, err := server.New(renderer,
		server.WithPage(cfg.BuildPage()),
		server.WithRenderOptions(opts),
		server.WithFormOptions(append(cfg.FormOptions(), form.WithLogger(logger))...),
		server.WithLogger(logger),
		server.WithAssets(opts.AssetsPrefix, signuphtml.AssetsFS()),
	)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func renderOnce(ctx context.Context, cfg config.Config, logger *charmlog.Logger, htmlOpts []signuphtml.Option, output string, format tui.OutputFormat) error {
	registry, err := signup.NewRegistry(signup.RegistryOptions{
		HTML: htmlOpts,
		TUI:  []tui.Option{tui.WithOutput(os.Stderr), tui.WithOutputFormat(format)},
	})
	if err != nil {
		return err
	}

	logger.Debug("rendering", "renderer", cfg.Renderer, "available", registry.List())
	formOpts := append(cfg.FormOptions(), form.WithLogger(logger))
	out, err := signup.Render(ctx, registry, cfg.Renderer, cfg.BuildPage(), cfg.RenderOptions(), formOpts...)
	if err != nil {
		return err
	}

	if output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("output written", "path", output)
		return nil
	}
	fmt.Println(string(out))
	return nil
}

const (
	engineBuiltin    = "builtin"
	engineGoTemplate = "go-template"
)

func htmlOptions(engine string) ([]signuphtml.Option, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", engineBuiltin:
		return nil, nil
	case engineGoTemplate:
		return []signuphtml.Option{signuphtml.WithGoTemplateEngine()}, nil
	default:
		return nil, fmt.Errorf("unknown template engine %q", engine)
	}
}

func newLogger(level string) *charmlog.Logger {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "signup",
	})
	parsed, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = charmlog.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

func override(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}
