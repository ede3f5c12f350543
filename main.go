package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nleiva/contentscale/internal/analyst"
	"github.com/nleiva/contentscale/internal/app"
	"github.com/nleiva/contentscale/internal/attach"
	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/cli"
	"github.com/nleiva/contentscale/internal/translate"
	"github.com/nleiva/contentscale/internal/tui"
	"github.com/nleiva/contentscale/internal/web"
	"github.com/nleiva/contentscale/pkg/config"
	"github.com/nleiva/contentscale/pkg/llm"
)

// Mode represents a runnable application mode
type Mode interface {
	Run(svc *app.Service) error
}

// printUsage displays the usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <mode> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  web             Start in web mode (HTTP server)\n")
	fmt.Fprintf(os.Stderr, "  tui             Start in TUI mode (interactive terminal)\n")
	fmt.Fprintf(os.Stderr, "  \"<topic>\"       Generate and score a blog post for the topic\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: YAML config file, overridden by the variables below\n", config.FileEnv)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: openai or anthropic (default: %s)\n", "LLM_PROVIDER", config.DefaultProvider)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Enables the live content analyst\n", "OPENAI_API_KEY")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Used when LLM_PROVIDER=anthropic\n", "ANTHROPIC_API_KEY")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Model to use (default: %s)\n", "MODEL", config.DefaultModel)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Enables live translation\n", "GOOGLE_TRANSLATE_API_KEY")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Redis address for the translation cache\n", "REDIS_ADDR")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Redis password\n", "REDIS_PASSWORD")
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Simulated generation latency (default: %s)\n", "GENERATION_DELAY", config.DefaultGenerationDelay)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Simulated chat reply latency (default: %s)\n", "REPLY_DELAY", config.DefaultReplyDelay)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Simulated attachment latency (default: %s)\n", "EXTRACTION_DELAY", config.DefaultExtractionDelay)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Mock translation latency (default: %s)\n", "MOCK_TRANSLATE_DELAY", config.DefaultMockTranslateDelay)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Web server port number (default: %d)\n", "PORT", config.DefaultPort)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: debug, info, warn or error (default: %s)\n", "LOG_LEVEL", config.DefaultLogLevel)
	fmt.Fprintf(os.Stderr, "  %-26s Optional: Append session activity as JSON lines\n", "ACTIVITY_LOG")
}

func run(args []string) error {
	if len(args) < 2 {
		printUsage()
		return fmt.Errorf("mode argument required")
	}

	modeArg := args[1]

	cfg, err := config.LoadFromEnv(os.Stderr)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so its logs are discarded unless the
	// level asks for them.
	var logOut io.Writer = os.Stderr
	if modeArg == "tui" && cfg.Level() > slog.LevelDebug {
		logOut = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()})))

	svc, closeFn, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	var mode Mode

	switch modeArg {
	case "tui":
		mode = tui.NewRunner()
	case "web":
		address := net.JoinHostPort("", strconv.Itoa(cfg.Port))
		mode = web.NewWebRunner(address)
	default:
		topic := strings.Join(args[1:], " ")
		mode = cli.NewDirectRunner(topic)
	}

	return mode.Run(svc)
}

// newService wires the collaborators described by cfg. The returned
// function releases the Redis connections and the activity log.
func newService(cfg *config.Config) (*app.Service, func(), error) {
	cat := catalog.Default()

	tcfg := translate.Config{
		APIKey:    cfg.Translate.APIKey,
		Endpoint:  cfg.Translate.Endpoint,
		MockDelay: cfg.Delays.MockTranslate,
		Catalog:   cat,
	}
	var closers []io.Closer
	if cfg.Redis.Addr != "" {
		hover, err := translate.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Prefix+"hover:")
		if err == nil {
			closers = append(closers, hover)
			var contentCache *translate.RedisCache
			contentCache, err = translate.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Prefix+"content:")
			if err == nil {
				closers = append(closers, contentCache)
				tcfg.HoverCache = hover
				tcfg.ContentCache = contentCache
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using in-memory translation cache\n", err)
		}
	}
	closeFn := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	if tcfg.APIKey == "" {
		slog.Info("translation API key not set, using mock translations")
	}

	var asker analyst.Asker
	if cfg.LLM.APIKey != "" {
		client, err := llm.NewClient(cfg.LLM, time.Duration(cfg.LLM.Timeout)*time.Second)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		asker = client
	}

	appCfg := app.Config{
		Catalog:         cat,
		Translator:      translate.New(tcfg),
		Analyst:         analyst.New(asker, time.Duration(cfg.LLM.Timeout)*time.Second),
		Extractor:       attach.NewExtractor(cfg.Delays.Extraction),
		GenerationDelay: cfg.Delays.Generation,
		ReplyDelay:      cfg.Delays.Reply,
	}

	if cfg.ActivityLog != "" {
		f, err := os.OpenFile(cfg.ActivityLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("open activity log: %w", err)
		}
		appCfg.ActivitySink = f
		closers = append(closers, f)
	}

	return app.NewService(appCfg), closeFn, nil
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting contentscale: %s\n", err)
		os.Exit(1)
	}
}
