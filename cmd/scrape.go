package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/langtally/internal/config"
	"github.com/brogergvhs/langtally/internal/fetcher"
	"github.com/brogergvhs/langtally/internal/langcount"
	"github.com/brogergvhs/langtally/internal/listing"
	"github.com/brogergvhs/langtally/internal/report"
	"github.com/brogergvhs/langtally/internal/scrape"
	"github.com/brogergvhs/langtally/internal/ui"
	"github.com/brogergvhs/langtally/internal/util"

	"github.com/spf13/cobra"
)

var (
	// pagination
	flagStartURL string
	flagPages    int
	flagDelay    float64

	// http
	flagTimeout    int
	flagUserAgent  string
	flagUseProxy   bool
	flagCloudflare bool

	// parsing
	flagParser        string
	flagTitleSelector string
	flagNextSelector  string
	flagLanguages     string

	// output
	flagPrintTitles bool
	flagFormat      string
	flagSort        string
	flagNoProgress  bool
)

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape listing pages and count language mentions in their titles. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.NoArgs,
		RunE:  runScrape,
	}

	// pagination
	scrapeCmd.Flags().StringVar(&flagStartURL, "start-url", "", "first listing page (default "+config.DefaultStartURL+")")
	scrapeCmd.Flags().IntVar(&flagPages, "pages", 20, "maximum number of pages to scrape")
	scrapeCmd.Flags().Float64Var(&flagDelay, "delay", 3.0, "seconds to sleep between requests")

	// http
	scrapeCmd.Flags().IntVar(&flagTimeout, "timeout", 30, "per-request timeout in seconds")
	scrapeCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	scrapeCmd.Flags().BoolVar(&flagUseProxy, "use-proxy", false, "route requests through HTTP_PROXY/HTTPS_PROXY (also read from .env)")
	scrapeCmd.Flags().BoolVar(&flagCloudflare, "cloudflare", false, "wrap the transport with the Cloudflare bypass")

	// parsing
	scrapeCmd.Flags().StringVar(&flagParser, "parser", "", "page schema kind: css or xpath")
	scrapeCmd.Flags().StringVar(&flagTitleSelector, "title-selector", "", "selector/expression for title markers")
	scrapeCmd.Flags().StringVar(&flagNextSelector, "next-selector", "", "selector/expression for the next-page marker")
	scrapeCmd.Flags().StringVar(&flagLanguages, "languages", "", "comma separated vocabulary replacing the default (e.g. \"go,rust,c++\")")

	// output
	scrapeCmd.Flags().BoolVar(&flagPrintTitles, "print-titles", false, "print every collected title")
	scrapeCmd.Flags().StringVar(&flagFormat, "format", "", "count output: table, plain or json")
	scrapeCmd.Flags().StringVar(&flagSort, "sort", "", "row order: vocab or count")
	scrapeCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "do not render the progress bar")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig:     flagIgnoreConfig,
		Debug:            flagDebug,
		StartURL:         flagStartURL,
		UserAgent:        flagUserAgent,
		UseProxy:         flagUseProxy,
		PrintTitles:      flagPrintTitles,
		Parser:           flagParser,
		TitleSelector:    flagTitleSelector,
		NextSelector:     flagNextSelector,
		Languages:        splitList(flagLanguages),
		Format:           flagFormat,
		Sort:             flagSort,
		NoProgress:       flagNoProgress,
		CloudflareBypass: flagCloudflare,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("pages") {
		cfg.Pages = flagPages
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = flagDelay
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	vocab, err := vocabulary(cfg)
	if err != nil {
		return err
	}

	parser, err := listing.New(listing.Schema{
		Kind:  cfg.Parser,
		Title: cfg.TitleSelector,
		Next:  cfg.NextSelector,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		logSvc.Debugf("Config file: %s\n", usedPath)
	}

	var proxy *fetcher.ProxyConfig
	if cfg.UseProxy {
		proxy, err = fetcher.LoadProxyFromEnv()
		if err != nil {
			return err
		}
		if proxy == nil {
			logSvc.Infof("--use-proxy set but HTTP_PROXY/HTTPS_PROXY are empty, connecting directly\n")
		} else {
			logSvc.Debugf("Proxy: http=%q https=%q\n", proxy.HTTP, proxy.HTTPS)
		}
	}

	f, err := fetcher.New(fetcher.Options{
		Timeout:          time.Duration(cfg.Timeout) * time.Second,
		UserAgent:        cfg.UserAgent,
		Proxy:            proxy,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return err
	}

	stats := &ui.Stats{}
	progress := ui.NewPageProgress(os.Stderr, cfg.Pages, stats, !cfg.NoProgress && !cfg.Debug)

	driver := scrape.New(f, parser,
		scrape.WithObserver(progress),
		scrape.WithLogger(logSvc),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := util.SetupInterruptHandler(cancel, os.Stderr)

	start := time.Now()
	titles, err := driver.ScrapePages(ctx, cfg.StartURL, cfg.Pages, seconds(cfg.Delay))
	stop()
	progress.Close()
	if err != nil {
		logSvc.Errorf("Scrape aborted after %d pages, collected titles discarded\n", stats.Pages.Load())
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.PrintTitles {
		if err := report.WriteTitles(out, titles); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if err := report.WriteCounts(out, langcount.Count(titles, vocab), cfg.Format, cfg.Sort); err != nil {
		return err
	}

	logSvc.Infof("%s\n", stats.Summary(time.Since(start)))

	return nil
}

func vocabulary(cfg *config.Config) (langcount.Vocabulary, error) {
	if len(cfg.Languages) == 0 {
		return langcount.DefaultVocabulary(), nil
	}

	v, err := langcount.NewVocabulary(cfg.Languages)
	if err != nil {
		return langcount.Vocabulary{}, fmt.Errorf("invalid languages: %w", err)
	}

	return v, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	out := []string{}
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
