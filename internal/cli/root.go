package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/igget/ig2mp3/internal/config"
	"github.com/igget/ig2mp3/internal/download"
	"github.com/igget/ig2mp3/internal/exitcode"
	"github.com/igget/ig2mp3/internal/links"
	"github.com/igget/ig2mp3/internal/logging"
	"github.com/igget/ig2mp3/internal/platform"
	"github.com/igget/ig2mp3/internal/report"
	"github.com/igget/ig2mp3/internal/selfcheck"
	"github.com/igget/ig2mp3/internal/ui"
)

// Exit codes for faults that precede any download work
const (
	rcInputFault = 1
	rcEnvFault   = 2
)

// Environment and default-file names read once at the process boundary
const (
	EnvLinks        = "IG_LINKS"
	DefaultLinksTxt = "links.txt"
)

var (
	linksFile           string
	urlText             string
	outputDir           string
	quality             string
	sleepSeconds        float64
	retries             int
	cookiesPath         string
	rateLimit           string
	archivePath         string
	concurrentFragments int
	embedThumbnail      bool
	runTests            bool
	debug               bool
)

var Version = "dev"

// result carries the run's exit code out of cobra's Run hook so the
// exit strategy in main can decide what to do with it.
var result int

var rootCmd = &cobra.Command{
	Use:     "ig2mp3",
	Short:   "Batch-download media from URLs and convert the audio to MP3",
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		result = run(cmd.Context())
	},
}

// Execute runs the CLI and returns the run's result code. It never
// calls os.Exit itself; the exit strategy in main owns termination.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return rcInputFault
	}
	return result
}

func init() {
	rootCmd.Flags().StringVar(&linksFile, "links", "", "Path to a links file (one URL per line, # comments)")
	rootCmd.Flags().StringVar(&urlText, "url", "", "Single URL or space/newline separated URLs")
	rootCmd.Flags().StringVar(&outputDir, "out", config.DefaultOutputDir, "Output directory")
	rootCmd.Flags().StringVar(&quality, "quality", config.DefaultQuality, "MP3 quality kbps (128/192/256/320)")
	rootCmd.Flags().Float64Var(&sleepSeconds, "sleep", config.DefaultSleep, "Seconds between downloads")
	rootCmd.Flags().IntVar(&retries, "retries", config.DefaultRetries, "Retries per URL")
	rootCmd.Flags().StringVar(&cookiesPath, "cookies", "", "Path to cookies.txt (Netscape format)")
	rootCmd.Flags().StringVar(&rateLimit, "rate-limit", "", "Rate limit, e.g. 1M for 1 MB/s")
	rootCmd.Flags().StringVar(&archivePath, "archive", config.DefaultArchivePath, "Download archive file to skip already done")
	rootCmd.Flags().IntVar(&concurrentFragments, "concurrent-fragments", 0, "Parallel fragment downloads when supported")
	rootCmd.Flags().BoolVar(&embedThumbnail, "thumbnail", false, "Embed thumbnail when available")
	rootCmd.Flags().BoolVar(&runTests, "run-tests", false, "Run the internal self checks and exit")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func run(ctx context.Context) int {
	logging.Init(debug)
	log := logging.Component("cli")

	if runTests {
		return selfcheck.Run(os.Stdout)
	}

	cfg := config.RunConfig{
		OutputDir:           outputDir,
		Quality:             quality,
		SleepSeconds:        sleepSeconds,
		Retries:             retries,
		CookiesPath:         cookiesPath,
		RateLimit:           rateLimit,
		ArchivePath:         archivePath,
		ConcurrentFragments: concurrentFragments,
		EmbedThumbnail:      embedThumbnail,
	}.Normalize()

	var urls []string
	switch {
	case urlText != "":
		urls = links.ParseText(urlText)
	case linksFile != "":
		parsed, err := links.ReadFile(linksFile)
		if err != nil {
			log.Error().Err(err).Msg("cannot read links file")
			return rcInputFault
		}
		urls = parsed
	default:
		// No direct input: prefer the GUI, then the interactive
		// prompt, then the file/env fallback sources.
		if platform.GUIAvailable() {
			ui.Run(cfg)
			return 0
		}
		resolver := boundaryResolver()
		if platform.StdinIsInteractive() {
			urls = resolver.Prompt(os.Stdin, os.Stdout)
		} else {
			urls = resolver.Resolve()
		}
	}

	if len(urls) == 0 {
		log.Info().Msgf("no URLs detected (%s or %s empty), nothing to do", DefaultLinksTxt, EnvLinks)
		return 0
	}

	return runBatch(ctx, cfg, urls)
}

// boundaryResolver reads the fallback sources exactly once and injects
// them into the resolver.
func boundaryResolver() links.Resolver {
	fileText := ""
	if data, err := os.ReadFile(DefaultLinksTxt); err == nil {
		fileText = string(data)
	}
	return links.Resolver{FileText: fileText, EnvText: os.Getenv(EnvLinks)}
}

// runBatch performs the downloads and writes the report. Per-URL and
// report faults never produce a non-zero result; only the engine
// preflight does.
func runBatch(ctx context.Context, cfg config.RunConfig, urls []string) int {
	log := logging.Component("cli")

	if err := download.EnsureEngine(ctx); err != nil {
		log.Error().Err(err).Msg("engine preflight failed")
		return rcEnvFault
	}
	if err := platform.CreateDirectoryIfNotExists(cfg.OutputDir); err != nil {
		log.Error().Err(err).Msg("cannot create output directory")
		return rcInputFault
	}

	errorLog := report.NewErrorLog(filepath.Join(cfg.OutputDir, report.ErrorLogName))
	reportCSV := report.NewWriter(filepath.Join(cfg.OutputDir, report.CSVName))

	engine := download.NewYTDLPEngine(cfg)
	svc := download.NewService(cfg, engine, errorLog)

	outcomes, summary := svc.Run(ctx, urls)

	if len(outcomes) > 0 {
		if err := reportCSV.Append(outcomes); err != nil {
			log.Warn().Err(err).Msg("failed to write report")
		} else {
			log.Info().Str("path", reportCSV.Path()).Msg("report saved")
		}
	}

	absOut, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		absOut = cfg.OutputDir
	}
	log.Info().Int("ok", summary.OK).Int("failed", summary.Failed).Msg("done")
	log.Info().Str("path", absOut).Msg("output folder")
	if summary.Failed > 0 {
		log.Info().Str("path", errorLog.Path()).Msg("see error log")
	}

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "Interrupted by user.")
		return exitcode.CodeInterrupted
	}
	return 0
}
