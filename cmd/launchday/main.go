package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spencerwgreene/launchday/internal/audio"
	"github.com/spencerwgreene/launchday/internal/config"
	"github.com/spencerwgreene/launchday/internal/countdown"
	"github.com/spencerwgreene/launchday/internal/site"
	"github.com/spencerwgreene/launchday/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	verbose    bool
	plainMode  bool
	muteAudio  bool
	jsonOutput bool
	contentDir string
	assetsDir  string
	tmplDir    string
	outDir     string

	rootCmd = &cobra.Command{
		Use:   "launchday",
		Short: "A countdown to your launch: in the terminal and on a static page.",
		Long:  `launchday runs an animated terminal countdown to a configured target date (particle background, big digits, optional background audio) and can render the same countdown as a static web page alongside your markdown content.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "Path to the launchday config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")

	runCmd.Flags().BoolVar(&plainMode, "plain", false, "Render a single rewritten line instead of the full-screen view")
	runCmd.Flags().BoolVar(&muteAudio, "mute", false, "Disable background audio for this run")

	statusCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the remaining time as JSON")

	buildCmd.Flags().StringVar(&contentDir, "content", "content", "Markdown content directory (empty to skip)")
	buildCmd.Flags().StringVar(&assetsDir, "assets", "assets", "Asset directory to copy (empty to skip)")
	buildCmd.Flags().StringVar(&tmplDir, "templates", "", "Template directory overriding the built-in templates")
	buildCmd.Flags().StringVar(&outDir, "out", "dist", "Output directory")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(buildCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig is the shared fail-fast config load used by every command.
func loadConfig() config.Config {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Fatal(err)
	}
	return cfg
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the countdown in the terminal",
	Long:  "Run the full-screen countdown: particle background, four big-digit display slots, and optional background audio on the first keypress. With --plain, a single rewritten line is printed instead.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		audioOpts := audio.Options{
			File:   cfg.Audio.File,
			Volume: cfg.Audio.Volume,
			Loop:   cfg.Audio.Loop,
		}
		if muteAudio {
			audioOpts.File = ""
		}
		player := audio.NewPlayer(audioOpts)

		if plainMode {
			engine := countdown.NewEngine(cfg.TargetTime(), cfg.Message)
			if err := engine.Run(cmd.Context(), countdown.NewConsoleSink(os.Stdout)); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		if err := tui.Run(cmd.Context(), cfg, player); err != nil {
			logrus.Fatalf("countdown UI failed: %v", err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the remaining time once and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		out, err := statusReport(cfg, time.Now(), jsonOutput)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, out)
	},
}

// statusLine is the JSON shape of `launchday status --json`.
type statusLine struct {
	Target  string `json:"target"`
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Expired bool   `json:"expired"`
}

// statusReport formats one remaining-time sample. Unit values are omitted
// from human output once expired; they are not meaningful then.
func statusReport(cfg config.Config, now time.Time, asJSON bool) (string, error) {
	snap := countdown.ComputeRemaining(cfg.TargetTime(), now)

	if asJSON {
		line := statusLine{
			Target:  cfg.TargetTime().Format(time.RFC3339),
			Expired: snap.Expired,
		}
		if !snap.Expired {
			line.Days = snap.Days
			line.Hours = snap.Hours
			line.Minutes = snap.Minutes
			line.Seconds = snap.Seconds
		}
		data, err := json.Marshal(line)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if snap.Expired {
		return cfg.Message, nil
	}
	return fmt.Sprintf("%s: T-minus %sd %sh %sm %ss",
		cfg.Title,
		countdown.Pad2(snap.Days),
		countdown.Pad2(snap.Hours),
		countdown.Pad2(snap.Minutes),
		countdown.Pad2(snap.Seconds),
	), nil
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static countdown site",
	Long:  "Render the countdown index page, markdown content, section listings, and assets into the output directory, plus a manifest of generated pages.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		// Absent content/asset dirs are skipped, not fatal: a bare
		// countdown page is a valid site.
		if _, err := os.Stat(contentDir); os.IsNotExist(err) {
			logrus.Debugf("content dir %s not found, skipping", contentDir)
			contentDir = ""
		}
		if _, err := os.Stat(assetsDir); os.IsNotExist(err) {
			logrus.Debugf("assets dir %s not found, skipping", assetsDir)
			assetsDir = ""
		}

		builder, err := site.NewBuilder(cfg, contentDir, assetsDir, tmplDir, outDir)
		if err != nil {
			logrus.Fatal(err)
		}
		manifest, err := builder.Build(cmd.Context())
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Site generated successfully in %s (%d pages)\n", outDir, len(manifest.Pages))
	},
}

func main() {
	Execute()
}
