// Package main provides the termfolio CLI application entry point.
// termfolio is a terminal portfolio page with a console hidden behind a key sequence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"termfolio/internal/config"
	"termfolio/internal/console"
	"termfolio/internal/logger"
	"termfolio/internal/orchestration"
	"termfolio/internal/output"
	"termfolio/internal/services"
	"termfolio/internal/shell"
	"termfolio/internal/tui"
	"termfolio/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	testMode   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "termfolio - a terminal portfolio with a hidden console",
	Long: `termfolio shows a portfolio page in the terminal. Typing the secret key sequence
opens a console with commands for trivia, calculations, hashing and more.`,
	SilenceUsage: true,
	RunE:         runTUI, // Default behavior is the full-screen page
}

// shellCmd runs the console in line mode
var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Start the console in line mode",
	Long:         `Start the console as a line-mode shell. The console starts open; 'exit' or Ctrl-D quits.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// batchCmd runs a script of console lines non-interactively
var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Run console commands from a script file",
	Long: `Submit each line of a script to the console and print the entries.
Blank lines and lines starting with '#' are skipped. The exit status is non-zero
when any command produced an error entry.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of termfolio.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetDetailedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/termfolio/config.yaml]")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	// Bind flags to viper
	for _, name := range []string{"log-level", "log-file", "config", "test-mode"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Configure logger with CLI flags
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	if err := version.ValidateVersion(); err != nil {
		logger.Warn("Build carries an invalid version", "error", err)
	}
}

// app holds everything a host needs.
type app struct {
	cfg      *config.Config
	services *services.Registry
	console  *console.Console
	printer  *output.Printer
	cleanup  func()
}

func setup() (*app, error) {
	cfg, err := config.Load(viper.GetViper(), config.Options{ConfigFile: configFile, TestMode: testMode})
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		logger.Debug("Loaded config file", "path", cfg.File)
	}

	registry, err := shell.InitializeServices(cfg, testMode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	c, cleanup, err := shell.NewConsole(cfg, registry, testMode)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		services: registry,
		console:  c,
		printer:  output.NewPrinter(output.Standard(cfg.Prompt, testMode)...),
		cleanup:  cleanup,
	}, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	if logFile == "" {
		// Anything on stderr would tear the alternate screen
		logger.ConfigureWriter(io.Discard, logLevel)
	}
	logger.Info("Starting termfolio", "version", version.GetVersion())

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.cleanup()

	landing, err := renderLanding(a.services, a.cfg)
	if err != nil {
		logger.Warn("Landing page rendered without markdown", "error", err)
	}

	return tui.Run(a.console, tui.Options{
		Prompt:  a.cfg.Prompt,
		Landing: landing,
		Printer: a.printer,
	})
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting termfolio shell", "version", version.GetVersion())

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.cleanup()

	host := shell.NewHost(a.console, a.printer)
	return host.Run(a.cfg.Prompt, fmt.Sprintf("%s\nType 'help' to see available commands or 'exit' to quit.", version.GetFormattedVersion()))
}

func runBatch(_ *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting termfolio batch mode", "version", version.GetVersion(), "script", scriptPath)

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.cleanup()

	if _, err := orchestration.ExecuteScript(context.Background(), scriptPath, a.console, a.printer); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}
	return nil
}
