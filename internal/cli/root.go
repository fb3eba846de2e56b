package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tacogips/sitekit/internal/config"
	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/scaffold"
	"github.com/tacogips/sitekit/internal/vendorcss"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Scaffold flags
var (
	flagPath      string
	flagFavicon   string
	flagResources []string
	flagConfig    string
	flagYes       bool
	flagNoBuild   bool
	flagNoVendor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitekit [NAME]",
	Short: "Website project scaffolder",
	Long: `sitekit creates the skeleton of a new website project.

The project folder NAME (default "untitled") is created under --path and
filled with a directory layout, python routes, sass stylesheets, vendor
mixins, default views, an optional favicon, imported resources and a
robots.txt. Finally the build script is copied into the project and
started in the background.

Examples:
  sitekit demo
  sitekit demo -p ~/sites -f brand/favicon.svg -r fonts -r images
  sitekit demo --no-vendor --no-build`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		if globalNoColor {
			color.NoColor = true
		}
	},
	RunE: runScaffold,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&flagConfig, FlagConfig, "c", "", DescConfig)

	rootCmd.Flags().StringVarP(&flagPath, FlagPath, "p", ".", DescPath)
	rootCmd.Flags().StringVarP(&flagFavicon, FlagFavicon, "f", "", DescFavicon)
	rootCmd.Flags().StringArrayVarP(&flagResources, FlagResources, "r", nil, DescResources)
	rootCmd.Flags().BoolVarP(&flagYes, FlagYes, "y", false, DescYes)
	rootCmd.Flags().BoolVar(&flagNoBuild, FlagNoBuild, false, DescNoBuild)
	rootCmd.Flags().BoolVar(&flagNoVendor, FlagNoVendor, false, DescNoVendor)

	rootCmd.AddCommand(versionCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	opts := buildOptions(args, cwd, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	printHeader(fmt.Sprintf("sitekit %s", currentVersion().Version))
	result, err := scaffold.Run(ctx, opts)
	if err != nil {
		return err
	}

	printSummary(result)
	return nil
}

// loadConfig reads --config when given, otherwise sitekit.* in dir if present.
func loadConfig(dir string) (*config.Config, error) {
	loader := config.NewLoader()
	if flagConfig != "" {
		return loader.Load(flagConfig)
	}
	return loader.LoadOrDefault(dir)
}

// buildOptions maps command line state onto scaffold options.
func buildOptions(args []string, cwd string, cfg *config.Config) scaffold.Options {
	opts := scaffold.Options{
		Path:       flagPath,
		BaseDir:    cwd,
		Favicon:    flagFavicon,
		Resources:  flagResources,
		Config:     cfg,
		SkipVendor: flagNoVendor,
		SkipBuild:  flagNoBuild,
		Reporter:   consoleReporter{},
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}
	if flagYes {
		opts.Prompter = assumeYes{}
	} else {
		opts.Prompter = newSurveyPrompter()
	}
	return opts
}

// printSummary prints the outcome of a completed run.
func printSummary(result *scaffold.Result) {
	var fetched uint64
	failed := 0
	for _, r := range result.Vendor {
		if r.Outcome == vendorcss.Failed {
			failed++
			continue
		}
		fetched += uint64(r.Bytes)
	}

	printSuccess(fmt.Sprintf("Created %s", result.ProjectDir))
	printInfo(fmt.Sprintf("  %d files generated", len(result.Files)))
	if len(result.Vendor) > 0 {
		printInfo(fmt.Sprintf("  %d vendor stylesheets (%s), %d failed",
			len(result.Vendor)-failed, humanize.Bytes(fetched), failed))
	}
	if result.Imported != nil {
		printInfo(fmt.Sprintf("  %d resources imported", len(result.Imported.Files)))
	}
	for _, step := range result.Skipped {
		printWarning(fmt.Sprintf("Skipped %s", step))
	}
	if result.BuildPID != 0 {
		printInfo(fmt.Sprintf("  build running in background (pid %d)", result.BuildPID))
	}
}

// printError prints a failure banner and the error chain to stderr.
func printError(err error) {
	var sErr *scaffold.Error
	if errors.As(err, &sErr) {
		printErrorMsg("sitekit failed")
		fmt.Fprintf(stderr, "  step:  %s\n", sErr.Step)
		fmt.Fprintf(stderr, "  error: %s\n", sErr.Message)
		if sErr.Cause != nil {
			fmt.Fprintf(stderr, "  cause: %v\n", sErr.Cause)
		}
		return
	}
	printErrorMsg(fmt.Sprintf("Error: %v", err))
}
