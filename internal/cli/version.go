package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tacogips/sitekit/internal/build"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and effective configuration",
	Long: `Display the sitekit version and which configuration a scaffold run
started from the current directory would use.

Examples:
  sitekit version
  sitekit version --short
  sitekit version --json
  sitekit version -c ./site.yaml`,
	RunE: runVersion,
}

// Version command flags
var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
}

// VersionInfo contains version information
type VersionInfo struct {
	Version   string      `json:"version"`
	GoVersion string      `json:"go_version"`
	Commit    string      `json:"commit"`
	BuildDate string      `json:"build_date"`
	OS        string      `json:"os"`
	Arch      string      `json:"arch"`
	Config    *ConfigInfo `json:"config,omitempty"`
}

// ConfigInfo summarizes the configuration a run would use.
type ConfigInfo struct {
	// File is the config file, or "<defaults>" when none was found.
	File            string   `json:"file"`
	VendorResources int      `json:"vendor_resources"`
	VendorParallel  int      `json:"vendor_concurrency"`
	VendorTimeout   string   `json:"vendor_timeout"`
	BuildCommand    []string `json:"build_command,omitempty"`
	// Error is set when the configuration could not be loaded.
	Error string `json:"error,omitempty"`
}

// currentVersion collects the build stamp of the running binary.
func currentVersion() VersionInfo {
	return VersionInfo{
		Version:   build.Version(),
		GoVersion: runtime.Version(),
		Commit:    build.GitCommit(),
		BuildDate: build.BuildDate(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// describeConfig loads the configuration the way runScaffold does.
// Load failures are reported in the result instead of failing the command.
func describeConfig(dir string) *ConfigInfo {
	info := &ConfigInfo{File: flagConfig}
	cfg, err := loadConfig(dir)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.File = cfg.Source
	if info.File == "" {
		info.File = "<defaults>"
	}
	info.VendorResources = len(cfg.Vendor.Resources)
	info.VendorParallel = cfg.Vendor.Concurrency
	info.VendorTimeout = cfg.Vendor.Timeout.String()
	if cfg.Build.Script != "" {
		info.BuildCommand = append([]string{cfg.Build.Interpreter, cfg.Build.Script}, cfg.Build.Args...)
	}
	return info
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentVersion()
	out := cmd.OutOrStdout()

	if versionShort {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	info.Config = describeConfig(cwd)

	if versionJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "sitekit %s (%s, %s/%s)\n", info.Version, info.GoVersion, info.OS, info.Arch)
	fmt.Fprintf(out, "Commit: %s, built %s\n", info.Commit, info.BuildDate)

	c := info.Config
	if c.Error != "" {
		fmt.Fprintf(out, "Config: %s\n", c.Error)
		return nil
	}
	fmt.Fprintf(out, "Config: %s\n", c.File)
	fmt.Fprintf(out, "Vendor: %d resources, concurrency %d, timeout %s\n",
		c.VendorResources, c.VendorParallel, c.VendorTimeout)
	if len(c.BuildCommand) > 0 {
		fmt.Fprintf(out, "Build:  %v\n", c.BuildCommand)
	} else {
		fmt.Fprintln(out, "Build:  disabled")
	}
	return nil
}
