package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagPath      = "path"
	FlagFavicon   = "favicon"
	FlagResources = "resources"
	FlagConfig    = "config"
	FlagYes       = "yes"
	FlagNoBuild   = "no-build"
	FlagNoVendor  = "no-vendor"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"

	// Flag descriptions
	DescPath      = "Parent directory of the new project"
	DescFavicon   = "Favicon svg file, or a directory containing favicon.svg"
	DescResources = "File or directory to import into res/ (repeatable)"
	DescConfig    = "Path to config file"
	DescYes       = "Continue past recoverable errors without asking"
	DescNoBuild   = "Do not launch the build script"
	DescNoVendor  = "Do not download vendor stylesheets"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress output"
	DescDebug     = "Enable debug logging"
)
