package scaffold

import "path/filepath"

// Dirs is the directory tree created under every project root.
var Dirs = []string{
	"dev/ts",
	"dev/py",
	"dev/sass/modules",
	"dev/sass/partials",
	"dev/sass/vendor",
	"dev/views",
	"res/font",
	"res/img",
	"res/static",
}

// Generated file locations, relative to the project root.
const (
	RoutesFile      = "dev/py/routes.py"
	StylesFile      = "dev/sass/styles.scss"
	BasePartialFile = "dev/sass/partials/_base.scss"
	BaseModuleFile  = "dev/sass/modules/_base.scss"
	VendorDir       = "dev/sass/vendor"
	UpdateScript    = "dev/sass/vendor/update.py"
	HeadView        = "dev/views/~head.tpl"
	IndexView       = "dev/views/index.tpl"
	ResDir          = "res"
	FaviconFile     = "res/favicon.svg"
	RobotsFile      = "res/static/robots.txt"
)

// abs joins a slash-separated project path onto root.
func abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
