package scaffold

import (
	"embed"
	"fmt"
	"strings"

	"github.com/tacogips/sitekit/internal/template/fill"
	"github.com/tacogips/sitekit/internal/template/header"
)

// Boilerplate file bodies, compiled into the binary.
//
//go:embed assets/*.tmpl
var assets embed.FS

// templates holds the header-expanded boilerplate for one run.
type templates struct {
	routes         *fill.Template
	styles         *fill.Template
	basePartial    *fill.Template
	baseModule     *fill.Template
	update         *fill.Template
	updateResource *fill.Template
	head           *fill.Template
	index          *fill.Template
	robots         *fill.Template
}

func loadTemplates(rw *header.Rewriter) (*templates, error) {
	load := func(name string) (*fill.Template, error) {
		data, err := assets.ReadFile("assets/" + name + ".tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template %s: %w", name, err)
		}
		return fill.New(string(data), rw), nil
	}

	t := &templates{}
	for _, a := range []struct {
		name string
		dst  **fill.Template
	}{
		{"routes.py", &t.routes},
		{"styles.scss", &t.styles},
		{"base_partial.scss", &t.basePartial},
		{"base_module.scss", &t.baseModule},
		{"update.py", &t.update},
		{"head.tpl", &t.head},
		{"index.tpl", &t.index},
		{"robots.txt", &t.robots},
	} {
		tpl, err := load(a.name)
		if err != nil {
			return nil, err
		}
		*a.dst = tpl
	}

	// Rendered once per vendor resource and joined with newlines.
	data, err := assets.ReadFile("assets/update_resource.py.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template update_resource.py: %w", err)
	}
	t.updateResource = fill.New(strings.TrimRight(string(data), "\n"), rw)

	return t, nil
}
