package resources

import (
	_ "embed"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// The stylesheet and favicon are embedded separately from the static tree so
// the exporter works identically under both the dev and release build tags.
//
//go:embed static/site.css
var stylesheetSource string

//go:embed static/favicon.svg
var faviconSource []byte

// Stylesheet returns the raw stylesheet source as served by the dev server.
func Stylesheet() string {
	return stylesheetSource
}

// Favicon returns the favicon bytes.
func Favicon() []byte {
	return faviconSource
}

// BundleStylesheet runs the stylesheet through esbuild and returns the
// result. With minify set this is the artifact the exporter ships; without it
// the build still validates the CSS.
func BundleStylesheet(minify bool) (string, error) {
	result := api.Build(api.BuildOptions{
		Stdin: &api.StdinOptions{
			Contents:   stylesheetSource,
			Sourcefile: "site.css",
			Loader:     api.LoaderCSS,
		},
		Write:             false,
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		LogLevel:          api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var errMsg string
		for _, e := range result.Errors {
			if e.Location != nil {
				errMsg += fmt.Sprintf("%s:%d:%d: %s\n", e.Location.File, e.Location.Line, e.Location.Column, e.Text)
			} else {
				errMsg += e.Text + "\n"
			}
		}
		return "", fmt.Errorf("esbuild errors:\n%s", errMsg)
	}
	if len(result.OutputFiles) == 0 {
		return "", fmt.Errorf("esbuild produced no output")
	}
	return string(result.OutputFiles[0].Contents), nil
}
