// Package resources serves the site's static assets and bundles the
// stylesheet for export. Assets are embedded in release builds and read from
// the filesystem under the dev build tag.
package resources

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/web/resources/static"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}
