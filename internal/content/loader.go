package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultsFS embed.FS

// File names expected in a content directory.
const (
	siteFile         = "site.yaml"
	faqFile          = "faq.yaml"
	plansFile        = "plans.yaml"
	testimonialsFile = "testimonials.yaml"
)

type siteDoc struct {
	Site     Site       `yaml:"site"`
	Hero     Hero       `yaml:"hero"`
	Banner   BannerCopy `yaml:"banner"`
	Features []Feature  `yaml:"features"`
}

type faqDoc struct {
	FAQ []FAQEntry `yaml:"faq"`
}

type plansDoc struct {
	Plans []Plan `yaml:"plans"`
}

type testimonialsDoc struct {
	Testimonials []Testimonial `yaml:"testimonials"`
}

// LoadFS loads and validates a complete bundle from the four content files in
// fsys.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	b, err := decodeBundle(fsys)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// decodeBundle reads the four content files without validating the result.
func decodeBundle(fsys fs.FS) (*Bundle, error) {
	var (
		site         siteDoc
		faq          faqDoc
		plans        plansDoc
		testimonials testimonialsDoc
	)
	if err := decodeFile(fsys, siteFile, &site); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, faqFile, &faq); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, plansFile, &plans); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, testimonialsFile, &testimonials); err != nil {
		return nil, err
	}

	return &Bundle{
		Site:         site.Site,
		Hero:         site.Hero,
		Banner:       site.Banner,
		Features:     site.Features,
		Plans:        plans.Plans,
		Testimonials: testimonials.Testimonials,
		FAQ:          faq.FAQ,
	}, nil
}

// DecodeDir loads the bundle in dir without validating it, so tooling can
// report every problem instead of failing on the first. An empty dir decodes
// the embedded defaults.
func DecodeDir(dir string) (*Bundle, error) {
	if dir == "" {
		sub, err := fs.Sub(defaultsFS, "defaults")
		if err != nil {
			return nil, fmt.Errorf("embedded content: %w", err)
		}
		return decodeBundle(sub)
	}
	return decodeBundle(os.DirFS(dir))
}

// LoadDir loads a bundle from a directory on disk.
func LoadDir(dir string) (*Bundle, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadDefault loads the content shipped inside the binary.
func LoadDefault() (*Bundle, error) {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return LoadFS(sub)
}

// decodeFile strictly decodes one YAML file; unknown fields are errors so
// typos in content files surface at load time rather than as missing copy.
func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Store serves the live content bundle to the web and CLI layers. Reloads
// swap the bundle atomically so handlers never observe a half-loaded site.
type Store struct {
	dir string // empty when serving the embedded defaults

	mu     sync.RWMutex
	bundle *Bundle
}

// Open returns a store backed by dir, or by the embedded defaults when dir is
// empty.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Bundle returns the current snapshot. The returned bundle is shared and must
// be treated as read-only.
func (s *Store) Bundle() *Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Dir returns the backing directory, empty when serving embedded defaults.
func (s *Store) Dir() string {
	return s.dir
}

// Reload re-reads the backing source and swaps the bundle on success. On
// failure the previously loaded bundle stays served.
func (s *Store) Reload() error {
	var (
		b   *Bundle
		err error
	)
	if s.dir == "" {
		b, err = LoadDefault()
	} else {
		b, err = LoadDir(s.dir)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bundle = b
	s.mu.Unlock()
	return nil
}
