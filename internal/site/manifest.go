package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ManifestName is the build record written alongside the generated pages.
const ManifestName = "manifest.json"

// Manifest records one build: a unique build ID, when it ran, and every
// page it produced. Deploy tooling diffs consecutive manifests to find
// stale pages.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Pages       []string  `json:"pages"`
}

// NewManifest starts a manifest for the current build.
func NewManifest() *Manifest {
	return &Manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Pages:       []string{},
	}
}

// AddPage records a generated page path, relative to the output dir.
func (m *Manifest) AddPage(rel string) {
	m.Pages = append(m.Pages, filepath.ToSlash(rel))
}

// Write persists the manifest into outDir with stable page ordering.
func (m *Manifest) Write(outDir string) error {
	sort.Strings(m.Pages)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, ManifestName), data, 0o644) //nolint:gosec // Published site artifact.
}
