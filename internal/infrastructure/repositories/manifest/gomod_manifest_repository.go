package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

const goModName = "go.mod"

// GoModManifestRepository reads Go module go.mod files. Dependencies are
// expected in the module cache layout (<root>/<escaped path>@<escaped version>).
type GoModManifestRepository struct{}

var _ repositories.ManifestRepository = (*GoModManifestRepository)(nil)

// NewGoModManifestRepository creates a go.mod reader.
func NewGoModManifestRepository() *GoModManifestRepository {
	return &GoModManifestRepository{}
}

func (it *GoModManifestRepository) Format() entities.ManifestFormat {
	return entities.ManifestGoMod
}

func (it *GoModManifestRepository) Detect(path string) bool {
	return filepath.Base(path) == goModName
}

// DefaultRoot returns the module cache: $GOMODCACHE, then $GOPATH/pkg/mod,
// then $HOME/go/pkg/mod.
func (it *GoModManifestRepository) DefaultRoot() string {
	if cache := os.Getenv("GOMODCACHE"); cache != "" {
		return cache
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.Join(filepath.SplitList(gopath)[0], "pkg", "mod")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("go", "pkg", "mod")
	}
	return filepath.Join(home, "go", "pkg", "mod")
}

// Load parses go.mod, applying replace directives. Require order is preserved.
func (it *GoModManifestRepository) Load(
	path string,
	_ repositories.LoadOptions,
) ([]entities.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	replacements := make(map[module.Version]module.Version, len(file.Replace))
	for _, rep := range file.Replace {
		replacements[rep.Old] = rep.New
	}

	baseDir := filepath.Dir(path)
	dependencies := make([]entities.Dependency, 0, len(file.Require))
	for _, req := range file.Require {
		dependency, depErr := toGoDependency(req.Mod, replacements, baseDir)
		if depErr != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrParse, depErr)
		}
		dependencies = append(dependencies, dependency)
	}

	logger.Debugf("Read %d requirements from %s", len(dependencies), path)
	return dependencies, nil
}

func toGoDependency(
	mod module.Version,
	replacements map[module.Version]module.Version,
	baseDir string,
) (entities.Dependency, error) {
	target := mod
	if rep, ok := replacements[mod]; ok {
		target = rep
	} else if rep, ok = replacements[module.Version{Path: mod.Path}]; ok {
		// a replace without a version applies to every version of the module
		target = rep
	}

	var installPath string
	if target.Version == "" {
		// replaced by a directory on disk
		installPath = target.Path
		if !filepath.IsAbs(installPath) {
			installPath = filepath.Join(baseDir, installPath)
		}
	} else {
		escapedPath, err := module.EscapePath(target.Path)
		if err != nil {
			return entities.Dependency{}, err
		}
		escapedVersion, err := module.EscapeVersion(target.Version)
		if err != nil {
			return entities.Dependency{}, err
		}
		installPath = escapedPath + "@" + escapedVersion
	}

	source := &entities.Source{Type: "go", URL: "https://" + target.Path}
	if target.Version == "" {
		source.URL = "https://" + mod.Path
	}
	if module.IsPseudoVersion(target.Version) {
		if rev, err := module.PseudoVersionRev(target.Version); err == nil {
			source.Reference = rev
		}
	}

	return entities.Dependency{
		Name:        mod.Path,
		Version:     mod.Version,
		Source:      source,
		InstallPath: installPath,
	}, nil
}
