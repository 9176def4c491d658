package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

const (
	terraformLockName = ".terraform.lock.hcl"
	addressParts      = 3 // hostname/namespace/type
)

// TerraformManifestRepository reads .terraform.lock.hcl dependency lock files.
// Providers are expected in Terraform's cache layout
// (<root>/<hostname>/<namespace>/<type>/<version>/<os>_<arch>).
type TerraformManifestRepository struct {
	platform string
}

var _ repositories.ManifestRepository = (*TerraformManifestRepository)(nil)

// NewTerraformManifestRepository creates a lock file reader for the running platform.
func NewTerraformManifestRepository() *TerraformManifestRepository {
	return &TerraformManifestRepository{platform: runtime.GOOS + "_" + runtime.GOARCH}
}

func (it *TerraformManifestRepository) Format() entities.ManifestFormat {
	return entities.ManifestTerraform
}

func (it *TerraformManifestRepository) Detect(path string) bool {
	return filepath.Base(path) == terraformLockName
}

func (it *TerraformManifestRepository) DefaultRoot() string {
	return filepath.Join(".terraform", "providers")
}

// Load parses every provider block of the lock file, in file order.
func (it *TerraformManifestRepository) Load(
	path string,
	_ repositories.LoadOptions,
) ([]entities.Dependency, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	return it.parse(content, path)
}

func (it *TerraformManifestRepository) parse(content []byte, path string) ([]entities.Dependency, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", entities.ErrParse, diags.Error())
	}

	bodyContent, _, partialDiags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "provider", LabelNames: []string{"address"}},
		},
	})
	if partialDiags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", entities.ErrParse, partialDiags.Error())
	}

	dependencies := make([]entities.Dependency, 0, len(bodyContent.Blocks))
	for _, block := range bodyContent.Blocks {
		address := block.Labels[0]

		version, versionErr := providerVersion(block)
		if versionErr != nil {
			return nil, fmt.Errorf(
				"%w: provider %q at line %d: %w",
				entities.ErrParse, address, block.DefRange.Start.Line, versionErr,
			)
		}

		dependencies = append(dependencies, entities.Dependency{
			Name:    address,
			Version: version,
			Source: &entities.Source{
				Type: "registry",
				URL:  registryURL(address),
			},
			InstallPath: filepath.Join(filepath.FromSlash(address), version, it.platform),
		})
	}

	logger.Debugf("Read %d providers from %s", len(dependencies), path)
	return dependencies, nil
}

// providerVersion evaluates the literal `version` attribute of a provider block.
func providerVersion(block *hcl.Block) (string, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return "", errors.New(diags.Error())
	}

	versionAttr, ok := attrs["version"]
	if !ok {
		return "", errors.New("missing version attribute")
	}

	value, valueDiags := versionAttr.Expr.Value(&hcl.EvalContext{})
	if valueDiags.HasErrors() || value.Type() != cty.String || value.IsNull() {
		return "", errors.New("version must be a string literal")
	}

	return value.AsString(), nil
}

// registryURL maps a provider address to its registry page.
func registryURL(address string) string {
	parts := strings.Split(address, "/")
	if len(parts) != addressParts {
		return "https://" + address
	}
	return fmt.Sprintf("https://%s/providers/%s/%s", parts[0], parts[1], parts[2])
}
