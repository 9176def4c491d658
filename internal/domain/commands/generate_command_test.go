//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/legal-licenses/internal"
	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/report"
	"github.com/rios0rios0/legal-licenses/test/domain/commanddoubles"
	builders "github.com/rios0rios0/legal-licenses/test/domain/entitybuilders"
	"github.com/rios0rios0/legal-licenses/test/infrastructure/repositorydoubles"
)

type generateFixture struct {
	manifest  *repositorydoubles.StubManifestRepository
	markdown  *repositorydoubles.SpyReportRepository
	csv       *repositorydoubles.SpyReportRepository
	licenses  *repositorydoubles.StubLicenseRepository
	revisions *repositorydoubles.StubRevisionRepository
	console   *commanddoubles.SpyConsole
	command   *commands.GenerateCommand
}

func newGenerateFixture(dependencies ...entities.Dependency) *generateFixture {
	fixture := &generateFixture{
		manifest: &repositorydoubles.StubManifestRepository{
			ManifestFormat: entities.ManifestComposer,
			DetectResult:   true,
			Root:           "vendor",
			Dependencies:   dependencies,
		},
		markdown:  &repositorydoubles.SpyReportRepository{ReportFormat: entities.ReportMarkdown, Size: 2048},
		csv:       &repositorydoubles.SpyReportRepository{ReportFormat: entities.ReportCSV, Size: 128},
		licenses:  &repositorydoubles.StubLicenseRepository{Licenses: map[string]entities.LicenseText{}},
		revisions: &repositorydoubles.StubRevisionRepository{Revisions: map[string]string{}},
		console:   &commanddoubles.SpyConsole{},
	}

	manifests := manifest.NewRegistry()
	manifests.Register(fixture.manifest)
	reports := report.NewRegistry()
	reports.Register(fixture.markdown)
	reports.Register(fixture.csv)

	fixture.command = commands.NewGenerateCommand(
		manifests, reports, fixture.licenses, fixture.revisions, fixture.console,
	)
	return fixture
}

func twoDependencies() []entities.Dependency {
	return []entities.Dependency{
		builders.NewDependencyBuilder().BuildDependency(),
		builders.NewDependencyBuilder().
			WithName("acme/gadget").
			WithVersion("2.0.1").
			WithoutSource().
			WithLicenses().
			BuildDependency(),
	}
}

func TestGenerateCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should write one entry per dependency in manifest order", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		settings := entities.DefaultSettings()

		// when
		result, err := fixture.command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, fixture.markdown.WriteCalls, 1)
		call := fixture.markdown.WriteCalls[0]
		assert.Equal(t, ".", call.OutputDir)
		require.Len(t, call.Entries, 2)
		assert.Equal(t, "acme/widget", call.Entries[0].Name)
		assert.Equal(t, "acme/gadget", call.Entries[1].Name)
		assert.Equal(t, filepath.Join(".", "licenses.md"), result.Path)
		assert.Equal(t, int64(2048), result.Size)
		assert.Equal(t, 2, result.Dependencies)
		assert.Empty(t, fixture.csv.WriteCalls)
	})

	t.Run("should print the start and done messages around the write", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)

		// when
		_, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{commands.MessageGenerating, commands.MessageDone}, fixture.console.Messages)
	})

	t.Run("should pass the report options to the CSV writer", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		settings := entities.DefaultSettings()
		settings.CSV = true
		settings.HideVersion = true
		settings.OutputDir = "out"

		// when
		result, err := fixture.command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.markdown.WriteCalls)
		require.Len(t, fixture.csv.WriteCalls, 1)
		assert.Equal(t, entities.ReportOptions{Format: entities.ReportCSV, HideVersion: true}, fixture.csv.WriteCalls[0].Opts)
		assert.Equal(t, filepath.Join("out", "licenses.csv"), result.Path)
	})

	t.Run("should fail before any output when the manifest cannot be parsed", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.manifest.LoadErr = fmt.Errorf("%w: unexpected end of JSON input", entities.ErrParse)

		// when
		result, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.ErrorIs(t, err, entities.ErrParse)
		assert.Nil(t, result)
		assert.Empty(t, fixture.console.Messages)
		assert.Empty(t, fixture.markdown.WriteCalls)
	})

	t.Run("should fail with a parse error when the manifest format is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture()
		fixture.manifest.DetectResult = false
		settings := entities.DefaultSettings()
		settings.Manifest = "package-lock.json"

		// when
		_, err := fixture.command.Execute(context.Background(), settings)

		// then
		require.ErrorIs(t, err, entities.ErrParse)
		require.ErrorIs(t, err, entities.ErrUnknownFormat)
		assert.Empty(t, fixture.console.Messages)
	})

	t.Run("should propagate write failures without the done message", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		fixture.markdown.WriteErr = fmt.Errorf("%w: permission denied", entities.ErrIO)

		// when
		result, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.ErrorIs(t, err, entities.ErrIO)
		assert.Nil(t, result)
		assert.Equal(t, []string{commands.MessageGenerating}, fixture.console.Messages)
	})

	t.Run("should probe licenses under the format default root", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)

		// when
		_, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"vendor", "vendor"}, fixture.licenses.Roots)
		assert.Equal(t, []string{"acme/widget", "acme/gadget"}, fixture.licenses.Probed)
	})

	t.Run("should probe licenses under the configured vendor directory", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		settings := entities.DefaultSettings()
		settings.VendorDir = "third_party"

		// when
		_, err := fixture.command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"third_party", "third_party"}, fixture.licenses.Roots)
	})

	t.Run("should forward the include-dev toggle to the manifest reader", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		settings := entities.DefaultSettings()
		settings.IncludeDev = true

		// when
		_, err := fixture.command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, fixture.manifest.LoadOpts, 1)
		assert.True(t, fixture.manifest.LoadOpts[0].IncludeDev)
		assert.Equal(t, []string{entities.DefaultManifest}, fixture.manifest.LoadedPaths)
	})

	t.Run("should resolve the revision from the checkout when the manifest has none", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		gadgetDir := filepath.Join("vendor", "acme", "gadget")
		fixture.revisions.Revisions[gadgetDir] = "0123456789abcdef"

		// when
		_, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.NoError(t, err)
		entries := fixture.markdown.WriteCalls[0].Entries
		assert.Equal(t, "abcdef1", entries[0].Revision)
		assert.Equal(t, "0123456", entries[1].Revision)
		assert.Equal(t, []string{gadgetDir}, fixture.revisions.Resolved)
	})

	t.Run("should keep no sha when the checkout has no revision", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)

		// when
		_, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NoSha, fixture.markdown.WriteCalls[0].Entries[1].Revision)
	})

	t.Run("should count dependencies without a located license", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		fixture.licenses.Licenses["acme/widget"] = entities.LicenseText{
			Content: "MIT License",
			Status:  entities.LicenseFound,
		}

		// when
		result, err := fixture.command.Execute(context.Background(), entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, result.Missing)
		assert.Equal(t, "MIT License", fixture.markdown.WriteCalls[0].Entries[0].License.Content)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newGenerateFixture(twoDependencies()...)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := fixture.command.Execute(ctx, entities.DefaultSettings())

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, fixture.markdown.WriteCalls)
	})
}

func TestGenerateCommand_ExecuteWired(t *testing.T) {
	t.Parallel()

	t.Run("should write the CSV report from a composer.lock and its vendor tree", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		manifestPath := filepath.Join(dir, "composer.lock")
		require.NoError(t, os.WriteFile(manifestPath, []byte(`{"packages": [{
			"name": "acme/widget",
			"version": "1.2.0",
			"source": {"type": "git", "url": "https://example.com/widget", "reference": "abcdef1234567"},
			"license": ["MIT"]
		}]}`), 0o600))
		licenseDir := filepath.Join(dir, "vendor", "acme", "widget")
		require.NoError(t, os.MkdirAll(licenseDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(licenseDir, "LICENSE"), []byte("MIT License"), 0o600))

		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))
		var command commands.Generate
		require.NoError(t, container.Invoke(func(generate commands.Generate) {
			command = generate
		}))

		settings := entities.DefaultSettings()
		settings.Manifest = manifestPath
		settings.VendorDir = filepath.Join(dir, "vendor")
		settings.OutputDir = dir
		settings.CSV = true

		// when
		result, err := command.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "licenses.csv"), result.Path)
		assert.Equal(t, 1, result.Dependencies)
		assert.Zero(t, result.Missing)
		content, readErr := os.ReadFile(result.Path)
		require.NoError(t, readErr)
		assert.Equal(t,
			"name,version,source,license description\n"+
				"acme/widget,1.2.0,https://example.com/widget,MIT\n",
			string(content),
		)
	})
}
