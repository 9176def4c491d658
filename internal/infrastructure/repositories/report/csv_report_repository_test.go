//go:build unit

package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/report"
	builders "github.com/rios0rios0/legal-licenses/test/domain/entitybuilders"
)

func renderCSV(t *testing.T, entries []entities.ReportEntry, opts entities.ReportOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, report.RenderCSV(&buf, entries, opts))
	return buf.String()
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	t.Run("should render the example dependency as a single row", func(t *testing.T) {
		t.Parallel()

		// given
		entries := []entities.ReportEntry{
			entities.NewReportEntry(builders.NewDependencyBuilder().BuildDependency(), entities.LicenseText{}),
		}

		// when
		output := renderCSV(t, entries, entities.ReportOptions{Format: entities.ReportCSV})

		// then
		assert.Equal(t,
			"name,version,source,license description\n"+
				"acme/widget,1.2.0,https://example.com/widget,MIT\n",
			output,
		)
	})

	t.Run("should render a header plus one four-field row per entry", func(t *testing.T) {
		t.Parallel()

		// given
		entries := sampleEntries()

		// when
		output := renderCSV(t, entries, entities.ReportOptions{Format: entities.ReportCSV})

		// then
		records, err := csv.NewReader(bytes.NewBufferString(output)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, len(entries)+1)
		assert.Equal(t, report.CSVHeader(), records[0])
		for _, record := range records {
			assert.Len(t, record, 4)
		}
		assert.Equal(t, "acme/widget", records[1][0])
		assert.Equal(t, "acme/gadget", records[2][0])
		assert.Equal(t, "acme/tester", records[3][0])
	})

	t.Run("should quote license lists containing commas", func(t *testing.T) {
		t.Parallel()

		// given
		entries := sampleEntries()

		// when
		output := renderCSV(t, entries, entities.ReportOptions{Format: entities.ReportCSV})

		// then
		assert.Contains(t, output, `acme/tester,0.9.0,https://example.com/tester,"BSD-3-Clause, MIT"`)
	})

	t.Run("should leave the source blank and fall back for empty licenses", func(t *testing.T) {
		t.Parallel()

		// given
		entries := sampleEntries()

		// when
		output := renderCSV(t, entries, entities.ReportOptions{Format: entities.ReportCSV})

		// then
		assert.Contains(t, output, "acme/gadget,2.0.1,,Not configured.\n")
	})

	t.Run("should blank every version when hide-version is set", func(t *testing.T) {
		t.Parallel()

		// given
		entries := sampleEntries()

		// when
		output := renderCSV(t, entries, entities.ReportOptions{Format: entities.ReportCSV, HideVersion: true})

		// then
		records, err := csv.NewReader(bytes.NewBufferString(output)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "version", records[0][1])
		for _, record := range records[1:] {
			assert.Empty(t, record[1])
		}
	})

	t.Run("should render only the header for an empty manifest", func(t *testing.T) {
		t.Parallel()

		// given / when
		output := renderCSV(t, nil, entities.ReportOptions{Format: entities.ReportCSV})

		// then
		assert.Equal(t, "name,version,source,license description\n", output)
	})
}

func TestCSVReportRepository_Write(t *testing.T) {
	t.Parallel()

	t.Run("should write licenses.csv into the output directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := report.NewCSVReportRepository()
		opts := entities.ReportOptions{Format: entities.ReportCSV}

		// when
		path, size, err := repo.Write(dir, sampleEntries(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "licenses.csv"), path)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, int64(len(content)), size)
		assert.Equal(t, renderCSV(t, sampleEntries(), opts), string(content))
	})

	t.Run("should fail with an IO error when the output directory is missing", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "absent")
		repo := report.NewCSVReportRepository()

		// when
		_, _, err := repo.Write(dir, sampleEntries(), entities.ReportOptions{Format: entities.ReportCSV})

		// then
		require.ErrorIs(t, err, entities.ErrIO)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("should return the writer registered for a format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := report.NewRegistry()
		registry.Register(report.NewMarkdownReportRepository())
		registry.Register(report.NewCSVReportRepository())

		// when
		writer, err := registry.Get(entities.ReportCSV)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ReportCSV, writer.Format())
	})

	t.Run("should fail for an unregistered format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := report.NewRegistry()

		// when
		_, err := registry.Get(entities.ReportMarkdown)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownFormat)
	})
}
