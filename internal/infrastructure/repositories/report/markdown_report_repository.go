package report

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

const (
	boilerplateTitle = "Project Licenses"
	boilerplateIntro = "This file was generated by the " +
		"[Legal Licenses](https://github.com/rios0rios0/legal-licenses) utility. " +
		"It contains the name, version and commit sha, description, homepage, " +
		"and license information for every dependency in this project."
	dependenciesTitle = "Dependencies"
	licenseTextTitle  = "License text"
	minFenceLength    = 3
)

// MarkdownReportRepository writes licenses.md.
type MarkdownReportRepository struct{}

var _ repositories.ReportRepository = (*MarkdownReportRepository)(nil)

// NewMarkdownReportRepository creates a Markdown report writer.
func NewMarkdownReportRepository() *MarkdownReportRepository {
	return &MarkdownReportRepository{}
}

func (it *MarkdownReportRepository) Format() entities.ReportFormat {
	return entities.ReportMarkdown
}

func (it *MarkdownReportRepository) Write(
	outputDir string,
	entries []entities.ReportEntry,
	opts entities.ReportOptions,
) (string, int64, error) {
	path := filepath.Join(outputDir, entities.ReportMarkdown.FileName())
	size, err := writeFileAtomic(path, func(w io.Writer) error {
		return RenderMarkdown(w, entries, opts)
	})
	if err != nil {
		return "", 0, err
	}
	return path, size, nil
}

// RenderMarkdown writes the boilerplate header followed by one block per entry.
func RenderMarkdown(w io.Writer, entries []entities.ReportEntry, opts entities.ReportOptions) error {
	md := markdown.NewMarkdown(w)

	md.H1(boilerplateTitle)
	md.PlainText(boilerplateIntro)
	md.PlainText("")
	md.H2(dependenciesTitle)
	md.PlainText("")

	for _, entry := range entries {
		writeMarkdownEntry(md, entry, opts)
	}

	return md.Build()
}

// writeMarkdownEntry renders a single dependency block.
func writeMarkdownEntry(md *markdown.Markdown, entry entities.ReportEntry, opts entities.ReportOptions) {
	md.H3(entry.Heading())
	md.PlainText(entry.Description)
	md.PlainText("")
	md.BulletList(
		"Homepage: "+entry.Homepage,
		"Source: "+entry.SourceDisplay(),
		"Licenses Used: "+entry.LicenseNames,
	)
	md.PlainText("")

	if opts.FullText {
		writeLicenseText(md, entry.LicenseDisplay())
	}
}

// writeLicenseText renders the license text as a fenced code block inside a
// collapsible section, so its own headings and HTML stay inert.
func writeLicenseText(md *markdown.Markdown, text string) {
	fence := codeFence(text)

	md.PlainText("<details><summary>" + licenseTextTitle + "</summary>")
	md.PlainText("")
	md.PlainText(fence + string(markdown.SyntaxHighlightText))
	md.PlainText(strings.TrimRight(text, "\r\n"))
	md.PlainText(fence)
	md.PlainText("")
	md.PlainText("</details>")
	md.PlainText("")
}

// codeFence returns a backtick fence longer than any backtick run in text.
func codeFence(text string) string {
	longest, current := 0, 0
	for _, r := range text {
		if r == '`' {
			current++
			longest = max(longest, current)
			continue
		}
		current = 0
	}
	return strings.Repeat("`", max(minFenceLength, longest+1))
}
