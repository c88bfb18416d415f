package render

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
	"github.com/google/uuid"
)

type Report struct {
	Meta  ReportMeta   `json:"meta"`
	Cloud *cloud.Cloud `json:"cloud"`
	Fonts []FontEntry  `json:"fonts"`
}

type ReportMeta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Source      string          `json:"source"`
	Output      string          `json:"output,omitempty"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

type FontEntry struct {
	Word     string `json:"word"`
	Count    int    `json:"count"`
	FontSize int    `json:"font_size"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// NewReport describes c together with the font size assigned to every word.
func NewReport(c *cloud.Cloud, output string, opts HTMLOptions) *Report {
	opts = opts.WithDefaults()

	fonts := make([]FontEntry, 0, len(c.Entries))
	for _, e := range c.Entries {
		fonts = append(fonts, FontEntry{
			Word:     e.Word,
			Count:    e.Count,
			FontSize: FontSize(e.Count, c.MinCount, c.MaxCount, opts.FontMin, opts.FontMax),
		})
	}

	return &Report{
		Meta: ReportMeta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			Source:      c.Name,
			Output:      output,
			Environment: NewEnvironmentInfo(),
		},
		Cloud: c,
		Fonts: fonts,
	}
}
