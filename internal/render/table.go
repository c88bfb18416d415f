package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
)

// WriteTable prints the ranked words with the font class HTML assigns them under opts.
func WriteTable(c *cloud.Cloud, w io.Writer, opts HTMLOptions) {
	opts = opts.WithDefaults()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Top %d words in %s ===\n\n", c.Size, c.Name)
	fmt.Fprintf(tw, "Words: %d  Vocabulary: %d  Counts: %d..%d\n\n", c.TotalWords, c.Vocabulary, c.MinCount, c.MaxCount)

	header := []string{"Rank", "Word", "Count", "Class"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, e := range c.Ranked {
		row := []string{
			fmt.Sprintf("%d", i+1),
			e.Word,
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("f%d", FontSize(e.Count, c.MinCount, c.MaxCount, opts.FontMin, opts.FontMax)),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()
}
