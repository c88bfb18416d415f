package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
)

const DefaultStylesheet = "tagcloud.css"

type HTMLOptions struct {
	Stylesheet string
	FontMin    int
	FontMax    int
}

func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Stylesheet: DefaultStylesheet,
		FontMin:    FontMin,
		FontMax:    FontMax,
	}
}

// WithDefaults fills an unset stylesheet and an unset (zero) font range.
func (o HTMLOptions) WithDefaults() HTMLOptions {
	if o.Stylesheet == "" {
		o.Stylesheet = DefaultStylesheet
	}
	if o.FontMin == 0 && o.FontMax == 0 {
		o.FontMin, o.FontMax = FontMin, FontMax
	}
	return o
}

func (o HTMLOptions) Validate() error {
	if o.FontMin <= 0 {
		return apperr.NewValidation("font min must be positive")
	}
	if o.FontMax < o.FontMin {
		return apperr.NewValidation(fmt.Sprintf("font max %d is below font min %d", o.FontMax, o.FontMin))
	}
	return nil
}

// HTML writes c as a tag cloud document. Each word is a span whose class f<size>
// is resolved by the external stylesheet.
func HTML(w io.Writer, c *cloud.Cloud, opts HTMLOptions) error {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	heading := fmt.Sprintf("Top %d words in %s", c.Size, html.EscapeString(c.Name))

	fmt.Fprintln(bw, "<html>")
	fmt.Fprintln(bw, "<head>")
	fmt.Fprintf(bw, "<title>%s</title>\n", heading)
	fmt.Fprintf(bw, "<link href=\"%s\" rel=\"stylesheet\" type=\"text/css\">\n", html.EscapeString(opts.Stylesheet))
	fmt.Fprintln(bw, "</head>")
	fmt.Fprintln(bw, "<body>")
	fmt.Fprintf(bw, "<h2>%s</h2>\n", heading)
	fmt.Fprintln(bw, "<hr>")
	fmt.Fprintln(bw, "<div class=\"cdiv\">")
	fmt.Fprintln(bw, "<p class=\"cbox\">")

	for _, e := range c.Entries {
		size := FontSize(e.Count, c.MinCount, c.MaxCount, opts.FontMin, opts.FontMax)
		fmt.Fprintf(bw, "<span style=\"cursor:default\" class=\"f%d\" title=\"count: %d\">%s</span>\n",
			size, e.Count, html.EscapeString(e.Word))
	}

	fmt.Fprintln(bw, "</p>")
	fmt.Fprintln(bw, "</div>")
	fmt.Fprintln(bw, "</body>")
	fmt.Fprintln(bw, "</html>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
