// Package cli implements the non-interactive one-shot mode.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nleiva/contentscale/internal/app"
)

// DirectRunner generates content for a single topic and prints it with its
// assessment.
type DirectRunner struct {
	topic string
	out   io.Writer
}

// NewDirectRunner creates a one-shot runner writing to stdout
func NewDirectRunner(topic string) *DirectRunner {
	return &DirectRunner{topic: topic, out: os.Stdout}
}

// Run generates the topic for the default market and content type
func (r *DirectRunner) Run(svc *app.Service) error {
	topic := strings.TrimSpace(r.topic)
	if topic == "" {
		return app.NewValidationError("topic", topic, "topic is required")
	}

	session := svc.NewSession("cli")
	st := session.State()
	asset, country := st.Target()

	generated, err := session.Generate(context.Background(), topic, country, asset, st.Language)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}
	fmt.Fprintln(r.out, generated.Content)

	a, err := session.Assess()
	if err != nil {
		return err
	}
	printAssessment(r.out, a)
	return nil
}

func printAssessment(w io.Writer, a app.Assessment) {
	r := a.Report
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("━", 48))
	fmt.Fprintf(w, "Content score: %d (%s)\n", r.Overall, r.Label)
	for _, m := range r.Metrics {
		fmt.Fprintf(w, "  %-22s %3d/%d\n", m.Name, m.Score, m.MaxScore)
	}

	g := a.Guidance
	fmt.Fprintf(w, "\n%s: %d of %d considerations flagged\n", g.Title, g.Flagged(), len(g.Warnings))
	for _, warn := range g.Warnings {
		if warn.Instances > 0 {
			fmt.Fprintf(w, "  [%d] %s\n", warn.Instances, warn.Text)
		}
	}

	fmt.Fprintf(w, "\nImage idea: %s\n", a.Image.Title)
	fmt.Fprintf(w, "Accepted images: %s\n", a.ImageSpec.Summary())
	fmt.Fprintf(w, "Keywords: %s\n", strings.Join(a.Keywords, ", "))
}
