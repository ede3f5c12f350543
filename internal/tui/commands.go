package tui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nleiva/contentscale/internal/app"
)

// parseCommand splits "/name arg1 arg2" into its lower-cased name and args.
func parseCommand(input string) (string, []string) {
	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func (m *Model) command(name string, args []string) tea.Cmd {
	switch name {
	case "quit", "q":
		m.quitting = true
		return tea.Quit

	case "help", "h":
		m.panel = helpPanel()
		m.refreshContent()
		return nil

	case "golden":
		m.input.SetValue(app.GoldenPrompt)
		m.input.CursorEnd()
		return nil

	case "country", "countries":
		if len(args) == 0 {
			return m.usage("/country US DE ...")
		}
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.SelectCountries(ctx, args)
			return doneMsg{notice: "Markets: " + strings.Join(m.session.State().Countries, ", "), err: err}
		})

	case "asset", "assets":
		if len(args) == 0 {
			return m.usage("/asset blog-post email ...")
		}
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.SelectAssets(ctx, args)
			return doneMsg{notice: "Assets: " + strings.Join(m.session.State().Assets, ", "), err: err}
		})

	case "lang", "language":
		if len(args) == 0 {
			return m.usage("/lang German")
		}
		language := strings.Join(args, " ")
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.SetLanguage(ctx, language)
			return doneMsg{notice: "Language: " + language, err: err}
		})

	case "next":
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.NextCombination(ctx)
			return doneMsg{err: err}
		})

	case "prev":
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.PrevCombination(ctx)
			return doneMsg{err: err}
		})

	case "score":
		return m.run(func(context.Context) doneMsg {
			a, err := m.session.Assess()
			if err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{panel: assessmentPanel(a)}
		})

	case "variant":
		return m.run(func(context.Context) doneMsg {
			v, err := m.session.CreateVariant()
			return doneMsg{notice: fmt.Sprintf("Created variant %d (%s)", v.Number, v.ID), err: err}
		})

	case "library":
		if len(args) > 0 && args[0] == "add" {
			return m.run(func(context.Context) doneMsg {
				n, err := m.session.AddToLibrary()
				return doneMsg{notice: fmt.Sprintf("Added %d item(s) to the library", n), err: err}
			})
		}
		if len(args) > 1 && args[0] == "delete" {
			return m.run(func(context.Context) doneMsg {
				err := m.session.DeleteLibraryItem(args[1])
				return doneMsg{notice: "Deleted " + args[1], panel: libraryPanel(m.session.State().Library), err: err}
			})
		}
		m.panel = libraryPanel(m.session.State().Library)
		m.refreshContent()
		return nil

	case "all":
		return m.run(func(ctx context.Context) doneMsg {
			items, err := m.session.GenerateAll(ctx)
			if err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{notice: fmt.Sprintf("Generated %d combinations", len(items)), panel: batchPanel(m.svc, items)}
		})

	case "find":
		needle := strings.Join(args, " ")
		return m.run(func(context.Context) doneMsg {
			span, found, err := m.session.Highlight(needle)
			if err != nil || !found {
				return doneMsg{notice: fmt.Sprintf("%q not found", needle), err: err}
			}
			shown := m.session.State().Displayed()
			return doneMsg{notice: fmt.Sprintf("Found %q at %d", shown.Content[span.Start:span.End], span.Start)}
		})

	case "new":
		return m.run(func(context.Context) doneMsg {
			c, err := m.session.NewConversation()
			return doneMsg{notice: "Started " + c.Name, err: err}
		})

	case "reset":
		return m.run(func(context.Context) doneMsg {
			return doneMsg{notice: "Workspace reset", err: m.session.Reset()}
		})

	case "stats":
		m.panel = statsPanel(m.session.Activity())
		m.refreshContent()
		return nil
	}

	return m.usage("unknown command /" + name + ", try /help")
}

func (m *Model) usage(text string) tea.Cmd {
	m.notice = text
	m.failed = true
	return nil
}

func helpPanel() string {
	var b strings.Builder
	b.WriteString(styleLogo.Render("Commands") + "\n\n")
	for _, line := range [][2]string{
		{"/country US DE", "select markets"},
		{"/asset blog-post email", "select content types"},
		{"/lang German", "switch the output language"},
		{"/next, /prev", "cycle combinations"},
		{"/score", "assess the displayed content"},
		{"/find text", "highlight text in the content"},
		{"/variant", "save a variant of the content"},
		{"/library [add|delete id]", "show or update the library"},
		{"/all", "generate every combination"},
		{"/golden", "load the golden prompt"},
		{"/new", "start a conversation"},
		{"/reset", "clear everything but the library"},
		{"/stats", "session activity"},
		{"/quit", "exit"},
	} {
		fmt.Fprintf(&b, "%-28s %s\n", line[0], styleSubtitle.Render(line[1]))
	}
	return b.String()
}

func assessmentPanel(a app.Assessment) string {
	var b strings.Builder
	r := a.Report
	fmt.Fprintf(&b, "%s %s %s\n\n", styleLogo.Render("Content score"), scoreStyle(r.Overall).Render(fmt.Sprint(r.Overall)), r.Label)
	for _, m := range r.Metrics {
		fmt.Fprintf(&b, "%-22s %s\n", m.Name, scoreStyle(m.Score).Render(bar(m.Score, 20)+fmt.Sprintf(" %d", m.Score)))
		for _, s := range m.Suggestions {
			fmt.Fprintf(&b, "  • %s\n", s.Text)
		}
	}
	g := a.Guidance
	fmt.Fprintf(&b, "\n%s %s\n", g.Flag, styleLogo.Render(g.Title))
	for _, w := range g.Warnings {
		mark := styleSuccess.Render("✓")
		if w.Instances > 0 {
			mark = styleError.Render(fmt.Sprintf("%d×", w.Instances))
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, w.Text)
	}
	fmt.Fprintf(&b, "\n%s %s\n%s\n%s\n", styleLogo.Render("Image idea:"), a.Image.Title,
		styleSubtitle.Render(a.Image.Description), styleSubtitle.Render("Accepted: "+a.ImageSpec.Summary()))
	fmt.Fprintf(&b, "\nKeywords: #%s\n", strings.Join(a.Keywords, " #"))
	return b.String()
}

func bar(score, width int) string {
	filled := score * width / 100
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func libraryPanel(items []app.LibraryItem) string {
	var b strings.Builder
	b.WriteString(styleLogo.Render("Library") + "\n\n")
	if len(items) == 0 {
		b.WriteString(styleSubtitle.Render("No saved content yet. Use /library add."))
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "%s  %s\n  %s\n", styleUser.Render(it.ID), truncate(it.Title, 60),
			styleSubtitle.Render(fmt.Sprintf("%s · %s · %s · %s", it.CountryName, it.AssetTypeName, it.Language, it.Timestamp.Format("Jan 2 15:04"))))
	}
	return b.String()
}

func statsPanel(s app.ActivitySummary) string {
	var b strings.Builder
	b.WriteString(styleLogo.Render("Session activity") + "\n\n")
	for _, row := range []struct {
		label string
		value int
	}{
		{"Questions", s.Questions},
		{"Instructions", s.Instructions},
		{"Generations", s.Generations},
		{"Modifications", s.Modifications},
		{"Translations", s.Translations},
		{"Attachments", s.Attachments},
		{"Stale results", s.StaleResults},
		{"Failures", s.Failures},
	} {
		fmt.Fprintf(&b, "%-16s %d\n", row.label, row.value)
	}
	fmt.Fprintf(&b, "%-16s %dms\n", "Avg generation", s.AvgGenerationMs)
	if len(s.Rules) > 0 {
		b.WriteString("\nIntent rules\n")
		for _, rule := range slices.Sorted(maps.Keys(s.Rules)) {
			fmt.Fprintf(&b, "  %-20s %d\n", rule, s.Rules[rule])
		}
	}
	return b.String()
}

func batchPanel(svc *app.Service, items []app.GeneratedContent) string {
	var b strings.Builder
	for _, it := range items {
		c := svc.Catalog().CountryOrFallback(it.Country)
		fmt.Fprintf(&b, "%s\n\n%s\n\n", styleActiveTab.Render(fmt.Sprintf("%s %s · %s · %s", c.Flag, c.Name, svc.Catalog().DisplayName(it.ContentType), it.Language)), it.Content)
	}
	return b.String()
}
