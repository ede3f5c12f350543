package templates

import (
	"github.com/a-h/templ"

	"github.com/nleiva/contentscale/internal/app"
	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/excerpt"
)

// ContentPanel renders the displayed content with its combination tabs,
// language picker and actions. oob marks it for an out-of-band swap.
func ContentPanel(v View, oob bool) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="content-panel" class="content-panel" hx-target="#content-panel" hx-swap="outerHTML"`)
		if oob {
			h.raw(` hx-swap-oob="true"`)
		}
		h.raw(`>`)
		defer h.raw(`</div>`)

		s := v.State
		shown := s.Displayed()
		if shown == nil {
			if s.Generating {
				h.raw(`<p class="placeholder">Generating content...</p>`)
			} else {
				h.raw(`<p class="placeholder">Your generated content will appear here.</p>`)
			}
			return
		}

		h.component(combinationTabs(v))

		asset, country := s.Target()
		h.raw(`<select name="language" hx-post="/language" hx-trigger="change">`)
		for _, lang := range v.Catalog.LanguagesFor(country) {
			selected := ""
			if lang == s.Language {
				selected = " selected"
			}
			h.printf(`<option value="%s"%s>%s</option>`, esc(lang), selected, esc(lang))
		}
		h.raw(`</select>`)

		c := v.Catalog.CountryOrFallback(shown.Country)
		h.printf(`<div class="market-banner" style="background: %s">%s %s · %s</div>`,
			esc(v.Catalog.Gradient(shown.Country)), c.Flag, esc(c.Name), esc(v.Catalog.DisplayName(asset)))

		h.printf(`<article class="generated" data-id="%s">`, esc(shown.ID))
		if span, ok := s.ActiveHighlight(v.Now); ok {
			h.raw(Highlighted(shown.Content, span))
		} else {
			h.raw(Markdown(shown.Content))
		}
		h.raw(`</article>`)

		if !v.Catalog.IsEnglish(shown.Language) {
			h.component(sentenceList(shown.Content))
		}

		if p := c.Persona; p.Name != "" {
			h.printf(`<div class="persona"><span class="avatar" style="background: %s">%s</span> %s, %s</div>`,
				esc(p.Color), esc(p.Initials), esc(p.Name), esc(p.Title))
		}

		h.raw(`<div class="actions">`)
		h.raw(`<button hx-post="/variant">Create variant</button>`)
		h.raw(`<button hx-post="/library" hx-target="#side-panel" hx-swap="innerHTML">Add to library</button>`)
		h.raw(`<button hx-get="/assessment" hx-target="#side-panel" hx-swap="innerHTML">Assess</button>`)
		h.raw(`<button hx-post="/generate-all" hx-target="#side-panel" hx-swap="innerHTML">Generate all</button>`)
		h.raw(`</div>`)
		h.raw(`<form class="highlight" hx-post="/highlight"><input type="text" name="text" placeholder="Find in content"><button type="submit">Highlight</button></form>`)
	})
}

func combinationTabs(v View) templ.Component {
	return component(func(h *html) {
		s := v.State
		combos := s.Combinations(v.Catalog)
		h.raw(`<div class="tabs">`)
		if len(combos) > 1 {
			h.raw(`<button hx-post="/combination/prev">‹</button>`)
		}
		for _, cb := range combos {
			h.printf(`<button class="%s" hx-post="/combination" hx-vals="%s">%s</button>`,
				active(cb.Key() == s.Combination), vals("key", cb.Key()), esc(cb.Label()))
			for _, vr := range s.Variants {
				if vr.Asset != cb.Asset || vr.Country != cb.Country {
					continue
				}
				h.printf(`<button class="variant %s" hx-post="/combination" hx-vals="%s">Variant %d</button>`,
					active(vr.ID == s.Combination), vals("key", vr.ID), vr.Number)
			}
		}
		if len(combos) > 1 {
			h.raw(`<button hx-post="/combination/next">›</button>`)
		}
		h.raw(`</div>`)
	})
}

func active(b bool) string {
	if b {
		return "active"
	}
	return ""
}

func sentenceList(text string) templ.Component {
	return component(func(h *html) {
		h.raw(`<details class="sentences"><summary>Hover a sentence for its English translation</summary><ul>`)
		for _, s := range excerpt.Sentences(text) {
			h.printf(`<li hx-post="/translate" hx-trigger="mouseenter once" hx-vals="%s" hx-target="find .translation" hx-swap="innerHTML">%s <span class="translation"></span></li>`,
				vals("text", s), esc(s))
		}
		h.raw(`</ul></details>`)
	})
}

// Translation is the hover result for one sentence.
func Translation(text string) templ.Component {
	return component(func(h *html) {
		h.printf(`<em>%s</em>`, esc(text))
	})
}

// AssessmentPanel shows scores, suggestions, cultural guidance and image
// and keyword ideas.
func AssessmentPanel(a app.Assessment) templ.Component {
	return component(func(h *html) {
		r := a.Report
		h.raw(`<div class="assessment">`)
		h.printf(`<h3>Content score: <span style="color: %s">%d</span> %s</h3>`, esc(r.Color), r.Overall, esc(r.Label))
		for _, m := range r.Metrics {
			h.printf(`<div class="metric"><strong>%s</strong> %d/%d<div class="metric-bar"><span style="width: %d%%; background: %s"></span></div><small>%s</small><ul>`,
				esc(m.Name), m.Score, m.MaxScore, m.Score, esc(r.Color), esc(m.Description))
			for _, sg := range m.Suggestions {
				if sg.Found {
					h.printf(`<li>%s <a href="#" hx-post="/highlight" hx-vals="%s" hx-target="#content-panel" hx-swap="outerHTML">“%s”</a></li>`,
						esc(sg.Text), vals("text", sg.Excerpt), esc(sg.Excerpt))
				} else {
					h.printf(`<li>%s</li>`, esc(sg.Text))
				}
			}
			h.raw(`</ul></div>`)
		}

		g := a.Guidance
		h.printf(`<h3>%s %s</h3><p>%s</p><ul class="faux-pas">`, g.Flag, esc(g.Title), esc(g.Summary))
		for _, w := range g.Warnings {
			h.printf(`<li>%s <span class="count">%d</span></li>`, esc(w.Text), w.Instances)
		}
		h.raw(`</ul>`)

		h.printf(`<h3>Image idea: %s</h3><p>%s</p>`, esc(a.Image.Title), esc(a.Image.Description))
		h.printf(`<p class="image-spec">Accepted: %s</p>`, esc(a.ImageSpec.Summary()))
		h.raw(`<p class="keywords">`)
		for _, k := range a.Keywords {
			h.printf(`<span class="keyword">#%s</span> `, esc(k))
		}
		h.raw(`</p></div>`)
	})
}

// LibraryPanel lists saved items.
func LibraryPanel(items []app.LibraryItem) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="library" hx-target="#side-panel" hx-swap="innerHTML"><h3>Library</h3>`)
		if len(items) == 0 {
			h.raw(`<p class="placeholder">No saved content yet.</p>`)
		}
		for _, it := range items {
			h.printf(`<div class="library-item"><strong>%s</strong> <small>%s · %s · %s · %s</small>`,
				esc(it.Title), esc(it.CountryName), esc(it.AssetTypeName), esc(it.Language), it.Timestamp.Format("Jan 2 15:04"))
			h.printf(`<button hx-delete="/library/%s">Delete</button>`, esc(it.ID))
			h.printf(`<details><summary>Preview</summary>%s</details></div>`, Markdown(it.Content.Content))
		}
		h.raw(`</div>`)
	})
}

// BatchPanel shows the output of a generate-all run.
func BatchPanel(items []app.GeneratedContent, c *catalog.Catalog) templ.Component {
	return component(func(h *html) {
		h.printf(`<div class="batch"><h3>%d combinations generated</h3>`, len(items))
		for _, it := range items {
			country := c.CountryOrFallback(it.Country)
			h.printf(`<details class="batch-item"><summary>%s %s · %s · %s</summary>%s</details>`,
				country.Flag, esc(country.Name), esc(c.DisplayName(it.ContentType)), esc(it.Language), Markdown(it.Content))
		}
		h.raw(`</div>`)
	})
}
