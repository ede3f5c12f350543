// Package templates holds the HTML components of the web UI. Fragments are
// swapped in place by htmx.
package templates

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/nleiva/contentscale/internal/app"
	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/pkg/backend"
)

// View is everything a full page render needs.
type View struct {
	State   app.State
	Catalog *catalog.Catalog
	Now     time.Time
}

// html accumulates output and keeps the first write error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) printf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) component(c templ.Component) {
	if h.err == nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

var esc = templ.EscapeString[string]

func vals(key, value string) string {
	return esc(fmt.Sprintf(`{%q:%q}`, key, value))
}

const styles = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f5f7; color: #1f2937; }
.workspace { display: grid; grid-template-columns: 240px 1fr 1.4fr; height: 100vh; }
.sidebar { background: #111827; color: #e5e7eb; padding: 1rem; overflow-y: auto; }
.sidebar button { width: 100%; margin-bottom: .5rem; }
.conversation { display: flex; gap: .25rem; }
.conversation.active .name { font-weight: 600; color: #7C3AED; }
.chat { display: flex; flex-direction: column; border-right: 1px solid #e5e7eb; }
#messages { flex: 1; overflow-y: auto; padding: 1rem; }
.message { margin-bottom: 1rem; }
.message-role { font-size: .75rem; text-transform: uppercase; color: #6B7280; }
.message.user .message-content { background: #ede9fe; padding: .5rem; border-radius: 8px; }
.content-area { padding: 1rem; overflow-y: auto; }
.selectors fieldset { border: none; display: flex; flex-wrap: wrap; gap: .5rem; }
.tabs button.active { background: #7C3AED; color: white; }
.market-banner { padding: .5rem 1rem; border-radius: 8px; color: #111827; font-weight: 600; }
mark.highlight { background: #fde68a; }
.metric-bar { height: 6px; background: #e5e7eb; border-radius: 3px; }
.metric-bar span { display: block; height: 6px; border-radius: 3px; }
.notice { color: #EF4444; }
`

// Page is the full document.
func Page(v View) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>ContentScale</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		h.raw(`<style>` + styles + `</style></head><body>`)
		h.component(Workspace(v))
		h.raw(`</body></html>`)
	})
}

// Workspace is the swappable body: sidebar, chat and content area.
func Workspace(v View) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="workspace" class="workspace" hx-target="#workspace" hx-swap="outerHTML">`)
		h.component(Sidebar(v.State))
		h.component(ChatColumn(v.State))
		h.raw(`<section class="content-area">`)
		h.component(Selectors(v))
		h.component(ContentPanel(v, false))
		h.raw(`<div id="side-panel"></div></section></div>`)
	})
}

// Sidebar lists conversations and session actions.
func Sidebar(s app.State) templ.Component {
	return component(func(h *html) {
		h.raw(`<nav class="sidebar"><h2>ContentScale</h2>`)
		h.raw(`<button hx-post="/conversations">+ New conversation</button>`)
		h.raw(`<div class="conversations">`)
		for _, c := range s.Conversations {
			class := "conversation"
			if c.ID == s.CurrentConversation {
				class += " active"
			}
			h.printf(`<div class="%s"><a class="name" href="#" hx-post="/conversations/%s/select">%s</a>`,
				class, esc(c.ID), esc(c.Name))
			h.printf(`<button class="delete" hx-delete="/conversations/%s" title="Delete">×</button></div>`, esc(c.ID))
		}
		h.raw(`</div><hr>`)
		h.raw(`<button hx-get="/library" hx-target="#side-panel" hx-swap="innerHTML">Library</button>`)
		h.raw(`<button hx-post="/reset" hx-confirm="Reset the whole workspace?">Reset</button>`)
		h.raw(`</nav>`)
	})
}

// ChatColumn shows the current conversation and the input forms.
func ChatColumn(s app.State) templ.Component {
	return component(func(h *html) {
		h.raw(`<section class="chat"><div id="messages">`)
		for _, m := range s.Current().Messages {
			h.component(MessageComponent(m))
		}
		h.raw(`</div>`)
		h.component(ChatForm(""))
		h.raw(`<form class="attach" hx-post="/attach" hx-target="#messages" hx-swap="beforeend" hx-encoding="multipart/form-data">`)
		h.raw(`<input type="file" name="file" accept=".pdf,.doc,.docx">`)
		h.raw(`<input type="text" name="message" placeholder="Optional note">`)
		h.raw(`<button type="submit">Attach</button></form></section>`)
	})
}

// ChatForm is the message input, prefilled with value.
func ChatForm(value string) templ.Component {
	return component(func(h *html) {
		h.raw(`<form id="chat-form" hx-post="/chat" hx-target="#messages" hx-swap="beforeend" hx-on::after-request="this.reset()">`)
		h.printf(`<input type="text" name="message" value="%s" placeholder="Describe the content you need..." autocomplete="off">`, esc(value))
		h.raw(`<button type="submit">Send</button>`)
		h.raw(`<button type="button" hx-get="/golden" hx-target="#chat-form" hx-swap="outerHTML">Golden prompt</button>`)
		h.raw(`</form>`)
	})
}

// MessageComponent renders one chat message. Assistant replies are markdown.
func MessageComponent(m app.Message) templ.Component {
	return component(func(h *html) {
		h.printf(`<div class="message %s"><div class="message-role">%s</div><div class="message-content">`,
			esc(string(m.Role)), esc(string(m.Role)))
		if m.Role == backend.RoleAssistant {
			h.raw(Markdown(m.Content))
		} else {
			h.raw(strings.ReplaceAll(esc(m.Content), "\n", "<br>"))
		}
		h.raw(`</div></div>`)
	})
}

// ChatResponse renders the exchanged messages and, when content changed,
// an out-of-band content panel.
func ChatResponse(user, reply app.Message, panel templ.Component) templ.Component {
	return component(func(h *html) {
		h.component(MessageComponent(user))
		h.component(MessageComponent(reply))
		if panel != nil {
			h.component(panel)
		}
	})
}

// Selectors holds the market and asset checkboxes.
func Selectors(v View) templ.Component {
	return component(func(h *html) {
		h.raw(`<form class="selectors" hx-post="/select" hx-trigger="change">`)
		h.raw(`<fieldset><legend>Markets</legend>`)
		for _, c := range v.Catalog.Countries {
			h.printf(`<label><input type="checkbox" name="country" value="%s"%s> %s %s</label>`,
				esc(c.Code), checked(slices.Contains(v.State.Countries, c.Code)), c.Flag, esc(c.Name))
		}
		h.raw(`</fieldset><fieldset><legend>Assets</legend>`)
		for _, ct := range v.Catalog.Selectable() {
			h.printf(`<label><input type="checkbox" name="asset" value="%s"%s> %s</label>`,
				esc(ct.ID), checked(slices.Contains(v.State.Assets, ct.ID)), esc(ct.Name))
		}
		h.raw(`</fieldset></form>`)
	})
}

func checked(b bool) string {
	if b {
		return " checked"
	}
	return ""
}

// Notice is a short error or status line.
func Notice(msg string) templ.Component {
	return component(func(h *html) {
		h.printf(`<div class="notice">%s</div>`, esc(msg))
	})
}
