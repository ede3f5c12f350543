package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nleiva/contentscale/internal/app"
)

// client replays the session cookie across requests.
type client struct {
	t      *testing.T
	server *Server
	cookie string
}

func newClient(t *testing.T) *client {
	t.Helper()
	return &client{t: t, server: NewServer(app.NewService(app.Config{}))}
}

func (c *client) send(req *http.Request) (int, string) {
	c.t.Helper()
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.cookie})
	}
	resp, err := c.server.app.Test(req, -1)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookieName {
			c.cookie = ck.Value
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func (c *client) get(path string) (int, string) {
	return c.send(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) (int, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req)
}

func (c *client) delete(path string) (int, string) {
	return c.send(httptest.NewRequest(http.MethodDelete, path, nil))
}

func (c *client) chat(message string) string {
	c.t.Helper()
	status, body := c.post("/chat", url.Values{"message": {message}})
	if status != http.StatusOK {
		c.t.Fatalf("POST /chat = %d: %s", status, body)
	}
	return body
}

func TestFavicon(t *testing.T) {
	c := newClient(t)
	if status, _ := c.get("/favicon.ico"); status != http.StatusNoContent {
		t.Errorf("status = %d, want 204", status)
	}
}

func TestHomeCreatesSession(t *testing.T) {
	c := newClient(t)
	status, body := c.get("/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if c.cookie == "" {
		t.Fatal("session cookie not set")
	}
	for _, want := range []string{"<!DOCTYPE html>", "Pinecore health blog", "Summer campaign 2024", `value="US" checked`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	first := c.cookie
	c.get("/")
	if c.cookie != first {
		t.Errorf("session changed between requests")
	}
	if n := c.server.sessionManager.Count(); n != 1 {
		t.Errorf("sessions = %d, want 1", n)
	}
}

func TestChatGeneratesContent(t *testing.T) {
	c := newClient(t)
	body := c.chat("Write a blog post about green tea")

	for _, want := range []string{"create blog post content about", `id="content-panel"`, `hx-swap-oob="true"`, "A United States Perspective"} {
		if !strings.Contains(body, want) {
			t.Errorf("chat response missing %q", want)
		}
	}

	status, raw := c.get("/status")
	if status != http.StatusOK {
		t.Fatalf("GET /status = %d", status)
	}
	var got struct {
		Session struct {
			Content struct {
				Country string `json:"country"`
				Type    string `json:"type"`
			} `json:"content"`
		} `json:"session"`
		Activity struct {
			Instructions int `json:"instructions"`
			Generations  int `json:"generations"`
		} `json:"activity"`
		Integrations app.Integrations `json:"integrations"`
	}
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if got.Activity.Instructions != 1 || got.Activity.Generations != 1 {
		t.Errorf("activity = %+v", got.Activity)
	}
	if got.Session.Content.Country != "US" || got.Session.Content.Type != "blog-post" {
		t.Errorf("content = %+v", got.Session.Content)
	}
	if got.Integrations.Translation || got.Integrations.Analyst {
		t.Errorf("integrations should be mocked: %+v", got.Integrations)
	}
}

func TestQuestionDoesNotSwapContent(t *testing.T) {
	c := newClient(t)
	body := c.chat("What makes a good headline?")
	if strings.Contains(body, "hx-swap-oob") {
		t.Errorf("question should not update the content panel")
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		form   url.Values
		want   int
	}{
		{"empty message", http.MethodPost, "/chat", url.Values{}, http.StatusBadRequest},
		{"assessment without content", http.MethodGet, "/assessment", nil, http.StatusBadRequest},
		{"variant without content", http.MethodPost, "/variant", nil, http.StatusBadRequest},
		{"library without content", http.MethodPost, "/library", nil, http.StatusBadRequest},
		{"unknown market", http.MethodPost, "/select", url.Values{"country": {"ZZ"}, "asset": {"blog-post"}}, http.StatusBadRequest},
		{"disabled asset", http.MethodPost, "/select", url.Values{"country": {"US"}, "asset": {"sms"}}, http.StatusBadRequest},
		{"unknown language", http.MethodPost, "/language", url.Values{"language": {"Klingon"}}, http.StatusBadRequest},
		{"unknown conversation", http.MethodPost, "/conversations/nope/select", nil, http.StatusNotFound},
		{"unknown library item", http.MethodDelete, "/library/nope", nil, http.StatusNotFound},
		{"empty translation", http.MethodPost, "/translate", url.Values{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t)
			var status int
			switch tt.method {
			case http.MethodGet:
				status, _ = c.get(tt.path)
			case http.MethodDelete:
				status, _ = c.delete(tt.path)
			default:
				status, _ = c.post(tt.path, tt.form)
			}
			if status != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, status, tt.want)
			}
		})
	}
}

func TestContentActions(t *testing.T) {
	c := newClient(t)
	c.chat("Write a blog post about green tea")

	status, body := c.post("/variant", nil)
	if status != http.StatusOK || !strings.Contains(body, "Variant 2") {
		t.Errorf("POST /variant = %d", status)
	}

	status, body = c.post("/highlight", url.Values{"text": {"united states perspective"}})
	if status != http.StatusOK || !strings.Contains(body, `<mark class="highlight">`) {
		t.Errorf("POST /highlight = %d, highlight missing", status)
	}

	status, body = c.get("/assessment")
	if status != http.StatusOK || !strings.Contains(body, "Content score") || !strings.Contains(body, "Readability") {
		t.Errorf("GET /assessment = %d", status)
	}

	status, body = c.post("/library", nil)
	if status != http.StatusOK || strings.Count(body, `class="library-item"`) != 2 {
		t.Errorf("POST /library = %d, items = %d", status, strings.Count(body, `class="library-item"`))
	}

	status, body = c.post("/translate", url.Values{"text": {"Hallo Welt."}})
	if status != http.StatusOK || !strings.Contains(body, "[EN] Hallo Welt.") {
		t.Errorf("POST /translate = %d %q", status, body)
	}

	status, body = c.post("/generate-all", nil)
	if status != http.StatusOK || !strings.Contains(body, "1 combinations generated") {
		t.Errorf("POST /generate-all = %d", status)
	}
}

func TestSelectionAndCombinations(t *testing.T) {
	c := newClient(t)
	c.chat("Write a blog post about green tea")

	status, body := c.post("/select", url.Values{"country": {"US", "DE"}, "asset": {"blog-post"}})
	if status != http.StatusOK || !strings.Contains(body, `value="DE" checked`) {
		t.Fatalf("POST /select = %d", status)
	}

	if status, _ := c.post("/select", url.Values{"country": {"FR"}, "asset": {"podcast"}}); status != http.StatusBadRequest {
		t.Errorf("POST /select with an unknown asset = %d, want 400", status)
	}
	if _, body := c.get("/"); strings.Contains(body, `value="FR" checked`) || !strings.Contains(body, `value="DE" checked`) {
		t.Errorf("rejected selection must not change the markets")
	}

	status, body = c.post("/combination/next", nil)
	if status != http.StatusOK || !strings.Contains(body, "Germany") {
		t.Errorf("POST /combination/next = %d", status)
	}
	status, body = c.post("/combination", url.Values{"key": {"blog-post-US"}})
	if status != http.StatusOK || !strings.Contains(body, "United States") {
		t.Errorf("POST /combination = %d", status)
	}
}

func TestConversationsAndReset(t *testing.T) {
	c := newClient(t)

	status, body := c.post("/conversations", nil)
	if status != http.StatusOK || !strings.Contains(body, "New conversation 4") {
		t.Fatalf("POST /conversations = %d", status)
	}
	if status, _ := c.post("/conversations/2/select", nil); status != http.StatusOK {
		t.Errorf("select conversation = %d", status)
	}
	if status, _ := c.delete("/conversations/3"); status != http.StatusOK {
		t.Errorf("delete conversation = %d", status)
	}

	status, body = c.post("/reset", nil)
	if status != http.StatusOK || strings.Contains(body, "Summer campaign 2024") {
		t.Fatalf("POST /reset = %d", status)
	}
	if status, _ := c.delete("/conversations/any"); status != http.StatusConflict {
		t.Errorf("deleting the only conversation = %d, want 409", status)
	}
}

func TestGolden(t *testing.T) {
	c := newClient(t)
	status, body := c.get("/golden")
	if status != http.StatusOK || !strings.Contains(body, "Pinecore drink") {
		t.Errorf("GET /golden = %d %q", status, body)
	}
}

func TestAttach(t *testing.T) {
	upload := func(name string) *http.Request {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("file", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte("not really a document"))
		w.WriteField("message", "Write a blog post from this brief")
		w.Close()

		req := httptest.NewRequest(http.MethodPost, "/attach", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req
	}

	c := newClient(t)
	status, body := c.send(upload("photo.png"))
	if status != http.StatusBadRequest {
		t.Errorf("png upload = %d", status)
	}
	if !strings.Contains(body, "PDF or DOC/DOCX") {
		t.Errorf("notice = %q", body)
	}

	status, body = c.send(upload("brief.docx"))
	if status != http.StatusOK || !strings.Contains(body, "[Attached file: brief.docx]") {
		t.Errorf("docx upload = %d %q", status, body)
	}
}
