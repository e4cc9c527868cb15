package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/umputun/agentui/pkg/demo"
	"github.com/umputun/agentui/pkg/settings"
)

// pageData is passed to every page template
type pageData struct {
	Title      string
	ActivePage string
	Version    string
	Data       any
}

type agentsPage struct {
	Subtitle string
	Agents   []demo.Agent
}

type chatPage struct {
	Agent      demo.Agent
	Known      bool
	SessionID  string
	Specialist []demo.Agent // multi-agent variant only
}

type settingsForm struct {
	Settings  settings.Record
	AuthModes []settings.AuthMode
	Saved     bool
}

// indexHandler redirects to the agents list
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/agents", http.StatusFound)
}

// agentsPageHandler displays the agent list
func (s *Server) agentsPageHandler(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:      "Agents",
		ActivePage: "agents",
		Version:    s.version,
		Data:       agentsPage{Subtitle: s.config.GetUIConfig().Subtitle, Agents: demo.Agents()},
	}
	s.renderPage(w, "agents.html", data)
}

// chatPageHandler displays the chat with an agent. The kagent/multiagent coordinator gets
// its own variant listing the specialists it delegates to.
func (s *Server) chatPageHandler(w http.ResponseWriter, r *http.Request) {
	namespace, name := r.PathValue("namespace"), r.PathValue("name")

	agent, known := demo.FindAgent(namespace, name)
	if !known {
		agent = demo.Agent{Namespace: namespace, Name: name}
	}
	chat := chatPage{Agent: agent, Known: known, SessionID: uuid.NewString()}

	tmplName := "chat.html"
	if demo.IsMultiAgent(namespace, name) {
		tmplName = "chat-multi.html"
		for _, ref := range agent.Tools {
			if a, ok := demo.FindAgent(namespace, ref); ok {
				chat.Specialist = append(chat.Specialist, a)
			}
		}
	}

	data := pageData{
		Title:      "Chat with " + agent.Ref(),
		ActivePage: "agents",
		Version:    s.version,
		Data:       chat,
	}
	s.renderPage(w, tmplName, data)
}

// resourcePageHandler makes a handler for a static resource page
func (s *Server) resourcePageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.pages.Page(name)
		if err != nil {
			s.respondWithError(w, http.StatusInternalServerError, "Failed to load page", err)
			return
		}
		data := pageData{Title: page.Title, ActivePage: name, Version: s.version, Data: page}
		s.renderPage(w, "resource.html", data)
	}
}

// agentGatewayPageHandler displays the gateway settings form
func (s *Server) agentGatewayPageHandler(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:      "Agent Gateway",
		ActivePage: "agentgateway",
		Version:    s.version,
		Data:       settingsForm{Settings: s.settings.Get(), AuthModes: settings.AuthModes()},
	}
	s.renderPage(w, "agentgateway.html", data)
}

// agentGatewayFormHandler applies the submitted settings form. HTMX requests get the
// re-rendered form fragment, plain form posts are redirected back to the page.
func (s *Server) agentGatewayFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	rec := s.settings.Update(r.Context(), formPatch(r.PostForm))
	log.Printf("[INFO] agent gateway settings saved from form, enabled=%v, auth=%s", rec.Enabled, rec.AuthMode)

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/admin/agentgateway", http.StatusSeeOther)
		return
	}

	form := settingsForm{Settings: rec, AuthModes: settings.AuthModes(), Saved: true}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "settings-form.html", form); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render settings", err)
	}
}

// formPatch converts submitted form values into a settings patch. An unchecked "enabled"
// checkbox is not submitted at all and ends up falsy, text fields missing from the form are
// left out so the stored values stay.
func formPatch(form url.Values) settings.Patch {
	patch := settings.Patch{"enabled": form.Get("enabled")}
	for _, key := range []string{"title", "description", "themeColor", "publicUrl", "authMode"} {
		if form.Has(key) {
			patch[key] = form.Get(key)
		}
	}
	return patch
}

// clusterPageHandler displays the cluster dashboard
func (s *Server) clusterPageHandler(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:      "Cluster",
		ActivePage: "cluster",
		Version:    s.version,
		Data:       s.cluster.Snapshot(),
	}
	s.renderPage(w, "cluster.html", data)
}

// renderPage renders a pre-parsed page template, buffering so a failed render doesn't leave
// a half written page
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data any) {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", fmt.Errorf("template %s not found", templateName))
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// respondWithError logs the error and sends a plain text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, userMsg string, err error) {
	log.Printf("[ERROR] %s: %v", userMsg, err)
	http.Error(w, userMsg, code)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"timeRange": timeRange,
		"lastValue": lastValue,
		"sparkline": sparkline,
	}
}

// timeRange formats the period covered by a series as "HH:MM - HH:MM"
func timeRange(series []demo.Sample) string {
	if len(series) == 0 {
		return ""
	}
	const layout = "15:04"
	return series[0].Timestamp.Format(layout) + " - " + series[len(series)-1].Timestamp.Format(layout)
}

// lastValue returns the most recent value of a series
func lastValue(series []demo.Sample) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Value
}

// sparkline makes SVG polyline points for a series scaled into a width x height box,
// with max as the top of the box
func sparkline(series []demo.Sample, width, height, maxVal float64) string {
	if len(series) < 2 || maxVal <= 0 {
		return ""
	}
	step := width / float64(len(series)-1)
	points := make([]string, 0, len(series))
	for i, p := range series {
		y := height - min(p.Value, maxVal)/maxVal*height
		points = append(points, fmt.Sprintf("%.1f,%.1f", float64(i)*step, y))
	}
	return strings.Join(points, " ")
}
