package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thucdzio/profilo/internal/filter"
	"github.com/Thucdzio/profilo/internal/metrics"
	"github.com/Thucdzio/profilo/internal/nav"
	"github.com/Thucdzio/profilo/internal/session"
	"github.com/Thucdzio/profilo/internal/view"
)

// Request and response headers shared with the HTMX client.
const (
	headerSession    = "X-Session-ID"
	headerHXRequest  = "HX-Request"
	headerHXCurrent  = "HX-Current-URL"
	headerHXPushURL  = "HX-Push-Url"
	fragmentTemplate = "fragment"
)

// page is the template data for both full pages and fragments.
type page struct {
	view.Model
	SessionID string
}

type toggleForm struct {
	Facet string `form:"facet" binding:"required,oneof=year category tag"`
	Value string `form:"value" binding:"required"`
}

func (s *Server) handleIndex(c *gin.Context) {
	st := nav.Decode(c.Request.URL.Query())
	sess := s.sessions.Start(st)
	s.render(c, http.StatusOK, "index", sess.ID, sess.Snapshot())
}

func (s *Server) handleNavigate(c *gin.Context) {
	p := nav.Page(c.Param("page"))
	s.transition(c, true, func(st session.State) session.State {
		st.Nav = st.Nav.NavigateTo(p)
		return st
	})
}

func (s *Server) handleOpenProject(c *gin.Context) {
	id := c.Param("id")
	s.transition(c, true, func(st session.State) session.State {
		st.Nav = st.Nav.OpenProject(id)
		return st
	})
}

func (s *Server) handleBack(c *gin.Context) {
	s.transition(c, true, func(st session.State) session.State {
		st.Nav = st.Nav.CloseProject()
		return st
	})
}

func (s *Server) handleToggleFilter(c *gin.Context) {
	var form toggleForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid filter: %v", err)
		return
	}
	facet, err := filter.ParseFacet(form.Facet)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid filter: %v", err)
		return
	}
	metrics.FilterChanges.WithLabelValues(string(facet)).Inc()
	s.transition(c, false, func(st session.State) session.State {
		st.Filters = st.Filters.Toggle(facet, form.Value)
		return st
	})
}

func (s *Server) handleClearFilters(c *gin.Context) {
	metrics.FilterChanges.WithLabelValues("clear").Inc()
	s.transition(c, false, func(st session.State) session.State {
		st.Filters = st.Filters.Clear()
		return st
	})
}

// transition applies fn to the caller's session and answers with the new
// shell. Navigation transitions also push the encoded URL into history.
// Plain form posts are redirected to the resulting address.
func (s *Server) transition(c *gin.Context, push bool, fn func(session.State) session.State) {
	sess := s.resolveSession(c)
	st := sess.Apply(fn)

	if c.GetHeader(headerHXRequest) != "true" {
		c.Redirect(http.StatusSeeOther, st.Nav.URL())
		return
	}
	if push {
		c.Header(headerHXPushURL, st.Nav.URL())
	}
	s.render(c, http.StatusOK, fragmentTemplate, sess.ID, st)
}

// resolveSession finds the caller's session. When it has expired a new one is
// started from the address the browser is showing, so the action still lands
// on the right page. Filters of the lost session are not recovered.
func (s *Server) resolveSession(c *gin.Context) *session.Session {
	if sess, ok := s.sessions.Get(c.GetHeader(headerSession)); ok {
		return sess
	}
	st := nav.Initial
	if raw := c.GetHeader(headerHXCurrent); raw != "" {
		st = nav.DecodeURL(raw)
	} else if ref := c.Request.Referer(); ref != "" {
		st = nav.DecodeURL(ref)
	}
	sess := s.sessions.Start(st)
	log.Printf("Started session %s from %s", sess.ID, st.URL())
	return sess
}

func (s *Server) render(c *gin.Context, code int, name, sessionID string, st session.State) {
	m := view.Build(view.Input{Nav: st.Nav, Filters: st.Filters})
	kind := "page"
	if name == fragmentTemplate {
		kind = "fragment"
	}
	metrics.PageRenders.WithLabelValues(string(m.Content), kind).Inc()
	c.HTML(code, name, page{Model: m, SessionID: sessionID})
}
