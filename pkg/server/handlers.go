package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	herrors "github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/middleware"
	"github.com/vango-dev/htmlify/pkg/render"
	"github.com/vango-dev/htmlify/pkg/tree"
	"github.com/vango-dev/htmlify/pkg/vdom"
)

// errorResponse is the JSON body of failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err *herrors.HtmlifyError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{Code: err.Code, Message: err.Message, Detail: err.Detail}
	if err.Wrapped != nil {
		resp.Error = err.Wrapped.Error()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := render.PageData{
		Title: s.config.Title,
		Body: vdom.Div(vdom.ID("htmlify-root"),
			vdom.Raw(s.DocumentHTML()),
		),
		Meta:    map[string]string{"generator": "htmlify"},
		Scripts: []string{LiveScript},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page); err != nil {
		s.metrics.RecordRenderError("page")
		s.logger.Error("page render failed", "error", err)
	}
}

// decodeRequest reads a tree document from the request body using the
// sanitize query parameter or the server default.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (markup.Node, *herrors.HtmlifyError) {
	sanitize := s.config.Sanitize
	if v := r.URL.Query().Get("sanitize"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, herrors.New("H501").WithDetail("sanitize must be a boolean, got " + strconv.Quote(v))
		}
		sanitize = b
	}

	var opts []tree.Option
	if sanitize {
		opts = append(opts, tree.WithUGCSanitizer())
	}

	_, span := middleware.StartSpan(r.Context(), "tree.Decode")
	defer span.End()

	doc, err := tree.Decode(http.MaxBytesReader(w, r.Body, s.config.MaxBodySize), opts...)
	if err != nil {
		middleware.RecordError(span, err)
		s.metrics.RecordRenderError("decode")
		code := "H200"
		if errors.Is(err, tree.ErrInvalidNode) || errors.Is(err, tree.ErrMarkdown) {
			code = "H201"
		}
		return nil, herrors.New(code).Wrap(err)
	}
	span.SetAttributes(attribute.Int("htmlify.nodes", tree.Measure(doc).Nodes))
	return doc, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := s.config.Format
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := markup.ParseFormat(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, herrors.New("H501").Wrap(err))
			return
		}
		format = f
	}

	doc, herr := s.decodeRequest(w, r)
	if herr != nil {
		s.writeError(w, http.StatusBadRequest, herr)
		return
	}

	_, span := middleware.StartSpan(r.Context(), "markup.Render",
		attribute.String("htmlify.format", format.String()))
	defer span.End()

	out, err := markup.NewRenderer(markup.RendererConfig{Format: format}).RenderToString(doc)
	if err != nil {
		middleware.RecordError(span, err)
		s.metrics.RecordRenderError("render")
		s.writeError(w, http.StatusInternalServerError, herrors.New("H300").Wrap(err))
		return
	}

	s.metrics.RecordRender(len(out))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	doc, herr := s.decodeRequest(w, r)
	if herr != nil {
		s.writeError(w, http.StatusBadRequest, herr)
		return
	}

	if err := s.SetDocument(doc); err != nil {
		s.metrics.RecordRenderError("render")
		s.writeError(w, http.StatusInternalServerError, herrors.New("H300").Wrap(err))
		return
	}

	s.logger.Info("document replaced", "clients", s.live.ClientCount())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.DocumentHTML()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":       "ok",
		"live_clients": s.live.ClientCount(),
	})
}
