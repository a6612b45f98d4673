package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/texttree/pkg/cache"
	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/format"
	treeio "github.com/matzehuels/texttree/pkg/io"
	"github.com/matzehuels/texttree/pkg/render/dot"
	"github.com/matzehuels/texttree/pkg/tree"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type createResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	root, err := s.readTree(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderText(w, r, root)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	root, err := s.readTree(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.store.Put(r.Context(), treeio.ToDocument(root))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/trees/"+rec.ID)
	writeJSON(w, http.StatusCreated, createResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	root, err := s.storedTree(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderText(w, r, root)
}

func (s *Server) handleDot(w http.ResponseWriter, r *http.Request) {
	root, err := s.storedTree(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := cache.ArtifactKeyOpts{
		Format:      q.Get("format"),
		Detailed:    q.Get("detailed") == "true",
		LeftToRight: q.Get("rankdir") == "LR",
	}
	if opts.Format == "" {
		opts.Format = "dot"
	}
	contentType, renderFn, err := dotRenderer(opts.Format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ArtifactKey(cache.HashTree(root), opts)
	data, err := cache.Artifact(r.Context(), s.cache, key, cache.TTLArtifact, func() ([]byte, error) {
		src := dot.ToDOT(root, dot.Options{Detailed: opts.Detailed, LeftToRight: opts.LeftToRight})
		return renderFn(src)
	})
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "graphviz"))
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

func dotRenderer(name string) (string, func(string) ([]byte, error), error) {
	switch name {
	case "dot":
		return "text/vnd.graphviz; charset=utf-8", func(src string) ([]byte, error) { return []byte(src), nil }, nil
	case "svg":
		return "image/svg+xml", dot.RenderSVG, nil
	case "png":
		return "image/png", dot.RenderPNG, nil
	}
	return "", nil, errors.New(errors.ErrCodeInvalidInput, "unknown format: %s (must be dot, svg or png)", name)
}

func (s *Server) renderText(w http.ResponseWriter, r *http.Request, root *tree.StringNode) {
	f, err := formattingFromQuery(s.defaults, r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := cache.Render(r.Context(), s.cache, s.keyer, root, f, cache.TTLRender)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

func (s *Server) storedTree(r *http.Request) (*tree.StringNode, error) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return treeio.FromDocument(rec.Tree)
}

func (s *Server) readTree(w http.ResponseWriter, r *http.Request) (*tree.StringNode, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return treeio.ReadYAML(body)
	}
	return treeio.ReadJSON(body)
}

// formattingFromQuery overrides base with the style, anchor, prefix and
// indent parameters present in q.
func formattingFromQuery(base format.Formatting, q url.Values) (format.Formatting, error) {
	f := base
	if q.Has("style") {
		chars, err := format.Preset(q.Get("style"))
		if err != nil {
			return f, err
		}
		f.Chars = chars
	}
	if q.Has("anchor") {
		a, err := format.ParseAnchor(q.Get("anchor"))
		if err != nil {
			return f, err
		}
		f.Anchor = a
	}
	if q.Has("prefix") {
		f.Prefix = q.Get("prefix")
	}
	if q.Has("indent") {
		v, err := strconv.ParseBool(q.Get("indent"))
		if err != nil {
			return f, errors.New(errors.ErrCodeInvalidFormat, "invalid indent %q", q.Get("indent"))
		}
		f.IndentUnderLabel = v
	}
	return f, f.Validate()
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.Describe(err)
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
