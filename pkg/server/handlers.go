package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/matzehuels/monthgraph/pkg/buildinfo"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
	"github.com/matzehuels/monthgraph/pkg/errors"
	"github.com/matzehuels/monthgraph/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatTerm: "text/plain; charset=utf-8",
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, hit, err := s.runner.LayoutDocument(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := errors.ValidateFormat(format, pipeline.Formats); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	setCacheHeader(w, result.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decodeOptions reads the request body and fills unset fields from the
// server defaults.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "request body too large (max %d bytes)", s.maxBody)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	d := s.defaults
	if _, set := fields["no_labels"]; !set {
		opts.NoLabels = d.NoLabels
	}
	if opts.Height == 0 {
		opts.Height = d.Height
	}
	if opts.Padding == "" {
		opts.Padding = d.Padding
	}
	if opts.Style == "" {
		opts.Style = d.Style
	}
	if opts.Colors == (styles.PaletteSpec{}) {
		opts.Colors = d.Colors
	}
	opts.Metrics = s.metrics
	opts.Clock = d.Clock
	opts.Logger = s.logger
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	case errors.Is(err, errors.ErrCodeNotFound):
		status = http.StatusNotFound
	}

	resp := errorResponse{
		Error:     errors.UserMessage(err),
		Code:      errors.GetCode(err),
		RequestID: RequestID(r.Context()),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "id", resp.RequestID)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
