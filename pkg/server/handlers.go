package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	graphio "github.com/matzehuels/shortpath/pkg/io"
	"github.com/matzehuels/shortpath/pkg/pipeline"
	"github.com/matzehuels/shortpath/pkg/render/nodelink"
)

type handlers struct {
	logger       *log.Logger
	runner       *pipeline.Runner
	maxBodyBytes int64
	maxVertices  int
}

type shortestPathsResponse struct {
	RunID       string           `json:"run_id"`
	Source      int              `json:"source"`
	VertexCount int              `json:"vertex_count"`
	EdgeCount   int              `json:"edge_count"`
	Cached      bool             `json:"cached"`
	Vertices    []vertexResponse `json:"vertices"`
}

type vertexResponse struct {
	graphio.VertexReport
	Reachable bool `json:"reachable"`
}

type errorBody struct {
	Code    sperrors.Code `json:"code"`
	Message string        `json:"message"`
}

func (h *handlers) handleShortestPaths(w http.ResponseWriter, r *http.Request) {
	res, ok := h.execute(w, r)
	if !ok {
		return
	}

	doc := graphio.NewDocument(res.Graph, res.Table)
	response := shortestPathsResponse{
		RunID:       res.RunID.String(),
		Source:      doc.Source,
		VertexCount: doc.VertexCount,
		EdgeCount:   res.Stats.EdgeCount,
		Cached:      res.CacheInfo.SolveHit,
		Vertices:    make([]vertexResponse, len(doc.Vertices)),
	}
	for i, v := range doc.Vertices {
		response.Vertices[i] = vertexResponse{VertexReport: v, Reachable: v.Distance != nil}
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *handlers) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = nodelink.FormatSVG
	}
	if err := sperrors.ValidateChoice("format", format, nodelink.FormatDOT, nodelink.FormatSVG, nodelink.FormatPNG); err != nil {
		writeError(w, err)
		return
	}

	opts := nodelink.DefaultOptions()
	if raw := r.URL.Query().Get("target"); raw != "" {
		target, err := sperrors.ParseVertexArg(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		opts.Target = target
	}

	res, ok := h.execute(w, r)
	if !ok {
		return
	}

	dot := nodelink.ToDOT(res.Graph, res.Table, opts)
	var (
		out []byte
		err error
	)
	if format == nodelink.FormatSVG {
		out, err = nodelink.RenderSVG(dot)
	} else {
		out, err = nodelink.Render(dot, format)
	}
	if err != nil {
		h.logger.Error("render failed", "error", err, "run", res.RunID)
		writeError(w, sperrors.Wrap(sperrors.ErrCodeInternal, err, "could not render graph"))
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Run-Id", res.RunID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// execute parses the source parameter and the body, then runs the pipeline.
// On failure it has already written the error response.
func (h *handlers) execute(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	source, err := sperrors.ParseVertexArg(r.URL.Query().Get("source"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorStatus(w, http.StatusRequestEntityTooLarge,
				sperrors.New(sperrors.ErrCodeInvalidArguments, "request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeError(w, sperrors.Wrap(sperrors.ErrCodeIO, err, "could not read request body"))
		return nil, false
	}

	res, err := h.runner.Execute(r.Context(), raw, pipeline.Options{
		Source:      source,
		MaxVertices: h.maxVertices,
		Name:        "request",
		Logger:      h.logger,
	})
	if err != nil {
		if sperrors.GetCode(err) == sperrors.ErrCodeInternal {
			h.logger.Error("pipeline failed", "error", err)
		}
		if errors.Is(err, pipeline.ErrTooManyVertices) {
			writeErrorStatus(w, http.StatusRequestEntityTooLarge, err)
			return nil, false
		}
		writeError(w, err)
		return nil, false
	}
	return res, true
}

func contentType(format string) string {
	switch format {
	case nodelink.FormatSVG:
		return "image/svg+xml"
	case nodelink.FormatPNG:
		return "image/png"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

// statusFor maps an error code to an HTTP status.
func statusFor(code sperrors.Code) int {
	switch code {
	case sperrors.ErrCodeInvalidArguments, sperrors.ErrCodeIO, sperrors.ErrCodeGraphConstruction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorStatus(w, statusFor(sperrors.GetCode(err)), err)
}

func writeErrorStatus(w http.ResponseWriter, status int, err error) {
	code := sperrors.GetCode(err)
	if code == "" {
		code = sperrors.ErrCodeInternal
	}
	msg := sperrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = fmt.Sprintf("internal error (%s)", code)
	}
	respondJSON(w, status, map[string]errorBody{
		"error": {Code: code, Message: msg},
	})
}
