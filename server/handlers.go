package server

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/latticepath/problem"
	"github.com/katalvlaran/latticepath/search"
)

// errorBody is the JSON body of a non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// Solve decodes a problem Document, runs its strategy and answers with a
// Solution.
//
// Status codes: 400 malformed body, 413 oversized body, 422 unknown
// strategy, 503 search timed out; everything else, FAIL included, is 200.
// The response is YAML when the Accept header asks for it, JSON otherwise.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	format := negotiate(r.Header.Get("Accept"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, format, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.writeError(w, format, http.StatusBadRequest, err)
		return
	}

	p, err := problem.DecodeDocument(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, search.ErrUnknownStrategy) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, format, status, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	g := p.Grid()
	res, err := s.collector.Solve(g, p.Strategy, search.WithContext(ctx))
	sol, err := problem.NewSolution(p.Strategy, res, err)
	if err != nil {
		klog.ErrorS(err, "Search aborted", "strategy", p.Strategy, "nodes", g.Len())
		s.writeError(w, format, http.StatusServiceUnavailable, err)
		return
	}
	klog.V(2).InfoS("Search finished", "strategy", p.Strategy, "nodes", g.Len(),
		"found", sol.Found, "cost", sol.Cost, "length", sol.Length)

	s.write(w, format, http.StatusOK, sol)
}

// Healthz answers liveness probes.
func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

// negotiate picks YAML when any Accept media type mentions yaml.
func negotiate(accept string) problem.Format {
	for _, part := range strings.Split(accept, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && strings.Contains(mt, "yaml") {
			return problem.FormatYAML
		}
	}
	return problem.FormatJSON
}

func contentType(f problem.Format) string {
	if f == problem.FormatYAML {
		return "application/yaml"
	}
	return "application/json; charset=utf-8"
}

func (s *Server) write(w http.ResponseWriter, f problem.Format, status int, v any) {
	data, err := problem.Marshal(v, f)
	if err != nil {
		klog.ErrorS(err, "Encoding response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType(f))
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, f problem.Format, status int, err error) {
	klog.V(2).InfoS("Rejecting request", "status", status, "err", err)
	s.write(w, f, status, errorBody{Error: err.Error()})
}
