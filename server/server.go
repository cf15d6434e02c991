package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/heuristic"
	"github.com/MarioAouad/Robot-Collector/route"
	"github.com/MarioAouad/Robot-Collector/search"
)

// Server binds HTTP requests to the planning library and writes JSON
// responses. It holds no per-request state beyond the logger.
type Server struct {
	router *mux.Router
	logger *log.Logger
}

// New creates a Server with its routes registered. A nil logger falls back
// to the standard logger.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		router: mux.NewRouter(),
		logger: logger,
	}
	s.router.HandleFunc("/route", s.handleRoute).Methods(http.MethodPost)
	s.router.HandleFunc("/plan", s.handlePlan).Methods(http.MethodPost)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleRoute computes one shortest path between two cells.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := grid.New(req.Grid.Width, req.Grid.Height, wallsOf(req.Grid))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	rule, err := ruleFor(req.Variant, req.Heuristic)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	sr, err := search.New(g, req.Start.toPos(), req.Goal.toPos(), rule)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	for !sr.Done() {
		sr.Step()
	}
	if !sr.Found() {
		s.fail(w, http.StatusUnprocessableEntity, search.ErrNoPath)
		return
	}
	path := sr.Path()
	s.reply(w, http.StatusOK, RouteResponse{
		Path:     fromPath(path),
		Cost:     len(path) - 1,
		Expanded: sr.Expanded(),
	})
}

// handlePlan runs a full planning pass over the request's target set.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := grid.New(req.Grid.Width, req.Grid.Height, wallsOf(req.Grid))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	opts, err := optionsFor(req.Variant, req.Heuristic)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	points := make([]grid.Pos, len(req.Points))
	for i, p := range req.Points {
		points[i] = p.toPos()
	}

	plan, err := route.BuildPlan(g, points, req.Home, req.Current, opts...)
	switch {
	case errors.Is(err, route.ErrUnreachable):
		s.fail(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	resp := PlanResponse{
		Order:     plan.Order,
		Waypoints: fromPath(plan.Waypoints),
		Legs:      make([][]PosModel, len(plan.Legs)),
		Length:    plan.Length,
		Signature: Signature(points),
	}
	for i, leg := range plan.Legs {
		resp.Legs[i] = fromPath(leg)
	}
	s.reply(w, http.StatusOK, resp)
}

// decode reads a JSON body strictly, rejecting unknown fields. Returns
// false after writing the error response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("server: malformed request body: %w", err))
		return false
	}

	return true
}

// reply writes a JSON response with the given status.
func (s *Server) reply(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Printf("server: encoding response: %v", err)
	}
}

// fail writes an ErrorResponse and logs the failure.
func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Printf("server: request failed (%d): %v", status, err)
	s.reply(w, status, ErrorResponse{Error: err.Error()})
}

// wallsOf extracts the wall positions of a wire grid.
func wallsOf(gm GridModel) []grid.Pos {
	walls := make([]grid.Pos, len(gm.Walls))
	for i, wp := range gm.Walls {
		walls[i] = wp.toPos()
	}

	return walls
}

// heuristicFor resolves a wire heuristic name; empty means Manhattan.
func heuristicFor(name string) (heuristic.Func, error) {
	switch strings.ToLower(name) {
	case "", "manhattan":
		return heuristic.Manhattan, nil
	case "euclidean":
		return heuristic.Euclidean, nil
	case "chebyshev":
		return heuristic.Chebyshev, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// ruleFor resolves a wire variant/heuristic pair into a priority rule;
// empty variant means astar.
func ruleFor(variant, heurName string) (search.PriorityRule, error) {
	switch strings.ToLower(variant) {
	case "ucs":
		return search.UniformCost(), nil
	case "", "astar":
		h, err := heuristicFor(heurName)
		if err != nil {
			return nil, err
		}

		return search.AStarRule(h), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// optionsFor resolves a wire variant/heuristic pair into route options.
func optionsFor(variant, heurName string) ([]route.Option, error) {
	h, err := heuristicFor(heurName)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(variant) {
	case "ucs":
		return []route.Option{route.WithVariant(route.UCS)}, nil
	case "", "astar":
		return []route.Option{route.WithVariant(route.AStar), route.WithHeuristic(h)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
