// Package server exposes the planner as a small JSON/HTTP service, the
// surface an external driver talks to.
//
// Endpoints:
//
//	POST /route — one shortest-path query between two cells
//	POST /plan  — a full planning pass: distance matrix, greedy tour,
//	              waypoints, per-leg paths, and a target-set signature
//
// The service is stateless: every request carries its own grid and targets,
// and every response is computed from scratch. Replan policy stays with the
// caller — the plan response includes the Signature of the target set it was
// computed from, so the caller can detect that its live set has drifted and
// decide to plan again. Step-by-step search animation is deliberately not
// offered over the wire; pacing individual expansions is an in-process
// driver concern.
package server
