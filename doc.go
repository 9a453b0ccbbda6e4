// Package kstar enumerates the k least-cost plans of a deterministic,
// action-cost transition system using the K* algorithm (Aljazzar & Leue).
//
// It couples two searches over a shared, incrementally-grown data
// structure: a forward A* search that builds a shortest-path tree and
// tags every non-tree edge as a sidetrack, and an on-demand path-graph
// Dijkstra search that enumerates deviations from that tree in order of
// added cost. The two searches are driven by a single Engine: A* runs
// until the first solution, is interrupted, a Dijkstra pass extracts
// whatever plans are already provably optimal, and A* resumes until the
// soundness condition permits further emission.
//
// The package treats task loading, heuristic evaluation, and open-list
// selection as external collaborators — see the Task, Heuristic, and
// OpenList interfaces in types.go — so it can sit on top of any
// classical-planning front end.
package kstar
