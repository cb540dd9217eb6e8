// Package routeops implements the route lifecycle operations: newRoute,
// extendRoute, removeRoad (with multi-route repair), removeRoute and the
// route-through command. The read-only description projection lives in
// package routedesc. Every exported operation here is atomic: on any
// failure the graph, route table and route-edge index are left
// byte-for-byte as they were before the call.
//
// The transactional discipline follows a stage-then-commit design:
// every per-route subpath is computed and validated before any route
// table or index mutation is applied, so no rollback step is needed —
// the same shape as an augmenting-path algorithm that only mutates
// residual capacities once every step of a phase has succeeded.
package routeops
