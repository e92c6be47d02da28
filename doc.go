// Package wayfinder guides people on foot between two points inside a
// building: it finds the fewest-hop walk over a small graph of rooms,
// corridors and stairwells and turns it into step-by-step directions.
//
// The repository is organized as:
//
//	core/      Location, the symmetric connection relation and the
//	           in-memory directory (*core.Graph) behind core.Directory
//	bfs/       breadth-first search with a per-call arena worklist
//	dfs/       depth-first traversal and connectivity audit (Islands)
//	route/     the routing engine: validation, search, path
//	           reconstruction and description in English or German
//	builder/   dataset construction: path and hub shapes, presets,
//	           YAML building files
//	sqlstore/  sqlite directory with a location cache and scan history
//	config/    layered configuration and the zap logger
//	server/    JSON API over net/http
//	cmd/       the wayfinder command
//
// Quick example, the hub preset:
//
//	R01  R02  R03            R101 R102 R103
//	   \  |  /                  \  |  /
//	    HALL0 ── ST0 ─ ST1 ──  HALL1         BOILER (not connected)
//
// A route from R01 to R101 takes five steps and spans levels 0 and 1.
package wayfinder
