// Package builder assembles building directories (core.Graph) from small,
// deterministic topology constructors and ships the reference datasets.
//
// Two dataset shapes are provided, matching the buildings the navigator was
// first deployed in:
//
//	corridor: one floor, rooms strung along a single hallway:
//	           R132 ─ R133 ─ R134 ─ R135 ─ R136 ─ R137
//
//	hub:      hub-and-spoke halls per floor, joined by a stairwell:
//	           R01 R02 R03           R101 R102 R103
//	              \ | /                  \ | /
//	              HALL0 ─ ST0 ─── ST1 ─ HALL1
//
// Both implement the same core.Directory contract, so the routing engine is
// oblivious to which one configuration selects.
//
// Constructors:
//
//	Path(n, opts...)         – n locations in a chain (n ≥ 2)
//	Star(n, opts...)         – hub + n-1 leaves (n ≥ 2)
//	Locations(locs...)       – explicit records
//	Connections(pairs...)    – explicit connections
//	Chain(ids...)            – connect consecutive existing IDs
//
// Per-constructor options override the BuildDirectory-level options for that
// constructor only, so one build can place corridors on different floors.
//
// Files:
//
//	FromYAML / LoadFile read a building description:
//
//	  locations:
//	    - {id: R132, name: Room 132, level: 3, category: classroom}
//	  connections:
//	    - [R132, R133]
//
//	Load(dataset) accepts either a preset name or a path to such a file.
package builder
