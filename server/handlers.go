package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/dfs"
	"github.com/katalvlaran/wayfinder/route"
	"github.com/katalvlaran/wayfinder/sqlstore"
)

// routeResponse is a route.Result plus the fields Err cannot carry over JSON.
type routeResponse struct {
	*route.Result
	Kind  string `json:"kind"`
	Error string `json:"error,omitempty"`
}

func newRouteResponse(res *route.Result) routeResponse {
	out := routeResponse{Result: res, Kind: res.Kind()}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// routeStatus maps a result kind to an HTTP status. An unreachable target is
// a valid answer, not a request error.
func routeStatus(kind string) int {
	switch kind {
	case route.KindInvalidInput:
		return http.StatusBadRequest
	case route.KindUnknownLocation:
		return http.StatusNotFound
	case route.KindAborted:
		return http.StatusServiceUnavailable
	case route.KindDirectory:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := s.dir.Locations()
	if err != nil {
		s.internalError(w, "list locations", err)
		return
	}
	if raw := r.URL.Query().Get("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "level must be an integer")
			return
		}
		locs = core.GroupByLevel(locs)[level]
		if locs == nil {
			locs = []core.Location{}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": locs})
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := s.dir.Location(r.PathValue("id"))
	switch {
	case errors.Is(err, core.ErrLocationNotFound), errors.Is(err, core.ErrEmptyLocationID):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		s.internalError(w, "get location", err)
	default:
		writeJSON(w, http.StatusOK, loc)
	}
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	locs, err := s.dir.Locations()
	if err != nil {
		s.internalError(w, "list locations", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"levels": core.GroupByLevel(locs)})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := s.engine.ComputeRoute(r.Context(), q.Get("from"), q.Get("to"))
	writeJSON(w, routeStatus(res.Kind()), newRouteResponse(res))
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	ids, err := s.engine.Reachable(r.Context(), from)
	switch {
	case errors.Is(err, route.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, route.ErrUnknownLocation):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		s.internalError(w, "reachable", err)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"from": core.NormalizeID(from), "reachable": ids})
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.dir.Stats()
	if err != nil {
		s.internalError(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleIslands reports the connected groups of the building; more than one
// means some locations cannot be routed to from others.
func (s *Server) handleIslands(w http.ResponseWriter, r *http.Request) {
	islands, err := dfs.Islands(r.Context(), s.dir)
	if err != nil {
		s.internalError(w, "islands", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"connected": len(islands) <= 1, "islands": islands})
}

type scanRequest struct {
	Location string `json:"location"`
	To       string `json:"to,omitempty"`
}

type scanResponse struct {
	Location core.Location  `json:"location"`
	Scan     *sqlstore.Scan `json:"scan,omitempty"`
	Route    *routeResponse `json:"route,omitempty"`
}

// handleScan resolves a scanned marker, records it when a scan log is
// configured and, given a destination, routes from the scanned location.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var in scanRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(in.Location) == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	loc, err := s.dir.Location(in.Location)
	if errors.Is(err, core.ErrLocationNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.internalError(w, "resolve scan", err)
		return
	}

	out := scanResponse{Location: loc}
	if s.scans != nil {
		scan, err := s.scans.LogScan(r.Context(), loc.ID)
		if err != nil {
			s.internalError(w, "log scan", err)
			return
		}
		out.Scan = &scan
	}
	status := http.StatusOK
	if strings.TrimSpace(in.To) != "" {
		resp := newRouteResponse(s.engine.ComputeRoute(r.Context(), loc.ID, in.To))
		out.Route = &resp
		status = routeStatus(resp.Kind)
	}
	writeJSON(w, status, out)
}

func (s *Server) handleRecentScans(w http.ResponseWriter, r *http.Request) {
	if s.scans == nil {
		writeError(w, http.StatusNotImplemented, "scan history is disabled")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	scans, err := s.scans.RecentScans(r.Context(), limit)
	if err != nil {
		s.internalError(w, "recent scans", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scans": scans})
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
