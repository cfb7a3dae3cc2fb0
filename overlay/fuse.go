package overlay

import (
	"go-kdms/resolver"
	"go-kdms/style"
	"go-kdms/types"
)

// rebuildLocked recomputes the full view set from the latest accepted data
// plus pending edit overrides. Always builds a fresh slice; the previous
// one is never touched. Caller holds s.mu.
func (s *Store) rebuildLocked() {
	// Pending edits override the polled status until confirmed or
	// reverted, so a just-resolved disaster never flickers back to active
	// while the backend catches up.
	effective := make([]types.Disaster, len(s.disasters))
	copy(effective, s.disasters)
	for i := range effective {
		if _, exists := s.pending[effective[i].ID]; exists {
			effective[i].Status = types.Resolved
		}
	}

	// Assign each disaster to at most one county. The disaster picks its
	// best-matching boundary, so one id can never land in two views.
	byCounty := make(map[int][]types.Disaster)
	for _, d := range effective {
		name := d.CountyName
		if name == "" {
			name = d.Location
		}
		idx, ok := resolver.BestMatch(name, s.geometryNames)
		if !ok {
			// Unresolvable county name. Not an error; the disaster
			// just has no boundary to render against.
			continue
		}
		byCounty[idx] = append(byCounty[idx], d)
	}

	riskNames := make([]string, len(s.risks))
	for i, r := range s.risks {
		riskNames[i] = r.Name
	}

	views := make([]types.ResolvedCountyView, 0, len(s.geometries))
	for i, g := range s.geometries {
		var risk *types.CountyRisk
		if idx, ok := resolver.BestMatch(g.Name, riskNames); ok {
			r := s.risks[idx]
			risk = &r
		}

		disasters := byCounty[i]
		if disasters == nil {
			disasters = []types.Disaster{}
		}

		views = append(views, types.ResolvedCountyView{
			CountyKey: g.Name,
			Geometry:  g,
			Risk:      risk,
			Disasters: disasters,
			Style:     style.Compose(risk, disasters),
		})
	}
	s.views = views
}
