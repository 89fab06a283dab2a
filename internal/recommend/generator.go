// Package recommend produces advisory text for an estimate.
package recommend

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const MaxRecommendations = 5

const largeProjectSqFt = 50000

// Generator evaluates the recommendation rules. Output order is shuffled, so
// two calls with the same input may return different subsets.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSource(rand.NewPCG(seed, seed>>1))
}

func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

func (g *Generator) Generate(p model.ProjectDescription, est model.EstimateResult) []string {
	candidates := Rules(p, est)

	g.mu.Lock()
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	g.mu.Unlock()

	if len(candidates) > MaxRecommendations {
		candidates = candidates[:MaxRecommendations]
	}
	return candidates
}

// Rules returns every recommendation that applies, unshuffled.
func Rules(p model.ProjectDescription, est model.EstimateResult) []string {
	var out []string

	if p.SquareFootage > largeProjectSqFt {
		out = append(out, "Split the site into phases by floor or wing so finished areas can be handed over early.")
	}

	switch p.ProjectType {
	case model.ProjectTypeMedical:
		out = append(out, "Use EPA-registered hospital-grade disinfectants and HEPA vacuums in clinical areas.")
	case model.ProjectTypeRestaurant:
		out = append(out, "Schedule kitchen hood and equipment degreasing before the health inspection date.")
	case model.ProjectTypeWarehouse, model.ProjectTypeIndustrial:
		out = append(out, "Bring a ride-on scrubber for open floor areas to cut labor hours.")
	case model.ProjectTypeHotel, model.ProjectTypeMultifamily:
		out = append(out, "Work unit by unit with a punch list so rooms can be released as they pass inspection.")
	case model.ProjectTypeGovernment:
		out = append(out, "Submit crew names for background checks and badge access well ahead of the start date.")
	case model.ProjectTypeEducational:
		out = append(out, "Finish classrooms before common areas so staff can start setting up rooms.")
	}

	if p.HasVCTFlooring {
		out = append(out, "Strip and wax VCT after the final clean and allow 24 hours of cure time before foot traffic.")
	}
	if p.NeedsPressureWashing {
		out = append(out, "Confirm water access and drainage on site before the pressure washing day.")
	}
	if p.NeedsWindowCleaning && p.WindowCount > 50 {
		out = append(out, "Plan for lifts or water-fed poles to reach upper windows safely.")
	}
	if p.UrgencyLevel >= 7 {
		out = append(out, "Add crew members or a second shift to meet the rush timeline.")
	}
	if p.DistanceMiles > 100 {
		out = append(out, "Book lodging near the site and schedule consecutive days to limit travel.")
	} else if p.DistanceMiles > 50 {
		out = append(out, "Stage supplies on site to avoid extra round trips.")
	}
	if est.EstimatedDays > 5 {
		out = append(out, fmt.Sprintf("At %d crew members the job runs %d days; a larger crew would shorten the schedule.", est.CrewSize, est.EstimatedDays))
	}

	switch p.CleaningType {
	case model.CleaningTypeRough:
		out = append(out, "Book the final clean now so it lines up with the general contractor's closeout schedule.")
	case model.CleaningTypeComplete:
		out = append(out, "Coordinate the rough, final and touch-up visits with the general contractor's schedule.")
	case model.CleaningTypeTouchUp:
		out = append(out, "Walk the space with the owner before the touch-up to capture every punch list item.")
	}

	out = append(out,
		"Walk the site with the general contractor before starting to agree on the scope.",
		"Take before and after photos of every area for the closeout package.",
		"Confirm PPE and site safety requirements with the general contractor.",
	)
	return out
}
