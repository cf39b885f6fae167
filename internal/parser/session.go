package parser

import (
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"readingscan/internal/domain"
)

// Session accumulates the results of one run. Safe for concurrent
// Record calls.
type Session struct {
	mu            *sync.Mutex
	id            uuid.UUID
	totalLines    int
	parsedLines   int
	failedLines   int
	units         map[string]int
	magnitudeSum  float64
	magnitudeMin  float64
	magnitudeMax  float64
}

func NewSession() *Session {
	return &Session{
		mu:           &sync.Mutex{},
		id:           uuid.New(),
		units:        make(map[string]int),
		magnitudeMin: math.Inf(1),
		magnitudeMax: math.Inf(-1),
	}
}

func (s *Session) Record(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalLines++

	reading, ok := res.Reading()
	if !ok {
		s.failedLines++

		return
	}

	s.parsedLines++
	s.units[reading.Unit]++
	s.magnitudeSum += reading.Magnitude
	s.magnitudeMin = min(s.magnitudeMin, reading.Magnitude)
	s.magnitudeMax = max(s.magnitudeMax, reading.Magnitude)
}

const unitLimit = 3

// Info snapshots the session into its summary form. Ties between
// equally frequent units break by unit name so the ordering is stable.
func (s *Session) Info() domain.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var minMagnitude, avgMagnitude, maxMagnitude float64

	if s.parsedLines > 0 {
		minMagnitude = s.magnitudeMin
		avgMagnitude = s.magnitudeSum / float64(s.parsedLines)
		maxMagnitude = s.magnitudeMax
	}

	frequentUnits := make([]domain.UnitCount, 0, len(s.units))
	for unit, quantity := range s.units {
		frequentUnits = append(frequentUnits, domain.NewUnitCount(unit, quantity))
	}

	sort.Slice(frequentUnits, func(i, j int) bool {
		if frequentUnits[i].Quantity != frequentUnits[j].Quantity {
			return frequentUnits[i].Quantity > frequentUnits[j].Quantity
		}

		return frequentUnits[i].Unit < frequentUnits[j].Unit
	})

	limit := min(unitLimit, len(frequentUnits))
	frequentUnits = frequentUnits[:limit]

	if len(frequentUnits) == 0 {
		frequentUnits = nil
	}

	return domain.NewSessionInfo(
		s.id,
		s.totalLines,
		s.parsedLines,
		s.failedLines,
		minMagnitude,
		avgMagnitude,
		maxMagnitude,
		frequentUnits,
	)
}
