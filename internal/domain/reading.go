package domain

import "github.com/google/uuid"

// Reading is a single parsed input line: a numeric magnitude and the
// unit token that follows it.
type Reading struct {
	Magnitude float64
	Unit      string
}

func NewReading(magnitude float64, unit string) Reading {
	return Reading{
		Magnitude: magnitude,
		Unit:      unit,
	}
}

type UnitCount struct {
	Unit     string
	Quantity int
}

func NewUnitCount(unit string, quantity int) UnitCount {
	return UnitCount{
		Unit:     unit,
		Quantity: quantity,
	}
}

type SessionInfo struct {
	ID            uuid.UUID
	TotalLines    int
	ParsedLines   int
	FailedLines   int
	MinMagnitude  float64
	AvgMagnitude  float64
	MaxMagnitude  float64
	FrequentUnits []UnitCount
}

func NewSessionInfo(
	id uuid.UUID,
	totalLines, parsedLines, failedLines int,
	minMagnitude, avgMagnitude, maxMagnitude float64,
	frequentUnits []UnitCount,
) SessionInfo {
	return SessionInfo{
		ID:            id,
		TotalLines:    totalLines,
		ParsedLines:   parsedLines,
		FailedLines:   failedLines,
		MinMagnitude:  minMagnitude,
		AvgMagnitude:  avgMagnitude,
		MaxMagnitude:  maxMagnitude,
		FrequentUnits: frequentUnits,
	}
}
