// Package model defines shared data structures.
package model

import "time"

// Marker identifies a sector boundary line in the source file.
type Marker struct {
	Line int // 1-indexed position in the file
	Text string
}

// Sector is a contiguous block of trimmed lines starting at a marker.
type Sector struct {
	Name      string
	StartLine int
	Lines     []string
	Label     string
}

// Observation is one (timestamp, variable, value) extraction from a log line.
type Observation struct {
	Timestamp string
	Time      time.Time
	Line      int // 1-indexed within the sector
	Variable  string
	Value     float64
}

// CoordObservation combines two variables from the same line into a 2-D point.
type CoordObservation struct {
	Timestamp string
	Time      time.Time
	Line      int
	Name      string
	X         float64
	Y         float64
}

// ScanConfig carries the settings for one file-processing session.
type ScanConfig struct {
	FilePath   string
	CustomVar  string
	ExtraPairs map[string]string
	PlotHeight int
}

// ScanRecord summarizes a completed scan for the history store.
type ScanRecord struct {
	ID        int64
	Path      string
	ScannedAt time.Time
	Markers   int
	CustomVar string
}
