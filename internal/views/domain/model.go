package domain

import "github.com/GoSim-25-26J-441/seqr-views/internal/projection"

// Options are the per-request projection switches.
type Options struct {
	AnalysedBy      bool
	IndividualGuids bool
	SampleType      bool
}

// DefaultOptions matches the project page: analysed-by and sample types on,
// individual guids off.
func DefaultOptions() Options {
	return Options{AnalysedBy: true, SampleType: true}
}

// ProjectDetails is a project together with everything it contains.
type ProjectDetails struct {
	Project     *projection.Result   `json:"project"`
	Families    []*projection.Result `json:"families"`
	Individuals []*projection.Result `json:"individuals"`
	Samples     []*projection.Result `json:"samples"`
	Datasets    []*projection.Result `json:"datasets"`
}
