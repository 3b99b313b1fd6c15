package projection

import "fmt"

// ProjectAll projects records of one kind in order. Each record is projected
// independently; soft failures in one never affect another. The only error
// is an unknown kind.
func (p *Projector) ProjectAll(kind Kind, records []Record, caller Caller, flags ...Flag) ([]*Result, error) {
	if _, ok := pipelines[kind]; !ok || !p.catalog.Has(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return p.projectAll(kind, records, caller, newSettings(flags)), nil
}

// ProjectOne projects a single record. It is ProjectAll over a one-element
// slice.
func (p *Projector) ProjectOne(kind Kind, record Record, caller Caller, flags ...Flag) (*Result, error) {
	results, err := p.ProjectAll(kind, []Record{record}, caller, flags...)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

func (p *Projector) projectAll(kind Kind, records []Record, caller Caller, s settings) []*Result {
	relations := pipelines[kind].relations(s)
	out := make([]*Result, len(records))
	for i, rec := range records {
		out[i] = p.project(kind, rec, caller, s, relations)
	}
	return out
}

// Projects projects project records.
func (p *Projector) Projects(records []Record, caller Caller, flags ...Flag) []*Result {
	return p.projectAll(KindProject, records, caller, newSettings(flags))
}

// Project projects one project record.
func (p *Projector) Project(record Record, caller Caller, flags ...Flag) *Result {
	return p.Projects([]Record{record}, caller, flags...)[0]
}

// Families projects family records.
func (p *Projector) Families(records []Record, caller Caller, flags ...Flag) []*Result {
	return p.projectAll(KindFamily, records, caller, newSettings(flags))
}

// Family projects one family record.
func (p *Projector) Family(record Record, caller Caller, flags ...Flag) *Result {
	return p.Families([]Record{record}, caller, flags...)[0]
}

// Individuals projects individual records.
func (p *Projector) Individuals(records []Record, caller Caller, flags ...Flag) []*Result {
	return p.projectAll(KindIndividual, records, caller, newSettings(flags))
}

// Individual projects one individual record.
func (p *Projector) Individual(record Record, caller Caller, flags ...Flag) *Result {
	return p.Individuals([]Record{record}, caller, flags...)[0]
}

// Samples projects sample records.
func (p *Projector) Samples(records []Record, caller Caller, flags ...Flag) []*Result {
	return p.projectAll(KindSample, records, caller, newSettings(flags))
}

// Sample projects one sample record.
func (p *Projector) Sample(record Record, caller Caller, flags ...Flag) *Result {
	return p.Samples([]Record{record}, caller, flags...)[0]
}

// Datasets projects dataset records.
func (p *Projector) Datasets(records []Record, caller Caller, flags ...Flag) []*Result {
	return p.projectAll(KindDataset, records, caller, newSettings(flags))
}

// Dataset projects one dataset record.
func (p *Projector) Dataset(record Record, caller Caller, flags ...Flag) *Result {
	return p.Datasets([]Record{record}, caller, flags...)[0]
}
