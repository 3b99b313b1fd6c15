package projection

import "log/slog"

func familyRelations(s settings) []FieldSpec {
	specs := []FieldSpec{
		NewField("project.guid"),
		NewField("project_guid").As("own_project_guid"),
	}
	if s.analysedBy != nil {
		specs = append(specs, NewField("id"))
	}
	if s.individualGuids {
		specs = append(specs, NewField("individuals"))
	}
	return specs
}

// augmentFamily resolves the project guid, analysed-by summaries, child
// individual guids and the pedigree image URL.
func augmentFamily(p *Projector, v *view) {
	v.out.Set("projectGuid", coalesce(v.rel.Get("project_guid"), v.rel.Get("own_project_guid")))

	if v.flags.analysedBy != nil {
		v.out.Set("analysedBy", analysedBy(v))
	}
	if v.flags.individualGuids {
		v.out.Set("individualGuids", guidList(v.rel.Get("individuals")))
	}
	if img, ok := v.out.Get("pedigreeImage"); ok {
		v.out.Set("pedigreeImage", p.mediaURL(img))
	}
}

func analysedBy(v *view) any {
	id, err := toInt64(v.rel.Get("id"))
	if err != nil {
		v.log.Warn("family has no usable internal id", slog.Any("error", err))
		return nil
	}
	entries, err := v.flags.analysedBy.AnalysedBy(id)
	if err != nil {
		v.log.Error("analysed-by lookup failed", slog.Int64("family_id", id), slog.Any("error", err))
		return nil
	}
	if entries == nil {
		entries = []AnalysedBy{}
	}
	return entries
}
