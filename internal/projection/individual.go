package projection

import "log/slog"

func individualRelations(settings) []FieldSpec {
	return []FieldSpec{
		NewField("family.project.guid"),
		NewField("project_guid").As("own_project_guid"),
		NewField("family.guid"),
	}
}

// augmentIndividual resolves the project and family guids, parses the
// phenotips document and flattens the case review editor.
func augmentIndividual(_ *Projector, v *view) {
	v.out.Set("projectGuid", coalesce(v.rel.Get("family_project_guid"), v.rel.Get("own_project_guid")))
	v.out.Set("familyGuid", v.rel.Get("family_guid"))

	if by, ok := v.out.Get("caseReviewStatusLastModifiedBy"); ok {
		v.out.Set("caseReviewStatusLastModifiedBy", displayUser(by))
	}
	if raw, ok := v.out.Get("phenotipsData"); ok {
		doc, err := parseDocument(raw)
		if err != nil {
			v.log.Error("could not parse phenotips data", slog.Any("error", err))
			doc = nil
		}
		v.out.Set("phenotipsData", doc)
	}
}
