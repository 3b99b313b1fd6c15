package projection

func sampleRelations(settings) []FieldSpec {
	return []FieldSpec{
		NewField("individual.family.project.guid"),
		NewField("project_guid").As("own_project_guid"),
		NewField("individual.guid"),
	}
}

func augmentSample(_ *Projector, v *view) {
	v.out.Set("projectGuid", coalesce(v.rel.Get("individual_family_project_guid"), v.rel.Get("own_project_guid")))
	v.out.Set("individualGuid", v.rel.Get("individual_guid"))
}
