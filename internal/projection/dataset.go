package projection

func datasetRelations(s settings) []FieldSpec {
	specs := []FieldSpec{NewField("project.guid")}
	if s.sampleType {
		specs = append(specs, NewField("sample.sample_type"))
	}
	return specs
}

func augmentDataset(_ *Projector, v *view) {
	v.out.Set("projectGuid", v.rel.Get("project_guid"))
	if v.flags.sampleType {
		v.out.Set("sampleType", v.rel.Get("sample_sample_type"))
	}
}
