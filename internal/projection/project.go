package projection

func projectRelations(s settings) []FieldSpec {
	if !s.categoryGuids {
		return nil
	}
	return []FieldSpec{NewField("project_categories")}
}

// augmentProject adds category guids and the caller's edit right.
func augmentProject(_ *Projector, v *view) {
	categories := []string{}
	if v.flags.categoryGuids {
		categories = guidList(v.rel.Get("project_categories"))
	}
	v.out.Set("projectCategoryGuids", categories)
	v.out.Set("canEdit", v.caller.canEdit(v.record))
}
