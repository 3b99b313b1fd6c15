package projection

// userFields are the attributes exposed for a user account.
var userFields = []FieldSpec{
	NewField("id"),
	NewField("username"),
	NewField("email"),
	NewField("first_name"),
	NewField("last_name"),
	NewField("last_login"),
	NewField("is_staff"),
	NewField("is_active"),
	NewField("date_joined"),
}

// User projects a user account. Users have no catalog entry: every caller
// sees the same fields.
func (p *Projector) User(record Record) *Result {
	flat := normalize(record, userFields, p.logger.With("kind", "user"))
	out, _, _ := TransformKeys(flat)
	return out
}
