package auth

// Authored is any record that carries the display name of the staff member
// who registered it, snapshotted at creation time.
type Authored interface {
	RegisteredByName() string
}

// CanDeleteOccurrence reports whether u may delete the given record: admins
// always can, other staff only when they registered it themselves.
//
// Authorship is matched on the registered display name snapshot, as the
// product currently defines it. Known limitation: two users sharing a
// display name are indistinguishable here, and a renamed user loses
// recognition of their own records.
func CanDeleteOccurrence(u User, rec Authored) bool {
	return u.IsAdmin() || u.Name == rec.RegisteredByName()
}

// CanEditStudent reports whether u may modify student records.
func CanEditStudent(u User) bool {
	return u.IsAdmin()
}
