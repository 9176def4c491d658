package repositories

// RevisionRepository resolves the checked-out revision of an installed dependency.
type RevisionRepository interface {
	// Resolve returns the full revision of the checkout in dir, if any.
	Resolve(dir string) (string, bool)
}
