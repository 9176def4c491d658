package entities

// LicenseStatus describes the outcome of probing a dependency for a license file.
type LicenseStatus int

const (
	// LicenseMissing means no candidate file existed (or all were empty).
	LicenseMissing LicenseStatus = iota
	// LicenseFound means a non-empty candidate file was read.
	LicenseFound
	// LicenseUnreadable means at least one candidate existed but could not be read,
	// and no later candidate succeeded.
	LicenseUnreadable
)

func (s LicenseStatus) String() string {
	switch s {
	case LicenseFound:
		return "found"
	case LicenseUnreadable:
		return "unreadable"
	default:
		return "missing"
	}
}

// LicenseText is the license file content located for one dependency.
// An empty Content is a normal, reportable result.
type LicenseText struct {
	Content string
	Path    string // Candidate file that matched; empty unless Status is LicenseFound
	Status  LicenseStatus
	Err     error // First read failure seen while probing, if any
}

// Found reports whether a license file was located.
func (it LicenseText) Found() bool {
	return it.Status == LicenseFound
}
