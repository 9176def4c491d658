package license

// NewFilesystemLicenseRepositoryWithReader builds a locator with a custom file reader for testing.
func NewFilesystemLicenseRepositoryWithReader(
	readFile func(name string) ([]byte, error),
) *FilesystemLicenseRepository {
	return &FilesystemLicenseRepository{readFile: readFile}
}
