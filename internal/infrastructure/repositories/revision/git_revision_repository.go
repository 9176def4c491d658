package revision

import (
	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// GitRevisionRepository reads the HEAD commit of dependencies installed as git checkouts.
type GitRevisionRepository struct{}

var _ repositories.RevisionRepository = (*GitRevisionRepository)(nil)

// NewGitRevisionRepository creates a go-git backed revision resolver.
func NewGitRevisionRepository() *GitRevisionRepository {
	return &GitRevisionRepository{}
}

// Resolve returns the HEAD hash of the repository at dir. A directory that is
// not a git checkout, or has no commits yet, yields false.
func (it *GitRevisionRepository) Resolve(dir string) (string, bool) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		logger.Debugf("No HEAD in git checkout %q: %v", dir, err)
		return "", false
	}

	return head.Hash().String(), true
}
