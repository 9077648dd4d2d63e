package impl

import (
	"academia/internal/domain/entity"
	"academia/internal/errors"
)

// maxCandidateAttempts bounds the suffix search of generated usernames and handles.
const maxCandidateAttempts = 1000

// firstFreeCandidate returns base, or base followed by the smallest counter, for which taken reports false.
func firstFreeCandidate(base string, taken func(candidate string) (bool, error)) (string, error) {
	for n := range maxCandidateAttempts {
		candidate := entity.HandleCandidate(base, n)

		exists, err := taken(candidate)
		if err != nil {
			return "", errors.Wrapf(err, "failed to check candidate %q", candidate)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", errors.Errorf("no free candidate for %q after %d attempts", base, maxCandidateAttempts)
}
