package cli

import (
	"shiftclip/internal/model"
	"shiftclip/internal/mutate"
)

func errNotFound(kind string, p model.Path) error {
	return mutate.NotFoundError{Kind: kind, Path: p.String()}
}
