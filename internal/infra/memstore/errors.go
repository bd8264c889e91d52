package memstore

import (
	"hotel-frontdesk/internal/infra"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

func conflict(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}
