//go:build unit

package queries_test

import (
	"relecloud-api/internal/infra"
)

func notFoundRepoErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
