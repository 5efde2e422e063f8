package response

import (
	"grooming-salon/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyFrom maps a read model onto a response by field name. It panics when
// the copy fails.
func copyFrom[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(errs.Wrapf(err, "map %T onto %T", src, dst))
	}
	return dst
}

func copyAll[T any, S any](src []S) []T {
	res := make([]T, len(src))
	for i := range src {
		res[i] = copyFrom[T](&src[i])
	}
	return res
}
