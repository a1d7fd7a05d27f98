//go:build !linux && !windows && !darwin

package power

import (
	"context"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func runAction(_ context.Context, _ pwrlib.Action) error {
	return ErrUnsupported
}
