// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
)

type DatabaseInterface interface {
	Ping(ctx context.Context) error
}
