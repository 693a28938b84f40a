// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"strings"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var businessTypeAliases = map[string]types.WorkspaceType{
	"workshop":            types.WorkspaceTypeMechanicalWorkshop,
	"mechanical_workshop": types.WorkspaceTypeMechanicalWorkshop,
	"mechanic_workshop":   types.WorkspaceTypeMechanicalWorkshop,
	"mechanical workshop": types.WorkspaceTypeMechanicalWorkshop,
	"horeca":              types.WorkspaceTypeHoreca,
	"restaurant":          types.WorkspaceTypeHoreca,
	"bar":                 types.WorkspaceTypeHoreca,
	"cafe":                types.WorkspaceTypeHoreca,
	"other":               types.WorkspaceTypeOther,
}

// NormalizeBusinessType maps a free form business type onto its canonical
// workspace type. Matching ignores case and surrounding whitespace.
func NormalizeBusinessType(raw string) (types.WorkspaceType, error) {
	key := strings.ToLower(strings.TrimSpace(raw))

	t, ok := businessTypeAliases[key]
	if !ok {
		return "", errs.NewValidationError("business_type", raw, "unknown business type")
	}

	return t, nil
}

// Classify returns the workspace type for a concrete business. A nil business
// classifies as OTHER.
func Classify(b types.Business) types.WorkspaceType {
	if b == nil {
		return types.WorkspaceTypeOther
	}
	return b.Kind().WorkspaceType()
}

// Bind points w at b and re-derives its workspace type. Any workspace type
// already set on w is overwritten.
func Bind(w *types.Workspace, b types.Business) {
	w.MainBusiness = b
	w.WorkspaceType = Classify(b)

	if b == nil {
		w.MainBusinessKind = ""
		w.MainBusinessID = ""
		return
	}

	w.MainBusinessKind = b.Kind()
	w.MainBusinessID = b.BusinessID()
}
