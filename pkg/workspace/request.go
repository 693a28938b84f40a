// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workspace

type BusinessInfo struct {
	BusinessName string `json:"business_name" validate:"required,max=100"`
	BusinessType string `json:"business_type" validate:"required,max=64"`
	Email        string `json:"email" validate:"required,email,max=100"`
	TaxID        string `json:"tax_id" validate:"required,max=50"`
	Phone        string `json:"phone" validate:"max=100"`
	Fax          string `json:"fax" validate:"max=100"`
	Website      string `json:"website" validate:"omitempty,url"`
	Description  string `json:"description"`
}

type AddressInfo struct {
	Country    string `json:"country" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`
	Address    string `json:"address" validate:"required,max=100"`
	Street     string `json:"street" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=15"`
	State      string `json:"state" validate:"max=100"`
}

type LanguageInfo struct {
	PreferredLocale string `json:"preferredLocale" validate:"max=16"`
	TimeZone        string `json:"tz" validate:"omitempty,max=64,timezone"`
	WeekStart       string `json:"weekStart" validate:"max=16"`
}

type Addons struct {
	Warehouse    bool `json:"warehouse"`
	WorkingHours bool `json:"workingHours"`
}

// ProvisionRequest is the onboarding payload. Language and Addons may be
// omitted.
type ProvisionRequest struct {
	ShortName string        `json:"short_name" validate:"max=100"`
	Business  *BusinessInfo `json:"business" validate:"required"`
	Address   *AddressInfo  `json:"address" validate:"required"`
	Language  *LanguageInfo `json:"language"`
	Addons    *Addons       `json:"addons"`
}

type addon struct {
	module  string
	enabled func(*Addons) bool
}

// addons maps payload flags onto module names, in creation order.
var addons = []addon{
	{module: "warehouse", enabled: func(a *Addons) bool { return a.Warehouse }},
	{module: "working_hours", enabled: func(a *Addons) bool { return a.WorkingHours }},
}

func (r *ProvisionRequest) enabledModules() []string {
	if r.Addons == nil {
		return nil
	}

	var modules []string
	for _, a := range addons {
		if a.enabled(r.Addons) {
			modules = append(modules, a.module)
		}
	}
	return modules
}

func (r *ProvisionRequest) timeZone(fallback string) string {
	if r.Language != nil && r.Language.TimeZone != "" {
		return r.Language.TimeZone
	}
	return fallback
}
