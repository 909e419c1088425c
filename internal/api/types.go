// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "fmt"

// Pokemon is one catalog entry. List endpoints fill the summary fields;
// the single-entry endpoint fills the rest.
type Pokemon struct {
	NationalNumber int    `json:"national_number"`
	Gen            string `json:"gen"`
	EnglishName    string `json:"english_name"`
	PrimaryType    string `json:"primary_type"`
	SecondaryType  string `json:"secondary_type,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`

	// Detail fields
	Ability0       string  `json:"abilities_0,omitempty"`
	Ability1       string  `json:"abilities_1,omitempty"`
	AbilitySpecial string  `json:"abilities_special,omitempty"`
	Attack         int     `json:"attack,omitempty"`
	Defense        int     `json:"defense,omitempty"`
	HP             int     `json:"hp,omitempty"`
	Speed          int     `json:"speed,omitempty"`
	HeightM        float64 `json:"height_m,omitempty"`
	WeightKg       float64 `json:"weight_kg,omitempty"`
	Description    string  `json:"description,omitempty"`
	Classification string  `json:"classification,omitempty"`
	CaptureRate    int     `json:"capture_rate,omitempty"`
	PercentMale    float64 `json:"percent_male,omitempty"`
	PercentFemale  float64 `json:"percent_female,omitempty"`
	IsLegendary    int     `json:"is_legendary,omitempty"`
	IsMythical     int     `json:"is_mythical,omitempty"`
	EvoChain0      string  `json:"evochain_0,omitempty"`
	EvoChain2      string  `json:"evochain_2,omitempty"`
	EvoChain4      string  `json:"evochain_4,omitempty"`
}

// Number formats the national number as #025.
func (p Pokemon) Number() string {
	return fmt.Sprintf("#%03d", p.NationalNumber)
}

// Types returns the non-empty types, primary first.
func (p Pokemon) Types() []string {
	var types []string
	if p.PrimaryType != "" {
		types = append(types, p.PrimaryType)
	}
	if p.SecondaryType != "" {
		types = append(types, p.SecondaryType)
	}
	return types
}

// Abilities returns the non-empty regular abilities.
func (p Pokemon) Abilities() []string {
	var out []string
	for _, a := range []string{p.Ability0, p.Ability1} {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// EvolutionChain returns the non-empty evolution stages in order.
func (p Pokemon) EvolutionChain() []string {
	var out []string
	for _, e := range []string{p.EvoChain0, p.EvoChain2, p.EvoChain4} {
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Legendary reports the legendary flag.
func (p Pokemon) Legendary() bool { return p.IsLegendary != 0 }

// Mythical reports the mythical flag.
func (p Pokemon) Mythical() bool { return p.IsMythical != 0 }

// Genderless reports a species with no gender ratio.
func (p Pokemon) Genderless() bool {
	return p.PercentMale == 0 && p.PercentFemale == 0
}

// loginResponse is the body of a successful login.
type loginResponse struct {
	Token string `json:"token"`
}
