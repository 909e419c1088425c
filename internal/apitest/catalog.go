// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package apitest

func strPtr(s string) *string { return &s }

// DefaultCatalog is the seed data every server starts with.
func DefaultCatalog() []Pokemon {
	return []Pokemon{
		{
			NationalNumber: 1, Gen: "I", EnglishName: "Bulbasaur",
			PrimaryType: "grass", SecondaryType: strPtr("poison"),
			Ability0: "Overgrow", AbilitySpecial: "Chlorophyll",
			Attack: 49, Defense: 49, HP: 45, Speed: 45, HeightM: 0.7, WeightKg: 6.9,
			Description: "A strange seed was planted on its back at birth.",
			Classification: "Seed Pokémon", CaptureRate: 45,
			PercentMale: 88.14, PercentFemale: 11.86,
			EvoChain0: "Bulbasaur", EvoChain2: "Ivysaur", EvoChain4: "Venusaur",
		},
		{
			NationalNumber: 6, Gen: "I", EnglishName: "Charizard",
			PrimaryType: "fire", SecondaryType: strPtr("flying"),
			Ability0: "Blaze", AbilitySpecial: "Solar Power",
			Attack: 84, Defense: 78, HP: 78, Speed: 100, HeightM: 1.7, WeightKg: 90.5,
			Description: "It spits fire that is hot enough to melt boulders.",
			Classification: "Flame Pokémon", CaptureRate: 45,
			PercentMale: 88.14, PercentFemale: 11.86,
			EvoChain0: "Charmander", EvoChain2: "Charmeleon", EvoChain4: "Charizard",
		},
		{
			NationalNumber: 25, Gen: "I", EnglishName: "Pikachu",
			PrimaryType: "electric",
			Ability0: "Static", AbilitySpecial: "Lightning Rod",
			Attack: 55, Defense: 40, HP: 35, Speed: 90, HeightM: 0.4, WeightKg: 6,
			Description: "When several of these Pokémon gather, their electricity can build and cause lightning storms.",
			Classification: "Mouse Pokémon", CaptureRate: 190,
			PercentMale: 50, PercentFemale: 50,
			EvoChain0: "Pichu", EvoChain2: "Pikachu", EvoChain4: "Raichu",
		},
		{
			NationalNumber: 29, Gen: "I", EnglishName: "Nidoran♀",
			PrimaryType: "poison",
			Ability0: "Poison Point", Attack: 47, Defense: 52, HP: 55, Speed: 41,
			Classification: "Poison Pin Pokémon", CaptureRate: 235,
			PercentFemale: 100,
		},
		{
			NationalNumber: 83, Gen: "I", EnglishName: "Farfetch'd",
			PrimaryType: "normal", SecondaryType: strPtr("flying"),
			Attack: 90, Defense: 55, HP: 52, Speed: 60,
			PercentMale: 50, PercentFemale: 50,
		},
		{
			NationalNumber: 122, Gen: "I", EnglishName: "Mr. Mime",
			PrimaryType: "psychic", SecondaryType: strPtr("fairy"),
			Attack: 45, Defense: 65, HP: 40, Speed: 90,
			PercentMale: 50, PercentFemale: 50,
		},
		{
			NationalNumber: 250, Gen: "II", EnglishName: "Ho-Oh",
			PrimaryType: "fire", SecondaryType: strPtr("flying"),
			Attack: 130, Defense: 90, HP: 106, Speed: 90,
			Classification: "Rainbow Pokémon", CaptureRate: 3,
			IsLegendary: 1,
		},
	}
}
