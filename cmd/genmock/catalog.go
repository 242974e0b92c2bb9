package main

import "github.com/couchcryptid/element-phase-service/internal/domain"

func ptr[T any](v T) *T { return &v }

// catalog is a subset of the periodic table dataset. Carbon has no melting point
// (it sublimes) and oganesson has no measured points at all.
var catalog = []domain.Element{
	{
		AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008,
		Category: domain.CategoryNonmetal, Period: 1, Group: 1,
		ElectronConfiguration: "1s1", OxidationStates: []string{"-1", "+1"},
		MeltingPoint: ptr(13.99), BoilingPoint: ptr(20.271),
		Density: ptr(0.00008988), Electronegativity: ptr(2.2),
		DiscoveryYear: ptr(1766), Discoverer: "Henry Cavendish",
	},
	{
		AtomicNumber: 2, Symbol: "He", Name: "Helium", AtomicMass: 4.0026,
		Category: domain.CategoryNobleGas, Period: 1, Group: 18,
		ElectronConfiguration: "1s2", OxidationStates: []string{"0"},
		MeltingPoint: ptr(0.95), BoilingPoint: ptr(4.222),
		Density: ptr(0.0001785),
		DiscoveryYear: ptr(1868), Discoverer: "Pierre Janssen",
	},
	{
		AtomicNumber: 6, Symbol: "C", Name: "Carbon", AtomicMass: 12.011,
		Category: domain.CategoryNonmetal, Period: 2, Group: 14,
		ElectronConfiguration: "[He] 2s2 2p2", OxidationStates: []string{"-4", "+4"},
		BoilingPoint: ptr(3915.0),
		Density: ptr(2.267), Electronegativity: ptr(2.55),
	},
	{
		AtomicNumber: 7, Symbol: "N", Name: "Nitrogen", AtomicMass: 14.007,
		Category: domain.CategoryNonmetal, Period: 2, Group: 15,
		ElectronConfiguration: "[He] 2s2 2p3", OxidationStates: []string{"-3", "+5"},
		MeltingPoint: ptr(63.15), BoilingPoint: ptr(77.355),
		Density: ptr(0.0012506), Electronegativity: ptr(3.04),
		DiscoveryYear: ptr(1772), Discoverer: "Daniel Rutherford",
	},
	{
		AtomicNumber: 8, Symbol: "O", Name: "Oxygen", AtomicMass: 15.999,
		Category: domain.CategoryNonmetal, Period: 2, Group: 16,
		ElectronConfiguration: "[He] 2s2 2p4", OxidationStates: []string{"-2"},
		MeltingPoint: ptr(54.36), BoilingPoint: ptr(90.188),
		Density: ptr(0.001429), Electronegativity: ptr(3.44),
		DiscoveryYear: ptr(1774), Discoverer: "Carl Wilhelm Scheele",
	},
	{
		AtomicNumber: 11, Symbol: "Na", Name: "Sodium", AtomicMass: 22.99,
		Category: domain.CategoryAlkaliMetal, Period: 3, Group: 1,
		ElectronConfiguration: "[Ne] 3s1", OxidationStates: []string{"+1"},
		MeltingPoint: ptr(370.944), BoilingPoint: ptr(1156.09),
		Density: ptr(0.968), Electronegativity: ptr(0.93),
		DiscoveryYear: ptr(1807), Discoverer: "Humphry Davy",
	},
	{
		AtomicNumber: 26, Symbol: "Fe", Name: "Iron", AtomicMass: 55.845,
		Category: domain.CategoryTransitionMetal, Period: 4, Group: 8,
		ElectronConfiguration: "[Ar] 3d6 4s2", OxidationStates: []string{"+2", "+3"},
		MeltingPoint: ptr(1811.0), BoilingPoint: ptr(3134.0),
		Density: ptr(7.874), Electronegativity: ptr(1.83),
	},
	{
		AtomicNumber: 31, Symbol: "Ga", Name: "Gallium", AtomicMass: 69.723,
		Category: domain.CategoryPostTransitionMetal, Period: 4, Group: 13,
		ElectronConfiguration: "[Ar] 3d10 4s2 4p1", OxidationStates: []string{"+3"},
		MeltingPoint: ptr(302.9146), BoilingPoint: ptr(2673.0),
		Density: ptr(5.91), Electronegativity: ptr(1.81),
		DiscoveryYear: ptr(1875), Discoverer: "Lecoq de Boisbaudran",
	},
	{
		AtomicNumber: 35, Symbol: "Br", Name: "Bromine", AtomicMass: 79.904,
		Category: domain.CategoryHalogen, Period: 4, Group: 17,
		ElectronConfiguration: "[Ar] 3d10 4s2 4p5", OxidationStates: []string{"-1", "+1", "+5"},
		MeltingPoint: ptr(265.8), BoilingPoint: ptr(332.0),
		Density: ptr(3.1028), Electronegativity: ptr(2.96),
		DiscoveryYear: ptr(1826), Discoverer: "Antoine Jérôme Balard",
	},
	{
		AtomicNumber: 74, Symbol: "W", Name: "Tungsten", AtomicMass: 183.84,
		Category: domain.CategoryTransitionMetal, Period: 6, Group: 6,
		ElectronConfiguration: "[Xe] 4f14 5d4 6s2", OxidationStates: []string{"+4", "+6"},
		MeltingPoint: ptr(3695.0), BoilingPoint: ptr(5828.0),
		Density: ptr(19.25), Electronegativity: ptr(2.36),
		DiscoveryYear: ptr(1783), Discoverer: "Juan José Elhuyar",
	},
	{
		AtomicNumber: 80, Symbol: "Hg", Name: "Mercury", AtomicMass: 200.592,
		Category: domain.CategoryTransitionMetal, Period: 6, Group: 12,
		ElectronConfiguration: "[Xe] 4f14 5d10 6s2", OxidationStates: []string{"+1", "+2"},
		MeltingPoint: ptr(234.32), BoilingPoint: ptr(629.88),
		Density: ptr(13.534), Electronegativity: ptr(2.0),
	},
	{
		AtomicNumber: 118, Symbol: "Og", Name: "Oganesson", AtomicMass: 294,
		Category: domain.CategoryNobleGas, Period: 7, Group: 18,
		ElectronConfiguration: "[Rn] 5f14 6d10 7s2 7p6",
		DiscoveryYear: ptr(2002), Discoverer: "Joint Institute for Nuclear Research",
	},
}
