/*
 * interfaces.go, part of gothermo.
 *
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package thermo

import (
	"io"

	"gonum.org/v1/gonum/mat"
)

// Contribution is the interface for one factor of a molecular partition
// function: the electronic, translational, rotational or vibrational
// degrees of freedom, or an empirical correction. Anything that implements
// it can be handed to NewPartFun next to the built-in contributions.
//
// The three *LogZ methods are the numeric core. With Z the (per particle)
// partition function of the contribution, they return Tⁿ·ln(Z),
// Tⁿ·d ln(Z)/dT and Tⁿ·d² ln(Z)/dT². The temperature factor Tⁿ is applied
// after differentiation. Every method accepts temp=0 and either returns
// the analytic limit or fails with ZeroTemperature; it must never return
// 0 or NaN for an undefined limit. All quantities are in atomic units,
// per molecule.
type Contribution interface {

	//Name returns the label that identifies the contribution within a
	//partition function and in the text output.
	Name() string

	//Init freezes the parameters that depend on the normal mode data or
	//on the enclosing partition function. It is called exactly once, by
	//NewPartFun, before any evaluation. After Init the contribution is
	//immutable and its methods are pure functions of (temp, n), safe for
	//concurrent use.
	Init(nm *NMA, pf *PartFun) error

	//LogZ returns Tⁿ·ln(Z).
	LogZ(temp float64, n int) (float64, error)

	//DLogZ returns Tⁿ·d ln(Z)/dT.
	DLogZ(temp float64, n int) (float64, error)

	//D2LogZ returns Tⁿ·d² ln(Z)/dT².
	D2LogZ(temp float64, n int) (float64, error)

	//Dump writes a human readable description to w.
	Dump(w io.Writer)
}

// MultiTerm is a Contribution built from several sub-terms of the same
// mathematical form, e.g. one per vibrational mode. The scalar *LogZ
// methods of such a contribution return the sum of the corresponding
// *LogZTerms slice.
type MultiTerm interface {
	Contribution

	NumTerms() int

	LogZTerms(temp float64, n int) ([]float64, error)

	DLogZTerms(temp float64, n int) ([]float64, error)

	D2LogZTerms(temp float64, n int) ([]float64, error)
}

// Translator marks a Contribution that puts the system in a gas volume,
// so rate coefficients and equilibrium constants must correct the free
// energy balance with the gas law's volume term. The capability is the
// interface, not the name of the contribution: a custom translation-like
// term under any name takes part in the correction as long as it
// implements Translator.
type Translator interface {
	Contribution

	//GasLaw returns the equation of state the contribution uses.
	GasLaw() GasLaw
}

// GasLaw is an equation of state for the gas formed by the molecules
// under study. It supplies the volume per particle needed by a
// translational contribution, and the pressure-volume products needed by
// constant pressure ensembles. The *LogZ methods follow the same
// conventions as in Contribution, with ln(Z) replaced by ln(V/N).
type GasLaw interface {
	LogZ(temp float64, n int) (float64, error)

	DLogZ(temp float64, n int) (float64, error)

	D2LogZ(temp float64, n int) (float64, error)

	//PV returns the pressure-volume product per particle. In atomic
	//units per molecule this is kT for an ideal gas.
	PV(temp float64) float64

	//PV0, PV1 and PV2 return the pressure-volume product and its first
	//and second temperature derivatives, each multiplied by Tⁿ after
	//differentiation.
	PV0(temp float64, n int) (float64, error)

	PV1(temp float64, n int) (float64, error)

	PV2(temp float64, n int) (float64, error)

	//Dim is the dimensionality of the gas.
	Dim() int

	//Description is a one-line summary for the text output.
	Description() string
}

// SymmetryFinder computes a rotational symmetry number from atomic
// numbers and Cartesian coordinates (one atom per row, in bohr). It is
// supplied by a geometry package; gothermo only consumes it, when a
// Rotation is built without a symmetry number and the normal mode data
// does not carry one either.
type SymmetryFinder func(numbers []int, coords *mat.Dense) (int, error)
