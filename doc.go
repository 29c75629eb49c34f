/*
 * doc.go, part of gothermo.
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

/*Package thermo builds molecular partition functions from the outcome of a
normal mode analysis, and obtains thermodynamic and kinetic quantities from them.



	**gothermo Capabilities**


    Composes a partition function from independent contributions: vibrational
	(quantum or classical harmonic oscillators, with optional frequency and
	zero-point scaling), electronic, translational (under an ideal gas law, at
	constant pressure or constant volume, in 1, 2 or 3 dimensions), rotational
	(with the symmetry number given or obtained from a user supplied finder)
	and empirical free energy corrections anchored at one or two temperatures,
	of the kind obtained from continuum solvation models.

    Accepts user defined contributions: anything fullfilling the Contribution
	interface takes part in the products and sums like the built-in terms.

    Computes internal energy, heat capacity, entropy, free energy and the
	zero-point energy of each species, at any temperature including 0 K, where
	every quantity either has its analytic limit or returns an explicit error.

    Breaks the vibrational quantities down per normal mode.

    Computes transition state theory rate coefficients and equilibrium
	constants for gas phase and heterogeneous reactions, mixing gas phase
	species with species that have no translational volume, such as adsorbates
	and lattice sites.

    Fits Arrhenius parameters (A, Ea) to rate coefficients over a temperature
	grid, using the Gonum least squares routines.

    Writes plain text reports of every species and reaction, and CSV tables of
	the thermodynamic functions over temperature grids, optionally compressed
	(zstd, gzip or flate, chosen from the file name as in goChem's STF format).

    Builds the moment of inertia tensor from coordinates and masses, and
	diagonalizes it with Gonum, so linear molecules and single atoms lose the
	rotational degrees of freedom they do not have.



All the quantities are in atomic units per molecule, with temperatures in
kelvin, unless stated otherwise. The normal mode data comes in through the NMA
structure, which gothermo never modifies, so the same NMA can back several
partition functions, say, a constant volume and a constant pressure one.*/
package thermo
