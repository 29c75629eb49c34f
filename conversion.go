/*
 * conversion.go, part of gothermo.
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

import "math"

//This provides physical constants and unit conversion factors.
//Everything inside the library is in atomic units, per molecule.
//Each factor below is the number of atomic units in one of the named
//SI/common units, so quantity_in_au = quantity_in_unit * Unit and
//quantity_in_unit = quantity_in_au / Unit.

//Base units
const (
	Meter    = 1 / 0.5291772083e-10   //bohr per meter
	Second   = 1 / 2.418884326500e-17 //atomic time units per second
	Kilogram = 1 / 9.10938188e-31     //electron masses per kg
	Mol      = 6.0221415e23           //particles per mol
)

//Derived units
const (
	Centimeter = 1e-2 * Meter
	Joule      = Kilogram * Meter * Meter / (Second * Second) //hartree per joule
	KJMol      = 1e3 * Joule / Mol                            //hartree per kJ/mol
	Amu        = 1e-3 * Kilogram / Mol                        //electron masses per unified amu
	Pascal     = Joule / (Meter * Meter * Meter)
	Atm        = 101325 * Pascal
	Bar        = 1e5 * Pascal
)

//Physical constants, in atomic units
const (
	Boltzmann  = 1.3806503e-23 * Joule //hartree/K
	Planck     = 2 * math.Pi           //h, with hbar=1
	Lightspeed = 299792458.0 * Meter / Second
)

//Others
const (
	//wavenumber = frequency/InvCm, with the frequency in atomic units.
	InvCm = Lightspeed / Centimeter
)
