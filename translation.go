/*
 * translation.go, part of gothermo.
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
	"fmt"
	"io"
	"math"
)

//Translation is the contribution of the external translation to the
//partition function. It also carries the 1/N! indistinguishability
//factor of the many body partition function, in the Stirling
//approximation, because that term can not be separated from the volume
//per particle in a way that is independent of the particle number.
//
//The exported fields configure the contribution and must not be changed
//once it has been handed to NewPartFun.
type Translation struct {
	//CP selects a constant pressure (surface tension) ensemble instead
	//of a constant volume (surface) one, by including the -PV/kT factor
	//in the partition function. With CP the internal energy is the
	//enthalpy and the free energy is the Gibbs free energy.
	CP bool
	//Gas is the equation of state of the system. A nil Gas becomes an
	//ideal gas of the matching dimensionality at Init time. A non-nil
	//Gas must match Dim.
	Gas GasLaw
	//Dim is the dimensionality of the translation.
	Dim int
	//Mobile lists the indexes of the atoms that are free to translate,
	//e.g. only the adsorbate atoms of a molecule on a surface. A nil
	//Mobile means all atoms, using the total mass.
	Mobile []int

	mass float64
}

//NewTranslation returns a translational contribution for a
//three-dimensional constant pressure ensemble. Change the fields before
//building the partition function for other setups.
func NewTranslation() *Translation {
	return &Translation{CP: true, Dim: 3}
}

//Name returns "translational".
func (t *Translation) Name() string { return "translational" }

//GasLaw returns the equation of state used by the contribution. This is
//the method that marks Translation as a Translator, which puts the gas
//volume correction into rate coefficients and equilibrium constants.
func (t *Translation) GasLaw() GasLaw { return t.Gas }

//Mass returns the translating mass resolved at Init, in atomic units.
func (t *Translation) Mass() float64 { return t.mass }

//Init resolves the gas law and the translating mass. The mass is the
//total mass from the normal mode data, or the sum over the Mobile subset
//when one is given.
func (t *Translation) Init(nm *NMA, pf *PartFun) error {
	if t.Gas == nil {
		gas, err := NewIdealGas(t.Dim)
		if err != nil {
			return errDecorate(err, "Translation.Init")
		}
		t.Gas = gas
	} else if t.Gas.Dim() != t.Dim {
		return CError{GasLawMismatch, t.Name(), []string{"Translation.Init"}, true}
	}
	if t.Mobile == nil {
		mass, err := nm.totalMass()
		if err != nil {
			return errDecorate(err, "Translation.Init")
		}
		t.mass = mass
		return nil
	}
	t.mass = 0
	for _, i := range t.Mobile {
		if i < 0 || i >= len(nm.Masses) {
			return CError{BadMobile, t.Name(), []string{"Translation.Init"}, true}
		}
		t.mass += nm.Masses[i]
	}
	return nil
}

//LogZ returns Tⁿ·ln(Z) for the translation: the Stirling term, the
//thermal de Broglie factor ½·dim·ln(2π·m·k·T/h²), the gas law's volume
//per particle, and, under constant pressure, -PV/kT.
func (t *Translation) LogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		if n > 0 {
			return 0, nil
		}
		return 0, CError{ZeroTemperature, t.Name(), []string{"Translation.LogZ"}, true}
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Translation.LogZ")
	}
	//the lone tn is the 1/N! Stirling leftover
	result := tn + tn*0.5*float64(t.Dim)*math.Log(2*math.Pi*t.mass*Boltzmann*temp/(Planck*Planck))
	g, err := t.Gas.LogZ(temp, n)
	if err != nil {
		return 0, err
	}
	result += g
	if t.CP {
		pv, err := t.Gas.PV0(temp, n-1)
		if err != nil {
			return 0, err
		}
		result -= pv / Boltzmann
	}
	return result, nil
}

//DLogZ returns Tⁿ·d ln(Z)/dT. It has no finite limit at zero
//temperature.
func (t *Translation) DLogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, t.Name(), []string{"Translation.DLogZ"}, true}
	}
	tn, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "Translation.DLogZ")
	}
	result := 0.5 * float64(t.Dim) * tn
	if t.CP {
		g, err := t.Gas.DLogZ(temp, n)
		if err != nil {
			return 0, err
		}
		pv, err := t.Gas.PV1(temp, n-1)
		if err != nil {
			return 0, err
		}
		result += g - pv/Boltzmann
	}
	return result, nil
}

//D2LogZ returns Tⁿ·d² ln(Z)/dT². It has no finite limit at zero
//temperature.
func (t *Translation) D2LogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, t.Name(), []string{"Translation.D2LogZ"}, true}
	}
	tn, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "Translation.D2LogZ")
	}
	result := -0.5 * float64(t.Dim) * tn
	if t.CP {
		g, err := t.Gas.D2LogZ(temp, n)
		if err != nil {
			return 0, err
		}
		pv, err := t.Gas.PV2(temp, n-1)
		if err != nil {
			return 0, err
		}
		result += g - pv/Boltzmann
	}
	return result, nil
}

//Dump writes a description of the contribution to w, including which
//ensemble the CP flag selects and therefore how the energies it
//produces must be read.
func (t *Translation) Dump(w io.Writer) {
	dumpName(w, t.Name())
	fmt.Fprintf(w, "    Gas law: %s\n", t.Gas.Description())
	fmt.Fprintf(w, "    Dimension: %d\n", t.Dim)
	fmt.Fprintf(w, "    Constant pressure: %t\n", t.CP)
	if t.CP {
		fmt.Fprintf(w, "      BIG FAT WARNING!!!\n")
		fmt.Fprintf(w, "      This is an NpT partition function.\n")
		fmt.Fprintf(w, "      Internal energy contains a PV term (and is therefore the enthalpy).\n")
		fmt.Fprintf(w, "      Free energy contains a PV term (and is therefore the Gibbs free energy).\n")
	} else {
		fmt.Fprintf(w, "      BIG FAT WARNING!!!\n")
		fmt.Fprintf(w, "      This is an NVT partition function.\n")
		fmt.Fprintf(w, "      Internal energy does NOT contain a PV term.\n")
		fmt.Fprintf(w, "      Free energy does NOT contain a PV term (and is therefore the Helmholtz free energy).\n")
	}
	fmt.Fprintf(w, "    Mass [amu]: %f\n", t.mass/Amu)
}
