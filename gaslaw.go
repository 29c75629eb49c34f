/*
 * gaslaw.go, part of gothermo.
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
	"math"
)

//IdealGas is the ideal gas equation of state. It fullfills GasLaw.
type IdealGas struct {
	pressure float64
	dim      int
}

//NewIdealGas returns an ideal gas law for a gas of the given
//dimensionality. The optional pressure is in atomic units; if not given
//it defaults to 1 atm, but only for three-dimensional gases. There is no
//sensible default in other dimensions, so omitting the pressure there is
//an error, as is a non-positive pressure.
func NewIdealGas(dim int, pressure ...float64) (*IdealGas, error) {
	var p float64
	if len(pressure) > 0 {
		p = pressure[0]
		if p <= 0 {
			return nil, CError{BadPressure, "ideal gas", []string{"NewIdealGas"}, true}
		}
	} else {
		if dim != 3 {
			return nil, CError{WrongDimension, "ideal gas", []string{"NewIdealGas"}, true}
		}
		p = 1 * Atm
	}
	return &IdealGas{pressure: p, dim: dim}, nil
}

//Pressure returns the external pressure, in atomic units.
func (ig *IdealGas) Pressure() float64 { return ig.pressure }

//Dim returns the dimensionality of the gas.
func (ig *IdealGas) Dim() int { return ig.dim }

//Description returns a one-line summary of the gas law. The pressure is
//reported in bar for three-dimensional gases and in atomic units
//otherwise.
func (ig *IdealGas) Description() string {
	unit := 1.0
	unitname := "a.u."
	if ig.dim == 3 {
		unit = Bar
		unitname = "bar"
	}
	return fmt.Sprintf("Ideal gas law, dimension = %d, pressure [%s] = %.5f", ig.dim, unitname, ig.pressure/unit)
}

//PV returns the pressure-volume product per particle, kT.
func (ig *IdealGas) PV(temp float64) float64 {
	return Boltzmann * temp
}

//PV0 returns Tⁿ·PV. At zero temperature the limit is 0 for n>-1 and
//exactly the Boltzmann constant for n=-1; below that it is unbounded.
func (ig *IdealGas) PV0(temp float64, n int) (float64, error) {
	if temp == 0 {
		switch {
		case n > -1:
			return 0, nil
		case n == -1:
			return Boltzmann, nil
		default:
			return 0, CError{ZeroTemperature, "ideal gas", []string{"PV0"}, true}
		}
	}
	tn, err := tpow(temp, n+1)
	if err != nil {
		return 0, errDecorate(err, "PV0")
	}
	return Boltzmann * tn, nil
}

//PV1 returns Tⁿ·d(PV)/dT at constant pressure. For an ideal gas the
//volume derivative cancels the explicit temperature dependence, so this
//is zero.
func (ig *IdealGas) PV1(temp float64, n int) (float64, error) {
	return 0, nil
}

//PV2 returns Tⁿ·d²(PV)/dT² at constant pressure. Zero for an ideal gas.
func (ig *IdealGas) PV2(temp float64, n int) (float64, error) {
	return 0, nil
}

//LogZ returns Tⁿ·ln(V/N), with V/N=kT/p the volume per particle.
func (ig *IdealGas) LogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		if n > 0 {
			return 0, nil
		}
		return 0, CError{ZeroTemperature, "ideal gas", []string{"LogZ"}, true}
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, errDecorate(err, "LogZ")
	}
	return tn * math.Log(Boltzmann*temp/ig.pressure), nil
}

//DLogZ returns Tⁿ·d ln(V/N)/dT, which is Tⁿ⁻¹ for an ideal gas. It has
//no finite limit at zero temperature.
func (ig *IdealGas) DLogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "ideal gas", []string{"DLogZ"}, true}
	}
	tn, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "DLogZ")
	}
	return tn, nil
}

//D2LogZ returns Tⁿ·d² ln(V/N)/dT², which is -Tⁿ⁻² for an ideal gas. It
//has no finite limit at zero temperature.
func (ig *IdealGas) D2LogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "ideal gas", []string{"D2LogZ"}, true}
	}
	tn, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "D2LogZ")
	}
	return -tn, nil
}
