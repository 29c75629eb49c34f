/*
 * statfys.go, part of gothermo.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//The thermodynamic functions below are derived from the Contribution
//interface alone, so they work unchanged for a single contribution, for
//a whole PartFun, and for anything a user implements. Each one is
//implemented exactly once, here.

//tpow returns temp**p with the zero temperature limits this library
//guarantees everywhere: for temp=0 the result is 0 for p>0 and 1 for
//p=0, while a negative p has no finite limit and fails with
//ZeroTemperature. Negative temperatures always fail.
func tpow(temp float64, p int) (float64, error) {
	if temp < 0 {
		return 0, CError{NegativeTemperature, "", []string{"tpow"}, true}
	}
	if temp == 0 {
		switch {
		case p > 0:
			return 0, nil
		case p == 0:
			return 1, nil
		default:
			return 0, CError{ZeroTemperature, "", []string{"tpow"}, true}
		}
	}
	return math.Pow(temp, float64(p)), nil
}

//Log returns ln(Z) for the given contribution.
func Log(c Contribution, temp float64) (float64, error) {
	return c.LogZ(temp, 0)
}

//DLog returns d ln(Z)/dT.
func DLog(c Contribution, temp float64) (float64, error) {
	return c.DLogZ(temp, 0)
}

//D2Log returns d² ln(Z)/dT².
func D2Log(c Contribution, temp float64) (float64, error) {
	return c.D2LogZ(temp, 0)
}

//InternalEnergy returns the internal energy per molecule, k·T²·d ln(Z)/dT.
func InternalEnergy(c Contribution, temp float64) (float64, error) {
	v, err := c.DLogZ(temp, 2)
	if err != nil {
		return 0, err
	}
	return Boltzmann * v, nil
}

//HeatCapacity returns the heat capacity per molecule,
//k·(2·T·d ln(Z)/dT + T²·d² ln(Z)/dT²). Whether this is at constant
//volume or constant pressure depends on the ensemble the translational
//contribution models.
func HeatCapacity(c Contribution, temp float64) (float64, error) {
	v1, err := c.DLogZ(temp, 1)
	if err != nil {
		return 0, err
	}
	v2, err := c.D2LogZ(temp, 2)
	if err != nil {
		return 0, err
	}
	return Boltzmann * (2*v1 + v2), nil
}

//Entropy returns the entropy contribution per molecule,
//k·(ln(Z) + T·d ln(Z)/dT).
func Entropy(c Contribution, temp float64) (float64, error) {
	v0, err := c.LogZ(temp, 0)
	if err != nil {
		return 0, err
	}
	v1, err := c.DLogZ(temp, 1)
	if err != nil {
		return 0, err
	}
	return Boltzmann * (v0 + v1), nil
}

//FreeEnergy returns the free energy per molecule, -k·T·ln(Z). Whether
//this is the Helmholtz or the Gibbs free energy depends on the ensemble
//the translational contribution models.
func FreeEnergy(c Contribution, temp float64) (float64, error) {
	v, err := c.LogZ(temp, 1)
	if err != nil {
		return 0, err
	}
	return -Boltzmann * v, nil
}

//The *Terms functions are the sub-term resolved versions of the
//functions above, for contributions with several terms of the same form.
//They feed the per-term helper slices through the same formulas.

//LogTerms returns ln(Z) per sub-term.
func LogTerms(c MultiTerm, temp float64) ([]float64, error) {
	return c.LogZTerms(temp, 0)
}

//DLogTerms returns d ln(Z)/dT per sub-term.
func DLogTerms(c MultiTerm, temp float64) ([]float64, error) {
	return c.DLogZTerms(temp, 0)
}

//D2LogTerms returns d² ln(Z)/dT² per sub-term.
func D2LogTerms(c MultiTerm, temp float64) ([]float64, error) {
	return c.D2LogZTerms(temp, 0)
}

//InternalEnergyTerms returns the internal energy per sub-term.
func InternalEnergyTerms(c MultiTerm, temp float64) ([]float64, error) {
	v, err := c.DLogZTerms(temp, 2)
	if err != nil {
		return nil, err
	}
	floats.Scale(Boltzmann, v)
	return v, nil
}

//HeatCapacityTerms returns the heat capacity per sub-term.
func HeatCapacityTerms(c MultiTerm, temp float64) ([]float64, error) {
	v1, err := c.DLogZTerms(temp, 1)
	if err != nil {
		return nil, err
	}
	v2, err := c.D2LogZTerms(temp, 2)
	if err != nil {
		return nil, err
	}
	floats.Scale(2, v1)
	floats.Add(v1, v2)
	floats.Scale(Boltzmann, v1)
	return v1, nil
}

//EntropyTerms returns the entropy per sub-term.
func EntropyTerms(c MultiTerm, temp float64) ([]float64, error) {
	v0, err := c.LogZTerms(temp, 0)
	if err != nil {
		return nil, err
	}
	v1, err := c.DLogZTerms(temp, 1)
	if err != nil {
		return nil, err
	}
	floats.Add(v0, v1)
	floats.Scale(Boltzmann, v0)
	return v0, nil
}

//FreeEnergyTerms returns the free energy per sub-term.
func FreeEnergyTerms(c MultiTerm, temp float64) ([]float64, error) {
	v, err := c.LogZTerms(temp, 1)
	if err != nil {
		return nil, err
	}
	floats.Scale(-Boltzmann, v)
	return v, nil
}
