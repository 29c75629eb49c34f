/*
 * levels.go, part of gothermo.
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

//Partition function helpers for a system with discrete energy levels,
//e.g. a one-dimensional hindered rotor solved on a basis. The levels
//must be sorted in increasing order, in hartree. These functions are
//exported because custom Contribution implementations need them; nothing
//in the built-in contributions does.

//LogZLevels returns Tⁿ·ln(Z) for the given energy levels. At zero
//temperature only the (possibly degenerate) ground level survives and
//the result is Tⁿ·ln(g₀) - Tⁿ⁻¹·e₀/k, the asymptotic form whose n=1
//value gives back the ground state energy through FreeEnergy.
func LogZLevels(temp float64, n int, levels []float64) (float64, error) {
	if len(levels) == 0 {
		return 0, CError{EmptyLevels, "levels", []string{"LogZLevels"}, true}
	}
	if temp == 0 {
		degeneracy := 1
		for degeneracy < len(levels) && levels[degeneracy] == levels[0] {
			degeneracy++
		}
		t1, err := tpow(temp, n)
		if err != nil {
			return 0, errDecorate(err, "LogZLevels")
		}
		t2, err := tpow(temp, n-1)
		if err != nil {
			return 0, errDecorate(err, "LogZLevels")
		}
		return t1*math.Log(float64(degeneracy)) - t2*levels[0]/Boltzmann, nil
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, errDecorate(err, "LogZLevels")
	}
	z := 0.0
	for _, e := range levels {
		z += math.Exp(-e / (Boltzmann * temp))
	}
	return tn * math.Log(z), nil
}

//DLogZLevels returns Tⁿ·d ln(Z)/dT for the given energy levels. The
//derivative has no finite limit at zero temperature.
func DLogZLevels(temp float64, n int, levels []float64) (float64, error) {
	if len(levels) == 0 {
		return 0, CError{EmptyLevels, "levels", []string{"DLogZLevels"}, true}
	}
	if temp == 0 {
		return 0, CError{ZeroTemperature, "levels", []string{"DLogZLevels"}, true}
	}
	tn, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "DLogZLevels")
	}
	bfs := boltzmannFactors(temp, levels)
	z := floats.Sum(bfs)
	return tn * floats.Dot(bfs, levels) / z / Boltzmann, nil
}

//D2LogZLevels returns Tⁿ·d² ln(Z)/dT² for the given energy levels. The
//derivative has no finite limit at zero temperature.
func D2LogZLevels(temp float64, n int, levels []float64) (float64, error) {
	if len(levels) == 0 {
		return 0, CError{EmptyLevels, "levels", []string{"D2LogZLevels"}, true}
	}
	if temp == 0 {
		return 0, CError{ZeroTemperature, "levels", []string{"D2LogZLevels"}, true}
	}
	bfs := boltzmannFactors(temp, levels)
	z := floats.Sum(bfs)
	m1 := floats.Dot(bfs, levels) / z //first moment of the level energies
	m2 := 0.0
	for i, e := range levels {
		m2 += bfs[i] * e * e
	}
	m2 /= z
	t3, err := tpow(temp, n-3)
	if err != nil {
		return 0, errDecorate(err, "D2LogZLevels")
	}
	t4, err := tpow(temp, n-4)
	if err != nil {
		return 0, errDecorate(err, "D2LogZLevels")
	}
	k := Boltzmann
	return t4/(k*k)*m2 - 2*t3/k*m1 - t4/(k*k)*m1*m1, nil
}

func boltzmannFactors(temp float64, levels []float64) []float64 {
	bfs := make([]float64, len(levels))
	for i, e := range levels {
		bfs[i] = math.Exp(-e / (Boltzmann * temp))
	}
	return bfs
}
