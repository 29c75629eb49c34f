/*
 * rates.go, part of gothermo.
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
)

//logRateBody is -ΔA/(kT) plus the gas volume corrections, the
//temperature dependent part shared by RateCoeff and LogRateCoeff.
//The per-particle free energies already contain the pV work of the
//constant pressure gas terms, so the volume per particle is added back
//for every gas phase reactant and removed for a gas phase transition
//state, turning the concentration scale into the one of an ideal gas
//at the working pressure.
func logRateBody(reactants []*PartFun, ts *PartFun, temp float64) (float64, error) {
	if temp < 0 {
		return 0, CError{NegativeTemperature, "rates", []string{"logRateBody"}, true}
	}
	if temp == 0 {
		return 0, CError{ZeroTemperature, "rates", []string{"logRateBody"}, true}
	}
	deltaA, err := ts.FreeEnergy(temp)
	if err != nil {
		return 0, errDecorate(err, "logRateBody "+ts.Title())
	}
	for _, r := range reactants {
		f, err := r.FreeEnergy(temp)
		if err != nil {
			return 0, errDecorate(err, "logRateBody "+r.Title())
		}
		deltaA -= f
	}
	logResult := -deltaA / (Boltzmann * temp)
	for _, r := range reactants {
		if tr := r.Translational(); tr != nil {
			v, err := tr.GasLaw().LogZ(temp, 0)
			if err != nil {
				return 0, errDecorate(err, "logRateBody "+r.Title())
			}
			logResult += v
		}
	}
	if tr := ts.Translational(); tr != nil {
		v, err := tr.GasLaw().LogZ(temp, 0)
		if err != nil {
			return 0, errDecorate(err, "logRateBody "+ts.Title())
		}
		logResult -= v
	}
	return logResult, nil
}

//RateCoeff returns the transition state theory rate coefficient for
//the reaction from the given reactants through the given transition
//state, at the given temperature. Everything is in atomic units: the
//result is 1/time for one reactant, volume/time for two, and so on.
//Species without a translational gas volume (adsorbates, lattice
//sites) contribute on the per-site concentration scale.
func RateCoeff(reactants []*PartFun, ts *PartFun, temp float64) (float64, error) {
	body, err := logRateBody(reactants, ts, temp)
	if err != nil {
		return 0, errDecorate(err, "RateCoeff")
	}
	return Boltzmann * temp / Planck * math.Exp(body), nil
}

//LogRateCoeff returns the natural logarithm of the rate coefficient.
//It stays finite where the rate coefficient itself would overflow or
//underflow, so prefer it for fitting.
func LogRateCoeff(reactants []*PartFun, ts *PartFun, temp float64) (float64, error) {
	body, err := logRateBody(reactants, ts, temp)
	if err != nil {
		return 0, errDecorate(err, "LogRateCoeff")
	}
	return math.Log(Boltzmann*temp/Planck) + body, nil
}

//logEquilibriumBody is -ΔA/(kT) plus the gas volume corrections for
//the equilibrium between the A side and the B side.
func logEquilibriumBody(reactA, prodB []*PartFun, temp float64) (float64, error) {
	if temp < 0 {
		return 0, CError{NegativeTemperature, "equilibrium", []string{"logEquilibriumBody"}, true}
	}
	if temp == 0 {
		return 0, CError{ZeroTemperature, "equilibrium", []string{"logEquilibriumBody"}, true}
	}
	var deltaA float64
	for _, p := range prodB {
		f, err := p.FreeEnergy(temp)
		if err != nil {
			return 0, errDecorate(err, "logEquilibriumBody "+p.Title())
		}
		deltaA += f
	}
	for _, r := range reactA {
		f, err := r.FreeEnergy(temp)
		if err != nil {
			return 0, errDecorate(err, "logEquilibriumBody "+r.Title())
		}
		deltaA -= f
	}
	logK := -deltaA / (Boltzmann * temp)
	for _, r := range reactA {
		if tr := r.Translational(); tr != nil {
			v, err := tr.GasLaw().LogZ(temp, 0)
			if err != nil {
				return 0, errDecorate(err, "logEquilibriumBody "+r.Title())
			}
			logK += v
		}
	}
	for _, p := range prodB {
		if tr := p.Translational(); tr != nil {
			v, err := tr.GasLaw().LogZ(temp, 0)
			if err != nil {
				return 0, errDecorate(err, "logEquilibriumBody "+p.Title())
			}
			logK -= v
		}
	}
	return logK, nil
}

//EquilibriumConstant returns the equilibrium constant between the A
//side (reactants) and the B side (products), at the given temperature,
//in atomic units. The result is dimensionless when both sides have the
//same number of gas phase species.
func EquilibriumConstant(reactA, prodB []*PartFun, temp float64) (float64, error) {
	logK, err := logEquilibriumBody(reactA, prodB, temp)
	if err != nil {
		return 0, errDecorate(err, "EquilibriumConstant")
	}
	return math.Exp(logK), nil
}

//LogEquilibriumConstant returns the natural logarithm of the
//equilibrium constant.
func LogEquilibriumConstant(reactA, prodB []*PartFun, temp float64) (float64, error) {
	logK, err := logEquilibriumBody(reactA, prodB, temp)
	if err != nil {
		return 0, errDecorate(err, "LogEquilibriumConstant")
	}
	return logK, nil
}
