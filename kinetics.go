/*
 * kinetics.go, part of gothermo.
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
	"strings"

	"gonum.org/v1/gonum/stat"
)

//RateAnalysis holds transition state theory rate coefficients on a
//temperature grid, together with the Arrhenius parameters fitted to
//them. The fit is a linear regression of ln(k) against 1/T, so A and
//Ea carry the usual meaning of ln(k) = ln(A) - Ea/(k_B·T).
type RateAnalysis struct {
	reaction string
	temps    []float64
	logrates []float64
	lnA      float64
	beta     float64
}

//AnalyzeRates computes the rate coefficient of the reaction from the
//given reactants through the given transition state on a grid from
//tlow to thigh kelvin, and fits the Arrhenius parameters to the grid.
//The grid step defaults to 10 K. Bounds and step must be positive,
//with tlow <= thigh, and the grid needs at least two points for the
//fit.
func AnalyzeRates(reactants []*PartFun, ts *PartFun, tlow, thigh float64, step ...float64) (*RateAnalysis, error) {
	dt := 10.0
	if len(step) > 0 {
		dt = step[0]
	}
	if tlow <= 0 || thigh < tlow || dt <= 0 {
		return nil, CError{BadTempRange, "kinetics", []string{"AnalyzeRates"}, true}
	}
	titles := make([]string, 0, len(reactants))
	for _, r := range reactants {
		titles = append(titles, r.Title())
	}
	ra := &RateAnalysis{
		reaction: strings.Join(titles, " + ") + " --> " + ts.Title(),
	}
	for temp := tlow; temp <= thigh+1e-9; temp += dt {
		lk, err := LogRateCoeff(reactants, ts, temp)
		if err != nil {
			return nil, errDecorate(err, "AnalyzeRates")
		}
		ra.temps = append(ra.temps, temp)
		ra.logrates = append(ra.logrates, lk)
	}
	if len(ra.temps) < 2 {
		return nil, CError{NotEnoughTemps, "kinetics", []string{"AnalyzeRates"}, true}
	}
	invtemps := make([]float64, len(ra.temps))
	for i, t := range ra.temps {
		invtemps[i] = 1 / t
	}
	ra.lnA, ra.beta = stat.LinearRegression(invtemps, ra.logrates, nil, false)
	return ra, nil
}

//Temps returns the temperature grid, in kelvin. The returned slice is
//shared; do not modify it.
func (ra *RateAnalysis) Temps() []float64 { return ra.temps }

//LogRates returns ln(k) at each grid temperature, k in atomic units.
//The returned slice is shared; do not modify it.
func (ra *RateAnalysis) LogRates() []float64 { return ra.logrates }

//A returns the fitted pre-exponential factor, in atomic units.
func (ra *RateAnalysis) A() float64 { return math.Exp(ra.lnA) }

//Ea returns the fitted activation energy, in hartree.
func (ra *RateAnalysis) Ea() float64 { return -ra.beta * Boltzmann }

//Fitted returns the Arrhenius estimate of the rate coefficient at the
//given temperature, in atomic units.
func (ra *RateAnalysis) Fitted(temp float64) float64 {
	return math.Exp(ra.lnA + ra.beta/temp)
}

//R2 returns the squared correlation between ln(k) and 1/T, a quick
//check of how Arrhenius-like the reaction is over the grid.
func (ra *RateAnalysis) R2() float64 {
	invtemps := make([]float64, len(ra.temps))
	for i, t := range ra.temps {
		invtemps[i] = 1 / t
	}
	r := stat.Correlation(invtemps, ra.logrates, nil)
	return r * r
}

//Dump writes a summary of the analysis to w.
func (ra *RateAnalysis) Dump(w io.Writer) {
	fmt.Fprintf(w, "Reaction: %s\n", ra.reaction)
	fmt.Fprintf(w, "Fitted on %d temperatures, from %.1f K to %.1f K\n", len(ra.temps), ra.temps[0], ra.temps[len(ra.temps)-1])
	fmt.Fprintf(w, "Activation energy [kJ/mol]: %.2f\n", ra.Ea()/KJMol)
	fmt.Fprintf(w, "Pre-exponential factor [au]: %.5e\n", ra.A())
	fmt.Fprintf(w, "Squared correlation: %.6f\n", ra.R2())
	fmt.Fprintf(w, "Rate coefficients:\n")
	fmt.Fprintf(w, "    %10s  %15s  %15s\n", "T [K]", "ln(k [au])", "ln(kfit [au])")
	for i, t := range ra.temps {
		fmt.Fprintf(w, "    %10.1f  %15.5f  %15.5f\n", t, ra.logrates[i], ra.lnA+ra.beta/t)
	}
}

//WriteToFile writes the Dump output to a file, compressed according to
//the file name suffix as in the rest of gothermo.
func (ra *RateAnalysis) WriteToFile(name string, compressionLevel ...int) error {
	w, err := newReportFile(name, compressionLevel...)
	if err != nil {
		return errDecorate(err, "RateAnalysis.WriteToFile")
	}
	ra.Dump(w)
	err = w.Close()
	if err != nil {
		return CError{"Can't close report file: " + err.Error(), name, []string{"RateAnalysis.WriteToFile"}, true}
	}
	return nil
}
