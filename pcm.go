/*
 * pcm.go, part of gothermo.
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
)

//Anchor is a free energy correction at one temperature: DeltaG in
//atomic units, Temp in kelvin.
type Anchor struct {
	DeltaG float64
	Temp   float64
}

//PCMCorrection is an empirical correction to the free energy, of the
//kind obtained from a polarizable continuum solvation model. With one
//anchor point the same correction applies at every temperature; with
//two, the correction is linear in the temperature, interpolating and
//extrapolating through both points. The helpers are built so that
//FreeEnergy returns exactly the anchored F(T).
type PCMCorrection struct {
	point1 Anchor
	point2 *Anchor
}

//NewPCMCorrection returns a free energy correction through the given
//anchor point, or through two of them. Anchors need non-negative
//temperatures, and the two of them can not sit at the same temperature.
func NewPCMCorrection(point1 Anchor, point2 ...Anchor) (*PCMCorrection, error) {
	if point1.Temp < 0 {
		return nil, CError{BadAnchor, "pcm_correction", []string{"NewPCMCorrection"}, true}
	}
	p := &PCMCorrection{point1: point1}
	if len(point2) > 0 {
		if point2[0].Temp < 0 {
			return nil, CError{BadAnchor, "pcm_correction", []string{"NewPCMCorrection"}, true}
		}
		if point2[0].Temp == point1.Temp {
			return nil, CError{EqualAnchors, "pcm_correction", []string{"NewPCMCorrection"}, true}
		}
		second := point2[0]
		p.point2 = &second
	}
	return p, nil
}

//Name returns "pcm_correction".
func (p *PCMCorrection) Name() string { return "pcm_correction" }

//Init does nothing; the correction does not depend on the normal mode
//data.
func (p *PCMCorrection) Init(nm *NMA, pf *PartFun) error { return nil }

//evalFree returns the correction and its first and second temperature
//derivatives at the given temperature.
func (p *PCMCorrection) evalFree(temp float64) (float64, float64, float64) {
	if p.point2 == nil {
		return p.point1.DeltaG, 0, 0
	}
	slope := (p.point2.DeltaG - p.point1.DeltaG) / (p.point2.Temp - p.point1.Temp)
	return p.point1.DeltaG + slope*(temp-p.point1.Temp), slope, 0
}

//LogZ returns -F(T)·Tⁿ⁻¹/k, so that the generic free energy formula
//recovers F(T) exactly.
func (p *PCMCorrection) LogZ(temp float64, n int) (float64, error) {
	f, _, _ := p.evalFree(temp)
	tn, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.LogZ")
	}
	return -f * tn / Boltzmann, nil
}

//DLogZ returns (F·Tⁿ⁻² - F'·Tⁿ⁻¹)/k.
func (p *PCMCorrection) DLogZ(temp float64, n int) (float64, error) {
	f, fp, _ := p.evalFree(temp)
	t2, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.DLogZ")
	}
	t1, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.DLogZ")
	}
	return (f*t2 - fp*t1) / Boltzmann, nil
}

//D2LogZ returns (-F''·Tⁿ⁻¹ + 2·(F'·Tⁿ⁻² - F·Tⁿ⁻³))/k.
func (p *PCMCorrection) D2LogZ(temp float64, n int) (float64, error) {
	f, fp, fpp := p.evalFree(temp)
	t1, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.D2LogZ")
	}
	t2, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.D2LogZ")
	}
	t3, err := tpow(temp, n-3)
	if err != nil {
		return 0, errDecorate(err, "PCMCorrection.D2LogZ")
	}
	return (-fpp*t1 + 2*(fp*t2-f*t3)) / Boltzmann, nil
}

//Dump writes a description of the correction to w.
func (p *PCMCorrection) Dump(w io.Writer) {
	dumpName(w, p.Name())
	fmt.Fprintf(w, "    Point 1:\n")
	fmt.Fprintf(w, "       Delta G [kJ/mol]: %.2f\n", p.point1.DeltaG/KJMol)
	fmt.Fprintf(w, "       Temperature [K]: %.2f\n", p.point1.Temp)
	fmt.Fprintf(w, "    Point 2:\n")
	if p.point2 != nil {
		fmt.Fprintf(w, "       Delta G [kJ/mol]: %.2f\n", p.point2.DeltaG/KJMol)
		fmt.Fprintf(w, "       Temperature [K]: %.2f\n", p.point2.Temp)
	} else {
		fmt.Fprintf(w, "       Not Defined!! Only rely on computations on temperature of point 1!!\n")
	}
	zp, err := FreeEnergy(p, 0)
	if err == nil {
		fmt.Fprintf(w, "    Zero-point contribution [kJ/mol]: %.7f\n", zp/KJMol)
	}
}
