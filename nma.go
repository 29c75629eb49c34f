/*
 * nma.go, part of gothermo.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//NMA holds the outcome of a normal mode analysis, the molecular data a
//partition function is built from. Everything is in atomic units,
//except where noted. Fill in what you have; the contributions will
//complain if something they need is missing. A zero Multiplicity or
//SymmetryNumber means "unknown". gothermo never modifies an NMA, so
//one can be shared between several partition functions.
type NMA struct {
	Title  string
	Energy float64
	//Masses are the atomic masses. They are only needed when TotalMass
	//or InertiaTensor are not given.
	Masses []float64
	//TotalMass, if positive, overrides the sum of Masses.
	TotalMass float64
	//InertiaTensor, if given, overrides the tensor built from Coords
	//and Masses.
	InertiaTensor *mat.SymDense
	//Freqs are the signed harmonic frequencies. Imaginary frequencies
	//are represented as negative numbers.
	Freqs []float64
	//Zeros are the indexes, in Freqs, of the modes corresponding to
	//external degrees of freedom.
	Zeros          []int
	Multiplicity   int
	SymmetryNumber int
	Periodic       bool
	//Numbers are the atomic numbers, used only by symmetry finders.
	Numbers []int
	//Coords is an N x 3 matrix of positions in bohr.
	Coords *mat.Dense
}

//totalMass returns the mass carried by the external translation.
func (nm *NMA) totalMass() (float64, error) {
	if nm.TotalMass > 0 {
		return nm.TotalMass, nil
	}
	if len(nm.Masses) == 0 {
		return 0, CError{NoMass, "nma", []string{"totalMass"}, true}
	}
	return floats.Sum(nm.Masses), nil
}

//inertiaTensor returns the moment of inertia tensor, building it from
//the coordinates and masses if it was not given.
func (nm *NMA) inertiaTensor() (*mat.SymDense, error) {
	if nm.InertiaTensor != nil {
		return nm.InertiaTensor, nil
	}
	if nm.Coords == nil || len(nm.Masses) == 0 {
		return nil, CError{NoInertia, "nma", []string{"inertiaTensor"}, true}
	}
	tensor, err := InertiaTensor(nm.Coords, nm.Masses)
	if err != nil {
		return nil, errDecorate(err, "inertiaTensor")
	}
	return tensor, nil
}

//InertiaTensor returns the moment of inertia tensor about the center
//of mass, for coords given as an N x 3 matrix in bohr and masses in
//atomic units.
func InertiaTensor(coords *mat.Dense, masses []float64) (*mat.SymDense, error) {
	r, c := coords.Dims()
	if r != len(masses) || c != 3 {
		return nil, CError{BadCoords, "nma", []string{"InertiaTensor"}, true}
	}
	totmass := floats.Sum(masses)
	if totmass <= 0 {
		return nil, CError{NoMass, "nma", []string{"InertiaTensor"}, true}
	}
	var com [3]float64
	for i, m := range masses {
		for j := 0; j < 3; j++ {
			com[j] += m * coords.At(i, j)
		}
	}
	for j := 0; j < 3; j++ {
		com[j] /= totmass
	}
	tensor := mat.NewSymDense(3, nil)
	for i, m := range masses {
		var d [3]float64
		for j := 0; j < 3; j++ {
			d[j] = coords.At(i, j) - com[j]
		}
		r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		for j := 0; j < 3; j++ {
			for k := j; k < 3; k++ {
				v := tensor.At(j, k) - m*d[j]*d[k]
				if j == k {
					v += m * r2
				}
				tensor.SetSym(j, k, v)
			}
		}
	}
	return tensor, nil
}
