/*
 * rotation.go, part of gothermo.
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

	"gonum.org/v1/gonum/mat"
)

//Rotation is the contribution of the external rotation to the partition
//function, in the classical rigid rotor approximation. It does not apply
//to periodic systems, which have no external rotation; building a
//partition function with a Rotation against periodic normal mode data
//fails.
//
//The exported fields configure the contribution and must not be changed
//once it has been handed to NewPartFun.
type Rotation struct {
	//Symmetry is the rotational symmetry number. Zero means "resolve
	//automatically": first from the normal mode data, then through
	//Finder.
	Symmetry int
	//IMThreshold is the moment of inertia, in atomic units, below which
	//a principal moment is treated as zero. This supports linear
	//molecules and systems with a reduced rotational manifold.
	IMThreshold float64
	//Finder computes the symmetry number from the molecular geometry.
	//Only consulted when Symmetry is zero here and in the normal mode
	//data.
	Finder SymmetryFinder

	moments []float64
	factor  float64
	count   int
}

//NewRotation returns a rotational contribution with the given symmetry
//number (zero to resolve it automatically) and the default threshold of
//1 atomic unit for treating a principal moment of inertia as zero.
func NewRotation(symmetry int) *Rotation {
	return &Rotation{Symmetry: symmetry, IMThreshold: 1.0}
}

//Name returns "rotational".
func (r *Rotation) Name() string { return "rotational" }

//Moments returns the principal moments of inertia, in increasing order,
//in atomic units. Only valid after the partition function has been
//built. The returned slice must not be modified.
func (r *Rotation) Moments() []float64 { return r.moments }

//Count returns the number of principal moments above the threshold.
func (r *Rotation) Count() int { return r.count }

//Init diagonalizes the inertia tensor, resolves the symmetry number and
//precomputes the temperature independent prefactor
//sqrt(∏ 2π·mᵢ·k)/(symmetry·π) over the non-zero moments.
func (r *Rotation) Init(nm *NMA, pf *PartFun) error {
	if nm.Periodic {
		return CError{PeriodicRotation, r.Name(), []string{"Rotation.Init"}, true}
	}
	tensor, err := nm.inertiaTensor()
	if err != nil {
		return errDecorate(err, "Rotation.Init")
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(tensor, false); !ok {
		return CError{EigenFail, r.Name(), []string{"Rotation.Init"}, true}
	}
	r.moments = eig.Values(nil)
	if r.Symmetry == 0 {
		r.Symmetry = nm.SymmetryNumber
		if r.Symmetry == 0 {
			if r.Finder == nil {
				return CError{NoSymmetryNumber, r.Name(), []string{"Rotation.Init"}, true}
			}
			sym, err := r.Finder(nm.Numbers, nm.Coords)
			if err != nil {
				return CError{"Symmetry finder failed: " + err.Error(), r.Name(), []string{"Rotation.Init"}, true}
			}
			if sym <= 0 {
				return CError{NoSymmetryNumber, r.Name(), []string{"Rotation.Init"}, true}
			}
			r.Symmetry = sym
		}
	}
	prod := 1.0
	for _, m := range r.moments {
		if m > r.IMThreshold {
			prod *= 2 * math.Pi * m * Boltzmann
			r.count++
		}
	}
	r.factor = math.Sqrt(prod) / float64(r.Symmetry) / math.Pi
	return nil
}

//LogZ returns Tⁿ·(½·count·ln(T) + ln(factor)), with count the number of
//non-zero principal moments.
func (r *Rotation) LogZ(temp float64, n int) (float64, error) {
	if temp == 0 {
		if n > 0 {
			return 0, nil
		}
		return 0, CError{ZeroTemperature, r.Name(), []string{"Rotation.LogZ"}, true}
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Rotation.LogZ")
	}
	return tn * (math.Log(temp)*0.5*float64(r.count) + math.Log(r.factor)), nil
}

//DLogZ returns Tⁿ⁻¹·½·count.
func (r *Rotation) DLogZ(temp float64, n int) (float64, error) {
	tn, err := tpow(temp, n-1)
	if err != nil {
		return 0, errDecorate(err, "Rotation.DLogZ")
	}
	return tn * 0.5 * float64(r.count), nil
}

//D2LogZ returns -Tⁿ⁻²·½·count.
func (r *Rotation) D2LogZ(temp float64, n int) (float64, error) {
	tn, err := tpow(temp, n-2)
	if err != nil {
		return 0, errDecorate(err, "Rotation.D2LogZ")
	}
	return -tn * 0.5 * float64(r.count), nil
}

//Dump writes a description of the contribution to w.
func (r *Rotation) Dump(w io.Writer) {
	dumpName(w, r.Name())
	fmt.Fprintf(w, "    Rotational symmetry number: %d\n", r.Symmetry)
	fmt.Fprintf(w, "    Moments of inertia [amu*bohr**2]: %f %f %f\n", r.moments[0]/Amu, r.moments[1]/Amu, r.moments[2]/Amu)
	fmt.Fprintf(w, "    Threshold for non-zero moments of inertia [amu*bohr**2]: %e\n", r.IMThreshold/Amu)
	fmt.Fprintf(w, "    Non-zero moments of inertia: %d\n", r.count)
}
