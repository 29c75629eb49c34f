/*
 * electronic.go, part of gothermo.
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

//Electronic is the contribution of the electronic degrees of freedom to
//the partition function: the spin multiplicity of the ground state.
//Excited electronic states are assumed to be far above kT. The ground
//state potential energy itself is not included here; PartFun adds it to
//the internal and free energies.
type Electronic struct {
	//Multiplicity is the spin multiplicity. Zero means "take it from
	//the normal mode data when the partition function is built".
	Multiplicity int
}

//NewElectronic returns an electronic contribution with the given spin
//multiplicity, or one to be resolved from the normal mode data if the
//argument is omitted.
func NewElectronic(multiplicity ...int) *Electronic {
	e := new(Electronic)
	if len(multiplicity) > 0 {
		e.Multiplicity = multiplicity[0]
	}
	return e
}

//Name returns "electronic".
func (e *Electronic) Name() string { return "electronic" }

//Init resolves the multiplicity from the normal mode data if it was not
//given. It fails if the multiplicity is unknown in both places.
func (e *Electronic) Init(nm *NMA, pf *PartFun) error {
	if e.Multiplicity <= 0 {
		e.Multiplicity = nm.Multiplicity
		if e.Multiplicity <= 0 {
			return CError{NoMultiplicity, e.Name(), []string{"Electronic.Init"}, true}
		}
	}
	return nil
}

//LogZ returns Tⁿ·ln(multiplicity).
func (e *Electronic) LogZ(temp float64, n int) (float64, error) {
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Electronic.LogZ")
	}
	return tn * math.Log(float64(e.Multiplicity)), nil
}

//DLogZ returns zero: the multiplicity does not depend on the temperature.
func (e *Electronic) DLogZ(temp float64, n int) (float64, error) {
	return 0, nil
}

//D2LogZ returns zero.
func (e *Electronic) D2LogZ(temp float64, n int) (float64, error) {
	return 0, nil
}

//Dump writes a description of the contribution to w.
func (e *Electronic) Dump(w io.Writer) {
	dumpName(w, e.Name())
	fmt.Fprintf(w, "    Multiplicity: %d\n", e.Multiplicity)
}
