/*
 * rotation_test.go, part of gothermo.
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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func coNMA() *NMA {
	wn := []float64{2169.8}
	freqs := []float64{wn[0] * InvCm}
	return &NMA{
		Title:  "co",
		Energy: -113.3,
		Freqs:  freqs,
		Masses: []float64{12 * Amu, 15.9949 * Amu},
		Coords: mat.NewDense(2, 3, []float64{
			0, 0, -1.218,
			0, 0, 0.913,
		}),
		Numbers:        []int{6, 8},
		Multiplicity:   1,
		SymmetryNumber: 1,
	}
}

func TestRotationWater(Te *testing.T) {
	rot := NewRotation(0)
	require.NoError(Te, rot.Init(waterNMA(), nil))
	assert.Equal(Te, 2, rot.Symmetry)
	assert.Equal(Te, 3, rot.Count())
	moments := rot.Moments()
	require.Len(Te, moments, 3)
	assert.True(Te, moments[0] <= moments[1] && moments[1] <= moments[2])
	assert.Greater(Te, moments[0], rot.IMThreshold)
}

//A linear molecule has one principal moment below the threshold, so
//only two rotational degrees of freedom count.
func TestRotationLinear(Te *testing.T) {
	rot := NewRotation(0)
	require.NoError(Te, rot.Init(coNMA(), nil))
	assert.Equal(Te, 1, rot.Symmetry)
	assert.Equal(Te, 2, rot.Count())
	assert.Less(Te, rot.Moments()[0], rot.IMThreshold)
	//T·d ln(Z)/dT is count/2 at any temperature
	d, err := rot.DLogZ(300, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, d)
}

//An explicit symmetry number wins over the one in the normal mode
//data, and halving the symmetry adds ln(2) to ln(Z).
func TestRotationSymmetry(Te *testing.T) {
	rot1 := NewRotation(1)
	require.NoError(Te, rot1.Init(waterNMA(), nil))
	assert.Equal(Te, 1, rot1.Symmetry)
	rot2 := NewRotation(2)
	require.NoError(Te, rot2.Init(waterNMA(), nil))
	v1, err := rot1.LogZ(300, 0)
	require.NoError(Te, err)
	v2, err := rot2.LogZ(300, 0)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Log(2), v1-v2, 1e-12)
}

func TestRotationFinder(Te *testing.T) {
	nm := waterNMA()
	nm.SymmetryNumber = 0
	rot := NewRotation(0)
	assert.Error(Te, rot.Init(nm, nil))

	rot = NewRotation(0)
	rot.Finder = func(numbers []int, coords *mat.Dense) (int, error) { return 2, nil }
	require.NoError(Te, rot.Init(nm, nil))
	assert.Equal(Te, 2, rot.Symmetry)

	rot = NewRotation(0)
	rot.Finder = func(numbers []int, coords *mat.Dense) (int, error) { return 0, nil }
	assert.Error(Te, rot.Init(nm, nil))

	//a failing finder must turn into a regular error, also through
	//NewPartFun
	rot = NewRotation(0)
	rot.Finder = func(numbers []int, coords *mat.Dense) (int, error) {
		return 0, errors.New("no geometry")
	}
	_, err := NewPartFun(nm, rot)
	assert.Error(Te, err)
}

func TestRotationZeroTemp(Te *testing.T) {
	rot := NewRotation(0)
	require.NoError(Te, rot.Init(waterNMA(), nil))
	v, err := rot.LogZ(0, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
	_, err = rot.LogZ(0, 0)
	assert.Error(Te, err)
	//T·d ln(Z)/dT has the finite limit count/2
	d, err := rot.DLogZ(0, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 1.5, d)
	_, err = rot.DLogZ(0, 0)
	assert.Error(Te, err)
	_, err = rot.D2LogZ(0, 1)
	assert.Error(Te, err)
}

func TestRotationEntropyConsistency(Te *testing.T) {
	rot := NewRotation(0)
	require.NoError(Te, rot.Init(waterNMA(), nil))
	u, err := InternalEnergy(rot, 300)
	require.NoError(Te, err)
	f, err := FreeEnergy(rot, 300)
	require.NoError(Te, err)
	s, err := Entropy(rot, 300)
	require.NoError(Te, err)
	assert.InDelta(Te, (u-f)/300, s, math.Abs(s)*1e-12)
}

func TestRotationPeriodic(Te *testing.T) {
	nm := waterNMA()
	nm.Periodic = true
	rot := NewRotation(0)
	assert.Error(Te, rot.Init(nm, nil))
	rot = NewRotation(5)
	assert.Error(Te, rot.Init(nm, nil))
}

func TestRotationDump(Te *testing.T) {
	rot := NewRotation(0)
	require.NoError(Te, rot.Init(waterNMA(), nil))
	var b bytes.Buffer
	rot.Dump(&b)
	out := b.String()
	assert.Contains(Te, out, "  ROTATIONAL\n")
	assert.Contains(Te, out, "Rotational symmetry number: 2")
	assert.Contains(Te, out, "Non-zero moments of inertia: 3")
}
