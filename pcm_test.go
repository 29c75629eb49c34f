/*
 * pcm_test.go, part of gothermo.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//With one anchor the correction is the same at every temperature,
//including zero.
func TestPCMOnePoint(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 298.15})
	require.NoError(Te, err)
	for _, temp := range []float64{0, 298.15, 1000} {
		f, err := FreeEnergy(p, temp)
		require.NoError(Te, err)
		assert.InDelta(Te, 0.005, f, 1e-15)
	}
	//a temperature independent F has no entropy, so U=F
	u, err := InternalEnergy(p, 350)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.005, u, 1e-15)
	s, err := Entropy(p, 350)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.0, s, 1e-20)
}

//With two anchors the correction passes through both points and is
//linear in between and beyond.
func TestPCMTwoPoints(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 280}, Anchor{DeltaG: 0.007, Temp: 320})
	require.NoError(Te, err)
	cases := []struct{ temp, want float64 }{
		{280, 0.005},
		{320, 0.007},
		{300, 0.006},
		{0, 0.005 - 280*5e-5},
	}
	for _, c := range cases {
		f, err := FreeEnergy(p, c.temp)
		require.NoError(Te, err)
		assert.InDelta(Te, c.want, f, 1e-15)
	}
	//S=-dF/dT is minus the slope, U=F+T·S the intercept, and a linear
	//F has no heat capacity
	s, err := Entropy(p, 300)
	require.NoError(Te, err)
	assert.InDelta(Te, -5e-5, s, 1e-15)
	u, err := InternalEnergy(p, 300)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.005-280*5e-5, u, 1e-15)
	cp, err := HeatCapacity(p, 300)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, cp)
}

func TestPCMAnchorErrors(Te *testing.T) {
	_, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: -1})
	assert.Error(Te, err)
	_, err = NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 280}, Anchor{DeltaG: 0.007, Temp: -280})
	assert.Error(Te, err)
	_, err = NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 280}, Anchor{DeltaG: 0.007, Temp: 280})
	assert.Error(Te, err)
}

func TestPCMDerivatives(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 280}, Anchor{DeltaG: 0.007, Temp: 320})
	require.NoError(Te, err)
	h := 0.01
	up, err := p.LogZ(350+h, 0)
	require.NoError(Te, err)
	down, err := p.LogZ(350-h, 0)
	require.NoError(Te, err)
	d, err := p.DLogZ(350, 0)
	require.NoError(Te, err)
	assert.InDelta(Te, (up-down)/(2*h), d, math.Abs(d)*1e-5)
	dup, err := p.DLogZ(350+h, 0)
	require.NoError(Te, err)
	ddown, err := p.DLogZ(350-h, 0)
	require.NoError(Te, err)
	d2, err := p.D2LogZ(350, 0)
	require.NoError(Te, err)
	assert.InDelta(Te, (dup-ddown)/(2*h), d2, math.Abs(d2)*1e-4)
}

//The helpers that divide by the temperature fail at zero, the others
//keep their analytic limits.
func TestPCMZeroTemp(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 298.15})
	require.NoError(Te, err)
	_, err = p.LogZ(0, 0)
	assert.Error(Te, err)
	v, err := p.LogZ(0, 1)
	require.NoError(Te, err)
	assert.InDelta(Te, -0.005/Boltzmann, v, 1e-9)
	_, err = p.DLogZ(0, 1)
	assert.Error(Te, err)
	v, err = p.DLogZ(0, 2)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.005/Boltzmann, v, 1e-9)
	_, err = Entropy(p, 0)
	assert.Error(Te, err)
}

func TestPCMInPartFun(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 298.15})
	require.NoError(Te, err)
	pfWith, err := NewPartFun(smallNMA(), p)
	require.NoError(Te, err)
	pfPlain, err := NewPartFun(smallNMA())
	require.NoError(Te, err)
	fWith, err := pfWith.FreeEnergy(298.15)
	require.NoError(Te, err)
	fPlain, err := pfPlain.FreeEnergy(298.15)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.005, fWith-fPlain, 1e-12)
}

func TestPCMDump(Te *testing.T) {
	p, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 298.15})
	require.NoError(Te, err)
	var b bytes.Buffer
	p.Dump(&b)
	out := b.String()
	assert.Contains(Te, out, "  PCM_CORRECTION\n")
	assert.Contains(Te, out, "Point 1:")
	assert.Contains(Te, out, "Temperature [K]: 298.15")
	assert.Contains(Te, out, "Not Defined!! Only rely on computations on temperature of point 1!!")

	p2, err := NewPCMCorrection(Anchor{DeltaG: 0.005, Temp: 280}, Anchor{DeltaG: 0.007, Temp: 320})
	require.NoError(Te, err)
	b.Reset()
	p2.Dump(&b)
	out = b.String()
	assert.NotContains(Te, out, "Not Defined!!")
	assert.Contains(Te, out, "Temperature [K]: 280.00")
	assert.Contains(Te, out, "Temperature [K]: 320.00")
}
