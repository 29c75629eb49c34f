/*
 * gaslaw_test.go, part of gothermo.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealGasConstruction(Te *testing.T) {
	gas, err := NewIdealGas(3)
	require.NoError(Te, err)
	assert.InDelta(Te, 1*Atm, gas.Pressure(), 1e-20)
	assert.Equal(Te, 3, gas.Dim())
	assert.True(Te, strings.Contains(gas.Description(), "bar"))
	gas, err = NewIdealGas(2, 1e-9)
	require.NoError(Te, err)
	assert.True(Te, strings.Contains(gas.Description(), "a.u."))
	//no default pressure outside three dimensions
	_, err = NewIdealGas(2)
	assert.Error(Te, err)
	_, err = NewIdealGas(3, -2.0)
	assert.Error(Te, err)
	_, err = NewIdealGas(3, 0)
	assert.Error(Te, err)
}

func TestIdealGasPV(Te *testing.T) {
	gas, err := NewIdealGas(3)
	require.NoError(Te, err)
	assert.Equal(Te, Boltzmann*298.15, gas.PV(298.15))
	//T=0 limits of the pV helper
	v, err := gas.PV0(0, -1)
	require.NoError(Te, err)
	assert.Equal(Te, Boltzmann, v)
	v, err = gas.PV0(0, 0)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
	v, err = gas.PV0(0, 2)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
	_, err = gas.PV0(0, -2)
	assert.Error(Te, err)
	v, err = gas.PV0(300, 1)
	require.NoError(Te, err)
	assert.InDelta(Te, Boltzmann*300*300, v, math.Abs(v)*1e-12)
	//pV does not depend on the temperature beyond the explicit kT
	v, err = gas.PV1(300, 5)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
	v, err = gas.PV2(0, -3)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
}

func TestIdealGasHelpers(Te *testing.T) {
	gas, err := NewIdealGas(3)
	require.NoError(Te, err)
	v, err := gas.LogZ(300, 0)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Log(Boltzmann*300/(1*Atm)), v, 1e-12)
	v, err = gas.LogZ(0, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, v)
	_, err = gas.LogZ(0, 0)
	assert.Error(Te, err)
	v, err = gas.DLogZ(300, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, v)
	_, err = gas.DLogZ(0, 1)
	assert.Error(Te, err)
	v, err = gas.D2LogZ(300, 2)
	require.NoError(Te, err)
	assert.Equal(Te, -1.0, v)
	_, err = gas.D2LogZ(0, 2)
	assert.Error(Te, err)
	//d ln(V)/dT = 1/T for an ideal gas at constant pressure
	lp, err := gas.LogZ(300.5, 0)
	require.NoError(Te, err)
	lm, err := gas.LogZ(299.5, 0)
	require.NoError(Te, err)
	d, err := gas.DLogZ(300, 0)
	require.NoError(Te, err)
	assert.InDelta(Te, (lp-lm)/1.0, d, 1e-7)
}
