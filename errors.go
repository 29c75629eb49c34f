/*
 * errors.go, part of gothermo.
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

import "fmt"

//Error is the interface for gothermo errors. Decorate provides a way to
//add and retrieve the names of the callers an error has passed through,
//without wrapping the error itself.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete type for gothermo errors. It fullfills Error.
type CError struct {
	message  string
	context  string //the contribution, quantity or file involved, or an empty string.
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if err.context == "" {
		return fmt.Sprintf("gothermo error: %s", err.message)
	}
	return fmt.Sprintf("gothermo %s error: %s", err.context, err.message)
}

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Context returns the contribution or quantity the error refers to,
//or an empty string.
func (err CError) Context() string { return err.context }

//Critical returns true if the error is critical, false otherwise
func (err CError) Critical() bool { return err.critical }

//errDecorate asserts that the error implements Error and decorates it
//with the caller's name before returning it. It panics on errors from
//outside this package, so it must only be used on errors produced here.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

const (
	ZeroTemperature     = "Quantity has no finite limit at zero temperature"
	NegativeTemperature = "Temperatures must not be negative"
	WrongDimension      = "The pressure is not given and the gas is not three-dimensional"
	BadPressure         = "The pressure must be positive"
	GasLawMismatch      = "The gas law dimension does not match the translational dimension"
	BadMobile           = "A mobile atom index is out of range"
	NoMass              = "No masses available to compute the translating mass"
	NoMultiplicity      = "Spin multiplicity is not defined"
	PeriodicRotation    = "There is no external rotation in periodic systems"
	NoSymmetryNumber    = "Rotational symmetry number unknown and no symmetry finder given"
	NoInertia           = "No inertia tensor, and no coordinates and masses to build one"
	BadCoords           = "The number of coordinate rows does not match the number of masses"
	EigenFail           = "Could not diagonalize the inertia tensor"
	ReservedName        = "A partition function term can not have the name 'terms'"
	RepeatedName        = "Two partition function terms share a name"
	RepeatedGasVolume   = "More than one term carries a translational gas volume"
	BadAnchor           = "A free energy correction anchor needs a non-negative temperature"
	EqualAnchors        = "The two anchor points of a free energy correction need different temperatures"
	NotEnoughTemps      = "At least two temperatures are needed for a fit"
	BadTempRange        = "Temperature grids need positive bounds, in increasing order, and a positive step"
	EmptyLevels         = "No energy levels given"
	NoSpecies           = "No species given"
)
