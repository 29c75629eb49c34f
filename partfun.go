/*
 * partfun.go, part of gothermo.
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
	"sort"
)

//PartFun is the partition function of one chemical species, the
//product of its contributions. It fullfills Contribution itself, with
//every helper summing over the terms, so the free functions in
//statfys.go work on a PartFun as they do on a single term.
//InternalEnergy and FreeEnergy add the electronic reference energy of
//the species; Entropy and HeatCapacity do not, since the offset drops
//out of the temperature derivatives.
type PartFun struct {
	terms  []Contribution
	byName map[string]Contribution
	vib    *Vibrations
	elec   *Electronic
	trans  Translator
	energy float64
	title  string
}

//NewPartFun builds the partition function for the species described by
//nm. The given terms are supplemented with default Vibrations and
//Electronic contributions when no terms with those names are present,
//sorted by name, and initialized, each exactly once. The name "terms"
//is reserved, names can not repeat, and at most one term can carry a
//translational gas volume.
func NewPartFun(nm *NMA, terms ...Contribution) (*PartFun, error) {
	pf := &PartFun{
		terms:  make([]Contribution, 0, len(terms)+2),
		byName: make(map[string]Contribution, len(terms)+2),
		energy: nm.Energy,
		title:  nm.Title,
	}
	pf.terms = append(pf.terms, terms...)
	seen := make(map[string]bool, len(terms))
	for _, t := range pf.terms {
		name := t.Name()
		if name == "terms" {
			return nil, CError{ReservedName, pf.title, []string{"NewPartFun"}, true}
		}
		if seen[name] {
			return nil, CError{RepeatedName, pf.title + " " + name, []string{"NewPartFun"}, true}
		}
		seen[name] = true
	}
	if !seen["vibrational"] {
		pf.terms = append(pf.terms, NewVibrations())
	}
	if !seen["electronic"] {
		pf.terms = append(pf.terms, NewElectronic())
	}
	sort.Slice(pf.terms, func(i, j int) bool { return pf.terms[i].Name() < pf.terms[j].Name() })
	for _, t := range pf.terms {
		if err := t.Init(nm, pf); err != nil {
			return nil, errDecorate(err, "NewPartFun "+t.Name())
		}
		pf.byName[t.Name()] = t
		if v, ok := t.(*Vibrations); ok {
			pf.vib = v
		}
		if e, ok := t.(*Electronic); ok {
			pf.elec = e
		}
		if tr, ok := t.(Translator); ok {
			if pf.trans != nil {
				return nil, CError{RepeatedGasVolume, pf.title, []string{"NewPartFun"}, true}
			}
			pf.trans = tr
		}
	}
	return pf, nil
}

//Name returns "total".
func (pf *PartFun) Name() string { return "total" }

//Init does nothing. A PartFun initializes its terms when built.
func (pf *PartFun) Init(nm *NMA, parent *PartFun) error { return nil }

//Title returns the title of the species.
func (pf *PartFun) Title() string { return pf.title }

//Energy returns the electronic reference energy of the species, in
//hartree.
func (pf *PartFun) Energy() float64 { return pf.energy }

//Terms returns the contributions, sorted by name. The returned slice
//is shared; do not modify it.
func (pf *PartFun) Terms() []Contribution { return pf.terms }

//Term returns the contribution with the given name, or nil if there is
//no such term.
func (pf *PartFun) Term(name string) Contribution { return pf.byName[name] }

//Vibrational returns the vibrational contribution, or nil if the term
//named "vibrational" is not a *Vibrations.
func (pf *PartFun) Vibrational() *Vibrations { return pf.vib }

//Electron returns the electronic contribution, or nil if the term
//named "electronic" is not an *Electronic.
func (pf *PartFun) Electron() *Electronic { return pf.elec }

//Translational returns the term carrying the translational gas volume,
//or nil for species without one (solids, adsorbates, sites).
func (pf *PartFun) Translational() Translator { return pf.trans }

//LogZ returns Tⁿ·ln(Z), summed over all contributions.
func (pf *PartFun) LogZ(temp float64, n int) (float64, error) {
	var total float64
	for _, t := range pf.terms {
		v, err := t.LogZ(temp, n)
		if err != nil {
			return 0, errDecorate(err, "PartFun.LogZ "+t.Name())
		}
		total += v
	}
	return total, nil
}

//DLogZ returns Tⁿ·d ln(Z)/dT, summed over all contributions.
func (pf *PartFun) DLogZ(temp float64, n int) (float64, error) {
	var total float64
	for _, t := range pf.terms {
		v, err := t.DLogZ(temp, n)
		if err != nil {
			return 0, errDecorate(err, "PartFun.DLogZ "+t.Name())
		}
		total += v
	}
	return total, nil
}

//D2LogZ returns Tⁿ·d²ln(Z)/dT², summed over all contributions.
func (pf *PartFun) D2LogZ(temp float64, n int) (float64, error) {
	var total float64
	for _, t := range pf.terms {
		v, err := t.D2LogZ(temp, n)
		if err != nil {
			return 0, errDecorate(err, "PartFun.D2LogZ "+t.Name())
		}
		total += v
	}
	return total, nil
}

//InternalEnergy returns the internal energy of the species at the
//given temperature, including the electronic reference energy, in
//hartree.
func (pf *PartFun) InternalEnergy(temp float64) (float64, error) {
	u, err := InternalEnergy(pf, temp)
	if err != nil {
		return 0, errDecorate(err, "PartFun.InternalEnergy")
	}
	return u + pf.energy, nil
}

//HeatCapacity returns the heat capacity, in hartree/K. For a gas with
//a constant pressure translational term this is Cp, otherwise Cv.
func (pf *PartFun) HeatCapacity(temp float64) (float64, error) {
	c, err := HeatCapacity(pf, temp)
	if err != nil {
		return 0, errDecorate(err, "PartFun.HeatCapacity")
	}
	return c, nil
}

//Entropy returns the entropy, in hartree/K.
func (pf *PartFun) Entropy(temp float64) (float64, error) {
	s, err := Entropy(pf, temp)
	if err != nil {
		return 0, errDecorate(err, "PartFun.Entropy")
	}
	return s, nil
}

//FreeEnergy returns the free energy of the species at the given
//temperature, including the electronic reference energy, in hartree.
//For a gas with a constant pressure translational term this is the
//Gibbs free energy, otherwise the Helmholtz one.
func (pf *PartFun) FreeEnergy(temp float64) (float64, error) {
	f, err := FreeEnergy(pf, temp)
	if err != nil {
		return 0, errDecorate(err, "PartFun.FreeEnergy")
	}
	return f + pf.energy, nil
}

//ZeroPoint returns the free energy at 0 K, the electronic reference
//energy plus the zero-point contributions of the terms, in hartree.
func (pf *PartFun) ZeroPoint() (float64, error) {
	zp, err := pf.FreeEnergy(0)
	if err != nil {
		return 0, errDecorate(err, "PartFun.ZeroPoint")
	}
	return zp, nil
}

//Dump writes a description of the partition function and all its
//contributions to w.
func (pf *PartFun) Dump(w io.Writer) {
	fmt.Fprintf(w, "Title: %s\n", pf.title)
	fmt.Fprintf(w, "Energy at T=0K [au]: %.5f\n", pf.energy)
	zp, err := pf.ZeroPoint()
	if err == nil {
		fmt.Fprintf(w, "Zero-point contribution [kJ/mol]: %.7f\n", (zp-pf.energy)/KJMol)
		fmt.Fprintf(w, "Energy including zero-point contribution [au]: %.5f\n", zp)
	}
	fmt.Fprintf(w, "Contributions to the partition function:\n")
	for _, t := range pf.terms {
		t.Dump(w)
	}
}

//WriteToFile writes the Dump output to a file. As in the rest of
//gothermo, if the file name ends with "f" or "s" the file is
//compressed with zstd, with "z", with gzip, and with "r", with flate.
func (pf *PartFun) WriteToFile(name string, compressionLevel ...int) error {
	w, err := newReportFile(name, compressionLevel...)
	if err != nil {
		return errDecorate(err, "PartFun.WriteToFile")
	}
	pf.Dump(w)
	err = w.Close()
	if err != nil {
		return CError{"Can't close report file: " + err.Error(), name, []string{"PartFun.WriteToFile"}, true}
	}
	return nil
}
