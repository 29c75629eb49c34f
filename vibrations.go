/*
 * vibrations.go, part of gothermo.
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

	"gonum.org/v1/gonum/floats"
)

//Vibrations is the vibrational contribution to the partition function,
//one harmonic oscillator per real frequency. The quantum treatment
//includes the zero-point energy, so the free energy at 0 K equals the
//(scaled) zero-point energy plus whatever the other terms contribute.
//Zero and imaginary frequencies are kept around for reporting but left
//out of the partition function.
//The exported fields are settable before the Vibrations is handed to
//NewPartFun, and should not be touched after that.
type Vibrations struct {
	//Classical switches to the classical harmonic oscillator, with no
	//zero-point energy. The default is the quantum treatment.
	Classical bool
	//FreqScaling scales the frequencies in the Boltzmann factors. A
	//zero value means no scaling.
	FreqScaling float64
	//ZPScaling scales the zero-point energy only. A zero value means
	//no scaling.
	ZPScaling float64
	freqs     []float64
	zeroFreqs []float64
	negFreqs  []float64
}

//NewVibrations returns a quantum vibrational contribution with both
//scaling factors set to one.
func NewVibrations() *Vibrations {
	return &Vibrations{FreqScaling: 1, ZPScaling: 1}
}

//Name returns "vibrational".
func (v *Vibrations) Name() string { return "vibrational" }

//Freqs returns the real (positive) frequencies, in atomic units.
func (v *Vibrations) Freqs() []float64 { return v.freqs }

//ZeroFreqs returns the frequencies flagged as belonging to external
//degrees of freedom, in atomic units.
func (v *Vibrations) ZeroFreqs() []float64 { return v.zeroFreqs }

//NegativeFreqs returns the imaginary frequencies, in atomic units.
func (v *Vibrations) NegativeFreqs() []float64 { return v.negFreqs }

//Init takes the frequencies from the normal mode data, splitting them
//into external, real and imaginary ones. Frequencies at exactly zero
//that are not flagged as external are discarded.
func (v *Vibrations) Init(nm *NMA, pf *PartFun) error {
	if v.FreqScaling == 0 {
		v.FreqScaling = 1
	}
	if v.ZPScaling == 0 {
		v.ZPScaling = 1
	}
	zeros := make(map[int]bool, len(nm.Zeros))
	for _, i := range nm.Zeros {
		zeros[i] = true
	}
	for i, f := range nm.Freqs {
		switch {
		case zeros[i]:
			v.zeroFreqs = append(v.zeroFreqs, f)
		case f > 0:
			v.freqs = append(v.freqs, f)
		case f < 0:
			v.negFreqs = append(v.negFreqs, f)
		}
	}
	return nil
}

//vibLogZOne is Tⁿ·ln(z) for one quantum oscillator. pfb is half the
//level spacing over k, so the zero-point part survives at T=0.
func vibLogZOne(temp float64, n int, freq, fs, zp float64) (float64, error) {
	pfb := math.Pi * freq / Boltzmann
	t1, err := tpow(temp, n-1)
	if err != nil {
		return 0, err
	}
	if temp == 0 {
		return -zp * pfb * t1, nil
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, err
	}
	return -zp*pfb*t1 - math.Log(1-math.Exp(-2*fs*pfb/temp))*tn, nil
}

func vibDLogZOne(temp float64, n int, freq, fs, zp float64) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "vibrational", []string{"vibDLogZOne"}, true}
	}
	pfb := math.Pi * freq / Boltzmann
	t2, err := tpow(temp, n-2)
	if err != nil {
		return 0, err
	}
	return pfb * t2 * (zp - 2*fs/(1-math.Exp(2*fs*pfb/temp))), nil
}

func vibD2LogZOne(temp float64, n int, freq, fs, zp float64) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "vibrational", []string{"vibD2LogZOne"}, true}
	}
	pfb := math.Pi * freq / Boltzmann
	t3, err := tpow(temp, n-3)
	if err != nil {
		return 0, err
	}
	t4, err := tpow(temp, n-4)
	if err != nil {
		return 0, err
	}
	s := fs * pfb / math.Sinh(fs*pfb/temp)
	return -2*pfb*t3*(zp-2*fs/(1-math.Exp(2*fs*pfb/temp))) + t4*s*s, nil
}

//vibClassicalLogZOne is Tⁿ·ln(kT/(hν)) for one classical oscillator.
func vibClassicalLogZOne(temp float64, n int, freq, fs float64) (float64, error) {
	if temp == 0 {
		if n > 0 {
			return 0, nil
		}
		return 0, CError{ZeroTemperature, "vibrational", []string{"vibClassicalLogZOne"}, true}
	}
	tn, err := tpow(temp, n)
	if err != nil {
		return 0, err
	}
	return tn * math.Log(0.5*Boltzmann*temp/(math.Pi*freq*fs)), nil
}

func vibClassicalDLogZOne(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "vibrational", []string{"vibClassicalDLogZOne"}, true}
	}
	return tpow(temp, n-1)
}

func vibClassicalD2LogZOne(temp float64, n int) (float64, error) {
	if temp == 0 {
		return 0, CError{ZeroTemperature, "vibrational", []string{"vibClassicalD2LogZOne"}, true}
	}
	t2, err := tpow(temp, n-2)
	if err != nil {
		return 0, err
	}
	return -t2, nil
}

//NumTerms returns the number of oscillators in the partition function.
func (v *Vibrations) NumTerms() int { return len(v.freqs) }

//LogZTerms returns Tⁿ·ln(z) for each oscillator.
func (v *Vibrations) LogZTerms(temp float64, n int) ([]float64, error) {
	ret := make([]float64, len(v.freqs))
	var err error
	for i, f := range v.freqs {
		if v.Classical {
			ret[i], err = vibClassicalLogZOne(temp, n, f, v.FreqScaling)
		} else {
			ret[i], err = vibLogZOne(temp, n, f, v.FreqScaling, v.ZPScaling)
		}
		if err != nil {
			return nil, errDecorate(err, "Vibrations.LogZTerms")
		}
	}
	return ret, nil
}

//DLogZTerms returns Tⁿ·dln(z)/dT for each oscillator.
func (v *Vibrations) DLogZTerms(temp float64, n int) ([]float64, error) {
	ret := make([]float64, len(v.freqs))
	var err error
	for i, f := range v.freqs {
		if v.Classical {
			ret[i], err = vibClassicalDLogZOne(temp, n)
		} else {
			ret[i], err = vibDLogZOne(temp, n, f, v.FreqScaling, v.ZPScaling)
		}
		if err != nil {
			return nil, errDecorate(err, "Vibrations.DLogZTerms")
		}
	}
	return ret, nil
}

//D2LogZTerms returns Tⁿ·d²ln(z)/dT² for each oscillator.
func (v *Vibrations) D2LogZTerms(temp float64, n int) ([]float64, error) {
	ret := make([]float64, len(v.freqs))
	var err error
	for i, f := range v.freqs {
		if v.Classical {
			ret[i], err = vibClassicalD2LogZOne(temp, n)
		} else {
			ret[i], err = vibD2LogZOne(temp, n, f, v.FreqScaling, v.ZPScaling)
		}
		if err != nil {
			return nil, errDecorate(err, "Vibrations.D2LogZTerms")
		}
	}
	return ret, nil
}

//LogZ returns the sum over all oscillators.
func (v *Vibrations) LogZ(temp float64, n int) (float64, error) {
	terms, err := v.LogZTerms(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Vibrations.LogZ")
	}
	return floats.Sum(terms), nil
}

//DLogZ returns the sum over all oscillators.
func (v *Vibrations) DLogZ(temp float64, n int) (float64, error) {
	terms, err := v.DLogZTerms(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Vibrations.DLogZ")
	}
	return floats.Sum(terms), nil
}

//D2LogZ returns the sum over all oscillators.
func (v *Vibrations) D2LogZ(temp float64, n int) (float64, error) {
	terms, err := v.D2LogZTerms(temp, n)
	if err != nil {
		return 0, errDecorate(err, "Vibrations.D2LogZ")
	}
	return floats.Sum(terms), nil
}

//wavenumbers converts frequencies in atomic units to 1/cm.
func wavenumbers(freqs []float64) []float64 {
	ret := make([]float64, len(freqs))
	for i, f := range freqs {
		ret[i] = f / InvCm
	}
	return ret
}

//Dump writes a description of the vibrational contribution to w.
func (v *Vibrations) Dump(w io.Writer) {
	dumpName(w, v.Name())
	if v.Classical {
		fmt.Fprintf(w, "    Classical oscillators, no zero-point energy\n")
	}
	fmt.Fprintf(w, "    Number of zero wavenumbers: %d\n", len(v.zeroFreqs))
	fmt.Fprintf(w, "    Number of real wavenumbers: %d\n", len(v.freqs))
	fmt.Fprintf(w, "    Number of imaginary wavenumbers: %d\n", len(v.negFreqs))
	fmt.Fprintf(w, "    Frequency scaling factor: %.4f\n", v.FreqScaling)
	fmt.Fprintf(w, "    Zero-point scaling factor: %.4f\n", v.ZPScaling)
	dumpValues(w, "Zero wavenumbers [1/cm]", wavenumbers(v.zeroFreqs), "% 8.1f", 8)
	dumpValues(w, "Real wavenumbers [1/cm]", wavenumbers(v.freqs), "% 8.1f", 8)
	dumpValues(w, "Imaginary wavenumbers [1/cm]", wavenumbers(v.negFreqs), "% 8.1f", 8)
	zp, err := FreeEnergy(v, 0)
	if err == nil {
		fmt.Fprintf(w, "    Zero-point contribution [kJ/mol]: %.7f\n", zp/KJMol)
	}
}
