/*
 * report.go, part of gothermo.
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
	"compress/flate"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//dumpName writes the header line of one contribution.
func dumpName(w io.Writer, name string) {
	fmt.Fprintf(w, "  %s\n", strings.ToUpper(name))
}

//dumpValues writes a labeled array, numCol values per row. numCol
//defaults to 8.
func dumpValues(w io.Writer, label string, values []float64, format string, numCol ...int) {
	cols := 8
	if len(numCol) > 0 && numCol[0] > 0 {
		cols = numCol[0]
	}
	fmt.Fprintf(w, "    %s:\n", label)
	for i := 0; i < len(values); i += cols {
		end := i + cols
		if end > len(values) {
			end = len(values)
		}
		parts := make([]string, 0, cols)
		for _, v := range values[i:end] {
			parts = append(parts, fmt.Sprintf(format, v))
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(parts, " "))
	}
}

//reportFile is a possibly compressed output file.
type reportFile struct {
	f *os.File
	h io.WriteCloser
}

func (r *reportFile) Write(b []byte) (int, error) {
	if r.h != nil {
		return r.h.Write(b)
	}
	return r.f.Write(b)
}

func (r *reportFile) Close() error {
	if r.h != nil {
		if err := r.h.Close(); err != nil {
			r.f.Close()
			return err
		}
	}
	return r.f.Close()
}

//newReportFile creates a report file, compressed according to the last
//letter of the name: "f" and "s" select zstd, "z", gzip and "r",
//flate. Any other name produces plain text. The optional compression
//level applies to gzip and flate only.
func newReportFile(name string, compressionLevel ...int) (io.WriteCloser, error) {
	level := flate.BestCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, CError{"Can't create report file: " + err.Error(), name, []string{"newReportFile"}, true}
	}
	r := &reportFile{f: f}
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'f', 's':
		if len(compressionLevel) > 0 {
			log.Printf("Compression level is ignored for the zstd output %s", name)
		}
		r.h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case 'z':
		r.h, err = gzip.NewWriterLevel(f, level)
	case 'r':
		r.h, err = flate.NewWriter(f, level)
	}
	if err != nil {
		f.Close()
		return nil, CError{"Can't compress report file: " + err.Error(), name, []string{"newReportFile"}, true}
	}
	return r, nil
}

//ThermoTable holds internal energy, heat capacity, entropy, free
//energy and log partition function for a set of species over a
//temperature grid, in molar units: kJ/mol for the energies and
//J/(mol K) for heat capacity and entropy.
type ThermoTable struct {
	titles []string
	temps  []float64
	u      [][]float64
	cp     [][]float64
	s      [][]float64
	f      [][]float64
	logz   [][]float64
}

//NewThermoTable evaluates the thermodynamic quantities of every given
//species at every given temperature. Temperatures must be positive.
func NewThermoTable(pfs []*PartFun, temps []float64) (*ThermoTable, error) {
	if len(pfs) == 0 {
		return nil, CError{NoSpecies, "thermo table", []string{"NewThermoTable"}, true}
	}
	if len(temps) == 0 {
		return nil, CError{BadTempRange, "thermo table", []string{"NewThermoTable"}, true}
	}
	for _, t := range temps {
		if t <= 0 {
			return nil, CError{BadTempRange, "thermo table", []string{"NewThermoTable"}, true}
		}
	}
	tt := &ThermoTable{temps: temps}
	for _, pf := range pfs {
		tt.titles = append(tt.titles, pf.Title())
		var us, cps, ss, fs, logzs []float64
		for _, temp := range temps {
			u, err := pf.InternalEnergy(temp)
			if err != nil {
				return nil, errDecorate(err, "NewThermoTable "+pf.Title())
			}
			cp, err := pf.HeatCapacity(temp)
			if err != nil {
				return nil, errDecorate(err, "NewThermoTable "+pf.Title())
			}
			s, err := pf.Entropy(temp)
			if err != nil {
				return nil, errDecorate(err, "NewThermoTable "+pf.Title())
			}
			f, err := pf.FreeEnergy(temp)
			if err != nil {
				return nil, errDecorate(err, "NewThermoTable "+pf.Title())
			}
			logz, err := pf.LogZ(temp, 0)
			if err != nil {
				return nil, errDecorate(err, "NewThermoTable "+pf.Title())
			}
			us = append(us, u/KJMol)
			cps = append(cps, cp/(KJMol/1e3))
			ss = append(ss, s/(KJMol/1e3))
			fs = append(fs, f/KJMol)
			logzs = append(logzs, logz)
		}
		tt.u = append(tt.u, us)
		tt.cp = append(tt.cp, cps)
		tt.s = append(tt.s, ss)
		tt.f = append(tt.f, fs)
		tt.logz = append(tt.logz, logzs)
	}
	return tt, nil
}

//WriteCSV writes the table to w, one row per temperature and five
//columns per species.
func (tt *ThermoTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"T [K]"}
	for _, title := range tt.titles {
		header = append(header, "U "+title+" [kJ/mol]")
		header = append(header, "Cp "+title+" [J/(mol K)]")
		header = append(header, "S "+title+" [J/(mol K)]")
		header = append(header, "F "+title+" [kJ/mol]")
		header = append(header, "ln(Z) "+title)
	}
	if err := cw.Write(header); err != nil {
		return CError{"Can't write table: " + err.Error(), "thermo table", []string{"ThermoTable.WriteCSV"}, true}
	}
	for i, temp := range tt.temps {
		row := []string{fmt.Sprintf("%.2f", temp)}
		for j := range tt.titles {
			row = append(row, fmt.Sprintf("%.6e", tt.u[j][i]))
			row = append(row, fmt.Sprintf("%.6e", tt.cp[j][i]))
			row = append(row, fmt.Sprintf("%.6e", tt.s[j][i]))
			row = append(row, fmt.Sprintf("%.6e", tt.f[j][i]))
			row = append(row, fmt.Sprintf("%.6e", tt.logz[j][i]))
		}
		if err := cw.Write(row); err != nil {
			return CError{"Can't write table: " + err.Error(), "thermo table", []string{"ThermoTable.WriteCSV"}, true}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return CError{"Can't write table: " + err.Error(), "thermo table", []string{"ThermoTable.WriteCSV"}, true}
	}
	return nil
}

//WriteToFile writes the CSV table to a file, compressed according to
//the file name suffix as in the rest of gothermo.
func (tt *ThermoTable) WriteToFile(name string, compressionLevel ...int) error {
	w, err := newReportFile(name, compressionLevel...)
	if err != nil {
		return errDecorate(err, "ThermoTable.WriteToFile")
	}
	if err := tt.WriteCSV(w); err != nil {
		w.Close()
		return errDecorate(err, "ThermoTable.WriteToFile")
	}
	err = w.Close()
	if err != nil {
		return CError{"Can't close report file: " + err.Error(), name, []string{"ThermoTable.WriteToFile"}, true}
	}
	return nil
}
