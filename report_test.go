/*
 * report_test.go, part of gothermo.
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
	"compress/flate"
	"compress/gzip"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpHelpers(Te *testing.T) {
	var b bytes.Buffer
	dumpName(&b, "vibrational")
	assert.Equal(Te, "  VIBRATIONAL\n", b.String())

	b.Reset()
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dumpValues(&b, "Values", values, "%.1f")
	want := "    Values:\n" +
		"    1.0 2.0 3.0 4.0 5.0 6.0 7.0 8.0\n" +
		"    9.0 10.0\n"
	assert.Equal(Te, want, b.String())

	b.Reset()
	dumpValues(&b, "Values", values, "%.1f", 4)
	want = "    Values:\n" +
		"    1.0 2.0 3.0 4.0\n" +
		"    5.0 6.0 7.0 8.0\n" +
		"    9.0 10.0\n"
	assert.Equal(Te, want, b.String())

	b.Reset()
	dumpValues(&b, "Empty", nil, "%.1f")
	assert.Equal(Te, "    Empty:\n", b.String())
}

func TestWriteToFilePlain(Te *testing.T) {
	pf := gasPhase(Te, waterNMA())
	name := filepath.Join(Te.TempDir(), "water.txt")
	require.NoError(Te, pf.WriteToFile(name))
	data, err := os.ReadFile(name)
	require.NoError(Te, err)
	assert.Contains(Te, string(data), "Title: water\n")
	assert.Contains(Te, string(data), "  VIBRATIONAL\n")
}

func TestWriteToFileGzip(Te *testing.T) {
	pf := gasPhase(Te, waterNMA())
	name := filepath.Join(Te.TempDir(), "water.gz")
	require.NoError(Te, pf.WriteToFile(name))
	f, err := os.Open(name)
	require.NoError(Te, err)
	defer f.Close()
	gr, err := gzip.NewReader(f)
	require.NoError(Te, err)
	data, err := io.ReadAll(gr)
	require.NoError(Te, err)
	require.NoError(Te, gr.Close())
	assert.Contains(Te, string(data), "Title: water\n")
}

func TestWriteToFileZstd(Te *testing.T) {
	pf := gasPhase(Te, waterNMA())
	name := filepath.Join(Te.TempDir(), "water.stf")
	require.NoError(Te, pf.WriteToFile(name))
	f, err := os.Open(name)
	require.NoError(Te, err)
	defer f.Close()
	zr, err := zstd.NewReader(f)
	require.NoError(Te, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(Te, err)
	assert.Contains(Te, string(data), "Title: water\n")
}

func TestWriteToFileFlate(Te *testing.T) {
	ra, err := AnalyzeRates([]*PartFun{gasPhase(Te, waterNMA())}, gasPhase(Te, waterTSNMA()), 670, 770)
	require.NoError(Te, err)
	name := filepath.Join(Te.TempDir(), "rates.flr")
	require.NoError(Te, ra.WriteToFile(name, flate.BestSpeed))
	f, err := os.Open(name)
	require.NoError(Te, err)
	defer f.Close()
	fr := flate.NewReader(f)
	data, err := io.ReadAll(fr)
	require.NoError(Te, err)
	require.NoError(Te, fr.Close())
	assert.Contains(Te, string(data), "Reaction: water --> water ts\n")
}

func TestThermoTable(Te *testing.T) {
	water := gasPhase(Te, waterNMA())
	small, err := NewPartFun(smallNMA())
	require.NoError(Te, err)
	temps := []float64{300, 400}
	tt, err := NewThermoTable([]*PartFun{water, small}, temps)
	require.NoError(Te, err)
	var b bytes.Buffer
	require.NoError(Te, tt.WriteCSV(&b))
	records, err := csv.NewReader(&b).ReadAll()
	require.NoError(Te, err)
	require.Len(Te, records, 3)
	header := records[0]
	require.Len(Te, header, 11)
	assert.Equal(Te, "T [K]", header[0])
	assert.Equal(Te, "U water [kJ/mol]", header[1])
	assert.Equal(Te, "Cp water [J/(mol K)]", header[2])
	assert.Equal(Te, "S water [J/(mol K)]", header[3])
	assert.Equal(Te, "F water [kJ/mol]", header[4])
	assert.Equal(Te, "ln(Z) water", header[5])
	assert.Equal(Te, "U small [kJ/mol]", header[6])
	assert.Equal(Te, "300.00", records[1][0])
	assert.Equal(Te, "400.00", records[2][0])
	u, err := water.InternalEnergy(300)
	require.NoError(Te, err)
	got, err := strconv.ParseFloat(records[1][1], 64)
	require.NoError(Te, err)
	want := u / KJMol
	assert.InDelta(Te, want, got, math.Abs(want)*1e-6+1e-9)
	s, err := small.Entropy(400)
	require.NoError(Te, err)
	got, err = strconv.ParseFloat(records[2][8], 64)
	require.NoError(Te, err)
	want = s / (KJMol / 1e3)
	assert.InDelta(Te, want, got, math.Abs(want)*1e-6+1e-9)
}

func TestThermoTableErrors(Te *testing.T) {
	water := gasPhase(Te, waterNMA())
	_, err := NewThermoTable(nil, []float64{300})
	assert.Error(Te, err)
	_, err = NewThermoTable([]*PartFun{water}, nil)
	assert.Error(Te, err)
	_, err = NewThermoTable([]*PartFun{water}, []float64{300, 0})
	assert.Error(Te, err)
	_, err = NewThermoTable([]*PartFun{water}, []float64{-5})
	assert.Error(Te, err)
}

func TestThermoTableWriteToFile(Te *testing.T) {
	water := gasPhase(Te, waterNMA())
	name := filepath.Join(Te.TempDir(), "table.csv")
	tt, err := NewThermoTable([]*PartFun{water}, []float64{300, 400, 500})
	require.NoError(Te, err)
	require.NoError(Te, tt.WriteToFile(name))
	data, err := os.ReadFile(name)
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(Te, lines, 4)
	assert.True(Te, strings.HasPrefix(lines[0], "T [K],"))
}

//The CSV table goes through the same suffix-based compression as the
//text reports.
func TestThermoTableCompressed(Te *testing.T) {
	water := gasPhase(Te, waterNMA())
	tt, err := NewThermoTable([]*PartFun{water}, []float64{300, 400, 500})
	require.NoError(Te, err)
	dir := Te.TempDir()

	name := filepath.Join(dir, "table.gz")
	require.NoError(Te, tt.WriteToFile(name))
	f, err := os.Open(name)
	require.NoError(Te, err)
	defer f.Close()
	gr, err := gzip.NewReader(f)
	require.NoError(Te, err)
	records, err := csv.NewReader(gr).ReadAll()
	require.NoError(Te, err)
	require.NoError(Te, gr.Close())
	require.Len(Te, records, 4)
	assert.Equal(Te, "T [K]", records[0][0])
	assert.Equal(Te, "300.00", records[1][0])

	name = filepath.Join(dir, "table.stf")
	require.NoError(Te, tt.WriteToFile(name))
	f2, err := os.Open(name)
	require.NoError(Te, err)
	defer f2.Close()
	zr, err := zstd.NewReader(f2)
	require.NoError(Te, err)
	defer zr.Close()
	zrecords, err := csv.NewReader(zr).ReadAll()
	require.NoError(Te, err)
	assert.Equal(Te, records, zrecords)
}
