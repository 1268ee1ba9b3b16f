package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/density-regions/densarea/graph"
)

// LoadCSV reads a zone table (columns: id,mass,area) and a neighbour-pair
// table (columns: from,to) from disk and loads them via Load. Both files
// are expected to carry a header row, which is skipped.
func LoadCSV(zonesPath, pairsPath string, allowExterior bool) (*graph.Graph, error) {
	records, err := readZoneCSV(zonesPath)
	if err != nil {
		return nil, fmt.Errorf("loader: reading zone table %s: %w", zonesPath, err)
	}
	pairs, err := readPairCSV(pairsPath)
	if err != nil {
		return nil, fmt.Errorf("loader: reading neighbour table %s: %w", pairsPath, err)
	}
	return Load(records, pairs, allowExterior)
}

func readZoneCSV(path string) ([]ZoneRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	if _, err := r.Read(); err != nil { // header
		return nil, err
	}

	var out []ZoneRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("zone id %q: %w", row[0], err)
		}
		mass, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("zone %d mass %q: %w", id, row[1], err)
		}
		area, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("zone %d area %q: %w", id, row[2], err)
		}

		out = append(out, ZoneRecord{ID: graph.ZoneID(id), Mass: mass, Area: area})
	}
	return out, nil
}

func readPairCSV(path string) ([]NeighbourPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	if _, err := r.Read(); err != nil { // header
		return nil, err
	}

	var out []NeighbourPair
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		from, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pair from %q: %w", row[0], err)
		}
		to, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pair to %q: %w", row[1], err)
		}

		out = append(out, NeighbourPair{From: graph.ZoneID(from), To: graph.ZoneID(to)})
	}
	return out, nil
}
