package main

import "fmt"

// Scenario is a prepared board, written by hand in a YAML file. Each row is
// a string of NCols characters: '.' for an empty cell, '0' or '1' for a
// digit. The rows fill the bottom of the board, the last row in the file
// being the floor. Rows above the ones given stay empty.
//
// Example:
//
//	Rows:
//	  - "00........"
//	  - "00.....11."
type Scenario struct {
	Rows []string `yaml:"Rows"`
}

func ParseCell(c byte) (Cell, error) {
	switch c {
	case '.':
		return Empty, nil
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	default:
		return Empty, fmt.Errorf("invalid cell character: %q", c)
	}
}

// Cells returns the whole board, row by row, as described by the scenario.
func (s *Scenario) Cells() []Cell {
	if int64(len(s.Rows)) > NRows {
		Check(fmt.Errorf("scenario has %d rows, the board only has %d",
			len(s.Rows), NRows))
		return nil
	}
	cells := make([]Cell, NCols*NRows)
	firstRow := NRows - int64(len(s.Rows))
	for i, row := range s.Rows {
		if int64(len(row)) != NCols {
			Check(fmt.Errorf("scenario row %d has %d cells instead of %d",
				i, len(row), NCols))
			return nil
		}
		for x := range row {
			c, err := ParseCell(row[x])
			Check(err)
			cells[(firstRow+int64(i))*NCols+int64(x)] = c
		}
	}
	return cells
}

func LoadScenario(fsys FS, filename string) (s Scenario) {
	LoadYAML(fsys, filename, &s)
	return
}
