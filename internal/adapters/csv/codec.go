// Package csv reads and writes rated-player rosters as flat files.
//
// The format is a header row followed by one record per player:
//
//	id,name,speed,technical,stamina
//
// The codec only parses; field-level validity is the roster validator's
// job and the balancing core's input contract.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/matchday/teamdraft/internal/domain/model"
)

const fieldCount = 5

var header = []string{"id", "name", "speed", "technical", "stamina"}

// ReadRoster parses a roster from r. Parse failures are reported with
// the 1-based line number of the offending record.
func ReadRoster(r io.Reader) ([]*model.Player, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = fieldCount

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrBadRecord)
	}

	players := make([]*model.Player, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		speed, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: speed %q is not an integer", ErrBadRecord, line, row[2])
		}
		technical, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: technical %q is not an integer", ErrBadRecord, line, row[3])
		}
		stamina, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: stamina %q is not an integer", ErrBadRecord, line, row[4])
		}
		players = append(players, &model.Player{
			ID:        row[0],
			Name:      row[1],
			Speed:     speed,
			Technical: technical,
			Stamina:   stamina,
		})
	}
	return players, nil
}

// WriteRoster writes players to w in the roster format.
func WriteRoster(w io.Writer, players []*model.Player) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range players {
		row := []string{
			p.ID,
			p.Name,
			strconv.Itoa(p.Speed),
			strconv.Itoa(p.Technical),
			strconv.Itoa(p.Stamina),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
