package chadwick

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"mlb-statsapi-mcp/internal/domain"
)

const (
	// fuzzyCutoff is the minimum name similarity kept as a near match.
	fuzzyCutoff = 0.6
	// fuzzyLimit caps how many near matches a fuzzy lookup returns.
	fuzzyLimit = 5
)

// registerColumns are the header names the search reads from each row.
var registerColumns = []string{
	"name_last",
	"name_first",
	"key_mlbam",
	"key_retro",
	"key_bbref",
	"key_fangraphs",
	"mlb_played_first",
	"mlb_played_last",
}

type scoredRecord struct {
	record domain.PlayerIDRecord
	score  float64
}

// searchRegister streams the register CSV and collects matches in one pass.
// Exact hits short-circuit fuzzy ranking; near matches are ranked by
// similarity, ties keeping register order.
func searchRegister(r io.Reader, last, first string, fuzzy bool) ([]domain.PlayerIDRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var exact []domain.PlayerIDRecord
	var near []scoredRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		nameLast := field(row, idx, "name_last")
		nameFirst := field(row, idx, "name_first")
		switch {
		case !fuzzy:
			if strings.EqualFold(nameLast, last) && strings.EqualFold(nameFirst, first) {
				exact = append(exact, rowRecord(row, idx))
			}
		case strings.EqualFold(nameLast, last):
			exact = append(exact, rowRecord(row, idx))
		default:
			if s := similarity(last, nameLast); s >= fuzzyCutoff {
				near = append(near, scoredRecord{record: rowRecord(row, idx), score: s})
			}
		}
	}

	if !fuzzy || len(exact) > 0 {
		return exact, nil
	}
	if len(near) == 0 {
		return nil, nil
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].score > near[j].score })
	if len(near) > fuzzyLimit {
		near = near[:fuzzyLimit]
	}
	out := make([]domain.PlayerIDRecord, len(near))
	for i, n := range near {
		out[i] = n.record
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range registerColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("register header missing column %q", name)
		}
	}
	return idx, nil
}

func rowRecord(row []string, idx map[string]int) domain.PlayerIDRecord {
	return domain.PlayerIDRecord{
		NameLast:       field(row, idx, "name_last"),
		NameFirst:      field(row, idx, "name_first"),
		KeyMLBAM:       numericKey(field(row, idx, "key_mlbam")),
		KeyRetro:       field(row, idx, "key_retro"),
		KeyBBRef:       field(row, idx, "key_bbref"),
		KeyFanGraphs:   numericKey(field(row, idx, "key_fangraphs")),
		MLBPlayedFirst: numericKey(field(row, idx, "mlb_played_first")),
		MLBPlayedLast:  numericKey(field(row, idx, "mlb_played_last")),
	}
}

// field returns the row value for a register column, empty when the row is
// short.
func field(row []string, idx map[string]int, name string) string {
	i := idx[name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numericKey parses a register identifier, returning -1 when the register
// carries none for that system.
func numericKey(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// similarity is the Levenshtein distance between the folded names scaled
// to 0..1, where 1 is an exact match.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
