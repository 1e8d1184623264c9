package catalog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lotwise/internal/domain/entities"
)

// Catalog file names expected under the catalog directory.
const (
	ZoningFile = "r_codes_wa.csv"
	CostFile   = "cost_catalog_wa.csv"
	DutyFile   = "wa_stamp_duty_brackets.csv"
)

// Loader reads the static reference tables from CSV files on every call.
//
// Data-quality problems never fail a request: a missing file yields an empty
// table, a malformed row is skipped or zero-defaulted per table rules, and
// every such event is logged at warn level.
type Loader struct {
	dir string
	log *zap.Logger
}

func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

// Dir returns the catalog directory this loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// ZoningRules loads the R-code catalog. Rows with an empty code are skipped;
// unparseable numeric fields default to 0.
func (l *Loader) ZoningRules() map[string]entities.ZoningRule {
	rules := make(map[string]entities.ZoningRule)
	rows := l.readRows(ZoningFile)
	for _, row := range rows {
		code := strings.TrimSpace(row["r_code"])
		if code == "" {
			continue
		}
		rules[code] = entities.ZoningRule{
			MinLotSqm:    l.numOrZero(ZoningFile, code, row["min_lot_sqm"]),
			AvgLotSqm:    l.numOrZero(ZoningFile, code, row["avg_lot_sqm"]),
			MinFrontageM: l.numOrZero(ZoningFile, code, row["min_frontage_m"]),
		}
	}
	return rules
}

// CostItems loads the cost catalog keyed by item code.
func (l *Loader) CostItems() map[string]entities.CostItem {
	items := make(map[string]entities.CostItem)
	rows := l.readRows(CostFile)
	for _, row := range rows {
		code := strings.TrimSpace(row["item_code"])
		if code == "" {
			continue
		}
		items[code] = entities.CostItem{
			Unit:         entities.CostUnit(strings.TrimSpace(row["unit"])),
			DefaultValue: l.numOrZero(CostFile, code, row["default_value"]),
		}
	}
	return items
}

// DutyBrackets loads the stamp duty schedule sorted ascending by lower bound.
// Rows with unparseable numbers are skipped.
func (l *Loader) DutyBrackets() []entities.DutyBracket {
	var brackets []entities.DutyBracket
	rows := l.readRows(DutyFile)
	for _, row := range rows {
		lower, err1 := parseNum(row["lower_bound"])
		rate, err2 := parseNum(row["rate"])
		fixed, err3 := parseNum(row["fixed"])
		if err1 != nil || err2 != nil || err3 != nil {
			l.log.Warn("skipping malformed duty bracket row",
				zap.String("file", DutyFile),
				zap.String("lower_bound", row["lower_bound"]))
			continue
		}
		brackets = append(brackets, entities.DutyBracket{LowerBound: lower, Rate: rate, Fixed: fixed})
	}
	sort.Slice(brackets, func(i, j int) bool { return brackets[i].LowerBound < brackets[j].LowerBound })
	if len(brackets) == 0 {
		l.log.Warn("duty bracket table is empty; duty will be computed as 0", zap.String("file", DutyFile))
	}
	return brackets
}

// readRows reads a CSV file with a header row into per-row column maps.
// A missing or unreadable file yields no rows.
func (l *Loader) readRows(name string) []map[string]string {
	path := filepath.Join(l.dir, name)
	f, err := os.Open(path)
	if err != nil {
		l.log.Warn("catalog file unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		l.log.Warn("catalog file unreadable", zap.String("path", path), zap.Error(err))
		return nil
	}
	if len(records) < 2 {
		return nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (l *Loader) numOrZero(file, key, raw string) float64 {
	v, err := parseNum(raw)
	if err != nil {
		if strings.TrimSpace(raw) != "" {
			l.log.Warn("unparseable catalog number defaulted to 0",
				zap.String("file", file), zap.String("key", key), zap.String("value", raw))
		}
		return 0
	}
	return v
}

func parseNum(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
