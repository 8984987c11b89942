package ioload

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/accs-uaa/avdb/internal/ioingest"
	"github.com/accs-uaa/avdb/pkg/plot"
	"github.com/accs-uaa/avdb/pkg/schema"
	"github.com/accs-uaa/avdb/pkg/taxa"
	"github.com/accs-uaa/avdb/pkg/vocab"
	"github.com/gnames/gnuuid"
)

// Problem is one record withheld from the load, reported on the
// problem list artifact. Hard problems (vocabulary, range, date, and
// coordinate violations) are fatal for the whole run; unresolved
// names only withhold their dataset and can be waived.
type Problem struct {
	DatasetCode  string
	Table        string
	NameOriginal string
	NameUUID     string
	Reason       string
	Hard         bool
}

// processed is one dataset after normalization, validation, and name
// resolution. Rows align with the destination column lists. A failed
// dataset is withheld from the database entirely; a dataset with hard
// problems aborts the run.
type processed struct {
	Code     string
	Rows     map[string][][]any
	Problems []Problem
	Failed   bool
	Hard     bool
}

// dictKeys maps dictionary domain and term to the surrogate key
// stored in the database. The text sentinel maps to key 0.
type dictKeys map[string]map[string]int

func (d dictKeys) key(domain, term string) int {
	if term == vocab.DefaultPolicy.TextSentinel {
		return 0
	}
	return d[domain][term]
}

// processDataset turns one ingested dataset into destination table
// rows. Every vocabulary violation, range violation, unresolved name,
// or bounds violation becomes a problem and fails the dataset; the
// rest of the rows still process so one run reports every issue.
func processDataset(
	data *ioingest.Data,
	store *taxa.Store,
	norm *vocab.Normalizer,
	keys dictKeys,
) *processed {
	p := &processed{
		Code: data.Dataset.Code,
		Rows: make(map[string][][]any),
	}
	resolver := taxa.NewResolver(store, data.Overrides)

	// Tables process in write order so problems report in a stable
	// order across runs.
	for _, table := range schema.WriteOrder() {
		rows, ok := data.Tables[table]
		if !ok {
			continue
		}
		if table == "vegetation_cover" {
			p.processCover(rows, resolver, norm, keys)
			continue
		}
		if _, ok := tableSpecs[table]; ok {
			p.processGeneric(table, rows, resolver, norm, keys)
		}
	}

	if len(p.Problems) > 0 {
		p.Failed = true
	}
	for _, prob := range p.Problems {
		if prob.Hard {
			p.Hard = true
			break
		}
	}
	return p
}

// processGeneric handles every table driven by a column spec.
func (p *processed) processGeneric(
	table string,
	rows []ioingest.Row,
	resolver *taxa.Resolver,
	norm *vocab.Normalizer,
	keys dictKeys,
) {
	specs := tableSpecs[table]

	for _, row := range rows {
		out := make([]any, 0, len(specs))
		bad, skip := false, false

		for _, spec := range specs {
			val, drop, prob := p.value(table, spec, row, resolver, norm, keys)
			if prob != nil {
				p.Problems = append(p.Problems, *prob)
				bad = true
				break
			}
			if drop {
				skip = true
				break
			}
			out = append(out, val)
		}
		if bad || skip {
			continue
		}

		if table == "site" {
			if prob := p.checkBounds(row); prob != nil {
				p.Problems = append(p.Problems, *prob)
				continue
			}
		}

		p.Rows[table] = append(p.Rows[table], out)
	}
}

// value converts one source value per its column spec. The second
// return asks the caller to drop the row without a problem; only
// excluded names do that.
func (p *processed) value(
	table string,
	spec colSpec,
	row ioingest.Row,
	resolver *taxa.Resolver,
	norm *vocab.Normalizer,
	keys dictKeys,
) (any, bool, *Problem) {
	raw := row[spec.source]

	switch spec.kind {
	case kindText:
		cleaned := taxa.CleanString(raw)
		if cleaned == "" {
			return norm.Policy().TextSentinel, false, nil
		}
		return cleaned, false, nil

	case kindDict:
		term, err := norm.Text(spec.domain, raw)
		if err != nil {
			return nil, false, p.problem(table, raw, err.Error())
		}
		return keys.key(spec.domain, term), false, nil

	case kindNumeric:
		val, err := norm.Numeric(spec.column, raw)
		if err != nil {
			return nil, false, p.problem(table, raw, err.Error())
		}
		return val, false, nil

	case kindInt:
		val, err := norm.Numeric(spec.column, raw)
		if err != nil {
			return nil, false, p.problem(table, raw, err.Error())
		}
		return int(val), false, nil

	case kindBool:
		return parseBool(raw), false, nil

	case kindDate:
		date, ok := ioingest.ParseDate(raw)
		if !ok {
			return nil, false, p.problem(table, raw, "unparseable date")
		}
		return date, false, nil

	case kindTaxon:
		res := resolver.Resolve(raw)
		switch res.Outcome {
		case taxa.Excluded:
			slog.Debug("excluded name skipped",
				"dataset", p.Code, "table", table, "name", raw)
			return nil, true, nil
		case taxa.Unresolved:
			return nil, false, p.nameProblem(table, raw)
		}
		return res.AcceptedCode, false, nil
	}

	return nil, false, p.problem(table, raw, "unknown column kind")
}

// processCover handles vegetation cover: normalize, merge field
// splits of the same taxon, then resolve names.
func (p *processed) processCover(
	rows []ioingest.Row,
	resolver *taxa.Resolver,
	norm *vocab.Normalizer,
	keys dictKeys,
) {
	const table = "vegetation_cover"

	var records []plot.CoverRecord
	for _, row := range rows {
		coverType, err := norm.Text("cover_type", row["cover_type"])
		if err != nil {
			p.Problems = append(p.Problems,
				*p.problem(table, row["cover_type"], err.Error()))
			continue
		}
		percent, err := norm.Numeric("cover_percent", row["cover_percent"])
		if err != nil {
			p.Problems = append(p.Problems,
				*p.problem(table, row["cover_percent"], err.Error()))
			continue
		}

		// The recorded name stays verbatim; only resolution uses the
		// normalized form.
		records = append(records, plot.CoverRecord{
			SiteVisitCode: row["site_visit_code"],
			CoverType:     coverType,
			NameOriginal:  row["name_original"],
			DeadStatus:    parseBool(row["dead_status"]),
			CoverPercent:  percent,
		})
	}

	records = plot.MergeDuplicateCover(records)

	for _, rec := range records {
		res := resolver.Resolve(rec.NameOriginal)
		switch res.Outcome {
		case taxa.Excluded:
			continue
		case taxa.Unresolved:
			p.Problems = append(p.Problems,
				*p.nameProblem(table, rec.NameOriginal))
			continue
		}

		// code_adjudicated carries the accepted concept, not the
		// recorded synonym's own code.
		p.Rows[table] = append(p.Rows[table], []any{
			rec.SiteVisitCode,
			keys.key("cover_type", rec.CoverType),
			rec.NameOriginal,
			rec.DeadStatus,
			res.AcceptedCode,
			rec.CoverPercent,
		})
	}
}

// checkBounds validates site coordinates against the survey region.
func (p *processed) checkBounds(row ioingest.Row) *Problem {
	latRaw, lonRaw := row["latitude_dd"], row["longitude_dd"]

	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lon, errLon := strconv.ParseFloat(lonRaw, 64)
	if errLat != nil || errLon != nil {
		return p.problem("site", latRaw+", "+lonRaw,
			"unparseable coordinates")
	}

	if err := plot.ValidateBounds(lat, lon); err != nil {
		return p.problem("site", latRaw+", "+lonRaw,
			"coordinates outside survey region")
	}
	return nil
}

// problem reports a vocabulary, range, date, or coordinate violation.
// These are hard: they point at corrupt source data and fail the whole
// run, no waiver.
func (p *processed) problem(table, value, reason string) *Problem {
	return &Problem{
		DatasetCode:  p.Code,
		Table:        table,
		NameOriginal: value,
		Reason:       reason,
		Hard:         true,
	}
}

// nameProblem reports an unresolved plant name with its stable UUID
// v5, so the same name gets the same identifier on every run. Name
// problems are soft: they withhold their dataset but can be waived.
func (p *processed) nameProblem(table, name string) *Problem {
	return &Problem{
		DatasetCode:  p.Code,
		Table:        table,
		NameOriginal: name,
		NameUUID:     gnuuid.New(name).String(),
		Reason:       "name not found in checklist",
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(taxa.CleanString(s)) {
	case "true", "t", "1", "yes", "y":
		return true
	}
	return false
}
