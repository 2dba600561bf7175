package candidate

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/internal/collision"
)

// ReferenceIndex is the comparison-table index of the reference model.
const ReferenceIndex = "A"

// RankedRow is a candidate with its 1-based rank (1 is best).
type RankedRow struct {
	Rank int
	Row
}

// Option returns the selection label of the candidate, e.g.
// "[1] CIR = ... [MdAPE: 0.123,  RMSE: 4.560]".
func (r RankedRow) Option() string {
	return fmt.Sprintf("[%d] %s [MdAPE: %.3f,  RMSE: %.3f]", r.Rank, r.Equation, r.MdAPE, r.RMSE)
}

// Table is a results file ranked for comparison.
type Table struct {
	// Kind is the calculation the models predict.
	Kind formula.Kind
	// Reference is the AACE anchor row; it is never ranked.
	Reference Row
	// Candidates holds the non-reference rows sorted by ascending MdAPE.
	Candidates []RankedRow

	ids *collision.Tracker
}

// Rank builds a Table from the rows of one results file.
//
// The first reference row becomes the anchor; any further reference rows are
// dropped. Candidates are sorted by ascending stored MdAPE with ties kept in
// file order and NaN metrics last.
func Rank(kind formula.Kind, rows []Row) (*Table, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKind, int(kind))
	}

	refIdx := slices.IndexFunc(rows, func(r Row) bool { return r.IsReference })
	if refIdx < 0 {
		return nil, fmt.Errorf("%w for %s", errs.ErrNoReference, kind)
	}

	candidates := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !r.IsReference {
			candidates = append(candidates, r)
		}
	}
	slices.SortStableFunc(candidates, func(a, b Row) int {
		return compareMetric(a.MdAPE, b.MdAPE)
	})

	table := &Table{
		Kind:       kind,
		Reference:  rows[refIdx],
		Candidates: make([]RankedRow, len(candidates)),
		ids:        collision.NewTracker(),
	}
	for i, r := range candidates {
		table.Candidates[i] = RankedRow{Rank: i + 1, Row: r}
		table.ids.Track(r.Equation)
	}

	return table, nil
}

// compareMetric orders ascending with NaN after every number.
func compareMetric(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Len returns the number of ranked candidates.
func (t *Table) Len() int {
	return len(t.Candidates)
}

// Best returns the rank-1 candidate.
func (t *Table) Best() (RankedRow, error) {
	return t.ByRank(1)
}

// ByRank returns the candidate with the given 1-based rank.
func (t *Table) ByRank(rank int) (RankedRow, error) {
	if rank < 1 || rank > len(t.Candidates) {
		return RankedRow{}, fmt.Errorf("%w: %d not in [1, %d]", errs.ErrRankOutOfRange, rank, len(t.Candidates))
	}

	return t.Candidates[rank-1], nil
}

// ByID returns the best-ranked candidate whose equation has the given ID.
func (t *Table) ByID(id uint64) (RankedRow, error) {
	if t.ids != nil && t.ids.Collides(id) {
		return RankedRow{}, fmt.Errorf("%w: %016x", errs.ErrAmbiguousID, id)
	}
	for _, c := range t.Candidates {
		if c.ID() == id {
			return c, nil
		}
	}

	return RankedRow{}, fmt.Errorf("%w: %016x", errs.ErrCandidateNotFound, id)
}

// Options returns the selection labels of all candidates in rank order.
func (t *Table) Options() []string {
	out := make([]string, len(t.Candidates))
	for i, c := range t.Candidates {
		out[i] = c.Option()
	}

	return out
}

// MetricsRow is one line of the reference-versus-selected comparison table.
type MetricsRow struct {
	Index    string
	Model    string
	Equation string
	MdAPE    string
	RMSE     string
}

// CompareRows returns the two-line metrics table: the reference model under
// index "A" and the selected candidate under its rank.
func (t *Table) CompareRows(selected RankedRow) []MetricsRow {
	return []MetricsRow{
		metricsRow(ReferenceIndex, "AACE", t.Reference),
		metricsRow(strconv.Itoa(selected.Rank), "Selected", selected.Row),
	}
}

func metricsRow(index, model string, r Row) MetricsRow {
	return MetricsRow{
		Index:    index,
		Model:    model,
		Equation: r.Equation,
		MdAPE:    strconv.FormatFloat(r.MdAPE, 'f', 3, 64),
		RMSE:     strconv.FormatFloat(r.RMSE, 'f', 3, 64),
	}
}

// Curves evaluates the kind's reference formula and the selected candidate over the sweep.
//
// The reference row only supplies the anchor metrics; its curve is always the
// closed-form AACE formula.
func (t *Table) Curves(selected RankedRow, sweep formula.Sweep, fixed formula.FixedInputs) (ref, sel formula.Curve) {
	ref = formula.Curve{X: sweep.Floats(), Y: formula.ReferenceCurve(t.Kind, sweep)}

	return ref, Evaluate(selected.Row, sweep, fixed)
}
