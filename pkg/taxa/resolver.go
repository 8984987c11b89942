package taxa

// Outcome classifies the result of resolving a recorded name.
type Outcome int

const (
	// Resolved means the name matched a checklist concept.
	Resolved Outcome = iota

	// Excluded means a dataset override marks the name as a
	// non-taxon entry to drop from the load.
	Excluded

	// Unresolved means the name matched nothing; the record goes on
	// the problem list and its dataset is withheld from the load.
	Unresolved
)

// Resolution is the outcome of resolving one recorded name.
type Resolution struct {
	NameOriginal string
	NameCleaned  string
	Code         string
	AcceptedCode string
	Outcome      Outcome
}

// Overrides are per-dataset name corrections applied before checklist
// lookup. Replace maps a recorded name to the checklist name it
// should resolve as; Exclude lists recorded entries that are not taxa
// at all (water, litter, bare ground).
type Overrides struct {
	Replace map[string]string
	Exclude []string
}

// Resolver matches recorded plant names to checklist concepts.
type Resolver struct {
	store   *Store
	replace map[string]string
	exclude map[string]bool
}

// NewResolver creates a resolver over a store with optional dataset
// overrides. Override keys and values are normalized the same way
// recorded names are, so spelling of whitespace or rank markers in
// the override file does not matter.
func NewResolver(store *Store, ov *Overrides) *Resolver {
	r := &Resolver{
		store:   store,
		replace: make(map[string]string),
		exclude: make(map[string]bool),
	}
	if ov == nil {
		return r
	}
	for from, to := range ov.Replace {
		r.replace[NormalizeName(from)] = NormalizeName(to)
	}
	for _, name := range ov.Exclude {
		r.exclude[NormalizeName(name)] = true
	}
	return r
}

// Resolve matches one recorded name. After normalization the exact
// checklist match wins; the replace override applies only when the
// recorded name matches nothing, and the replacement goes through the
// same lookup, so resolution is idempotent over its own output.
func (r *Resolver) Resolve(nameOriginal string) Resolution {
	res := Resolution{
		NameOriginal: nameOriginal,
		NameCleaned:  NormalizeName(nameOriginal),
	}

	if r.exclude[res.NameCleaned] {
		res.Outcome = Excluded
		return res
	}

	if c, ok := r.store.ByName(res.NameCleaned); ok {
		return resolved(res, c)
	}

	if to, ok := r.replace[res.NameCleaned]; ok {
		if c, ok := r.store.ByName(to); ok {
			return resolved(res, c)
		}
	}

	res.Outcome = Unresolved
	return res
}

func resolved(res Resolution, c *Concept) Resolution {
	res.Code = c.Code
	res.AcceptedCode = c.AcceptedCode
	res.Outcome = Resolved
	return res
}
