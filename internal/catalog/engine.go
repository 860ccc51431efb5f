package catalog

import (
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/fibulaproject/fibulopedia/internal/metrics"
)

// The per-kind loaders and queries all share one engine parameterized by a
// kind schema: the required-field set plus a build function turning a raw
// record into a typed entity. Build functions coerce through the safe
// helpers and therefore cannot fail; a record either has its required
// fields and loads, or is skipped whole.

// loadCatalog loads one catalog file and normalizes its records in source
// order. Records missing required fields are skipped and logged
// individually; no partial record ever enters the result.
func loadCatalog[T any](store *Store, file, kind string, required []string, build func(Record) T) []T {
	doc, ok := store.LoadJSON(file)
	if !ok {
		metrics.CatalogLoadFailures.WithLabelValues(kind).Inc()
		return []T{}
	}

	records, ok := asRecords(doc)
	if !ok {
		slog.Warn(LogMsgUnexpectedShape, "file", file, "kind", kind)
		metrics.CatalogLoadFailures.WithLabelValues(kind).Inc()
		return []T{}
	}

	entities := make([]T, 0, len(records))
	for _, rec := range records {
		if missing := missingFields(rec, required); len(missing) > 0 {
			slog.Warn(LogMsgRecordSkipped,
				"kind", kind,
				"id", ToString(rec["id"]),
				"missing", strings.Join(missing, ", "))
			metrics.CatalogRecordsSkipped.WithLabelValues(kind).Inc()
			continue
		}
		entities = append(entities, build(rec))
	}

	slog.Info(LogMsgCatalogLoaded, "kind", kind, "count", len(entities))
	metrics.CatalogRecordsLoaded.WithLabelValues(kind).Add(float64(len(entities)))
	return entities
}

// missingFields returns the required fields absent from rec, in the order
// they are declared
func missingFields(rec Record, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := rec[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// searchCatalog returns the entities whose text fields contain query,
// case-insensitively. A blank query is the identity filter: the whole
// collection comes back, which is distinct from "no match found".
func searchCatalog[T any](entities []T, query string, textFields func(T) []string) []T {
	q := strings.TrimSpace(query)
	if q == "" {
		return entities
	}

	fold := cases.Fold()
	folded := fold.String(q)

	results := make([]T, 0)
	for _, entity := range entities {
		for _, field := range textFields(entity) {
			if strings.Contains(fold.String(field), folded) {
				results = append(results, entity)
				break
			}
		}
	}
	return results
}

// filterCatalog returns the entities whose categorical field contains
// value, case-insensitively
func filterCatalog[T any](entities []T, value string, field func(T) string) []T {
	fold := cases.Fold()
	folded := fold.String(value)

	results := make([]T, 0)
	for _, entity := range entities {
		if strings.Contains(fold.String(field(entity)), folded) {
			results = append(results, entity)
		}
	}
	return results
}

// distinctValues projects one field across the collection and returns the
// deduplicated values sorted ascending
func distinctValues[T any](entities []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(entities))
	for _, entity := range entities {
		seen[field(entity)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// findByID returns the first entity with the given id. Duplicate ids are
// tolerated on load, so first-match is the lookup contract.
func findByID[T any](entities []T, id string, idOf func(T) string) (T, bool) {
	for _, entity := range entities {
		if idOf(entity) == id {
			return entity, true
		}
	}
	var zero T
	return zero, false
}
