package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString.
// An empty string becomes NULL.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// OrderDirection coerces a user-supplied sort direction to "ASC" or "DESC".
// Anything other than "asc" (any case) sorts descending.
func OrderDirection(dir string) string {
	if dir == "asc" || dir == "ASC" || dir == "Asc" {
		return "ASC"
	}
	return "DESC"
}

// AllowedSortField returns field if it is in allowed, otherwise fallback.
// Sort fields are interpolated into ORDER BY clauses, so they must come
// from an allow-list rather than straight from the request.
func AllowedSortField(field string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if field == a {
			return field
		}
	}
	return fallback
}
