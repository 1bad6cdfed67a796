package domain

import "strings"

// genreCodes maps the symbolic genre values onto the codes used by the
// storage layer. The stored codes predate this service and are kept as-is.
var genreCodes = map[Genre]string{
	GenreAction:   "ACCION",
	GenreComedy:   "COMEDIA",
	GenreDrama:    "DRAMA",
	GenreAnimated: "ANIMADA",
	GenreHorror:   "TERROR",
	GenreSciFi:    "CIENCIA_FICCION",
}

var codeGenres = func() map[string]Genre {
	m := make(map[string]Genre, len(genreCodes))
	for g, c := range genreCodes {
		m[c] = g
	}
	return m
}()

// GenreCode converts a symbolic genre into its storage code. Every declared
// genre has a code; an undeclared value yields the empty code.
func GenreCode(g Genre) string {
	return genreCodes[g]
}

// GenreFromCode converts a storage code back into a symbolic genre. Unknown
// or empty codes yield nil: rows written by other tools may carry malformed
// codes and a read must degrade to "no genre" instead of failing.
func GenreFromCode(code string) *Genre {
	g, ok := codeGenres[code]
	if !ok {
		return nil
	}
	return &g
}

// StateFlag converts a stored lifecycle code into the external availability
// flag. "D" means available, "N" means not available (case-insensitive).
// Any other code, including the empty one, yields nil.
func StateFlag(code string) *bool {
	var f bool
	switch strings.ToUpper(code) {
	case StateAvailable:
		f = true
	case StateNotAvailable:
		f = false
	default:
		return nil
	}
	return &f
}

// StateCode converts an availability flag into the stored lifecycle code.
// Unlike StateFlag it is total: a missing or false flag always becomes "N".
func StateCode(flag *bool) string {
	if flag == nil || !*flag {
		return StateNotAvailable
	}
	return StateAvailable
}
