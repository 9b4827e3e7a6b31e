package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder acumula condiciones WHERE con placeholders posicionales ($1,
// $2, ...). Es la única capa de construcción de consultas condicionales:
// los repositorios traducen sus descriptores de filtro aquí en lugar de
// concatenar SQL por sitio de llamada.
type whereBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición con un argumento; cond debe contener "%d" donde va
// el placeholder, ej: "p.category_id = $%d".
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

// addRaw agrega una condición sin argumentos (predicados sobre columnas).
func (w *whereBuilder) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

// clause devuelve " WHERE ..." o cadena vacía si no hay condiciones.
func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
