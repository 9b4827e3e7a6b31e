package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder_SinCondiciones(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.clause())
	assert.Empty(t, w.args)
}

func TestWhereBuilder_NumeraPlaceholders(t *testing.T) {
	var w whereBuilder
	w.add("category_id = $%d", "c1")
	w.add("supplier_id = $%d", "s1")

	assert.Equal(t, " WHERE category_id = $1 AND supplier_id = $2", w.clause())
	assert.Equal(t, []any{"c1", "s1"}, w.args)
}

func TestWhereBuilder_MezclaRawYArgs(t *testing.T) {
	var w whereBuilder
	w.add("supplier_id = $%d", "s1")
	w.addRaw("quantity <= low_stock_threshold")
	w.add("s.date >= $%d", "2026-01-01")

	assert.Equal(t,
		" WHERE supplier_id = $1 AND quantity <= low_stock_threshold AND s.date >= $2",
		w.clause())
	assert.Len(t, w.args, 2, "las condiciones raw no consumen placeholders")
}
