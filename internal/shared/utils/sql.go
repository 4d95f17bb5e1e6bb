package utils

import (
	"fmt"
	"strings"
)

// WhereBuilder gom các điều kiện WHERE động và đánh số placeholder $1, $2, ...
type WhereBuilder struct {
	clauses []string
	args    []any
}

// Add thêm một điều kiện; mỗi "?" trong clause được thay bằng cùng một placeholder
// vd: Add("(title ILIKE ? OR upc ILIKE ?)", "%x%")
func (w *WhereBuilder) Add(clause string, arg any) {
	w.args = append(w.args, arg)
	placeholder := fmt.Sprintf("$%d", len(w.args))
	w.clauses = append(w.clauses, strings.ReplaceAll(clause, "?", placeholder))
}

// Clause trả về " WHERE a AND b" hoặc "" khi không có điều kiện
func (w *WhereBuilder) Clause() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(w.clauses)
}

// Args trả về bản copy để caller append LIMIT/OFFSET mà không ảnh hưởng builder
func (w *WhereBuilder) Args() []any {
	out := make([]any, len(w.args))
	copy(out, w.args)
	return out
}

// Next trả về số thứ tự placeholder kế tiếp
func (w *WhereBuilder) Next() int {
	return len(w.args) + 1
}

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// ContainsPattern tạo pattern ILIKE '%s%', escape ký tự đặc biệt của LIKE
func ContainsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
