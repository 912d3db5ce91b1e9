// Package ast defines the syntax tree for Lua chunks.
//
// Узлы хранятся в аренах (Arena) с 1-based идентификаторами; 0 — "нет
// узла". У каждого узла есть Kind, Span в байтовых смещениях исходника
// и PayloadID, указывающий в арену данных своего вида. Доступ к данным
// идёт парами NewX/X на Exprs и Stmts; аксессор возвращает (nil, false)
// при несовпадении вида.
//
// Строки (имена, содержимое литералов) не хранятся в узлах напрямую —
// только source.StringID из общего интернера Builder.Strings.
package ast
