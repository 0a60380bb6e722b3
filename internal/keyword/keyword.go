// Package keyword holds the immutable, process-wide SQL keyword set.
//
// The set is built once, at startup, via Init, and is read-only and
// lock-free thereafter — callers may look words up concurrently from many
// goroutines with no further synchronization, per the core's concurrency
// contract (a caller may invoke the binder concurrently from multiple
// threads provided the keyword set is already initialized).
package keyword

import "sort"

// Set is an immutable, sorted collection of lowercase keyword strings
// supporting membership lookup by binary search.
type Set struct {
	words []string
}

// Init builds the built-in keyword set. It is idempotent and cheap enough
// to call more than once; callers typically call it exactly once at
// process startup and share the result.
func Init() *Set {
	words := append([]string(nil), builtin...)
	sort.Strings(words)
	return &Set{words: words}
}

// Has reports whether lower is a keyword. The comparison is exact, so the
// caller lowercases the word first (the lexer does) to get a
// case-insensitive match. Digits and punctuation are never keywords, so
// callers only need to ask about alphabetic lexemes.
func (s *Set) Has(lower string) bool {
	if s == nil {
		return false
	}
	i := sort.SearchStrings(s.words, lower)
	return i < len(s.words) && s.words[i] == lower
}

// builtin is the reference keyword list: ANSI SQL plus the Oracle-flavored
// extensions this dialect needs (PARTITION, CONNECT BY, MERGE, hints are
// handled structurally and are not keywords). Deliberately excluded, per
// the dialect's own design: sysdate, rowid, rownum, level, uid, sid, oid,
// systimestamp, localtimestamp, id, name, no, test, null.
var builtin = []string{
	"abort", "absolute", "access", "add", "admin", "after", "all", "allocate",
	"alter", "analyze", "and", "any", "array", "as", "asc", "ascii",
	"assertion", "at", "attribute", "authorization", "autonomous", "avg",
	"before", "begin", "between", "bfile", "binary", "binary_double",
	"binary_float", "bitmap", "blob", "body", "both", "breadth", "bulk", "by",
	"byte", "cache", "call", "cascade", "cascaded", "case", "cast", "catalog",
	"chain", "change", "char", "character", "characteristics", "check",
	"clob", "close", "cluster", "coalesce", "collate", "collation", "column",
	"columns", "comment", "commit", "committed", "compress", "compressed",
	"connect", "connect_by_root", "constant", "constraint", "constraints",
	"constructor", "continue", "conversion", "convert", "corresponding",
	"count", "create", "cross", "cube", "current", "current_date",
	"current_time", "current_timestamp", "current_user", "cursor", "cycle",
	"dangling", "data", "database", "date", "datetime", "day", "dba",
	"deallocate", "dec", "decimal", "declare", "default", "deferrable",
	"deferred", "definer", "delete", "dense_rank", "depth", "deref", "desc",
	"describe", "descriptor", "deterministic", "diagnostics", "disable",
	"disconnect", "distinct", "domain", "double", "drop", "dump", "duration",
	"each", "else", "elsif", "enable", "end", "equals", "errors", "escape",
	"every", "except", "exception", "exceptions", "exclude", "exclusive",
	"exec", "execute", "exists", "exit", "explain", "external", "extract",
	"false", "fetch", "final", "first", "flashback", "float", "following",
	"for", "force", "foreign", "found", "free", "from", "full", "function",
	"general", "get", "global", "go", "goto", "grant", "group", "grouping",
	"groups", "having", "hash", "hour", "identified", "identity",
	"ignore_row_on_dupkey_index", "immediate", "in", "include", "including",
	"increment", "index", "indicator", "initial", "initially", "initrans",
	"inner", "inout", "input", "insert", "instance", "instantiable", "instead",
	"int", "integer", "intersect", "interval", "into", "is", "isolation",
	"java", "join", "json", "keep", "key", "language", "large", "last",
	"lateral", "leading", "leave", "left", "level_order", "like", "limit",
	"link", "list", "lob", "local", "localtime", "lock", "locked", "log",
	"logging", "long", "loop", "main", "map", "match", "matched",
	"materialized", "max", "maxextents", "maxvalue", "member", "merge",
	"min", "minus", "minute", "minvalue", "mode", "modify", "module", "month",
	"names", "national", "natural", "nchar", "nclob", "nested", "never",
	"new", "next", "no_data_found", "nocompress", "nocycle", "noexpand",
	"nologging", "noorder", "noparallel", "norely", "not", "nowait",
	"nth_value", "ntile", "nullif", "nulls", "number", "numeric",
	"nvarchar2", "object", "of", "off", "offset", "old", "on", "online",
	"only", "open", "operator", "option", "or", "order", "ordinality",
	"others", "out", "outer", "output", "over", "overflow", "overlaps",
	"overriding", "package", "pad", "parallel", "parameter", "parameters",
	"partial", "partition", "password", "path", "pctfree", "pctincrease",
	"pctused", "pctversion", "percent", "pipe", "pipelined", "pivot",
	"placing", "plan", "precision", "preceding", "prepare", "preserve",
	"primary", "prior", "privileges", "procedure", "public", "purge",
	"query", "quota", "raise", "range", "raw", "read", "ref", "references",
	"referencing", "refresh", "relative", "release", "rely", "rename",
	"repeatable", "replace", "resource", "restrict", "result", "resume",
	"retention", "return", "returning", "reuse", "revoke", "right", "role",
	"rollback", "rollup", "row", "rownumber", "rows", "savepoint", "schema",
	"scope", "scroll", "search", "second", "section", "segment", "select",
	"self", "sequence", "serializable", "session", "session_user", "set",
	"sets", "sharding", "share", "sibling", "size", "skip", "smallint",
	"snapshot", "some", "space", "sql", "sqlcode", "sqlerror", "sqlexception",
	"sqlstate", "sqlwarning", "standalone", "start", "state", "statement",
	"static", "statistics", "storage", "structure", "submultiset",
	"subpartition", "subpartitions", "substitutable", "successful",
	"supplemental", "suspend", "synonym", "system", "system_time", "table",
	"tables", "tablespace", "temporary", "text", "then", "ties", "time",
	"timestamp", "timezone_abbr", "timezone_hour", "timezone_minute",
	"timezone_region", "to", "trailing", "transaction", "translate",
	"translation", "treat", "trigger", "trim", "true", "truncate", "trust",
	"type", "under", "undo", "union", "unique", "unlimited", "unlock",
	"unnest", "unpivot", "until", "update", "upsert", "urowid", "usage",
	"use", "using", "validate", "validation", "value", "values", "varchar",
	"varchar2", "variable", "varray", "varying", "view", "wait", "when",
	"whenever", "where", "while", "with", "within", "without", "work",
	"write", "xml", "xmltype", "year", "zone",
}
