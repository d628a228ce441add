package sqlq

const (
	LogicNone Logic = 0
	LogicAnd  Logic = 1
	LogicOr   Logic = 2
)

/*
Short for "logical connective". Optional prefix of a condition or expression:
none, "AND", "OR". The connective of the first condition in an expression, or
of a single ungrouped expression, is preserved verbatim; shaping the input is
the caller's responsibility.
*/
type Logic byte

// Implement `fmt.Stringer`.
func (self Logic) String() string {
	switch self {
	default:
		return ``
	case LogicAnd:
		return `AND`
	case LogicOr:
		return `OR`
	}
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self Logic) GoString() string {
	switch self {
	default:
		return `sqlq.LogicNone`
	case LogicAnd:
		return `sqlq.LogicAnd`
	case LogicOr:
		return `sqlq.LogicOr`
	}
}

const (
	OpNone Op = iota
	OpEq
	OpNeq
	OpGt
	OpGte
	OpLt
	OpLte
	OpLike
	OpIlike
	OpIn
	OpNotIn
	OpIsNull
	OpNotNull
	OpBetween
	OpJsonContains
	OpJsonContainedBy
	OpJsonHasKey
	OpJsonHasAny
	OpJsonHasAll
)

/*
Short for "operator". Closed set of condition operators. The JSONB operators
`?`, `?|`, `?&` share their text with the generic parameter marker; marker
substitution is done by recorded offsets, so these pass through untouched.
*/
type Op byte

// Implement `fmt.Stringer`. Returns the operator's SQL text.
func (self Op) String() string {
	switch self {
	default:
		return ``
	case OpEq:
		return `=`
	case OpNeq:
		return `!=`
	case OpGt:
		return `>`
	case OpGte:
		return `>=`
	case OpLt:
		return `<`
	case OpLte:
		return `<=`
	case OpLike:
		return `LIKE`
	case OpIlike:
		return `ILIKE`
	case OpIn:
		return `IN`
	case OpNotIn:
		return `NOT IN`
	case OpIsNull:
		return `IS NULL`
	case OpNotNull:
		return `IS NOT NULL`
	case OpBetween:
		return `BETWEEN`
	case OpJsonContains:
		return `@>`
	case OpJsonContainedBy:
		return `<@`
	case OpJsonHasKey:
		return `?`
	case OpJsonHasAny:
		return `?|`
	case OpJsonHasAll:
		return `?&`
	}
}

// True if the operator is followed by a rendered value. `IS NULL` and
// `IS NOT NULL` are complete on their own and never consult the value.
func (self Op) takesVal() bool {
	switch self {
	case OpIsNull, OpNotNull:
		return false
	default:
		return true
	}
}

const (
	JoinInner JoinKind = 0
	JoinLeft  JoinKind = 1
	JoinRight JoinKind = 2
	JoinFull  JoinKind = 3
	JoinCross JoinKind = 4
)

// Enum for join clause variants. The zero value is `INNER`.
type JoinKind byte

// Implement `fmt.Stringer`.
func (self JoinKind) String() string {
	switch self {
	default:
		return `INNER`
	case JoinLeft:
		return `LEFT`
	case JoinRight:
		return `RIGHT`
	case JoinFull:
		return `FULL`
	case JoinCross:
		return `CROSS`
	}
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self JoinKind) GoString() string {
	switch self {
	default:
		return `sqlq.JoinInner`
	case JoinLeft:
		return `sqlq.JoinLeft`
	case JoinRight:
		return `sqlq.JoinRight`
	case JoinFull:
		return `sqlq.JoinFull`
	case JoinCross:
		return `sqlq.JoinCross`
	}
}

const (
	DirAsc  Dir = 0
	DirDesc Dir = 1
)

// Short for "direction". Enum for ordering direction. The zero value is
// ascending.
type Dir byte

// Implement `fmt.Stringer`.
func (self Dir) String() string {
	if self == DirDesc {
		return `DESC`
	}
	return `ASC`
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self Dir) GoString() string {
	if self == DirDesc {
		return `sqlq.DirDesc`
	}
	return `sqlq.DirAsc`
}

const (
	PlaceholderQuestion Placeholder = 0
	PlaceholderDollar   Placeholder = 1
)

/*
Final placeholder notation of a built statement. `PlaceholderQuestion` keeps
the generic `?` markers as-is. `PlaceholderDollar` rewrites them into `$1`,
`$2`, ... `$N`, numbered left to right across the entire statement text.
The zero value is the generic notation, which is also the only notation
allowed for nested sub-statements.
*/
type Placeholder byte

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self Placeholder) GoString() string {
	if self == PlaceholderDollar {
		return `sqlq.PlaceholderDollar`
	}
	return `sqlq.PlaceholderQuestion`
}
