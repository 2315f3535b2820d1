package fieldpath

// Kind is the closed set of leaf value kinds a record field may declare.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindUint32
	KindUint64
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindText
	KindEnum
)

var kindNames = [...]string{
	KindUint32:  "u32",
	KindUint64:  "u64",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindFloat32: "f32",
	KindFloat64: "f64",
	KindText:    "text",
	KindEnum:    "enum",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// IsNumber reports whether the kind is one of the numeric kinds.
func (k Kind) IsNumber() bool {
	switch k {
	case KindUint32, KindUint64, KindInt32, KindInt64, KindFloat32, KindFloat64:
		return true
	default:
		return false
	}
}

// guessOrder is the priority in which Guess probes numeric kinds.
var guessOrder = []Kind{KindUint32, KindUint64, KindInt32, KindInt64, KindFloat32, KindFloat64}
