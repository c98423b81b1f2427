package sequence

import "strconv"

// These flags define which values to include in a serialized output.
const (
	SerializeStep   = 1 << iota // step that produced the run
	SerializeValue              // symbol of the run
	SerializeLength             // number of symbols in the run
)

const (
	serializerBasePrefix   = '['
	serializerRowPrefix    = '{'
	serializerStepPrefix   = `"step":`
	serializerValuePrefix  = `"value":`
	serializerLengthPrefix = `"length":`
	serializerRowSuffix    = "},"
	serializerBaseSuffix   = ']'
	serializerSeparator    = ", "
)

// serialize returns a JSON encoding of runs using flag to define which
// values to include in each row. Steps are numbered from offset.
func serialize(runs []Run, offset int, flag int) []byte {
	if len(runs) == 0 {
		return []byte("[]")
	}
	approxRowSize := 3
	if flag&SerializeStep != 0 {
		approxRowSize += len(serializerStepPrefix) + 6
	}
	if flag&SerializeValue != 0 {
		approxRowSize += len(serializerValuePrefix) + 2
	}
	if flag&SerializeLength != 0 {
		approxRowSize += len(serializerLengthPrefix) + 2
	}
	buf := make([]byte, 0, 2+len(runs)*approxRowSize)
	buf = append(buf, serializerBasePrefix)
	for i, r := range runs {
		buf = append(buf, serializerRowPrefix)
		first := true
		field := func(prefix string) {
			if !first {
				buf = append(buf, ',')
			}
			first = false
			buf = append(buf, prefix...)
		}
		if flag&SerializeStep != 0 {
			field(serializerStepPrefix)
			buf = strconv.AppendInt(buf, int64(offset+i), 10)
		}
		if flag&SerializeValue != 0 {
			field(serializerValuePrefix)
			buf = strconv.AppendUint(buf, uint64(r.v), 10)
		}
		if flag&SerializeLength != 0 {
			field(serializerLengthPrefix)
			buf = strconv.AppendUint(buf, uint64(r.n), 10)
		}
		buf = append(buf, serializerRowSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// Serialize is a convenience function that returns a JSON encoding of runs,
// numbering steps from 0 and using flag to define which values to include in
// the serialized output.
func Serialize(runs []Run, flag int) []byte {
	return serialize(runs, 0, flag)
}

// Format returns a textual representation of runs, such as
// "Single(1), Double(2,2)".
func Format(runs []Run) []byte {
	buf := make([]byte, 0, len(runs)*(len("Double(2,2)")+len(serializerSeparator)))
	for i, r := range runs {
		if i > 0 {
			buf = append(buf, serializerSeparator...)
		}
		buf = r.appendText(buf)
	}
	return buf
}
