package trace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned for a line that is not a trace record.
var ErrMalformedRecord = errors.New("malformed trace record")

// ParseLine decodes a single trace line. Leading and trailing white space is
// ignored, the address may carry a 0x prefix, and any operation character is
// accepted; unknown ones produce an Other record.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return Record{}, malformed(line, "too short")
	}

	opChar := line[0]
	if !isPrintableOp(opChar) {
		return Record{}, malformed(line, "bad operation")
	}

	rest := strings.TrimLeft(line[1:], " \t")

	addrField, sizeField, found := strings.Cut(rest, ",")
	if !found {
		return Record{}, malformed(line, "missing size")
	}

	addr, err := parseAddress(addrField)
	if err != nil {
		return Record{}, malformed(line, err.Error())
	}

	size, err := strconv.Atoi(strings.TrimSpace(sizeField))
	if err != nil {
		return Record{}, malformed(line, "bad size")
	}

	return Record{
		Op:      OpKindOf(opChar),
		OpChar:  opChar,
		Address: addr,
		Size:    size,
	}, nil
}

func isPrintableOp(c byte) bool {
	return c > ' ' && c < 0x7f
}

func parseAddress(field string) (uint64, error) {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")

	if field == "" {
		return 0, errors.New("empty address")
	}

	addr, err := strconv.ParseUint(field, 16, 64)
	if err != nil {
		return 0, errors.New("bad address")
	}

	return addr, nil
}

func malformed(line, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrMalformedRecord, line, reason)
}
