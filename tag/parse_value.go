package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errRange = errors.New("out of range")

// ParseValue parses raw into a value of type t. Integers must fit t's width
// and are never truncated. A trailing L on Long, f on Float, d on Double and
// b/s on Byte/Short are accepted, matching how values are displayed.
// Arrays are comma separated, optionally wrapped in brackets. Lists and
// compounds cannot be parsed from text.
func ParseValue(t Type, raw string) (Value, error) {
	verr := func(err error) (Value, error) {
		return Value{}, &ValueError{Type: t, Input: raw, Err: err}
	}
	s := strings.TrimSpace(raw)
	switch t {
	case ByteType, ShortType, IntType, LongType:
		i, err := parseInt(t, s)
		if err != nil {
			return verr(err)
		}
		return Value{Type: t, Int: i}, nil
	case FloatType:
		f, err := parseFloat(s, "fF", 32)
		if err != nil {
			return verr(numErr(err))
		}
		return FromFloat(float32(f)), nil
	case DoubleType:
		f, err := parseFloat(s, "dD", 64)
		if err != nil {
			return verr(numErr(err))
		}
		return FromDouble(f), nil
	case StringType:
		v, err := FromString(raw)
		if err != nil {
			return verr(err)
		}
		return v, nil
	case ByteArrayType:
		var res []int8
		err := eachElem(s, func(e string) error {
			i, err := parseInt(ByteType, e)
			res = append(res, int8(i))
			return err
		})
		if err != nil {
			return verr(err)
		}
		return FromByteArray(res), nil
	case IntArrayType:
		var res []int32
		err := eachElem(s, func(e string) error {
			i, err := parseInt(IntType, e)
			res = append(res, int32(i))
			return err
		})
		if err != nil {
			return verr(err)
		}
		return FromIntArray(res), nil
	case LongArrayType:
		var res []int64
		err := eachElem(s, func(e string) error {
			i, err := parseInt(LongType, e)
			res = append(res, i)
			return err
		})
		if err != nil {
			return verr(err)
		}
		return FromLongArray(res), nil
	default:
		return verr(fmt.Errorf("%s values cannot be set from text", t))
	}
}

func parseInt(t Type, s string) (int64, error) {
	switch t {
	case ByteType:
		s = trimSuffix(s, "bB")
	case ShortType:
		s = trimSuffix(s, "sS")
	case LongType:
		s = trimSuffix(s, "lL")
	}
	i, err := strconv.ParseInt(s, 10, t.BitSize())
	if err != nil {
		return 0, numErr(err)
	}
	return i, nil
}

func parseFloat(s, suffixes string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err == nil {
		return f, nil
	}
	if t := trimSuffix(s, suffixes); t != s {
		if f, terr := strconv.ParseFloat(t, bitSize); terr == nil {
			return f, nil
		}
	}
	return 0, err
}

func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return errRange
	}
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func trimSuffix(s, suffixes string) string {
	if len(s) > 1 && strings.IndexByte(suffixes, s[len(s)-1]) >= 0 {
		return s[:len(s)-1]
	}
	return s
}

func eachElem(s string, f func(string) error) error {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return fmt.Errorf("unbalanced brackets")
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil
	}
	for e := range strings.SplitSeq(s, ",") {
		if err := f(strings.TrimSpace(e)); err != nil {
			return err
		}
	}
	return nil
}
