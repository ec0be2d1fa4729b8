package directory

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a whole-dollar salary figure. The zero value is the unknown
// sentinel: it marshals to null and poisons any sum it takes part in.
type Amount struct {
	Value int64
	Known bool
}

func NewAmount(value int64) Amount {
	return Amount{Value: value, Known: true}
}

func (a Amount) Plus(b Amount) Amount {
	if !a.Known || !b.Known {
		return Amount{}
	}
	return NewAmount(a.Value + b.Value)
}

func (a Amount) String() string {
	if !a.Known {
		return "unknown"
	}
	return strconv.FormatInt(a.Value, 10)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Known {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, a.Value, 10), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Amount{}
		return nil
	}
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*a = NewAmount(value)
	return nil
}

var salaryStripper = strings.NewReplacer("$", "", ",", "")

// ParseAmount strips every "$" and "," from a display salary and parses the
// rest as a base-10 integer.
func ParseAmount(display string) Amount {
	cleaned := strings.TrimSpace(salaryStripper.Replace(display))
	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return Amount{}
	}
	return NewAmount(value)
}

// averageOf rounds half up, matching what the dashboard always displayed.
func averageOf(total Amount, count int) Amount {
	if !total.Known || count == 0 {
		return Amount{}
	}
	return NewAmount(int64(math.Floor(float64(total.Value)/float64(count) + 0.5)))
}
